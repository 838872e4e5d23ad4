package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumerate_Transition(t *testing.T) {
	s := Default()
	s.Transition.Loop = true
	s.Transition.TimeIntervalMs = 1500

	got := s.Enumerate(GroupTransition)

	require.Len(t, got, 1)
	assert.Equal(t, GroupTransition, got[0].ObjectName)
	assert.Equal(t, map[string]any{
		"autoStart":    false,
		"loop":         true,
		"timeInterval": 1500,
	}, got[0].Properties)
	assert.Equal(t, NumberRange{Min: 500, Max: 60000}, got[0].ValidValues["timeInterval"])
	assert.Nil(t, got[0].Selector)
}

func TestEnumerate_ColorSelector(t *testing.T) {
	tests := []struct {
		name     string
		showAll  bool
		wantKeys []string
	}{
		{
			name:     "picked color only",
			showAll:  false,
			wantKeys: []string{"showAll", "pickedColor"},
		},
		{
			name:     "individual colors",
			showAll:  true,
			wantKeys: []string{"showAll", "playColor", "pauseColor", "stopColor", "previousColor", "nextColor"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.Color.ShowAll = tt.showAll

			got := s.Enumerate(GroupColor)

			require.Len(t, got, 1)
			keys := make([]string, 0, len(got[0].Properties))
			for k := range got[0].Properties {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.wantKeys, keys)
			assert.Empty(t, got[0].ValidValues)
		})
	}
}

func TestEnumerate_CaptionIgnoresColorMode(t *testing.T) {
	for _, showAll := range []bool{false, true} {
		s := Default()
		s.Color.ShowAll = showAll
		s.Caption.Align = AlignCenter

		got := s.Enumerate(GroupCaption)

		require.Len(t, got, 1)
		assert.Equal(t, map[string]any{
			"show":         true,
			"captionColor": SolidFill("#000000"),
			"align":        "center",
			"fontSize":     16,
		}, got[0].Properties)
		assert.Equal(t, NumberRange{Min: 8, Max: 22}, got[0].ValidValues["fontSize"])
	}
}

func TestEnumerate_UnknownGroup(t *testing.T) {
	got := Default().Enumerate("dataPoint")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
