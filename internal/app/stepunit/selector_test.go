package stepunit

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osa030/playaxis/internal/render"
)

type recordingSizer struct {
	mu    sync.Mutex
	sizes []int
}

func (r *recordingSizer) SetStepSize(units int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sizes = append(r.sizes, units)
}

func (r *recordingSizer) last() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sizes[len(r.sizes)-1]
}

func opacities(scene *render.Scene) map[string]float64 {
	out := make(map[string]float64)
	for _, p := range Presets {
		out[p.Element] = scene.Element(p.Element).Opacity
	}
	return out
}

func TestNewSelector_StartsAtOneUnit(t *testing.T) {
	sizer := &recordingSizer{}
	scene := render.NewScene()

	s := NewSelector(sizer, scene)

	assert.Equal(t, 1, s.StepSize())
	assert.Equal(t, []int{1}, sizer.sizes)
	p, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, "Second", p.Name)
}

func TestSelector_SetStepSize(t *testing.T) {
	tests := []struct {
		name       string
		units      int
		wantActive string
	}{
		{name: "second", units: 1, wantActive: render.ElementSecond},
		{name: "ten seconds", units: 10, wantActive: render.ElementTenSeconds},
		{name: "minute", units: 60, wantActive: render.ElementMinute},
		{name: "hour", units: 3600, wantActive: render.ElementHour},
		{name: "no preset", units: 7, wantActive: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizer := &recordingSizer{}
			scene := render.NewScene()
			s := NewSelector(sizer, scene)

			s.SetStepSize(tt.units)

			assert.Equal(t, tt.units, s.StepSize())
			assert.Equal(t, []int{1, tt.units}, sizer.sizes)
			for element, opacity := range opacities(scene) {
				if element == tt.wantActive {
					assert.Equal(t, render.Opaque, opacity, element)
				} else {
					assert.Equal(t, render.Dimmed, opacity, element)
				}
			}
			_, ok := s.Active()
			assert.Equal(t, tt.wantActive != "", ok)
		})
	}
}

func TestSelector_IgnoresNonPositive(t *testing.T) {
	sizer := &recordingSizer{}
	s := NewSelector(sizer, render.NewScene())

	s.SetStepSize(0)
	s.SetStepSize(-10)

	assert.Equal(t, 1, s.StepSize())
	assert.Equal(t, []int{1}, sizer.sizes)
}

func TestSelector_SelectPreset(t *testing.T) {
	sizer := &recordingSizer{}
	s := NewSelector(sizer, render.NewScene())

	assert.True(t, s.SelectPreset(render.ElementMinute))
	assert.Equal(t, 60, s.StepSize())

	assert.False(t, s.SelectPreset("week"))
	assert.Equal(t, 60, s.StepSize())
}

func TestSelector_ConcurrentSetStepSizeStaysConsistent(t *testing.T) {
	sizer := &recordingSizer{}
	scene := render.NewScene()
	s := NewSelector(sizer, scene)

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(p Preset) {
			defer wg.Done()
			s.SetStepSize(p.Units)
		}(Presets[i%len(Presets)])
	}
	wg.Wait()

	assert.Equal(t, sizer.last(), s.StepSize())

	active, ok := s.Active()
	assert.True(t, ok)
	for element, opacity := range opacities(scene) {
		if element == active.Element {
			assert.Equal(t, render.Opaque, opacity, element)
		} else {
			assert.Equal(t, render.Dimmed, opacity, element)
		}
	}
}
