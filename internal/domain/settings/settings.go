// Package settings provides the structured visual settings and their defaults.
package settings

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

// Format-pane object groups.
const (
	GroupTransition = "transitionSettings"
	GroupColor      = "colorSelector"
	GroupCaption    = "captionSettings"
)

// Bounds of the numeric settings, as advertised to the host format pane.
const (
	MinTimeIntervalMs = 500
	MaxTimeIntervalMs = 60000
	MinFontSize       = 8
	MaxFontSize       = 22
)

// Align is the caption text alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// TextAnchor returns the text-anchor value used to render the alignment.
func (a Align) TextAnchor() string {
	switch a {
	case AlignRight:
		return "end"
	case AlignCenter:
		return "middle"
	default:
		return "start"
	}
}

// Settings is the configuration of one visual instance.
// It is immutable within an update cycle.
type Settings struct {
	Transition TransitionSettings `mapstructure:"transitionSettings" yaml:"transitionSettings"`
	Color      ColorSettings      `mapstructure:"colorSelector" yaml:"colorSelector"`
	Caption    CaptionSettings    `mapstructure:"captionSettings" yaml:"captionSettings"`
}

// TransitionSettings controls playback.
type TransitionSettings struct {
	AutoStart      bool `mapstructure:"autoStart" yaml:"autoStart"`
	Loop           bool `mapstructure:"loop" yaml:"loop"`
	TimeIntervalMs int  `mapstructure:"timeInterval" yaml:"timeInterval" default:"1000" validate:"gte=500,lte=60000"`
}

// Interval returns the time between two steps.
func (t TransitionSettings) Interval() time.Duration {
	return time.Duration(t.TimeIntervalMs) * time.Millisecond
}

// ColorSettings controls the button colors.
// PickedColor applies to every button unless ShowAll is set.
type ColorSettings struct {
	PickedColor   string `mapstructure:"pickedColor" yaml:"pickedColor" default:"#000000" validate:"hexcolor"`
	ShowAll       bool   `mapstructure:"showAll" yaml:"showAll"`
	PlayColor     string `mapstructure:"playColor" yaml:"playColor" default:"#f2c811" validate:"hexcolor"`
	PauseColor    string `mapstructure:"pauseColor" yaml:"pauseColor" default:"#1769b8" validate:"hexcolor"`
	StopColor     string `mapstructure:"stopColor" yaml:"stopColor" default:"#f42550" validate:"hexcolor"`
	PreviousColor string `mapstructure:"previousColor" yaml:"previousColor" default:"#12b159" validate:"hexcolor"`
	NextColor     string `mapstructure:"nextColor" yaml:"nextColor" default:"#a81de8" validate:"hexcolor"`
}

// CaptionSettings controls the caption label.
type CaptionSettings struct {
	Show     bool   `mapstructure:"show" yaml:"show" default:"true"`
	Color    string `mapstructure:"captionColor" yaml:"captionColor" default:"#000000" validate:"hexcolor"`
	FontSize int    `mapstructure:"fontSize" yaml:"fontSize" default:"16" validate:"gte=8,lte=22"`
	Align    Align  `mapstructure:"align" yaml:"align" default:"left" validate:"oneof=left center right"`
}

// Default returns the settings used when the host has stored nothing.
func Default() Settings {
	var s Settings
	if err := defaults.Set(&s); err != nil {
		panic(errors.Wrap(err, "settings: invalid default tags"))
	}
	return s
}

var validate = validator.New()

// Validate validates the settings against their documented bounds.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return errors.Wrap(err, "settings validation failed")
	}
	return nil
}

// Normalize returns a copy with every out-of-range value pulled back into bounds.
// Numbers are clamped; unknown alignments and malformed colors revert to defaults.
func (s Settings) Normalize() Settings {
	def := Default()

	s.Transition.TimeIntervalMs = clamp(s.Transition.TimeIntervalMs, MinTimeIntervalMs, MaxTimeIntervalMs)
	s.Caption.FontSize = clamp(s.Caption.FontSize, MinFontSize, MaxFontSize)

	switch s.Caption.Align {
	case AlignLeft, AlignCenter, AlignRight:
	default:
		s.Caption.Align = def.Caption.Align
	}

	s.Caption.Color = colorOr(s.Caption.Color, def.Caption.Color)
	s.Color.PickedColor = colorOr(s.Color.PickedColor, def.Color.PickedColor)
	s.Color.PlayColor = colorOr(s.Color.PlayColor, def.Color.PlayColor)
	s.Color.PauseColor = colorOr(s.Color.PauseColor, def.Color.PauseColor)
	s.Color.StopColor = colorOr(s.Color.StopColor, def.Color.StopColor)
	s.Color.PreviousColor = colorOr(s.Color.PreviousColor, def.Color.PreviousColor)
	s.Color.NextColor = colorOr(s.Color.NextColor, def.Color.NextColor)

	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func colorOr(c, fallback string) string {
	if err := validate.Var(c, "hexcolor"); err != nil {
		return fallback
	}
	return c
}
