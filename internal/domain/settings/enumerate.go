package settings

// Fill is the host representation of a color property.
type Fill struct {
	Solid Solid `yaml:"solid"`
}

// Solid is a single solid color.
type Solid struct {
	Color string `yaml:"color"`
}

// SolidFill wraps a color in the host fill shape.
func SolidFill(color string) Fill {
	return Fill{Solid: Solid{Color: color}}
}

// NumberRange bounds a numeric property in the format pane.
type NumberRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// ObjectInstance is one entry of a format-pane enumeration.
type ObjectInstance struct {
	ObjectName  string                 `yaml:"objectName"`
	Properties  map[string]any         `yaml:"properties"`
	ValidValues map[string]NumberRange `yaml:"validValues,omitempty"`
	Selector    any                    `yaml:"selector"`
}

// Enumerate projects the current values of one object group for the
// host configuration surface. Unknown groups yield an empty enumeration.
func (s Settings) Enumerate(group string) []ObjectInstance {
	instances := make([]ObjectInstance, 0, 1)

	switch group {
	case GroupTransition:
		instances = append(instances, ObjectInstance{
			ObjectName: group,
			Properties: map[string]any{
				"autoStart":    s.Transition.AutoStart,
				"loop":         s.Transition.Loop,
				"timeInterval": s.Transition.TimeIntervalMs,
			},
			ValidValues: map[string]NumberRange{
				"timeInterval": {Min: MinTimeIntervalMs, Max: MaxTimeIntervalMs},
			},
		})
	case GroupColor:
		props := map[string]any{
			"showAll": s.Color.ShowAll,
		}
		if s.Color.ShowAll {
			props["playColor"] = SolidFill(s.Color.PlayColor)
			props["pauseColor"] = SolidFill(s.Color.PauseColor)
			props["stopColor"] = SolidFill(s.Color.StopColor)
			props["previousColor"] = SolidFill(s.Color.PreviousColor)
			props["nextColor"] = SolidFill(s.Color.NextColor)
		} else {
			props["pickedColor"] = SolidFill(s.Color.PickedColor)
		}
		instances = append(instances, ObjectInstance{
			ObjectName: group,
			Properties: props,
		})
	case GroupCaption:
		instances = append(instances, ObjectInstance{
			ObjectName: group,
			Properties: map[string]any{
				"show":         s.Caption.Show,
				"captionColor": SolidFill(s.Caption.Color),
				"align":        string(s.Caption.Align),
				"fontSize":     s.Caption.FontSize,
			},
			ValidValues: map[string]NumberRange{
				"fontSize": {Min: MinFontSize, Max: MaxFontSize},
			},
		})
	}

	return instances
}
