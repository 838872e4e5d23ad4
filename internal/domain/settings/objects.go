package settings

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/mitchellh/mapstructure"

	"github.com/osa030/playaxis/internal/host"
)

// FromObjects builds settings from the host property bag.
// Every property missing from objects, or failing to decode, keeps its
// default value. The returned error lists the properties that failed; the
// settings are usable either way.
func FromObjects(objects host.Objects) (Settings, error) {
	s := Default()
	if len(objects) == 0 {
		return s, nil
	}

	input := make(map[string]any, len(objects))
	for group, props := range objects {
		input[group] = props
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &s,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		DecodeHook:       fillToColorHook,
	})
	if err != nil {
		return Default(), errors.Wrap(err, "failed to create decoder")
	}

	if err := decoder.Decode(input); err != nil {
		return s, errors.Wrap(err, "failed to decode settings objects")
	}

	return s, nil
}

// fillToColorHook flattens a host fill value ({solid: {color: "#rrggbb"}})
// into its color string.
func fillToColorHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}

	switch v := data.(type) {
	case Fill:
		return v.Solid.Color, nil
	case *Fill:
		if v == nil {
			return data, nil
		}
		return v.Solid.Color, nil
	case map[string]any:
		solid, ok := v["solid"].(map[string]any)
		if !ok {
			return nil, errors.Newf("fill value has no solid color: %v", v)
		}
		color, ok := solid["color"].(string)
		if !ok {
			return nil, errors.Newf("fill value has no solid color: %v", v)
		}
		return color, nil
	}

	return data, nil
}
