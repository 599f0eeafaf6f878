package functions

import (
	"fmt"
	"reflect"

	"github.com/bep/colorstring"
	"google.golang.org/protobuf/types/known/structpb"
)

// MarshalValue converts input into a protobuf value.
//
// Strings, booleans, numbers, nil, colors (*RGBColor, *HSLColor and
// colorstring.Color) and slices, arrays and string keyed maps of those are
// supported. A colorstring.Color is marshaled as an RGB color.
func MarshalValue(input reflect.Value) (returns *structpb.Value, err error) {
	if !input.IsValid() {
		return structpb.NewNullValue(), nil
	}

	switch input.Kind() {
	case reflect.Interface, reflect.Pointer:
		if input.IsNil() {
			return structpb.NewNullValue(), nil
		}
	case reflect.Array, reflect.Slice:
		if input.Kind() == reflect.Slice && input.IsNil() {
			return structpb.NewNullValue(), nil
		}
		var content *structpb.Value
		list := &structpb.ListValue{}
		for i := 0; i < input.Len(); i++ {
			if content, err = MarshalValue(input.Index(i)); err != nil {
				return
			}
			list.Values = append(list.Values, content)
		}
		return structpb.NewListValue(list), nil
	case reflect.Map:
		if input.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type %s", input.Type().Key())
		}
		fields := make(map[string]*structpb.Value, input.Len())
		iter := input.MapRange()
		for iter.Next() {
			if fields[iter.Key().String()], err = MarshalValue(iter.Value()); err != nil {
				return
			}
		}
		return structpb.NewStructValue(&structpb.Struct{Fields: fields}), nil
	}

	switch c := input.Interface().(type) {
	case string:
		returns = structpb.NewStringValue(c)
	case bool:
		returns = structpb.NewBoolValue(c)
	case float64:
		returns = structpb.NewNumberValue(c)
	case float32:
		returns = structpb.NewNumberValue(float64(c))
	case int:
		returns = structpb.NewNumberValue(float64(c))
	case uint8:
		returns = structpb.NewNumberValue(float64(c))
	case uint32:
		returns = structpb.NewNumberValue(float64(c))
	case colorstring.Color:
		returns = marshalRGB(NewRGBColor(c))
	case *RGBColor:
		returns = marshalRGB(c)
	case *HSLColor:
		returns = structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"type":       structpb.NewStringValue(colorTypeHSL),
			"hue":        structpb.NewNumberValue(c.Hue),
			"saturation": structpb.NewNumberValue(c.Saturation),
			"lightness":  structpb.NewNumberValue(c.Lightness),
			"alpha":      structpb.NewNumberValue(c.Alpha),
		}})
	default:
		if input.Kind() == reflect.Interface || input.Kind() == reflect.Pointer {
			return MarshalValue(input.Elem())
		}
		err = fmt.Errorf("unknown value %T", c)
	}
	return
}

func marshalRGB(c *RGBColor) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		"type":  structpb.NewStringValue(colorTypeRGB),
		"red":   structpb.NewNumberValue(float64(c.Red)),
		"green": structpb.NewNumberValue(float64(c.Green)),
		"blue":  structpb.NewNumberValue(float64(c.Blue)),
		"alpha": structpb.NewNumberValue(c.Alpha),
	}})
}
