package functions

import (
	"fmt"
	"reflect"

	"github.com/bep/colorstring"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	colorType    = reflect.TypeOf(colorstring.Color{})
	rgbColorType = reflect.TypeOf((*RGBColor)(nil))
	hslColorType = reflect.TypeOf((*HSLColor)(nil))
)

// UnmarshalValue converts input into a value of inType.
//
// A colorstring.Color can be unmarshaled from a marshaled RGB or HSL color,
// or from any string colorstring.Parse accepts.
func UnmarshalValue(input *structpb.Value, inType reflect.Type) (reflect.Value, error) {
	return unmarshalValue(nil, input, inType)
}

func unmarshalValue(p *colorstring.Parser, input *structpb.Value, inType reflect.Type) (returns reflect.Value, err error) {
	if _, ok := input.GetKind().(*structpb.Value_NullValue); ok || input.GetKind() == nil {
		returns = reflect.Zero(inType)
		return
	}

	switch inType {
	case colorType:
		var c colorstring.Color
		if c, err = unmarshalColor(p, input); err == nil {
			returns = reflect.ValueOf(c)
		}
		return
	case rgbColorType:
		var c colorstring.Color
		if c, err = unmarshalColor(p, input); err == nil {
			returns = reflect.ValueOf(NewRGBColor(c))
		}
		return
	case hslColorType:
		if fields := input.GetStructValue().GetFields(); fields["type"].GetStringValue() == colorTypeHSL {
			returns = reflect.ValueOf(&HSLColor{
				Hue:        fields["hue"].GetNumberValue(),
				Saturation: fields["saturation"].GetNumberValue(),
				Lightness:  fields["lightness"].GetNumberValue(),
				Alpha:      alphaField(fields),
			})
			return
		}
		var c colorstring.Color
		if c, err = unmarshalColor(p, input); err == nil {
			returns = reflect.ValueOf(NewHSLColor(c))
		}
		return
	}

	returns = reflect.New(inType).Elem()
	switch inType.Kind() {
	case reflect.String:
		if x, ok := input.Kind.(*structpb.Value_StringValue); ok {
			returns.SetString(x.StringValue)
		} else {
			returns = reflect.Value{}
		}
	case reflect.Bool:
		if x, ok := input.Kind.(*structpb.Value_BoolValue); ok {
			returns.SetBool(x.BoolValue)
		} else {
			returns = reflect.Value{}
		}
	case reflect.Float32, reflect.Float64:
		if x, ok := input.Kind.(*structpb.Value_NumberValue); ok {
			returns.SetFloat(x.NumberValue)
		} else {
			returns = reflect.Value{}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if x, ok := input.Kind.(*structpb.Value_NumberValue); ok {
			returns.SetInt(int64(x.NumberValue))
		} else {
			returns = reflect.Value{}
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if x, ok := input.Kind.(*structpb.Value_NumberValue); ok && x.NumberValue >= 0 {
			returns.SetUint(uint64(x.NumberValue))
		} else {
			returns = reflect.Value{}
		}
	case reflect.Array, reflect.Slice:
		x, ok := input.Kind.(*structpb.Value_ListValue)
		if !ok {
			returns = reflect.Value{}
			break
		}
		contents := x.ListValue.GetValues()
		if inType.Kind() == reflect.Array && len(contents) != inType.Len() {
			err = fmt.Errorf("expected %d elements, got %d", inType.Len(), len(contents))
			return
		}
		if inType.Kind() == reflect.Slice {
			returns = reflect.MakeSlice(inType, len(contents), len(contents))
		}
		var element reflect.Value
		for i, content := range contents {
			if element, err = unmarshalValue(p, content, inType.Elem()); err != nil {
				return
			}
			returns.Index(i).Set(element)
		}
	case reflect.Map:
		x, ok := input.Kind.(*structpb.Value_StructValue)
		if !ok || inType.Key().Kind() != reflect.String {
			returns = reflect.Value{}
			break
		}
		returns = reflect.MakeMapWithSize(inType, len(x.StructValue.GetFields()))
		var value reflect.Value
		for key, v := range x.StructValue.GetFields() {
			if value, err = unmarshalValue(p, v, inType.Elem()); err != nil {
				return
			}
			returns.SetMapIndex(reflect.ValueOf(key).Convert(inType.Key()), value)
		}
	case reflect.Interface:
		if v := input.AsInterface(); v != nil && reflect.TypeOf(v).AssignableTo(inType) {
			returns = reflect.ValueOf(v)
		} else {
			returns = reflect.Value{}
		}
	default:
		returns = reflect.Value{}
	}
	if !returns.IsValid() {
		err = fmt.Errorf("unknown value, expected type: %s, input type: %T", inType, input.Kind)
	}
	return
}

func unmarshalColor(p *colorstring.Parser, input *structpb.Value) (colorstring.Color, error) {
	switch x := input.Kind.(type) {
	case *structpb.Value_StringValue:
		if p != nil {
			return p.Parse(x.StringValue)
		}
		return colorstring.Parse(x.StringValue)
	case *structpb.Value_StructValue:
		fields := x.StructValue.GetFields()
		switch typ := fields["type"].GetStringValue(); typ {
		case colorTypeRGB:
			return colorstring.FromRGBA([4]float64{
				fields["red"].GetNumberValue(),
				fields["green"].GetNumberValue(),
				fields["blue"].GetNumberValue(),
				alphaField(fields),
			}), nil
		case colorTypeHSL:
			return colorstring.FromHSLA([4]float64{
				fields["hue"].GetNumberValue(),
				fields["saturation"].GetNumberValue(),
				fields["lightness"].GetNumberValue(),
				alphaField(fields),
			}), nil
		default:
			return colorstring.Color{}, fmt.Errorf("unknown color type %q", typ)
		}
	}
	return colorstring.Color{}, fmt.Errorf("unknown value, expected a color, input type: %T", input.Kind)
}

// alphaField returns the alpha field, defaulting to opaque.
func alphaField(fields map[string]*structpb.Value) float64 {
	if a, ok := fields["alpha"]; ok {
		return a.GetNumberValue()
	}
	return 1
}
