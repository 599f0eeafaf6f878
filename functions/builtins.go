package functions

import (
	"github.com/bep/colorstring"
)

// NewBuiltinRegistry creates a registry with the built-in color functions.
// Color arguments given as strings and parse-color use p, or the default
// parser if p is nil.
//
//	parse-color($text)
//	to-hex($color)
//	to-rgb-string($color)
//	to-hsl-string($color)
//	to-hsl($color)
//	rgba-array($color)
//	hsla-array($color)
//	rgba($red, $green, $blue, $alpha)
//	hsla($hue, $saturation, $lightness, $alpha)
func NewBuiltinRegistry(p *colorstring.Parser) (*FunctionRegistry, error) {
	parse := colorstring.Parse
	if p != nil {
		parse = p.Parse
	}

	r, err := NewFunctionRegistry(map[string]any{
		"parse-color($text)": func(text string) (*RGBColor, error) {
			c, err := parse(text)
			if err != nil {
				return nil, err
			}
			return NewRGBColor(c), nil
		},
		"to-hex($color)": func(c colorstring.Color) (string, error) {
			return c.HexString(), nil
		},
		"to-rgb-string($color)": func(c colorstring.Color) (string, error) {
			return c.RGBString(), nil
		},
		"to-hsl-string($color)": func(c colorstring.Color) (string, error) {
			return c.HSLString(), nil
		},
		"to-hsl($color)": func(c colorstring.Color) (*HSLColor, error) {
			return NewHSLColor(c), nil
		},
		"rgba-array($color)": func(c colorstring.Color) ([4]float64, error) {
			return c.RGBAArray(), nil
		},
		"hsla-array($color)": func(c colorstring.Color) ([4]float64, error) {
			return c.HSLAArray(), nil
		},
		"rgba($red, $green, $blue, $alpha)": func(r, g, b, a float64) (colorstring.Color, error) {
			return colorstring.FromRGBA([4]float64{r, g, b, a}), nil
		},
		"hsla($hue, $saturation, $lightness, $alpha)": func(h, s, l, a float64) (colorstring.Color, error) {
			return colorstring.FromHSLA([4]float64{h, s, l, a}), nil
		},
	})
	if err != nil {
		return nil, err
	}
	r.parser = p
	return r, nil
}
