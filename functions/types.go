package functions

import (
	"fmt"

	"github.com/bep/colorstring"
)

// RGBColor is the wire form of a color in RGB notation.
type RGBColor struct {
	Red   uint32
	Green uint32
	Blue  uint32
	Alpha float64
}

// NewRGBColor creates an RGBColor from c.
func NewRGBColor(c colorstring.Color) *RGBColor {
	return &RGBColor{
		Red:   uint32(c.R()),
		Green: uint32(c.G()),
		Blue:  uint32(c.B()),
		Alpha: c.A(),
	}
}

// Color converts c into a colorstring.Color, clamping out of range values.
func (c *RGBColor) Color() colorstring.Color {
	return colorstring.FromRGBA([4]float64{float64(c.Red), float64(c.Green), float64(c.Blue), c.Alpha})
}

func (c *RGBColor) String() string {
	return c.Color().RGBString()
}

// HSLColor is the wire form of a color in HSL notation.
// Saturation and Lightness are percentages.
type HSLColor struct{ Hue, Saturation, Lightness, Alpha float64 }

// NewHSLColor creates an HSLColor from c.
func NewHSLColor(c colorstring.Color) *HSLColor {
	v := c.HSLAArray()
	return &HSLColor{Hue: v[0], Saturation: v[1], Lightness: v[2], Alpha: v[3]}
}

// Color converts c into a colorstring.Color.
func (c *HSLColor) Color() colorstring.Color {
	return colorstring.FromHSLA([4]float64{c.Hue, c.Saturation, c.Lightness, c.Alpha})
}

func (c *HSLColor) String() string {
	h, sat, l := colorstring.FormatNumber(c.Hue), colorstring.FormatNumber(c.Saturation), colorstring.FormatNumber(c.Lightness)
	if c.Alpha == 1 {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, sat, l)
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, sat, l, colorstring.FormatNumber(c.Alpha))
}

// Color kinds in the "type" field of a marshaled color.
const (
	colorTypeRGB = "rgb"
	colorTypeHSL = "hsl"
)
