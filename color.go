package colorstring

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color is an immutable RGBA color.
// Red, green and blue are integers in [0, 255], alpha is in [0, 1].
//
// The zero value is transparent black.
type Color struct {
	r, g, b uint8
	a       float64
}

// FromRGBA creates a Color from red, green, blue and alpha values.
// The color channels are truncated towards zero and all values are
// clamped to their valid range.
func FromRGBA(v [4]float64) Color {
	return Color{
		r: channel(v[0]),
		g: channel(v[1]),
		b: channel(v[2]),
		a: alpha(v[3]),
	}
}

// FromRGB creates an opaque Color from red, green and blue values.
func FromRGB(v [3]float64) Color {
	return FromRGBA([4]float64{v[0], v[1], v[2], 1})
}

// FromHSLA creates a Color from hue (degrees), saturation and lightness
// (percentages in [0, 100]) and alpha.
func FromHSLA(v [4]float64) Color {
	r, g, b := hslToRGB(v[0], v[1], v[2])
	return FromRGBA([4]float64{r, g, b, v[3]})
}

// FromHSL creates an opaque Color from hue, saturation and lightness.
func FromHSL(v [3]float64) Color {
	return FromHSLA([4]float64{v[0], v[1], v[2], 1})
}

// FromColor converts any image/color.Color into a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{r: n.R, g: n.G, b: n.B, a: float64(n.A) / 255}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Max(math.Min(math.Trunc(v), 255), 0))
}

func alpha(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(math.Min(v, 1), 0)
}

// R returns the red channel.
func (c Color) R() uint8 { return c.r }

// G returns the green channel.
func (c Color) G() uint8 { return c.g }

// B returns the blue channel.
func (c Color) B() uint8 { return c.b }

// A returns the alpha channel.
func (c Color) A() float64 { return c.a }

// IsOpaque reports whether alpha is exactly 1.
func (c Color) IsOpaque() bool { return c.a == 1 }

// RGBAArray returns the color as [r, g, b, a].
func (c Color) RGBAArray() [4]float64 {
	return [4]float64{float64(c.r), float64(c.g), float64(c.b), c.a}
}

// HSLAArray returns the color as [h, s, l, a], with h in degrees and
// s and l as percentages.
func (c Color) HSLAArray() [4]float64 {
	h, s, l := rgbToHSL(c.r, c.g, c.b)
	return [4]float64{h, s, l, c.a}
}

// RGBString formats the color as rgb(r, g, b), or rgba(r, g, b, a)
// if the color is not opaque.
func (c Color) RGBString() string {
	if c.IsOpaque() {
		return fmt.Sprintf("rgb(%d, %d, %d)", c.r, c.g, c.b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.r, c.g, c.b, FormatNumber(c.a))
}

// HSLString formats the color as hsl(h, s%, l%), or hsla(h, s%, l%, a)
// if the color is not opaque.
func (c Color) HSLString() string {
	v := c.HSLAArray()
	h, s, l := FormatNumber(v[0]), FormatNumber(v[1]), FormatNumber(v[2])
	if c.IsOpaque() {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, s, l, FormatNumber(c.a))
}

// HexString formats the color as #rrggbb, or #rrggbbaa if the color is
// not opaque.
func (c Color) HexString() string {
	if c.IsOpaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.r, c.g, c.b, uint8(c.a*255))
}

// String is the same as RGBString.
func (c Color) String() string {
	return c.RGBString()
}

// NRGBA converts the color into a non-alpha-premultiplied image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.r, G: c.g, B: c.b, A: uint8(math.Round(c.a * 255))}
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FormatNumber prints v the way ECMAScript converts numbers to strings:
// the shortest decimal representation that round trips, switching to
// exponent notation below 1e-6 and from 1e21.
func FormatNumber(v float64) string {
	switch {
	case v == 0:
		// Avoid -0.
		return "0"
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// 1e-07 => 1e-7
	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
	return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
