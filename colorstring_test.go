package colorstring

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bep/colorstring/internal/colortesting"
)

func TestFromStringVectors(t *testing.T) {
	c := qt.New(t)

	for _, test := range colortesting.Vectors {
		test := test
		c.Run(test.Input, func(c *qt.C) {
			col, dialect, err := ParseDialect(test.Input)
			c.Assert(err, qt.IsNil)
			c.Assert(dialect.String(), qt.Equals, test.Dialect)
			if test.RGBA != nil {
				v := col.RGBAArray()
				c.Assert(v[:], qt.DeepEquals, test.RGBA)
			}
			if test.HSLA != nil {
				v := col.HSLAArray()
				c.Assert(v[:], qt.DeepEquals, test.HSLA)
			}
			if test.RGBString != "" {
				c.Assert(col.RGBString(), qt.Equals, test.RGBString)
			}
			if test.HSLString != "" {
				c.Assert(col.HSLString(), qt.Equals, test.HSLString)
			}
			if test.HexString != "" {
				c.Assert(col.HexString(), qt.Equals, test.HexString)
			}
		})
	}
}

func TestFromStringInvalid(t *testing.T) {
	c := qt.New(t)

	for _, s := range colortesting.Invalid {
		col, ok := FromString(s)
		c.Assert(ok, qt.IsFalse, qt.Commentf("%q", s))
		c.Assert(col, qt.Equals, Color{})
		c.Assert(Detect(s), qt.Equals, DialectNone)

		_, err := Parse(s)
		c.Assert(err, qt.ErrorIs, ErrNoMatch)
	}

	_, err := Parse("nonsense")
	c.Assert(err, qt.ErrorMatches, `not a recognized color: "nonsense"`)
}

func TestParseNumbersTooLargeForFloat64(t *testing.T) {
	c := qt.New(t)

	huge := strings.Repeat("9", 400)

	for _, test := range []struct {
		input string
		rgba  [4]float64
	}{
		{"rgb(" + huge + ", 0, 0)", [4]float64{255, 0, 0, 1}},
		{"rgb(" + huge + "%, 0%, 0%)", [4]float64{255, 0, 0, 1}},
		{"rgba(1, 2, 3, " + huge + "%)", [4]float64{1, 2, 3, 1}},
		{"hsl(0, " + huge + "%, 50%)", [4]float64{255, 0, 0, 1}},
		{"hsl(0, 0%, " + huge + "%)", [4]float64{255, 255, 255, 1}},
		{"hsl(" + huge + ", 100%, 50%)", [4]float64{255, 0, 0, 1}},
		{"hsla(0, 0%, 100%, " + huge + "%)", [4]float64{255, 255, 255, 1}},
	} {
		col, err := Parse(test.input)
		c.Assert(err, qt.IsNil, qt.Commentf("%s", test.input))
		c.Assert(col.RGBAArray(), qt.Equals, test.rgba, qt.Commentf("%s", test.input))
	}
}

func TestScenarios(t *testing.T) {
	c := qt.New(t)

	mustParse := func(s string) Color {
		col, ok := FromString(s)
		c.Assert(ok, qt.IsTrue, qt.Commentf("%q", s))
		return col
	}

	c.Assert(mustParse("rgba(100%,100%,100%,.5)").HexString(), qt.Equals, "#ffffff7f")
	c.Assert(mustParse("#ffffff7f").RGBString(), qt.Equals, "rgba(255, 255, 255, 0.5)")
	c.Assert(mustParse("hsla(0,0%,100%,.5)").RGBAArray(), qt.Equals, [4]float64{255, 255, 255, 0.5})
	c.Assert(mustParse("#ffffff7f").HSLString(), qt.Equals, "hsla(0, 0%, 100%, 0.5)")
	c.Assert(mustParse("#ffffff").HSLString(), qt.Equals, "hsl(0, 0%, 100%)")
	c.Assert(mustParse("blue").RGBAArray(), qt.Equals, [4]float64{0, 0, 255, 1})
	c.Assert(mustParse("blue").HSLAArray(), qt.Equals, [4]float64{240, 100, 50, 1})
	c.Assert(mustParse("blue").HexString(), qt.Equals, "#0000ff")

	// Dialect equivalence.
	for _, s := range []string{"rgb(255,255,255)", "rgb(100%,100%,100%)", "#ffffff", "white"} {
		c.Assert(mustParse(s).RGBAArray(), qt.Equals, [4]float64{255, 255, 255, 1})
	}
}

func TestFactories(t *testing.T) {
	c := qt.New(t)

	c.Assert(FromRGB([3]float64{255, 255, 255}).RGBString(), qt.Equals, "rgb(255, 255, 255)")
	c.Assert(FromRGBA([4]float64{255, 255, 255, 1}).RGBString(), qt.Equals, "rgb(255, 255, 255)")
	c.Assert(FromRGBA([4]float64{255, 255, 255, 0.5}).RGBString(), qt.Equals, "rgba(255, 255, 255, 0.5)")
	c.Assert(FromRGBA([4]float64{255, 255, 255, 1}).HSLString(), qt.Equals, "hsl(0, 0%, 100%)")
	c.Assert(FromRGBA([4]float64{255, 255, 255, 0.5}).HSLString(), qt.Equals, "hsla(0, 0%, 100%, 0.5)")
	c.Assert(FromRGBA([4]float64{255, 255, 255, 1}).HexString(), qt.Equals, "#ffffff")
	c.Assert(FromRGBA([4]float64{255, 255, 255, 0.5}).HexString(), qt.Equals, "#ffffff7f")
	c.Assert(FromRGBA([4]float64{0, 0, 0, 0}).RGBAArray(), qt.Equals, [4]float64{0, 0, 0, 0})
	c.Assert(FromRGBA([4]float64{3, 2, 1, 0}).RGBAArray(), qt.Equals, [4]float64{3, 2, 1, 0})

	c.Assert(FromHSL([3]float64{0, 0, 100}).HSLString(), qt.Equals, "hsl(0, 0%, 100%)")
	c.Assert(FromHSLA([4]float64{0, 0, 100, 1}).RGBString(), qt.Equals, "rgb(255, 255, 255)")
	c.Assert(FromHSLA([4]float64{0, 0, 100, 0.5}).RGBString(), qt.Equals, "rgba(255, 255, 255, 0.5)")
	c.Assert(FromHSLA([4]float64{0, 0, 100, 1}).HSLString(), qt.Equals, "hsl(0, 0%, 100%)")
	c.Assert(FromHSLA([4]float64{0, 0, 100, 0.5}).HSLString(), qt.Equals, "hsla(0, 0%, 100%, 0.5)")
	c.Assert(FromHSLA([4]float64{0, 0, 100, 1}).HexString(), qt.Equals, "#ffffff")
	c.Assert(FromHSLA([4]float64{0, 0, 100, 0.5}).HexString(), qt.Equals, "#ffffff7f")
}

func TestClamp(t *testing.T) {
	c := qt.New(t)

	c.Assert(FromRGBA([4]float64{-10, 300, 12.9, 2}).RGBAArray(), qt.Equals, [4]float64{0, 255, 12, 1})
	c.Assert(FromRGBA([4]float64{1, 2, 3, -0.5}).RGBAArray(), qt.Equals, [4]float64{1, 2, 3, 0})
	c.Assert(FromRGBA([4]float64{-0.5, 254.999, 1, 1}).RGBAArray(), qt.Equals, [4]float64{0, 254, 1, 1})
}

func TestRGBARoundTrip(t *testing.T) {
	c := qt.New(t)

	for r := 0; r <= 255; r += 3 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 7 {
				for _, a := range []float64{0, 0.25, 0.5, 1} {
					v := [4]float64{float64(r), float64(g), float64(b), a}
					if got := FromRGBA(v).RGBAArray(); got != v {
						c.Fatalf("got %v, want %v", got, v)
					}
				}
			}
		}
	}
}

func TestHSLRoundTrip(t *testing.T) {
	c := qt.New(t)

	approx := qt.CmpEquals(cmpopts.EquateApprox(0, 1e-9))

	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				h, s, l := rgbToHSL(uint8(r), uint8(g), uint8(b))
				if r == g && g == b {
					c.Assert(s, qt.Equals, 0.0)
					c.Assert(h, qt.Equals, 0.0)
				}
				rr, gg, bb := hslToRGB(h, s, l)
				c.Assert([]float64{rr, gg, bb}, approx, []float64{float64(r), float64(g), float64(b)}, qt.Commentf("rgb(%d, %d, %d)", r, g, b))
			}
		}
	}

	// Construction truncates, so allow one step.
	col := FromRGB([3]float64{17, 200, 99})
	again := FromHSLA(col.HSLAArray())
	c.Assert(again.RGBAArray(), qt.CmpEquals(cmpopts.EquateApprox(0, 1)), col.RGBAArray())
}

func TestRGBToHSL(t *testing.T) {
	c := qt.New(t)

	for _, test := range []struct {
		rgb    [3]uint8
		expect [3]float64
	}{
		{[3]uint8{255, 0, 0}, [3]float64{0, 100, 50}},
		{[3]uint8{0, 255, 0}, [3]float64{120, 100, 50}},
		{[3]uint8{0, 0, 255}, [3]float64{240, 100, 50}},
		{[3]uint8{255, 255, 0}, [3]float64{60, 100, 50}},
		{[3]uint8{0, 255, 255}, [3]float64{180, 100, 50}},
		{[3]uint8{0, 0, 0}, [3]float64{0, 0, 0}},
		{[3]uint8{255, 255, 255}, [3]float64{0, 0, 100}},
	} {
		h, s, l := rgbToHSL(test.rgb[0], test.rgb[1], test.rgb[2])
		c.Assert([3]float64{h, s, l}, qt.Equals, test.expect, qt.Commentf("%v", test.rgb))
	}

	// Red wins the tie with blue.
	h, _, _ := rgbToHSL(255, 0, 255)
	c.Assert(h, qt.Equals, -60.0)

	// Not normalized.
	h, _, _ = rgbToHSL(255, 0, 1)
	c.Assert(h < 0, qt.IsTrue)
	c.Assert(FromRGB([3]float64{255, 0, 1}).HSLString(), qt.Matches, `hsl\(-0\.2352941\d*, 100%, 50%\)`)
}

func TestHSLToRGBWrapsHue(t *testing.T) {
	c := qt.New(t)

	c.Assert(FromHSL([3]float64{480, 100, 50}).RGBAArray(), qt.Equals, [4]float64{0, 255, 0, 1})
	c.Assert(FromHSL([3]float64{-240, 100, 50}).RGBAArray(), qt.Equals, [4]float64{0, 255, 0, 1})
	c.Assert(FromHSL([3]float64{360, 100, 50}).RGBAArray(), qt.Equals, [4]float64{255, 0, 0, 1})
}

func TestOpacityFormatting(t *testing.T) {
	c := qt.New(t)

	opaque := FromRGB([3]float64{1, 2, 3})
	c.Assert(opaque.IsOpaque(), qt.IsTrue)
	c.Assert(strings.HasPrefix(opaque.RGBString(), "rgb("), qt.IsTrue)
	c.Assert(strings.HasPrefix(opaque.HSLString(), "hsl("), qt.IsTrue)
	c.Assert(opaque.HexString(), qt.HasLen, 7)

	for _, a := range []float64{0, 0.1, 0.999} {
		col := FromRGBA([4]float64{1, 2, 3, a})
		c.Assert(col.IsOpaque(), qt.IsFalse)
		c.Assert(strings.HasPrefix(col.RGBString(), "rgba("), qt.IsTrue)
		c.Assert(strings.HasPrefix(col.HSLString(), "hsla("), qt.IsTrue)
		c.Assert(col.HexString(), qt.HasLen, 9)
	}

	// The alpha byte is truncated.
	c.Assert(FromRGBA([4]float64{0, 0, 0, 0.999}).HexString(), qt.Equals, "#000000fe")
	c.Assert(FromRGBA([4]float64{0, 0, 0, 0.1}).RGBString(), qt.Equals, "rgba(0, 0, 0, 0.1)")
}

func TestImageColor(t *testing.T) {
	c := qt.New(t)

	var _ color.Color = Color{}

	col := FromRGBA([4]float64{10, 20, 30, 1})
	c.Assert(col.NRGBA(), qt.Equals, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	c.Assert(FromColor(col), qt.Equals, col)
	c.Assert(FromColor(color.RGBA{R: 255, A: 255}).HexString(), qt.Equals, "#ff0000")
	c.Assert(FromColor(color.Transparent).RGBAArray(), qt.Equals, [4]float64{0, 0, 0, 0})
	c.Assert(col.R(), qt.Equals, uint8(10))
	c.Assert(col.G(), qt.Equals, uint8(20))
	c.Assert(col.B(), qt.Equals, uint8(30))
	c.Assert(col.A(), qt.Equals, 1.0)
	c.Assert(fmt.Sprint(col), qt.Equals, "rgb(10, 20, 30)")
}

func TestToPrecision1(t *testing.T) {
	c := qt.New(t)

	c.Assert(toPrecision1(127.0/255), qt.Equals, 0.5)
	c.Assert(toPrecision1(1), qt.Equals, 1.0)
	c.Assert(toPrecision1(0), qt.Equals, 0.0)
	c.Assert(toPrecision1(1.0/255), qt.Equals, 0.004)
	c.Assert(toPrecision1(64.0/255), qt.Equals, 0.3)
}

func TestFormatNumber(t *testing.T) {
	c := qt.New(t)

	c.Assert(FormatNumber(0.5), qt.Equals, "0.5")
	c.Assert(FormatNumber(240), qt.Equals, "240")
	c.Assert(FormatNumber(math.Copysign(0, -1)), qt.Equals, "0")
	c.Assert(FormatNumber(1.0/3), qt.Equals, "0.3333333333333333")
	c.Assert(FormatNumber(0.000001), qt.Equals, "0.000001")
	c.Assert(FormatNumber(0.0000001), qt.Equals, "1e-7")
	c.Assert(FormatNumber(-1.5e-7), qt.Equals, "-1.5e-7")
	c.Assert(FormatNumber(123e18), qt.Equals, "123000000000000000000")
	c.Assert(FormatNumber(1e21), qt.Equals, "1e+21")
	c.Assert(FormatNumber(math.Inf(1)), qt.Equals, "Infinity")
	c.Assert(FormatNumber(math.NaN()), qt.Equals, "NaN")

	c.Assert(FromRGBA([4]float64{1, 2, 3, 1e-7}).RGBString(), qt.Equals, "rgba(1, 2, 3, 1e-7)")
}

func TestParserOptions(t *testing.T) {
	c := qt.New(t)

	p, err := NewParser(
		WithNamedColors(NamedColorsMap{"brand": {1, 2, 3}}),
		WithDialects(DialectNamed, DialectHex),
	)
	c.Assert(err, qt.IsNil)

	col, ok := p.FromString("brand")
	c.Assert(ok, qt.IsTrue)
	c.Assert(col.HexString(), qt.Equals, "#010203")

	_, ok = p.FromString("blue")
	c.Assert(ok, qt.IsFalse)
	_, ok = p.FromString("#fff")
	c.Assert(ok, qt.IsFalse)
	_, ok = p.FromString("#ffffff")
	c.Assert(ok, qt.IsTrue)

	_, err = NewParser(WithDialects(DialectHex, DialectHex))
	c.Assert(err, qt.ErrorMatches, "duplicate Dialect hex")
	_, err = NewParser(WithDialects(DialectNone))
	c.Assert(err, qt.ErrorMatches, "invalid Dialect 0")
	_, err = NewParser(WithDialects())
	c.Assert(err, qt.Not(qt.IsNil))
	_, err = NewParser(WithMatchTimeout(-1))
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestParserDialectOrder(t *testing.T) {
	c := qt.New(t)

	// A name that looks like hex is still a name when named colors come first.
	p, err := NewParser(WithNamedColors(NamedColorsMap{"#fff": {1, 1, 1}}))
	c.Assert(err, qt.IsNil)
	col, d, err := p.ParseDialect("#fff")
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.Equals, DialectNamed)
	c.Assert(col.HexString(), qt.Equals, "#010101")

	p, err = NewParser(
		WithNamedColors(NamedColorsMap{"#fff": {1, 1, 1}}),
		WithDialects(DialectShortHex, DialectNamed),
	)
	c.Assert(err, qt.IsNil)
	_, d, err = p.ParseDialect("#fff")
	c.Assert(err, qt.IsNil)
	c.Assert(d, qt.Equals, DialectShortHex)
}

func TestParserAngleConverter(t *testing.T) {
	c := qt.New(t)

	errBoom := errors.New("boom")
	p, err := NewParser(WithAngleConverter(func(v float64, unit string) (float64, error) {
		if unit == "rad" {
			return 0, errBoom
		}
		return 120, nil
	}))
	c.Assert(err, qt.IsNil)

	col, ok := p.FromString("hsl(0, 100%, 50%)")
	c.Assert(ok, qt.IsTrue)
	c.Assert(col.HexString(), qt.Equals, "#00ff00")

	_, err = p.Parse("hsl(1rad, 100%, 50%)")
	c.Assert(err, qt.ErrorIs, errBoom)
	c.Assert(errors.Is(err, ErrNoMatch), qt.IsFalse)
	_, ok = p.FromString("hsl(1rad, 100%, 50%)")
	c.Assert(ok, qt.IsFalse)
}

func TestParserLogEvents(t *testing.T) {
	c := qt.New(t)

	var events []LogEvent
	p, err := NewParser(WithLogEventHandler(func(e LogEvent) {
		events = append(events, e)
	}))
	c.Assert(err, qt.IsNil)

	_, ok := p.FromString("rgb(300, 0, 0)")
	c.Assert(ok, qt.IsTrue)
	c.Assert(events, qt.HasLen, 2)
	c.Assert(events[0].Type, qt.Equals, LogEventTypeDebug)
	c.Assert(events[0].Message, qt.Equals, `"rgb(300, 0, 0)":rgb: matched`)
	c.Assert(events[1].Type, qt.Equals, LogEventTypeWarning)
	c.Assert(events[1].Message, qt.Contains, "out of range")
	c.Assert(events[1].Type.String(), qt.Equals, "WARNING")

	events = nil
	_, ok = p.FromString("nonsense")
	c.Assert(ok, qt.IsFalse)
	c.Assert(events, qt.HasLen, 0)
}

func TestCSSNamedColors(t *testing.T) {
	c := qt.New(t)

	names := CSSColorNames()
	c.Assert(len(names) > 140, qt.IsTrue)
	for _, name := range names {
		_, ok := CSSNamedColors.Lookup(name)
		c.Assert(ok, qt.IsTrue, qt.Commentf("%s", name))
		c.Assert(Detect(name), qt.Equals, DialectNamed)
	}
	v, ok := CSSNamedColors.Lookup("cornflowerblue")
	c.Assert(ok, qt.IsTrue)
	c.Assert(v, qt.Equals, [3]uint8{100, 149, 237})
}

func TestFromStringParallel(t *testing.T) {
	c := qt.New(t)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(num int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s := fmt.Sprintf("rgb(%d, %d, 0)", num, j)
				col, ok := FromString(s)
				c.Check(ok, qt.IsTrue)
				c.Check(col.RGBString(), qt.Equals, s)
				if c.Failed() {
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func BenchmarkFromString(b *testing.B) {
	inputs := []string{"blue", "#ffffff7f", "rgba(255 255 255 / .5)", "hsl(.5turn, 100%, 50%)", "nonsense"}

	b.Run("Serial", func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			for _, s := range inputs {
				FromString(s)
			}
		}
	})

	b.Run("Parallel", func(b *testing.B) {
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				for _, s := range inputs {
					FromString(s)
				}
			}
		})
	})
}
