// Copyright 2026 Bjørn Erik Pedersen
// SPDX-License-Identifier: MIT

// Package colortesting holds color test vectors shared by the tests of
// several packages.
package colortesting

// Vector is a color string and what it is expected to parse and format into.
// Nil slices and empty strings are not checked.
type Vector struct {
	Input   string
	Dialect string

	RGBA []float64
	HSLA []float64

	RGBString string
	HSLString string
	HexString string
}

var (
	white         = []float64{255, 255, 255, 1}
	whiteHSL      = []float64{0, 0, 100, 1}
	whiteHalf     = []float64{255, 255, 255, 0.5}
	whiteHalfHSL  = []float64{0, 0, 100, 0.5}
	whiteRGB      = "rgb(255, 255, 255)"
	whiteHalfRGB  = "rgba(255, 255, 255, 0.5)"
	whiteHSLStr   = "hsl(0, 0%, 100%)"
	whiteHalfHSLS = "hsla(0, 0%, 100%, 0.5)"
)

// Vectors are valid color strings in all dialects.
var Vectors = []Vector{
	{Input: "blue", Dialect: "named", RGBA: []float64{0, 0, 255, 1}, HSLA: []float64{240, 100, 50, 1}, RGBString: "rgb(0, 0, 255)", HSLString: "hsl(240, 100%, 50%)", HexString: "#0000ff"},
	{Input: "red", Dialect: "named", RGBA: []float64{255, 0, 0, 1}, HSLA: []float64{0, 100, 50, 1}, HexString: "#ff0000"},
	{Input: "rebeccapurple", Dialect: "named", RGBA: []float64{102, 51, 153, 1}, HexString: "#663399"},

	{Input: "#ffffff", Dialect: "hex", RGBA: white, HSLA: whiteHSL, RGBString: whiteRGB, HSLString: whiteHSLStr, HexString: "#ffffff"},
	{Input: "#ffffffff", Dialect: "hex", RGBA: white, HSLA: whiteHSL, HexString: "#ffffff"},
	{Input: "#ffffff7f", Dialect: "hex", RGBA: whiteHalf, HSLA: whiteHalfHSL, RGBString: whiteHalfRGB, HSLString: whiteHalfHSLS, HexString: "#ffffff7f"},
	{Input: "#ffffff00", Dialect: "hex", RGBA: []float64{255, 255, 255, 0}, RGBString: "rgba(255, 255, 255, 0)", HexString: "#ffffff00"},
	{Input: "#FF8000", Dialect: "hex", RGBA: []float64{255, 128, 0, 1}, HexString: "#ff8000"},

	{Input: "#fff", Dialect: "short-hex", RGBA: white, HSLA: whiteHSL, HexString: "#ffffff"},
	{Input: "#ffff", Dialect: "short-hex", RGBA: white, HSLA: whiteHSL, HexString: "#ffffff"},
	{Input: "#fff0", Dialect: "short-hex", RGBA: []float64{255, 255, 255, 0}, RGBString: "rgba(255, 255, 255, 0)"},
	{Input: "#0f08", Dialect: "short-hex", RGBA: []float64{0, 255, 0, 0.5}, HexString: "#00ff007f"},

	{Input: "rgb(255, 255, 255)", Dialect: "rgb", RGBA: white, HSLA: whiteHSL},
	{Input: "rgba(255, 255, 255, .5)", Dialect: "rgb", RGBA: whiteHalf, HSLA: whiteHalfHSL},
	{Input: "rgba(0, 0, 0, 0)", Dialect: "rgb", RGBA: []float64{0, 0, 0, 0}, HSLA: []float64{0, 0, 0, 0}, RGBString: "rgba(0, 0, 0, 0)", HSLString: "hsla(0, 0%, 0%, 0)", HexString: "#00000000"},
	{Input: "rgba(3, 2, 1, 0)", Dialect: "rgb", RGBA: []float64{3, 2, 1, 0}, HexString: "#03020100"},
	{Input: "rgba(255, 0, 0, 50%)", Dialect: "rgb", RGBA: []float64{255, 0, 0, 0.5}, HexString: "#ff00007f"},
	{Input: "rgb(300, 0, 0)", Dialect: "rgb", RGBA: []float64{255, 0, 0, 1}},
	{Input: "rgba( 1 ,2,  3 , 1 )", Dialect: "rgb", RGBA: []float64{1, 2, 3, 1}, RGBString: "rgb(1, 2, 3)"},

	{Input: "rgb(100%, 100%, 100%)", Dialect: "rgb-percent", RGBA: white, HSLA: whiteHSL},
	{Input: "rgba(100%, 100%, 100%, .5)", Dialect: "rgb-percent", RGBA: whiteHalf, HexString: "#ffffff7f"},
	{Input: "rgb(50%, 50%, 50%)", Dialect: "rgb-percent", RGBA: []float64{127, 127, 127, 1}},

	{Input: "rgb(255 255 255)", Dialect: "rgb-space", RGBA: white},
	{Input: "rgba(255 255 255 / .5)", Dialect: "rgb-space", RGBA: whiteHalf, HSLA: whiteHalfHSL},
	{Input: "rgb(0 128 255 / 0)", Dialect: "rgb-space", RGBA: []float64{0, 128, 255, 0}},

	{Input: "rgb(100% 100% 100%)", Dialect: "rgb-percent-space", RGBA: white, HSLA: whiteHSL},
	{Input: "rgba(100% 100% 100% / .5)", Dialect: "rgb-percent-space", RGBA: whiteHalf, HexString: "#ffffff7f"},

	{Input: "hsl(0, 0%, 100%)", Dialect: "hsl", RGBA: white, HSLA: whiteHSL},
	{Input: "hsla(0, 0%, 100%, .5)", Dialect: "hsl", RGBA: whiteHalf, HSLA: whiteHalfHSL},
	{Input: "hsl(120, 100%, 50%)", Dialect: "hsl", RGBA: []float64{0, 255, 0, 1}, HSLA: []float64{120, 100, 50, 1}, HSLString: "hsl(120, 100%, 50%)"},
	{Input: "hsl(240deg, 100%, 50%)", Dialect: "hsl", RGBA: []float64{0, 0, 255, 1}},
	{Input: "hsl(.5turn, 100%, 50%)", Dialect: "hsl", RGBA: []float64{0, 255, 255, 1}},
	{Input: "hsl(200grad, 100%, 50%)", Dialect: "hsl", RGBA: []float64{0, 255, 255, 1}},
	{Input: "hsl(1rad, 100%, 50%)", Dialect: "hsl", RGBA: []float64{255, 243, 0, 1}},
	{Input: "hsla(0, 0%, 100%, 50%)", Dialect: "hsl", RGBA: whiteHalf},

	{Input: "hsl(120 100% 50%)", Dialect: "hsl-space", RGBA: []float64{0, 255, 0, 1}},
	{Input: "hsla(0 0% 100% / .5)", Dialect: "hsl-space", RGBA: whiteHalf, HexString: "#ffffff7f"},
}

// Invalid are strings no dialect accepts.
var Invalid = []string{
	"nonsense",
	"",
	"Blue",
	" blue",
	"#ff",
	"#fffff",
	"#fffffffff",
	"#ggg",
	"#fff\n",
	"blue\n",
	"rgb(1, 2)",
	"rgb(1.5, 2, 3)",
	"rgb(1 2 3, .5)",
	"rgb(1, 2, 3 / .5)",
	"rgb(10%, 2, 3)",
	"rgba(1, 2, 3, 2)",
	"hsl(1, 2, 3)",
	"hsl(1.5, 2%, 3%)",
	"hsl(1foo, 2%, 3%)",
	// Alpha 1 is only accepted in the rgb dialects.
	"hsla(0, 0%, 100%, 1)",
}
