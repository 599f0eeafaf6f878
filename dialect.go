package colorstring

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Dialect is one textual syntax for a color.
type Dialect int

const (
	// DialectNone means no dialect matched.
	DialectNone Dialect = iota

	// DialectNamed is a color keyword, e.g. blue.
	DialectNamed
	// DialectHex is #rrggbb or #rrggbbaa.
	DialectHex
	// DialectShortHex is #rgb or #rgba.
	DialectShortHex
	// DialectRGB is rgb(r, g, b[, a]) or rgba(...) with integer channels.
	DialectRGB
	// DialectRGBPercent is rgb(r%, g%, b%[, a]) or rgba(...).
	DialectRGBPercent
	// DialectRGBSpace is rgb(r g b[ / a]) or rgba(...).
	DialectRGBSpace
	// DialectRGBPercentSpace is rgb(r% g% b%[ / a]) or rgba(...).
	DialectRGBPercentSpace
	// DialectHSL is hsl(h, s%, l%[, a]) or hsla(...).
	DialectHSL
	// DialectHSLSpace is hsl(h s% l%[ / a]) or hsla(...).
	DialectHSLSpace

	dialectCount
)

// Dialects lists all dialects in the order they are tried.
var Dialects = []Dialect{
	DialectNamed,
	DialectHex,
	DialectShortHex,
	DialectRGB,
	DialectRGBPercent,
	DialectRGBSpace,
	DialectRGBPercentSpace,
	DialectHSL,
	DialectHSLSpace,
}

var dialectNames = [dialectCount]string{
	DialectNone:            "none",
	DialectNamed:           "named",
	DialectHex:             "hex",
	DialectShortHex:        "short-hex",
	DialectRGB:             "rgb",
	DialectRGBPercent:      "rgb-percent",
	DialectRGBSpace:        "rgb-space",
	DialectRGBPercentSpace: "rgb-percent-space",
	DialectHSL:             "hsl",
	DialectHSLSpace:        "hsl-space",
}

func (d Dialect) String() string {
	if d < DialectNone || d >= dialectCount {
		return "Dialect(" + strconv.Itoa(int(d)) + ")"
	}
	return dialectNames[d]
}

const (
	rgbAlpha = `(0|1|0?\.\d+|\d+%)`
	hslAlpha = `(0?\.\d+|\d+%)`
)

// Patterns use ECMAScript semantics. DialectNamed has none.
var dialectPatterns = [dialectCount]string{
	DialectHex:             `^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})?$`,
	DialectShortHex:        `^#([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])?$`,
	DialectRGB:             `^rgba?\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)(?:\s*,\s*` + rgbAlpha + `)?\s*\)$`,
	DialectRGBPercent:      `^rgba?\(\s*(\d+%)\s*,\s*(\d+%)\s*,\s*(\d+%)(?:\s*,\s*` + rgbAlpha + `)?\s*\)$`,
	DialectRGBSpace:        `^rgba?\(\s*(\d+)\s+(\d+)\s+(\d+)(?:\s*\/\s*` + rgbAlpha + `)?\s*\)$`,
	DialectRGBPercentSpace: `^rgba?\(\s*(\d+%)\s+(\d+%)\s+(\d+%)(?:\s*\/\s*` + rgbAlpha + `)?\s*\)$`,
	DialectHSL:             `^hsla?\(\s*(0?\.\d+|\d+)(deg|rad|grad|turn)?\s*,\s*(\d+)%\s*,\s*(\d+)%(?:\s*,\s*` + hslAlpha + `)?\s*\)$`,
	DialectHSLSpace:        `^hsla?\(\s*(0?\.\d+|\d+)(deg|rad|grad|turn)?\s+(\d+)%\s+(\d+)%(?:\s*\/\s*` + hslAlpha + `)?\s*\)$`,
}

// match is a successful match of one dialect.
type match struct {
	text    string
	dialect Dialect
	// The captured groups, without the full match, with unmatched
	// optional groups as empty strings.
	fields []string
}

// matcher recognizes one dialect and extracts its fields.
type matcher struct {
	dialect Dialect
	re      *regexp2.Regexp
}

func (m matcher) match(p *Parser, text string) (match, bool, error) {
	if m.re == nil {
		if _, ok := p.opts.NamedColors.Lookup(text); ok {
			return match{text: text, dialect: m.dialect, fields: []string{text}}, true, nil
		}
		return match{}, false, nil
	}
	res, err := m.re.FindStringMatch(text)
	if err != nil || res == nil {
		return match{}, false, err
	}
	// $ also matches before a trailing newline.
	if res.Index != 0 || res.Length != utf8.RuneCountInString(text) {
		return match{}, false, nil
	}
	groups := res.Groups()[1:]
	fields := make([]string, len(groups))
	for i, g := range groups {
		if len(g.Captures) > 0 {
			fields[i] = g.String()
		}
	}
	return match{text: text, dialect: m.dialect, fields: fields}, true, nil
}

func newMatcher(d Dialect, opts Options) matcher {
	m := matcher{dialect: d}
	if pattern := dialectPatterns[d]; pattern != "" {
		m.re = regexp2.MustCompile(pattern, regexp2.ECMAScript)
		if opts.MatchTimeout > 0 {
			m.re.MatchTimeout = opts.MatchTimeout
		}
	}
	return m
}

// dialectParsers converts the fields captured by a matcher into a Color.
var dialectParsers = [dialectCount]func(p *Parser, m match) (Color, error){
	DialectNamed:           parseNamed,
	DialectHex:             parseHex,
	DialectShortHex:        parseHex,
	DialectRGB:             parseRGB,
	DialectRGBPercent:      parseRGB,
	DialectRGBSpace:        parseRGB,
	DialectRGBPercentSpace: parseRGB,
	DialectHSL:             parseHSL,
	DialectHSLSpace:        parseHSL,
}

func parseNamed(p *Parser, m match) (Color, error) {
	v, _ := p.opts.NamedColors.Lookup(m.fields[0])
	return FromRGB([3]float64{float64(v[0]), float64(v[1]), float64(v[2])}), nil
}

func parseHex(p *Parser, m match) (Color, error) {
	fields := m.fields
	var v [4]float64
	for i, field := range fields[:3] {
		n, err := parseHexByte(field)
		if err != nil {
			return Color{}, err
		}
		v[i] = float64(n)
	}
	v[3] = 1
	if fields[3] != "" {
		n, err := parseHexByte(fields[3])
		if err != nil {
			return Color{}, err
		}
		v[3] = toPrecision1(float64(n) / 255)
	}
	return FromRGBA(v), nil
}

// parseHexByte parses one or two hex digits, a single digit is doubled.
func parseHexByte(s string) (uint64, error) {
	if len(s) == 1 {
		s += s
	}
	return strconv.ParseUint(s, 16, 8)
}

// toPrecision1 rounds v to one significant decimal digit,
// e.g. 0.498 becomes 0.5.
func toPrecision1(v float64) float64 {
	if v == 0 {
		return 0
	}
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'e', 0, 64), 64)
	return f
}

func parseRGB(p *Parser, m match) (Color, error) {
	fields := m.fields
	var v [4]float64
	for i, field := range fields[:3] {
		n, err := parseNumber(strings.TrimSuffix(field, "%"))
		if err != nil {
			return Color{}, err
		}
		if strings.HasSuffix(field, "%") {
			n = n * 255 / 100
		}
		if n > 255 {
			p.warnf(m, "channel %s out of range, clamped to 255", field)
		}
		v[i] = n
	}
	a, err := parseAlpha(p, m, fields[3])
	if err != nil {
		return Color{}, err
	}
	v[3] = a
	return FromRGBA(v), nil
}

func parseHSL(p *Parser, m match) (Color, error) {
	fields := m.fields
	h, err := parseNumber(fields[0])
	if err != nil {
		return Color{}, err
	}
	if math.IsInf(h, 0) {
		// No position on the circle.
		h = 0
	}
	unit := fields[1]
	if unit == "" {
		unit = "deg"
	}
	if h, err = p.opts.AngleConverter(h, unit); err != nil {
		return Color{}, err
	}
	s, err := parseNumber(fields[2])
	if err != nil {
		return Color{}, err
	}
	l, err := parseNumber(fields[3])
	if err != nil {
		return Color{}, err
	}
	if s > 100 || l > 100 {
		p.warnf(m, "saturation or lightness above 100%%")
	}
	if math.IsInf(s, 0) {
		s = 100
	}
	if math.IsInf(l, 0) {
		l = 100
	}
	a, err := parseAlpha(p, m, fields[4])
	if err != nil {
		return Color{}, err
	}
	return FromHSLA([4]float64{h, s, l, a}), nil
}

// parseNumber parses a number a pattern has already accepted. Numbers too
// large for a float64 become ±Inf and are clamped later.
func parseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return n, nil
	}
	return n, err
}

// parseAlpha parses an optional alpha field, either a number or a
// percentage. An empty field means opaque.
func parseAlpha(p *Parser, m match, field string) (float64, error) {
	if field == "" {
		return 1, nil
	}
	a, err := parseNumber(strings.TrimSuffix(field, "%"))
	if err != nil {
		return 0, err
	}
	if strings.HasSuffix(field, "%") {
		a /= 100
	}
	if a > 1 {
		p.warnf(m, "alpha %s out of range, clamped to 1", field)
	}
	return a, nil
}
