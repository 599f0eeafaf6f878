// Package colorstring parses and formats CSS color strings.
//
// Named colors, hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba() and
// hsl()/hsla() in both the comma and the space separated syntax are
// recognized. Parsed colors are normalized into an immutable RGBA Color
// which can be formatted back into rgb, hsl and hex notation.
//
// The package level functions use a default Parser and are safe for
// concurrent use, as is any Parser.
package colorstring

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned from Parse when the text is not a recognized color.
var ErrNoMatch = errors.New("not a recognized color")

var defaultParser = mustNewParser()

// Parser parses color strings.
// Create one with NewParser.
type Parser struct {
	opts     Options
	matchers []matcher
}

// NewParser creates a new Parser with the given options.
func NewParser(opts ...Option) (*Parser, error) {
	var options Options
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return nil, err
		}
	}
	if err := options.init(); err != nil {
		return nil, err
	}

	p := &Parser{opts: options}
	for _, d := range options.Dialects {
		p.matchers = append(p.matchers, newMatcher(d, options))
	}

	return p, nil
}

func mustNewParser(opts ...Option) *Parser {
	p, err := NewParser(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// FromString parses text into a Color.
// The boolean is false if text is not a recognized color.
func FromString(text string) (Color, bool) {
	return defaultParser.FromString(text)
}

// Parse parses text into a Color.
// If text is not a recognized color, the error returned wraps ErrNoMatch.
func Parse(text string) (Color, error) {
	return defaultParser.Parse(text)
}

// ParseDialect is like Parse, but also returns the matched Dialect.
func ParseDialect(text string) (Color, Dialect, error) {
	return defaultParser.ParseDialect(text)
}

// Detect returns the first Dialect that matches text, or DialectNone.
func Detect(text string) Dialect {
	return defaultParser.Detect(text)
}

// FromString parses text into a Color.
// The boolean is false if text is not a recognized color.
func (p *Parser) FromString(text string) (Color, bool) {
	c, _, err := p.ParseDialect(text)
	return c, err == nil
}

// Parse parses text into a Color.
// If text is not a recognized color, the error returned wraps ErrNoMatch.
func (p *Parser) Parse(text string) (Color, error) {
	c, _, err := p.ParseDialect(text)
	return c, err
}

// ParseDialect is like Parse, but also returns the matched Dialect.
func (p *Parser) ParseDialect(text string) (Color, Dialect, error) {
	m, err := p.match(text)
	if err != nil {
		return Color{}, DialectNone, err
	}
	p.debugf(m, "matched")
	c, err := dialectParsers[m.dialect](p, m)
	if err != nil {
		return Color{}, DialectNone, fmt.Errorf("%q: %s: %w", text, m.dialect, err)
	}
	return c, m.dialect, nil
}

// Detect returns the first Dialect that matches text, or DialectNone.
func (p *Parser) Detect(text string) Dialect {
	m, err := p.match(text)
	if err != nil {
		return DialectNone
	}
	return m.dialect
}

func (p *Parser) match(text string) (match, error) {
	for _, matcher := range p.matchers {
		m, ok, err := matcher.match(p, text)
		if err != nil {
			return match{}, fmt.Errorf("%q: %s: %w", text, matcher.dialect, err)
		}
		if ok {
			return m, nil
		}
	}
	return match{}, fmt.Errorf("%w: %q", ErrNoMatch, text)
}

func (p *Parser) debugf(m match, format string, args ...any) {
	p.log(LogEventTypeDebug, m, format, args...)
}

func (p *Parser) warnf(m match, format string, args ...any) {
	p.log(LogEventTypeWarning, m, format, args...)
}

func (p *Parser) log(typ LogEventType, m match, format string, args ...any) {
	if p.opts.LogEventHandler == nil {
		return
	}
	p.opts.LogEventHandler(LogEvent{
		Type:    typ,
		Message: fmt.Sprintf("%q:%s: %s", m.text, m.dialect, fmt.Sprintf(format, args...)),
	})
}
