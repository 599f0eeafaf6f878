package colorstring

import (
	"fmt"
	"strings"
	"time"

	"github.com/bep/colorstring/units"
)

// Options configures a Parser.
type Options struct {
	// The table used for the named color dialect.
	// If this is not set, CSSNamedColors is used.
	NamedColors NamedColors

	// Converts a hue given in one of deg, rad, grad or turn to degrees.
	// If this is not set, units.ToDegrees is used.
	AngleConverter func(value float64, unit string) (float64, error)

	// LogEventHandler will, if set, receive debug events for every
	// matched dialect and warnings for values that get clamped.
	LogEventHandler func(LogEvent)

	// The dialects to try, in priority order.
	// Default is all dialects in the order of Dialects.
	Dialects []Dialect

	// Timeout for a single pattern match.
	// Default is no timeout.
	MatchTimeout time.Duration
}

func (opts *Options) init() error {
	if opts.NamedColors == nil {
		opts.NamedColors = CSSNamedColors
	}
	if opts.AngleConverter == nil {
		opts.AngleConverter = units.ToDegrees
	}
	if opts.MatchTimeout < 0 {
		return fmt.Errorf("invalid MatchTimeout %s", opts.MatchTimeout)
	}
	if len(opts.Dialects) == 0 {
		opts.Dialects = Dialects
		return nil
	}
	seen := make(map[Dialect]bool)
	for _, d := range opts.Dialects {
		if d <= DialectNone || d >= dialectCount {
			return fmt.Errorf("invalid Dialect %d", d)
		}
		if seen[d] {
			return fmt.Errorf("duplicate Dialect %s", d)
		}
		seen[d] = true
	}
	return nil
}

// Option configures a Parser.
type Option func(*Options) error

// WithNamedColors sets the named color table.
func WithNamedColors(names NamedColors) Option {
	return func(o *Options) error {
		o.NamedColors = names
		return nil
	}
}

// WithAngleConverter sets the hue unit converter.
func WithAngleConverter(fn func(value float64, unit string) (float64, error)) Option {
	return func(o *Options) error {
		o.AngleConverter = fn
		return nil
	}
}

// WithLogEventHandler sets the handler for log events.
func WithLogEventHandler(fn func(LogEvent)) Option {
	return func(o *Options) error {
		o.LogEventHandler = fn
		return nil
	}
}

// WithDialects restricts the Parser to the given dialects, tried in the
// given order.
func WithDialects(dialects ...Dialect) Option {
	return func(o *Options) error {
		if len(dialects) == 0 {
			return fmt.Errorf("no dialects given")
		}
		o.Dialects = dialects
		return nil
	}
}

// WithMatchTimeout sets the timeout for a single pattern match.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *Options) error {
		o.MatchTimeout = d
		return nil
	}
}

// LogEvent is sent to Options.LogEventHandler.
type LogEvent struct {
	// Type is the type of log event.
	Type LogEventType

	// Message on the form text:dialect: message.
	Message string
}

// LogEventType is the type of log event.
type LogEventType int

const (
	// LogEventTypeWarning is used when a parsed value is out of range and
	// gets clamped.
	LogEventTypeWarning LogEventType = iota

	// LogEventTypeDebug is used when a dialect matches.
	LogEventTypeDebug
)

func (t LogEventType) String() string {
	switch t {
	case LogEventTypeWarning:
		return "WARNING"
	case LogEventTypeDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("LogEventType(%d)", int(t))
	}
}

// ParseDialectName will convert s into a Dialect.
// Case insensitive, returns DialectNone for unknown value.
func ParseDialectName(s string) Dialect {
	s = strings.ToLower(s)
	for _, d := range Dialects {
		if d.String() == s {
			return d
		}
	}
	return DialectNone
}
