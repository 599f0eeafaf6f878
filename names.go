package colorstring

import (
	"sort"

	"golang.org/x/image/colornames"
)

// NamedColors looks up a color name and returns its red, green and blue
// channels.
type NamedColors interface {
	Lookup(name string) ([3]uint8, bool)
}

// NamedColorsMap is a NamedColors backed by a map.
type NamedColorsMap map[string][3]uint8

// Lookup implements NamedColors.
func (m NamedColorsMap) Lookup(name string) ([3]uint8, bool) {
	v, ok := m[name]
	return v, ok
}

// CSSNamedColors is the table of the standard CSS color keywords.
// Names are lower case and lookups are case sensitive.
var CSSNamedColors NamedColors = cssNamedColors{}

// Added in CSS Color Level 4, not part of the SVG 1.1 list.
var cssLevel4Names = NamedColorsMap{
	"rebeccapurple": {102, 51, 153},
}

type cssNamedColors struct{}

func (cssNamedColors) Lookup(name string) ([3]uint8, bool) {
	if c, ok := colornames.Map[name]; ok {
		return [3]uint8{c.R, c.G, c.B}, true
	}
	return cssLevel4Names.Lookup(name)
}

// CSSColorNames returns the sorted names in CSSNamedColors.
func CSSColorNames() []string {
	names := make([]string, 0, len(colornames.Names)+len(cssLevel4Names))
	names = append(names, colornames.Names...)
	for name := range cssLevel4Names {
		if _, found := colornames.Map[name]; !found {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
