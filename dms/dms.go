// Package dms parses and formats angles written in degrees, minutes and
// seconds, and converts between locale and canonical number separators.
package dms

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAngle reports text or a number that is not a usable angle.
	ErrInvalidAngle = errors.New("invalid angle")
	// ErrInvalidFormat reports an unknown style or compass precision.
	ErrInvalidFormat = errors.New("invalid format")
)

// Style selects the components rendered by Format.
type Style string

const (
	Decimal          Style = "n"
	Degrees          Style = "d"
	DegMinutes       Style = "dm"
	DegMinutesSecond Style = "dms"
)

// DefaultPlaces asks Format for the style's own number of decimal places.
const DefaultPlaces = -1

// NarrowNoBreakSpace is the default separator between components.
const NarrowNoBreakSpace = "\u202f"

// ParseStyle accepts the short and long style names.
func ParseStyle(s string) (Style, error) {
	switch s {
	case "n":
		return Decimal, nil
	case "d", "deg":
		return Degrees, nil
	case "dm", "deg+min":
		return DegMinutes, nil
	case "dms", "deg+min+sec":
		return DegMinutesSecond, nil
	}
	return Degrees, fmt.Errorf("%w: style '%s'", ErrInvalidFormat, s)
}

// places returns the default number of decimal places of a style. Unknown
// styles fall back to degrees.
func (s Style) places() (Style, int) {
	switch s {
	case Decimal:
		return s, 4
	case Degrees, "deg":
		return Degrees, 4
	case DegMinutes, "deg+min":
		return DegMinutes, 2
	case DegMinutesSecond, "deg+min+sec":
		return DegMinutesSecond, 0
	}
	return Degrees, 4
}

// Codec formats angles with a fixed component separator and reads numbers
// written with a fixed locale. A Codec is immutable once built and may be
// shared between goroutines.
type Codec struct {
	separator string
	locale    Locale
}

type Option func(*Codec)

// WithSeparator sets the text placed between degrees, minutes, seconds and
// the compass letter.
func WithSeparator(sep string) Option {
	return func(c *Codec) {
		c.separator = sep
	}
}

// WithLocale sets the separators used by FromLocale and ToLocale.
func WithLocale(l Locale) Option {
	return func(c *Codec) {
		c.locale = l
	}
}

func New(opts ...Option) Codec {
	c := Codec{separator: NarrowNoBreakSpace, locale: Canonical}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Codec) Separator() string {
	return c.separator
}

func (c Codec) Locale() Locale {
	return c.locale
}

var std = New()

// Default returns the codec used by the package level functions: narrow
// no-break space separator, canonical separators.
func Default() Codec {
	return std
}

func Format(deg float64, style Style, dp int) string {
	return std.Format(deg, style, dp)
}

func FormatLat(deg float64, style Style, dp int) string {
	return std.FormatLat(deg, style, dp)
}

func FormatLon(deg float64, style Style, dp int) string {
	return std.FormatLon(deg, style, dp)
}

func FormatBearing(deg float64, style Style, dp int) string {
	return std.FormatBearing(deg, style, dp)
}

func FromLocale(s string) string {
	return std.FromLocale(s)
}

func ToLocale(s string) string {
	return std.ToLocale(s)
}
