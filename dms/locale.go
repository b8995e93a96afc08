package dms

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale holds the thousands and decimal separators of a written number.
type Locale struct {
	Thousands string `json:"thousands"`
	Decimal   string `json:"decimal"`
}

// Canonical is the notation Parse and Format work with.
var Canonical = Locale{Thousands: ",", Decimal: "."}

// placeholder keeps thousands separators apart while decimals are swapped.
const placeholder = "⁜"

var canonicalThousands = regexp.MustCompile(`,([0-9])`)

// LocaleFor derives the separators CLDR uses for tag, by rendering a known
// number and reading back the non-digit runs.
func LocaleFor(tag language.Tag) Locale {
	p := message.NewPrinter(tag)
	s := p.Sprint(number.Decimal(123456.789, number.MaxFractionDigits(3)))

	var runs []string
	var run strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if run.Len() > 0 {
				runs = append(runs, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}
	if run.Len() > 0 {
		runs = append(runs, run.String())
	}

	switch len(runs) {
	case 0:
		return Canonical
	case 1:
		return Locale{Decimal: runs[0]}
	}
	return Locale{Thousands: runs[0], Decimal: runs[len(runs)-1]}
}

// FromLocale rewrites the codec locale separators of s into canonical ones,
// e.g. "51,5" => "51.5" for a German codec.
func (c Codec) FromLocale(s string) string {
	l := c.locale
	if l == Canonical {
		return s
	}
	if l.Thousands != "" {
		s = strings.ReplaceAll(s, l.Thousands, placeholder)
	}
	s = strings.ReplaceAll(s, l.Decimal, ".")
	return strings.ReplaceAll(s, placeholder, ",")
}

// ToLocale rewrites canonical separators of s into the codec locale ones.
func (c Codec) ToLocale(s string) string {
	l := c.locale
	if l == Canonical {
		return s
	}
	s = canonicalThousands.ReplaceAllString(s, placeholder+"${1}")
	s = strings.ReplaceAll(s, ".", l.Decimal)
	return strings.ReplaceAll(s, placeholder, l.Thousands)
}
