package dms

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/a-bouts/geodesy/angle"
)

const (
	degree      = "°"
	prime       = "′"
	doublePrime = "″"
)

// NotAvailable is rendered by the compass forms when there is nothing to show.
const NotAvailable = "–"

func fixed(v float64, dp int) string {
	return strconv.FormatFloat(v, 'f', dp, 64)
}

func value(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

// Format renders deg as unsigned degrees, degrees+minutes or
// degrees+minutes+seconds, left padded to three digits of degrees and two of
// minutes and seconds. Decimal renders the signed value without any glyph.
//
// A negative dp uses the style's default number of decimal places (4, 2 and
// 0 for d, dm and dms). An unknown style renders degrees. Non finite input
// renders the empty string.
func (c Codec) Format(deg float64, style Style, dp int) string {
	if !angle.Finite(deg) {
		return ""
	}

	style, places := style.places()
	if dp < 0 {
		dp = places
	}

	if style == Decimal {
		return fixed(deg, dp)
	}

	deg = math.Abs(deg)

	switch style {
	case DegMinutes:
		d := math.Floor(deg)
		m := fixed(math.Mod(deg*60, 60), dp)
		if value(m) == 60 {
			m = fixed(0, dp)
			d++
		}
		if value(m) < 10 {
			m = "0" + m
		}
		return fmt.Sprintf("%03d", int(d)) + degree + c.separator + m + prime

	case DegMinutesSecond:
		d := math.Floor(deg)
		m := math.Mod(math.Floor(deg*3600/60), 60)
		s := fixed(math.Mod(deg*3600, 60), dp)
		if value(s) == 60 {
			s = fixed(0, dp)
			m++
		}
		if m == 60 {
			m = 0
			d++
		}
		if value(s) < 10 {
			s = "0" + s
		}
		return fmt.Sprintf("%03d", int(d)) + degree + c.separator +
			fmt.Sprintf("%02d", int(m)) + prime + c.separator + s + doublePrime

	default:
		d := fixed(deg, dp)
		if value(d) < 100 {
			d = "0" + d
		}
		if value(d) < 10 {
			d = "0" + d
		}
		return d + degree
	}
}

// FormatLat renders a latitude with two digits of degrees and an N/S suffix,
// e.g. "51°28′40″N" (with the codec separator between components). Decimal
// renders the signed latitude.
func (c Codec) FormatLat(deg float64, style Style, dp int) string {
	lat := angle.WrapLat(deg)
	s := c.Format(lat, style, dp)
	if s == "" {
		return NotAvailable
	}
	if style == Decimal {
		return s
	}

	hemisphere := "N"
	if lat < 0 {
		hemisphere = "S"
	}
	return s[1:] + c.separator + hemisphere
}

// FormatLon renders a longitude with three digits of degrees and an E/W suffix.
// Decimal renders the signed longitude.
func (c Codec) FormatLon(deg float64, style Style, dp int) string {
	lon := angle.WrapLon(deg)
	s := c.Format(lon, style, dp)
	if s == "" {
		return NotAvailable
	}
	if style == Decimal {
		return s
	}

	hemisphere := "E"
	if lon < 0 {
		hemisphere = "W"
	}
	return s + c.separator + hemisphere
}

// FormatBearing renders a bearing in 0..360; a value rounding up to 360 is
// shown as 0.
func (c Codec) FormatBearing(deg float64, style Style, dp int) string {
	s := c.Format(angle.WrapBearing(deg), style, dp)
	if s == "" {
		return NotAvailable
	}
	if strings.HasPrefix(s, "360") {
		return "0" + s[3:]
	}
	return s
}
