package dms

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      float64
		tolerance float64
	}{
		{name: "signed decimal", input: "-3.62", want: -3.62, tolerance: 1e-12},
		{name: "padded decimal", input: "  51.4779 ", want: 51.4779, tolerance: 1e-12},
		{name: "dms with glyphs", input: "51° 28′ 40.37″ N", want: 51.4779, tolerance: 1e-4},
		{name: "dms with spaces west", input: "3 37 12W", want: -3.62, tolerance: 1e-3},
		{name: "dms lower case south", input: "33 52 04s", want: -33.8678, tolerance: 1e-4},
		{name: "degrees minutes", input: "0° 00.088′ W", want: -0.00147, tolerance: 1e-5},
		{name: "degrees suffix", input: "51.4779N", want: 51.4779, tolerance: 1e-12},
		{name: "leading minus", input: "-51:28:40", want: -51.4778, tolerance: 1e-4},
		{name: "leading plus", input: "+51 30", want: 51.5, tolerance: 1e-12},
		{name: "colon separated", input: "051:28:40E", want: 51.4778, tolerance: 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "N", "abc", "1 2 3 4", "51,5", "1.2.3 4", "Inf", "NaN"} {
		t.Run(input, func(t *testing.T) {
			assert.True(t, math.IsNaN(Parse(input)), "Parse(%q)", input)

			_, err := ParseAngle(input)
			assert.ErrorIs(t, err, ErrInvalidAngle)
		})
	}
}

func TestFormat(t *testing.T) {
	c := New(WithSeparator(" "))

	tests := []struct {
		name  string
		deg   float64
		style Style
		dp    int
		want  string
	}{
		{"degrees", 51.4778, Degrees, DefaultPlaces, "051.4778°"},
		{"degrees small", 0.5, Degrees, 2, "000.50°"},
		{"degrees abs", -3.62, Degrees, 1, "003.6°"},
		{"degrees minutes", 51.4778, DegMinutes, DefaultPlaces, "051° 28.67′"},
		{"dms", 51.4778, DegMinutesSecond, DefaultPlaces, "051° 28′ 40″"},
		{"dms places", 51.47788, DegMinutesSecond, 2, "051° 28′ 40.37″"},
		{"seconds carry", 51.99999, DegMinutesSecond, DefaultPlaces, "052° 00′ 00″"},
		{"minutes carry", 51.99999, DegMinutes, DefaultPlaces, "052° 00.00′"},
		{"degrees pad", 9.99999, Degrees, DefaultPlaces, "010.0000°"},
		{"unknown style", 1.5, Style("x"), DefaultPlaces, "001.5000°"},
		{"long alias", 1.5, Style("deg+min"), DefaultPlaces, "001° 30.00′"},
		{"signed decimal", -0.00147, Decimal, DefaultPlaces, "-0.0015"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Format(tt.deg, tt.style, tt.dp))
		})
	}
}

func TestFormatNotAngle(t *testing.T) {
	assert.Equal(t, "", Format(math.NaN(), Degrees, DefaultPlaces))
	assert.Equal(t, "", Format(math.Inf(1), DegMinutes, DefaultPlaces))
	assert.Equal(t, "", Format(math.Inf(-1), DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, NotAvailable, FormatLat(math.NaN(), Degrees, DefaultPlaces))
	assert.Equal(t, NotAvailable, FormatLon(math.NaN(), Degrees, DefaultPlaces))
	assert.Equal(t, NotAvailable, FormatBearing(math.NaN(), Degrees, DefaultPlaces))
}

func TestFormatLatLonBearing(t *testing.T) {
	c := New(WithSeparator(" "))

	assert.Equal(t, "51° 28′ 40″ N", c.FormatLat(51.4778, DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, "33° 52′ 04″ S", c.FormatLat(-33.8678, DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, "89° 00′ 00″ N", c.FormatLat(91, DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, "000° 00′ 05″ W", c.FormatLon(-0.00147, DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, "179.0000° W", c.FormatLon(181, Degrees, DefaultPlaces))
	assert.Equal(t, "-0.0015", c.FormatLon(-0.00147, Decimal, DefaultPlaces))
	assert.Equal(t, "156.2°", c.FormatBearing(156.1666, Degrees, 1))
	assert.Equal(t, "359°", c.FormatBearing(-1, Degrees, 0))
	assert.Equal(t, "0°", c.FormatBearing(359.9999, Degrees, 0))
	assert.Equal(t, "0° 00′ 00″", c.FormatBearing(359.99999, DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, "012.3601°", c.FormatBearing(12.3601, Degrees, DefaultPlaces))
}

func TestDefaultSeparator(t *testing.T) {
	assert.Equal(t, "51°\u202f28′\u202f40″\u202fN", FormatLat(51.4778, DegMinutesSecond, DefaultPlaces))
	assert.Equal(t, NarrowNoBreakSpace, Default().Separator())
}

func TestRoundTrip(t *testing.T) {
	tolerance := map[Style]float64{
		Degrees:          0.5e-4,
		DegMinutes:       0.5e-2 / 60,
		DegMinutesSecond: 0.5 / 3600,
	}

	for style, tol := range tolerance {
		for lat := -89.9; lat <= 89.9; lat += 3.37 {
			got := Parse(FormatLat(lat, style, DefaultPlaces))
			assert.InDelta(t, lat, got, tol+1e-12, "lat %f style %s", lat, style)
		}
		for lon := -179.9; lon <= 180; lon += 7.41 {
			got := Parse(FormatLon(lon, style, DefaultPlaces))
			assert.InDelta(t, lon, got, tol+1e-12, "lon %f style %s", lon, style)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for in, want := range map[string]Style{
		"n": Decimal, "d": Degrees, "deg": Degrees, "dm": DegMinutes,
		"deg+min": DegMinutes, "dms": DegMinutesSecond, "deg+min+sec": DegMinutesSecond,
	} {
		got, err := ParseStyle(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseStyle("ddd")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		bearing   float64
		precision int
		want      string
	}{
		{24, DefaultPrecision, "NNE"},
		{24, 1, "N"},
		{24, 2, "NE"},
		{0, 3, "N"},
		{11.24, 3, "N"},
		{11.25, 3, "NNE"},
		{90, 1, "E"},
		{180, 2, "S"},
		{225, 2, "SW"},
		{350, 3, "N"},
		{-10, 3, "N"},
		{-90, 3, "W"},
		{300, 1, "W"},
		{315, 1, "N"},
		{337.5, 3, "NNW"},
	}

	for _, tt := range tests {
		got, err := CompassPoint(tt.bearing, tt.precision)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "CompassPoint(%f, %d)", tt.bearing, tt.precision)
	}
}

func TestCompassPointInvalid(t *testing.T) {
	for _, p := range []int{0, 4, -1} {
		_, err := CompassPoint(24, p)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	}

	_, err := CompassPoint(math.NaN(), 3)
	assert.ErrorIs(t, err, ErrInvalidAngle)
}

func TestLocale(t *testing.T) {
	assert.Equal(t, Canonical, LocaleFor(language.English))
	assert.Equal(t, Locale{Thousands: ".", Decimal: ","}, LocaleFor(language.German))

	de := New(WithLocale(Locale{Thousands: ".", Decimal: ","}))
	assert.Equal(t, "51.5", de.FromLocale("51,5"))
	assert.Equal(t, "1,234.5", de.FromLocale("1.234,5"))
	assert.Equal(t, "1.234,5", de.ToLocale("1,234.5"))
	assert.Equal(t, "51° 28,67′", de.ToLocale("51° 28.67′"))
	assert.InDelta(t, 51.5, Parse(de.FromLocale("51,5")), 1e-12)

	assert.Equal(t, "1,234.5", FromLocale("1,234.5"))
	assert.Equal(t, "1,234.5", ToLocale("1,234.5"))
}

func TestAngleJSON(t *testing.T) {
	var v struct {
		A Angle  `json:"a"`
		B Angle  `json:"b"`
		C *Angle `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 116.7, "b": "116°42′"}`), &v))
	assert.Equal(t, 116.7, v.A.Degrees())
	assert.InDelta(t, 116.7, v.B.Degrees(), 1e-12)
	assert.Nil(t, v.C)

	for _, input := range []string{`{"a": "north"}`, `{"a": true}`, `{"a": [1]}`} {
		err := json.Unmarshal([]byte(input), &v)
		assert.ErrorIs(t, err, ErrInvalidAngle, input)
	}
}
