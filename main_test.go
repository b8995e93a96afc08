package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geodesy/dms"
	"github.com/a-bouts/geodesy/plot"
	"github.com/peterbourgon/ff"
	"github.com/peterbourgon/ff/ffyaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParser(t *testing.T) {
	got := map[string][]string{}
	set := func(name, value string) error {
		got[name] = append(got[name], value)
		return nil
	}

	err := ffyaml.Parser(strings.NewReader(`
listen: ":9999"
earth-radius: 6378137
places: 2
debug: true
locale: de
dms-separator: " "
tags: [a, b]
`), set)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"listen":        {":9999"},
		"earth-radius":  {"6378137"},
		"places":        {"2"},
		"debug":         {"true"},
		"locale":        {"de"},
		"dms-separator": {" "},
		"tags":          {"a", "b"},
	}, got)

	require.NoError(t, ffyaml.Parser(strings.NewReader(""), set))
	assert.Error(t, ffyaml.Parser(strings.NewReader("listen: {host: x}"), set))
	assert.Error(t, ffyaml.Parser(strings.NewReader("- a\n- b"), set))
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodesy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("earth-radius: 6378137\nstyle: dms\n"), 0o644))

	fs := flag.NewFlagSet("geodesy", flag.ContinueOnError)
	radius := fs.Float64("earth-radius", 6371e3, "")
	style := fs.String("style", "d", "")
	fs.String("config", "", "")

	require.NoError(t, ff.Parse(fs, []string{"-config", path},
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parser),
	))
	assert.Equal(t, 6378137.0, *radius)
	assert.Equal(t, "dms", *style)
}

func TestNewCodec(t *testing.T) {
	c, err := newCodec(" ", "de")
	require.NoError(t, err)
	assert.Equal(t, " ", c.Separator())
	assert.Equal(t, dms.Locale{Thousands: ".", Decimal: ","}, c.Locale())

	c, err = newCodec(dms.NarrowNoBreakSpace, "en")
	require.NoError(t, err)
	assert.Equal(t, dms.Canonical, c.Locale())

	_, err = newCodec(" ", "not a tag!")
	assert.Error(t, err)
}

func TestSetupLogger(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	require.NoError(t, setupLogger(true, "json"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	require.NoError(t, setupLogger(false, ""))
	assert.Equal(t, log.InfoLevel, log.GetLevel())

	assert.Error(t, setupLogger(false, "xml"))
}

func TestRunPlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{
		"name": "dover strait",
		"start": "51.127,1.338",
		"legs": [{"name": "out", "bearing": "116.7", "distance": 40.3, "unit": "km", "rhumb": true}]
	}]`), 0o644))

	codec, err := newCodec(" ", "de")
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runPlot(path, plot.Plotter{Codec: codec, Style: dms.Degrees, Places: 4}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "dover strait")
	assert.Contains(t, lines[0], "51,1270° N, 001,3380° E")
	assert.Contains(t, lines[1], "50,9642° N, 001,8530° E")
	assert.Contains(t, lines[1], "116,7000°")
	assert.Contains(t, lines[1], "ESE")
	assert.Contains(t, lines[1], "40,30 km")

	assert.Error(t, runPlot(filepath.Join(t.TempDir(), "missing.json"), plot.Plotter{}, &out))
}
