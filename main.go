package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"

	"github.com/a-bouts/geodesy/api"
	"github.com/a-bouts/geodesy/dms"
	"github.com/a-bouts/geodesy/latlon"
	"github.com/a-bouts/geodesy/plot"
	"github.com/peterbourgon/ff"
	"github.com/peterbourgon/ff/ffyaml"
	"golang.org/x/text/language"
)

// newCodec binds the display separator and the number notation of locale.
func newCodec(separator, locale string) (dms.Codec, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return dms.Codec{}, fmt.Errorf("locale '%s': %w", locale, err)
	}
	return dms.New(dms.WithSeparator(separator), dms.WithLocale(dms.LocaleFor(tag))), nil
}

// runPlot resolves every plot of the file at path and prints its fixes.
func runPlot(path string, p plot.Plotter, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	plots, err := plot.Load(f)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, pl := range plots {
		fixes, err := p.Resolve(pl)
		if err != nil {
			return fmt.Errorf("plot '%s': %w", pl.Name, err)
		}

		fmt.Fprintf(w, "%s\t%s\n", pl.Name, p.Codec.ToLocale(pl.Start.Format(p.Codec, p.Style, p.Places)))
		for _, fix := range fixes {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				fix.Name,
				p.Codec.ToLocale(fix.Position),
				p.Codec.ToLocale(fix.Course),
				fix.Compass,
				p.Codec.ToLocale(fmt.Sprintf("%.2f %s", fix.Distance, fix.Unit)))
		}
	}
	return w.Flush()
}

func main() {

	fs := flag.NewFlagSet("geodesy", flag.ExitOnError)
	var (
		listen     = fs.String("listen", ":8888", "HTTP listen address")
		radius     = fs.Float64("earth-radius", latlon.R, "earth radius, in metres")
		separator  = fs.String("dms-separator", dms.NarrowNoBreakSpace, "separator between degrees, minutes, seconds and compass letter")
		locale     = fs.String("locale", "en", "BCP 47 tag of the number notation")
		style      = fs.String("style", string(dms.Degrees), "display style: d, dm, dms or n")
		places     = fs.Int("places", dms.DefaultPlaces, "decimal places, -1 for the style default")
		rateLimit  = fs.Float64("rate-limit", 0, "requests per second per client, 0 disables")
		rateBurst  = fs.Int("rate-burst", 0, "rate limiter burst, defaults to the rate")
		cpuprofile = fs.Bool("cpuprofile", false, "profile plot requests")
		debug      = fs.Bool("debug", false, "debug logging")
		logFormat  = fs.String("log-format", "text", "text or json")
		plotFile   = fs.String("plot", "", "resolve the plots of this file, print them and exit")
		_          = fs.String("config", "", "YAML config file")
	)
	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parser),
	); err != nil {
		log.Fatal(err)
	}

	if err := setupLogger(*debug, *logFormat); err != nil {
		log.Fatal(err)
	}

	codec, err := newCodec(*separator, *locale)
	if err != nil {
		log.Fatal(err)
	}
	st, err := dms.ParseStyle(*style)
	if err != nil {
		log.Fatal(err)
	}

	if *plotFile != "" {
		p := plot.Plotter{Radius: *radius, Codec: codec, Style: st, Places: *places}
		if err := runPlot(*plotFile, p, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	h, stop, err := api.InitServer(api.Config{
		CPUProfile: *cpuprofile,
		Radius:     *radius,
		Codec:      codec,
		Style:      st,
		Places:     *places,
		RateLimit:  *rateLimit,
		Burst:      *rateBurst,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer stop()

	log.WithFields(log.Fields{
		"radius": *radius,
		"locale": *locale,
		"style":  st,
	}).Infof("Start server on %s", *listen)

	log.Fatal(http.ListenAndServe(*listen, h))
}
