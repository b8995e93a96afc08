package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// setupLogger configures the standard logrus logger: info level, or debug
// when debug is set, with a text or json formatter.
func setupLogger(debug bool, format string) error {
	switch format {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format '%s'", format)
	}

	log.SetLevel(log.InfoLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}
