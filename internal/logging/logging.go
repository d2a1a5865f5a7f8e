package logging

import (
	log "github.com/sirupsen/logrus"
	"io"
)

// Setup - Configures the standard logrus logger.
//   - level is one of the logrus level names (debug, info, warn, error ...), unknown names give info
//   - format is "json" for JSON output, anything else gives text
//   - out is where log entries are written
func Setup(level, format string, out io.Writer) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}

	log.SetOutput(out)
}
