// Package logger builds the process logger from the Log config section.
//
// The logger is gommon's leveled logger, the same type echo uses
// internally, so one instance serves echo, the Stripe SDK and the services.
package logger

import (
	"io"
	"os"
	"strings"

	"bundle-storefront/internal/config"

	"github.com/labstack/gommon/log"
)

const textHeader = "${time_rfc3339} ${level} ${prefix} ${short_file}:${line}"

func New(cfg config.Log) *log.Logger {
	return NewWithOutput(cfg, os.Stdout)
}

func NewWithOutput(cfg config.Log, w io.Writer) *log.Logger {
	l := log.New("storefront")
	l.SetOutput(w)
	l.SetLevel(ParseLevel(cfg.Level))

	// gommon's default header is JSON
	if strings.EqualFold(cfg.Format, "text") {
		l.SetHeader(textHeader)
	}

	return l
}

// ParseLevel maps a LOG_LEVEL value onto a gommon level, falling back to INFO.
func ParseLevel(level string) log.Lvl {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}
