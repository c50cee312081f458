package logging

import (
	"github.com/bokysan/basen/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// SetupLogging configures the standard logrus logger from the General options.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	log.SetFormatter(NewFormatter(args.General.LogFormat, args.General.LogColor, args.General.LogFullTimestamp))
	log.Debugf("Verbosity level: %v", VerbosityName())

	if out, err := OpenLogFile(args.General.LogFile); err != nil {
		log.WithError(err).Warnf("Could not open log file, logging to stderr: %v", err)
	} else if out != nil {
		log.SetOutput(out)
	}
}

// NewFormatter returns the JSON formatter for format "json" and a text
// formatter honouring the color setting otherwise.
func NewFormatter(format, color string, fullTimestamp bool) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		}
	}
	return &log.TextFormatter{
		ForceColors:   ColorForced(color),
		DisableColors: ColorDisabled(color),
		FullTimestamp: fullTimestamp,
	}
}

func ColorForced(color string) bool {
	color = strings.TrimSpace(strings.ToLower(color))
	return color == "yes" || color == "true" || color == "1"
}

func ColorDisabled(color string) bool {
	color = strings.TrimSpace(strings.ToLower(color))
	return color == "no" || color == "false" || color == "0"
}

// OpenLogFile opens file for appending. A nil, empty or "-" name means
// stderr, for which it returns a nil writer.
func OpenLogFile(file *string) (io.Writer, error) {
	if file == nil || len(*file) == 0 || *file == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(*file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}
