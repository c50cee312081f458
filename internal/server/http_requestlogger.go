package server

import (
	"github.com/bokysan/basen/internal/args"
	"github.com/bokysan/basen/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net/http"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the access log middleware matching the configured log format.
func GetRequestLogger() (logger NextHandlerFunc) {
	if args.General.LogFormat == "json" {
		logger = middleware.RequestLogger( // Write requests to log
			&logging.JSONLogFormatter{
				App: "basen",
			},
		)
	} else {
		logger = middleware.RequestLogger( // Write requests to log
			&middleware.DefaultLogFormatter{
				Logger:  &logging.ChiLogWriter{},
				NoColor: logging.ColorDisabled(args.General.LogColor),
			},
		)
	}

	return
}
