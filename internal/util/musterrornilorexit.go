package util

import (
	"github.com/bokysan/basen/enc"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrDecodeBase is added to the enc.ErrorKind of a failed decode to form the exit code.
	ErrDecodeBase = 80
	ErrGeneric    = 99
)

// ExitCode derives the process exit code for err: the type of a flags.Error,
// ErrDecodeBase plus the kind of a decode error, or ErrGeneric.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			return 0
		}
		return int(flagsError.Type)
	}
	if kind := enc.KindOf(err); kind != 0 {
		return ErrDecodeBase + int(kind)
	}
	return ErrGeneric
}

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with the code given by
// ExitCode. A request for help exits with zero without logging anything.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	code := ExitCode(err)
	if code == 0 {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(code)
}
