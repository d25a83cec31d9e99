package persist256

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

// Lgr is a diagnostic logger for invariant-violation paths only; it is
// never touched on the ordinary lookup/insert/delete path.
var Lgr = log.New(os.Stderr, "[persist256] ", log.Lshortfile)

// failf reports a programmer error (spec §7): a violated structural
// invariant, an out-of-range index passed to a sparse array primitive, or
// an unreachable path-exhaustion case. These are never recoverable data
// conditions, so the module panics rather than returning an error value.
func failf(format string, args ...interface{}) {
	err := errors.Errorf(format, args...)
	Lgr.Println(err)
	panic(err)
}

// assertf panics with the formatted message, wrapped for a stack trace,
// when test is false. It is the loud-failure primitive every invariant
// check in this module funnels through.
func assertf(test bool, format string, args ...interface{}) {
	if !test {
		failf(format, args...)
	}
}
