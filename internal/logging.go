package internal

import (
	"fmt"
	"io"
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// InitLogging configures the standard logger. Verbose mode adds file:line
// to every entry and enables Debugf.
func InitLogging(out io.Writer, isVerbose bool) {
	log.SetOutput(out)
	flags := log.LstdFlags | log.Lmicroseconds
	if isVerbose {
		flags |= log.Lshortfile
	}
	log.SetFlags(flags)
	verbose.Store(isVerbose)
}

// Verbose reports whether debug logging is on
func Verbose() bool { return verbose.Load() }

// Debugf logs only in verbose mode
func Debugf(format string, args ...any) {
	if verbose.Load() {
		_ = log.Output(2, "debug: "+fmt.Sprintf(format, args...))
	}
}
