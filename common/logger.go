package common

import (
	"log"
	"os"
)

// Logger is the small surface the buffer manager needs out of a logger.
// The standard library's *log.Logger already satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// NewLogger returns the default *log.Logger, writing to stderr with a
// "pagebuf: " prefix, used when a Config leaves Logger nil. This mirrors
// the corpus's own style of calling log.Fatalln/fmt.Println directly
// rather than routing through a structured logging framework -- no example
// repository in the retrieval pack pulls in one for its storage layer.
func NewLogger() Logger {
	return log.New(os.Stderr, "pagebuf: ", log.LstdFlags)
}

// Debugf writes a debug-level trace line when debug is true, matching the
// level-gated fmt.Printf pattern the corpus's ShPrintf helper uses.
func Debugf(logger Logger, debug bool, format string, v ...interface{}) {
	if debug && logger != nil {
		logger.Printf(format, v...)
	}
}
