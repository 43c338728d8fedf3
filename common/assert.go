package common

import (
	"fmt"
	"runtime"

	"github.com/devlights/gomy/output"
)

// Assert panics with msg if condition is false. Used at internal-invariant
// boundaries that should be unreachable if the buffer manager's own
// bookkeeping is correct -- not for validating caller input, which should
// fail through the ordinary error-return path instead.
func Assert(condition bool, msg string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf(msg, args...))
	}
}

// DumpInvariantFailure prints every goroutine's stack trace when a
// debug-mode invariant check fails, before the failure is reported, so a frame-table corruption can be
// traced back to the call that caused it. Adapted from the teacher's
// RuntimeStack helper; only invoked when Config.Debug is set, since walking
// every goroutine's stack is not something a production build should pay
// for on a check that is expected to never fire.
func DumpInvariantFailure(label string) {
	buf := make([]byte, 1024)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			output.Stdoutl(label, string(buf[:n]))
			return
		}
		buf = make([]byte, 2*len(buf))
	}
}
