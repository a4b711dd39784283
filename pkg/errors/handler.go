package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot lets an interface value live in an atomic.Pointer.
type handlerSlot struct{ h ErrorHandler }

var current atomic.Pointer[handlerSlot]

func init() {
	current.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs the process-wide error handler. nil restores a
// non-verbose LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(&handlerSlot{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// Report stamps err with the time and the reporting stack, unless already
// set, and passes it to the handler.
func Report(err *PaneError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" {
		err.StackTrace = CaptureStack()
	}
	Handler().HandleError(err)
}

// ReportPanic passes a recovered panic to the handler.
func ReportPanic(err *PanicError) {
	if err != nil {
		Handler().HandlePanic(err)
	}
}

// Recover reports a panic in the deferring function under op and lets the
// caller continue:
//
//	defer errors.Recover("widgets.Slider.OnChange")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is Recover followed by fn(r), typically used to turn
// the panic into the deferring function's error result.
func RecoverWithCallback(op string, fn func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	reportRecovered(op, r)
	if fn != nil {
		fn(r)
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack(), Timestamp: time.Now()})
}

// maxStackFrames bounds CaptureStack output.
const maxStackFrames = 32

// helperFrames are left out of captured stacks.
var helperFrames = map[string]bool{
	"github.com/go-drift/pane/pkg/errors.Report":              true,
	"github.com/go-drift/pane/pkg/errors.Recover":             true,
	"github.com/go-drift/pane/pkg/errors.RecoverWithCallback": true,
	"github.com/go-drift/pane/pkg/errors.reportRecovered":     true,
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame, leaving out the reporting helpers.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackFrames)
	pcs = pcs[:runtime.Callers(2, pcs)]
	frames := runtime.CallersFrames(pcs)

	var b strings.Builder
	for {
		f, more := frames.Next()
		if !helperFrames[f.Function] {
			fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		}
		if !more {
			return b.String()
		}
	}
}
