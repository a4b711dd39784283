// Package errors provides structured error handling for the pane widget tree.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind groups failures by who has to fix them.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindConfig: an unrecognized orientation, alignment, policy or layout
	// value reached a setter.
	KindConfig
	// KindStructure: the tree contract was broken, for example a widget
	// added below itself or an unbalanced bypass.
	KindStructure
	// KindParsing: a theme or tree document could not be decoded.
	KindParsing
	// KindRender: a backend rejected the geometry it was handed.
	KindRender
	KindPanic
)

var kindNames = [...]string{
	KindUnknown:   "unknown",
	KindConfig:    "config",
	KindStructure: "structure",
	KindParsing:   "parsing",
	KindRender:    "render",
	KindPanic:     "panic",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Sentinel causes wrapped by PaneError. Match them with errors.Is.
var (
	ErrInvalidAxis        = errors.New("invalid axis")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidAlignment   = errors.New("invalid alignment")
	ErrInvalidPolicy      = errors.New("invalid size policy")
	ErrInvalidLayoutKind  = errors.New("invalid layout kind")
	ErrNilWidget          = errors.New("nil widget")
	ErrCycle              = errors.New("widget cannot be its own ancestor")
	ErrIndexOutOfRange    = errors.New("child index out of range")
	ErrBypassUnderflow    = errors.New("EndBypassUpdate without matching BeginBypassUpdate")
)

// PaneError is the error type returned by the widget tree and its loaders.
// Op names the failing call, as in "layout.Widget.AddChild", and Widget the
// widget it concerned, when there is one.
type PaneError struct {
	Op         string
	Kind       ErrorKind
	Err        error
	Widget     string
	StackTrace string
	Timestamp  time.Time
}

func (e *PaneError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *PaneError) Unwrap() error {
	return e.Err
}

// Config builds a KindConfig error.
func Config(op string, err error) *PaneError {
	return &PaneError{Op: op, Kind: KindConfig, Err: err}
}

// Structure builds a KindStructure error naming the widget involved.
func Structure(op, widget string, err error) *PaneError {
	return &PaneError{Op: op, Kind: KindStructure, Widget: widget, Err: err}
}

// KindOf returns the kind of the first PaneError in err's chain.
func KindOf(err error) ErrorKind {
	var pe *PaneError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindUnknown
}

// PanicError records a panic recovered by Recover or RecoverWithCallback.
type PanicError struct {
	Op         string
	Value      any
	StackTrace string
	Timestamp  time.Time
}

func (e *PanicError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("recovered panic: %v", e.Value)
	}
	return fmt.Sprintf("recovered panic in %s: %v", e.Op, e.Value)
}

// ErrorHandler receives everything passed to Report and ReportPanic.
type ErrorHandler interface {
	HandleError(err *PaneError)
	HandlePanic(err *PanicError)
}
