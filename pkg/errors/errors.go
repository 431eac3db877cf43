// Package errors provides structured error reporting for the blanket kit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindGesture indicates a drag event arriving in an invalid state.
	KindGesture
	// KindLayout indicates a detent resolution or measurement error.
	KindLayout
	// KindAnimation indicates an animation driving error.
	KindAnimation
	// KindConfig indicates a behavior configuration parsing error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindGesture:
		return "gesture"
	case KindLayout:
		return "layout"
	case KindAnimation:
		return "animation"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BlanketError represents a structured error in the blanket kit.
type BlanketError struct {
	// Op is the operation that failed (e.g., "blanket.DragController.Update").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BlanketError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BlanketError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "blanket.Blanket.Present").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the blanket kit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *BlanketError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
