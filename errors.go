package showroomdocs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the few conditions that stop a render.
var (
	ErrNilRecord = errors.New("showroomdocs: nil record")
	ErrSurface   = errors.New("showroomdocs: drawing surface failed")
	ErrOutput    = errors.New("showroomdocs: writing document failed")
)

// RenderError reports a failed render step. It wraps one of the sentinel
// errors, usually together with the underlying cause.
type RenderError struct {
	Op  string // step name, e.g. "NewPDF", "Output"
	Err error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("showroomdocs.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("showroomdocs.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

func newRenderError(op string, kind, cause error) *RenderError {
	if cause == nil {
		return &RenderError{Op: op, Err: kind}
	}
	return &RenderError{Op: op, Err: fmt.Errorf("%w: %w", kind, cause)}
}
