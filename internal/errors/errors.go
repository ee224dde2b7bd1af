// Package errors is the one import for error handling in the marketplace.
// Matching goes through the standard library; wrapping records a stack via pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and construction without a stack.
var (
	New = stderrors.New
	Is  = stderrors.Is
	As  = stderrors.As
)

// Wrapping with a stack trace.
var (
	Wrap        = pkgerrors.Wrap
	Wrapf       = pkgerrors.Wrapf
	WithStack   = pkgerrors.WithStack
	WithMessage = pkgerrors.WithMessage
	Errorf      = pkgerrors.Errorf
)

// IsAny reports whether err matches one of targets.
func IsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}

	return false
}
