// Package errors provides structured error types for psnr operations.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind represents the category of an error. The set is closed: each
// kind corresponds to exactly one process exit status.
type ErrorKind int

const (
	// KindUsage represents missing positional arguments.
	KindUsage ErrorKind = iota
	// KindFileSize represents unreadable, oversized, mismatched or
	// partial-frame input sizes.
	KindFileSize
	// KindFileOpen represents an input that could not be opened for reading.
	KindFileOpen
	// KindArgs represents an invalid frame width or height.
	KindArgs
	// KindAlloc represents a frame buffer allocation failure.
	KindAlloc
)

// Exit statuses returned by the psnr binary.
const (
	ExitOK        = 0
	ExitUsage     = -1
	ExitFileSize  = -2
	ExitFileOpen  = -3
	ExitArgs      = -4
	ExitAlloc     = -5
	ExitUnhandled = 1
)

// String returns a string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindUsage:
		return "Usage error"
	case KindFileSize:
		return "File size error"
	case KindFileOpen:
		return "File open error"
	case KindArgs:
		return "Arguments error"
	case KindAlloc:
		return "Allocation error"
	default:
		return "Unknown error"
	}
}

// ExitCode returns the process exit status for the kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindUsage:
		return ExitUsage
	case KindFileSize:
		return ExitFileSize
	case KindFileOpen:
		return ExitFileOpen
	case KindArgs:
		return ExitArgs
	case KindAlloc:
		return ExitAlloc
	default:
		return ExitUnhandled
	}
}

// CoreError is the main error type for psnr operations.
type CoreError struct {
	Kind       ErrorKind
	Message    string
	Underlying error
}

func (e *CoreError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CoreError) Unwrap() error {
	return e.Underlying
}

// Is reports whether target matches this error's kind.
func (e *CoreError) Is(target error) bool {
	t, ok := target.(*CoreError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewUsageError creates an error for an incomplete command line. The
// message is the usage synopsis shown to the user.
func NewUsageError(usage string) *CoreError {
	return &CoreError{Kind: KindUsage, Message: usage}
}

// NewArgsError creates an error for a frame size below 1x1.
func NewArgsError(width, height int64) *CoreError {
	return &CoreError{Kind: KindArgs, Message: fmt.Sprintf("invalid frame size %dx%d", width, height)}
}

// NewFileSizeError creates a new file size error.
func NewFileSizeError(message string) *CoreError {
	return &CoreError{Kind: KindFileSize, Message: message}
}

// NewFileOpenError creates an error for an input that could not be opened.
func NewFileOpenError(path string, underlying error) *CoreError {
	return &CoreError{Kind: KindFileOpen, Message: fmt.Sprintf("unable to open input file %s", path), Underlying: underlying}
}

// NewAllocError creates an error for a failed frame buffer allocation.
func NewAllocError(size int64, underlying error) *CoreError {
	return &CoreError{Kind: KindAlloc, Message: fmt.Sprintf("unable to allocate %d byte frame buffer", size), Underlying: underlying}
}

// IsKind checks if the error has the specified kind.
func IsKind(err error, kind ErrorKind) bool {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind == kind
	}
	return false
}

// KindOf extracts the kind of err. ok is false when err carries no CoreError.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return coreErr.Kind, true
	}
	return 0, false
}

// ExitCode maps err to a process exit status. A nil error is success and
// an error outside the taxonomy is ExitUnhandled.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if kind, ok := KindOf(err); ok {
		return kind.ExitCode()
	}
	return ExitUnhandled
}
