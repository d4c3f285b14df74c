// Package reporter provides progress reporting interfaces and implementations.
package reporter

import perrors "github.com/five82/yuvpsnr/internal/errors"

// ComparisonInfo describes a validated comparison before streaming starts.
type ComparisonInfo struct {
	PathA       string
	PathB       string
	Width       int64
	Height      int64
	FrameSize   int64
	FileSize    int64
	TotalFrames int64
}

// FrameProgress is sent after each counted frame.
type FrameProgress struct {
	Frame             int64
	TotalFrames       int64
	TotalSquaredError float64
}

// ComparisonResult is the outcome of a finished stream.
type ComparisonResult struct {
	Frames            int64
	Samples           int64
	TotalSquaredError float64
	PSNR              float64
	// Reported is false when no frame was processed and no value exists.
	Reported bool
}

// ReporterError describes a fatal failure.
type ReporterError struct {
	Kind    perrors.ErrorKind
	Message string
}
