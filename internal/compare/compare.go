// Package compare runs a full PSNR comparison: validate the inputs, stream
// the frames, then reduce the accumulated error to a single value.
package compare

import (
	"errors"

	"github.com/five82/yuvpsnr/internal/accumulate"
	"github.com/five82/yuvpsnr/internal/clip"
	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/five82/yuvpsnr/internal/metric"
	"github.com/five82/yuvpsnr/internal/reporter"
	"github.com/five82/yuvpsnr/internal/validation"
)

// Request describes one comparison.
type Request struct {
	PathA string
	PathB string
	clip.Descriptor
	// Peak is the peak sample value. Zero means metric.Peak8Bit.
	Peak float64
}

// Result is the outcome of a comparison.
type Result struct {
	Frames            int64
	Samples           int64
	TotalSquaredError float64
	PSNR              float64
	// Reported is false when no frame was processed; PSNR is then
	// meaningless and nothing should be printed.
	Reported bool
}

// Run validates, streams and reduces req. Both inputs are closed before Run
// returns, whichever stage fails. A nil rep discards events. Fatal errors
// are *errors.CoreError values and are also sent to rep.Error.
func Run(req Request, rep reporter.Reporter) (*Result, error) {
	if rep == nil {
		rep = reporter.NullReporter{}
	}

	res, err := run(req, rep)
	if err != nil {
		ReportError(rep, err)
		return nil, err
	}
	return res, nil
}

func run(req Request, rep reporter.Reporter) (*Result, error) {
	pair, err := validation.Open(req.PathA, req.PathB, req.Descriptor)
	if err != nil {
		return nil, err
	}
	defer func() { _ = pair.Close() }()

	acc, err := accumulate.New(pair.FrameSize)
	if err != nil {
		return nil, err
	}

	total := pair.Frames()
	if req.MaxFrames < total {
		total = max(req.MaxFrames, 0)
	}
	rep.ComparisonStarted(reporter.ComparisonInfo{
		PathA:       req.PathA,
		PathB:       req.PathB,
		Width:       req.Width,
		Height:      req.Height,
		FrameSize:   pair.FrameSize,
		FileSize:    pair.Size,
		TotalFrames: total,
	})

	st := acc.Run(pair.A, pair.B, req.MaxFrames, accumulate.ObserverFunc(func(s accumulate.State) {
		rep.FrameProgress(reporter.FrameProgress{
			Frame:             s.FramesProcessed,
			TotalFrames:       total,
			TotalSquaredError: s.TotalSquaredError,
		})
	}))

	res := Reduce(st, pair.FrameSize, req.Peak)
	rep.ComparisonComplete(reporter.ComparisonResult{
		Frames:            res.Frames,
		Samples:           res.Samples,
		TotalSquaredError: res.TotalSquaredError,
		PSNR:              res.PSNR,
		Reported:          res.Reported,
	})
	return res, nil
}

// Reduce converts accumulator totals to a Result. With no processed frames
// the result is not reported and PSNR is left at zero.
func Reduce(st accumulate.State, frameSize int64, peak float64) *Result {
	res := &Result{
		Frames:            st.FramesProcessed,
		Samples:           st.FramesProcessed * frameSize,
		TotalSquaredError: st.TotalSquaredError,
	}
	if st.FramesProcessed <= 0 {
		return res
	}
	if peak <= 0 {
		peak = metric.Peak8Bit
	}
	res.PSNR = metric.MSEToPSNR(float64(res.Samples), peak, st.TotalSquaredError)
	res.Reported = true
	return res
}

// ReportError forwards err to rep. Errors outside the taxonomy are reported
// with their full text.
func ReportError(rep reporter.Reporter, err error) {
	var coreErr *perrors.CoreError
	if errors.As(err, &coreErr) {
		rep.Error(reporter.ReporterError{Kind: coreErr.Kind, Message: coreErr.Message})
		return
	}
	rep.Error(reporter.ReporterError{Kind: perrors.ErrorKind(-1), Message: err.Error()})
}
