// Package accumulate streams matching frames from two raw clips and sums
// their squared sample differences.
package accumulate

import (
	"errors"
	"fmt"
	"io"

	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/five82/yuvpsnr/internal/logging"
)

// State is the running error total. Both fields only grow.
type State struct {
	TotalSquaredError float64
	FramesProcessed   int64
}

// Observer is notified after every frame that was counted.
type Observer interface {
	FrameDone(state State)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(State)

// FrameDone calls f(state).
func (f ObserverFunc) FrameDone(state State) { f(state) }

// Accumulator owns one frame buffer per input and reuses them for every
// frame.
type Accumulator struct {
	frameSize int64
	bufA      []byte
	bufB      []byte
	state     State
}

// New allocates the frame buffers for frames of frameSize bytes.
func New(frameSize int64) (*Accumulator, error) {
	bufA, err := allocFrame(frameSize)
	if err != nil {
		return nil, err
	}
	bufB, err := allocFrame(frameSize)
	if err != nil {
		return nil, err
	}
	return &Accumulator{frameSize: frameSize, bufA: bufA, bufB: bufB}, nil
}

// allocFrame turns the runtime's out-of-range panic for impossible lengths
// into an allocation error.
func allocFrame(size int64) (buf []byte, err error) {
	if size <= 0 {
		return nil, perrors.NewAllocError(size, errors.New("frame size must be positive"))
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = perrors.NewAllocError(size, fmt.Errorf("%v", r))
		}
	}()
	return make([]byte, size), nil
}

// FrameSize returns the length of each frame buffer.
func (acc *Accumulator) FrameSize() int64 {
	return acc.frameSize
}

// State returns the totals accumulated so far.
func (acc *Accumulator) State() State {
	return acc.state
}

// Run reads frames from a and b in lockstep until maxFrames frames have been
// counted or either input cannot supply a whole frame. B is only read after
// A produced a whole frame. A short read ends the run without error and the
// partial frame is discarded. obs may be nil.
func (acc *Accumulator) Run(a, b io.Reader, maxFrames int64, obs Observer) State {
	for acc.state.FramesProcessed < maxFrames {
		if !acc.readFrame(a, acc.bufA, "a") || !acc.readFrame(b, acc.bufB, "b") {
			break
		}
		acc.state.TotalSquaredError = AddSquaredError(acc.state.TotalSquaredError, acc.bufA, acc.bufB)
		acc.state.FramesProcessed++
		if obs != nil {
			obs.FrameDone(acc.state)
		}
	}

	logging.Debug("stream finished",
		"frames", acc.state.FramesProcessed,
		"max_frames", maxFrames,
		"sse", acc.state.TotalSquaredError)
	return acc.state
}

func (acc *Accumulator) readFrame(r io.Reader, buf []byte, input string) bool {
	n, err := io.ReadFull(r, buf)
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, io.EOF):
		logging.Debug("end of input", "input", input, "frame", acc.state.FramesProcessed)
	case errors.Is(err, io.ErrUnexpectedEOF):
		logging.Debug("short frame read", "input", input, "frame", acc.state.FramesProcessed,
			"read", n, "want", len(buf))
	default:
		logging.Debug("frame read failed", "input", input, "frame", acc.state.FramesProcessed, "error", err)
	}
	return false
}

// AddSquaredError adds the squared difference of every sample pair to sse
// and returns the new total. Each difference is b[i]-a[i] taken in float64.
// a and b must have equal length.
func AddSquaredError(sse float64, a, b []byte) float64 {
	b = b[:len(a)]
	for i := range a {
		diff := float64(b[i]) - float64(a[i])
		sse += diff * diff
	}
	return sse
}
