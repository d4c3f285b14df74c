// Package clip describes raw planar YUV 4:2:0 clips and parses the
// positional arguments that define them.
package clip

import (
	"fmt"
	"math"
	"math/bits"

	perrors "github.com/five82/yuvpsnr/internal/errors"
)

// ArgCount is the number of positional arguments the comparison needs.
const ArgCount = 5

// Synopsis lists the positional arguments in order.
const Synopsis = "<yuv_file1> <yuv_file2> <width> <height> <max_frames>"

// Descriptor holds the geometry of a clip and how many frames to compare.
type Descriptor struct {
	Width     int64
	Height    int64
	MaxFrames int64
}

// Args is a parsed command line.
type Args struct {
	PathA string
	PathB string
	Descriptor
}

// FrameSize returns the byte length of one I420 frame: a full-resolution
// luma plane followed by two quarter-resolution chroma planes. The product
// saturates at math.MaxInt64 instead of wrapping.
func (d Descriptor) FrameSize() int64 {
	if d.Width < 1 || d.Height < 1 {
		return 0
	}
	hi, lo := bits.Mul64(uint64(d.Width), uint64(d.Height))
	if hi != 0 || lo > math.MaxInt64 {
		return math.MaxInt64
	}
	hi, lo = bits.Mul64(lo, 3)
	if hi != 0 {
		return math.MaxInt64
	}
	lo /= 2
	if lo > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(lo)
}

// Validate checks that the frame is at least 1x1.
func (d Descriptor) Validate() error {
	if d.Width < 1 || d.Height < 1 {
		return perrors.NewArgsError(d.Width, d.Height)
	}
	return nil
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Usage returns the usage line for the program invoked as prog.
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s %s", prog, Synopsis)
}

// ParseArgs parses the positional arguments that follow the program name.
// Arguments past the fifth are ignored. Width and height are checked here
// so that an invalid geometry is rejected before any file is touched.
func ParseArgs(prog string, args []string) (Args, error) {
	if len(args) < ArgCount {
		return Args{}, perrors.NewUsageError(Usage(prog))
	}

	a := Args{
		PathA: args[0],
		PathB: args[1],
		Descriptor: Descriptor{
			Width:     ParseInt(args[2]),
			Height:    ParseInt(args[3]),
			MaxFrames: ParseInt(args[4]),
		},
	}
	if err := a.Validate(); err != nil {
		return Args{}, err
	}
	return a, nil
}
