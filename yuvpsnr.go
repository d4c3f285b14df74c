// Package yuvpsnr computes the overall PSNR of two raw planar YUV 4:2:0
// clips.
//
// The clips are compared frame by frame and the squared error of every
// sample is summed into one total, so the result is a single value for the
// whole sequence rather than an average of per-frame scores.
//
// Basic usage:
//
//	c := yuvpsnr.New()
//	res, err := c.Compare("ref.yuv", "recon.yuv", 352, 288, 9999)
//	if err != nil {
//	    os.Exit(yuvpsnr.ExitCode(err))
//	}
//	if res.Reported {
//	    fmt.Printf("%.3f\n", res.PSNR)
//	}
package yuvpsnr

import (
	"github.com/five82/yuvpsnr/internal/clip"
	"github.com/five82/yuvpsnr/internal/compare"
	"github.com/five82/yuvpsnr/internal/config"
	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/five82/yuvpsnr/internal/logging"
	"github.com/five82/yuvpsnr/internal/metric"
	"github.com/five82/yuvpsnr/internal/reporter"
)

// Re-exported error kinds.
type ErrorKind = perrors.ErrorKind

const (
	KindUsage    = perrors.KindUsage
	KindFileSize = perrors.KindFileSize
	KindFileOpen = perrors.KindFileOpen
	KindArgs     = perrors.KindArgs
	KindAlloc    = perrors.KindAlloc
)

// MaxPSNR is the ceiling applied to every result.
const MaxPSNR = metric.MaxPSNR

// Reporter receives comparison events.
type Reporter = reporter.Reporter

// Result is the outcome of a comparison.
type Result = compare.Result

// Comparer runs comparisons with a fixed set of options.
type Comparer struct {
	config   *config.Config
	reporter Reporter
}

// Option configures a Comparer.
type Option func(*Comparer)

// New creates a Comparer with the given options.
func New(opts ...Option) *Comparer {
	c := &Comparer{
		config:   config.NewConfig(),
		reporter: reporter.NullReporter{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithReporter sends comparison events to rep.
func WithReporter(rep Reporter) Option {
	return func(c *Comparer) {
		if rep != nil {
			c.reporter = rep
		}
	}
}

// WithLogging sends comparison events to the structured logger as well.
func WithLogging(logger *logging.Logger) Option {
	return func(c *Comparer) {
		c.reporter = reporter.NewCompositeReporter(c.reporter, reporter.NewLogReporter(logger))
	}
}

// WithPeak sets the peak sample value, e.g. 1023 for 10-bit content
// stored one byte per sample. The default is 255.
func WithPeak(peak float64) Option {
	return func(c *Comparer) {
		c.config.Peak = peak
	}
}

// Compare computes the PSNR of the clips at pathA and pathB. At most
// maxFrames frames of width x height are compared. When no frame could be
// compared the returned Result has Reported set to false.
func (c *Comparer) Compare(pathA, pathB string, width, height, maxFrames int) (*Result, error) {
	d := clip.Descriptor{Width: int64(width), Height: int64(height), MaxFrames: int64(maxFrames)}
	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	return compare.Run(compare.Request{
		PathA:      pathA,
		PathB:      pathB,
		Descriptor: d,
		Peak:       c.config.Peak,
	}, c.reporter)
}

// FrameSize returns the byte length of one 4:2:0 frame.
func FrameSize(width, height int) int64 {
	return clip.Descriptor{Width: int64(width), Height: int64(height)}.FrameSize()
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return perrors.IsKind(err, kind)
}

// ExitCode maps err to the psnr process exit status.
func ExitCode(err error) int {
	return perrors.ExitCode(err)
}
