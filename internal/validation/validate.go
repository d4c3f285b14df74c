// Package validation checks a pair of raw YUV inputs against a clip
// descriptor and opens them for streaming.
package validation

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/five82/yuvpsnr/internal/clip"
	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/five82/yuvpsnr/internal/logging"
	"github.com/five82/yuvpsnr/internal/util"
)

// MaxFileSize is the largest input accepted. Sizes are kept within a
// signed 32-bit range.
const MaxFileSize int64 = math.MaxInt32

// FilePair is a validated pair of inputs opened for binary reading.
type FilePair struct {
	A         *os.File
	B         *os.File
	Size      int64
	FrameSize int64

	closeOnce sync.Once
	closeErr  error
}

// Frames returns the number of whole frames in each input.
func (p *FilePair) Frames() int64 {
	if p.FrameSize <= 0 {
		return 0
	}
	return p.Size / p.FrameSize
}

// Close releases both handles. Repeated calls return the first result.
func (p *FilePair) Close() error {
	if p == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		var errA, errB error
		if p.A != nil {
			errA = p.A.Close()
		}
		if p.B != nil {
			errB = p.B.Close()
		}
		if errA != nil {
			p.closeErr = errA
		} else {
			p.closeErr = errB
		}
	})
	return p.closeErr
}

// FileSize returns the size of path in bytes, or -1 if the size cannot be
// determined or exceeds MaxFileSize.
func FileSize(path string) int64 {
	size, err := statSize(path)
	if err != nil {
		logging.Debug("stat failed", "path", path, "error", err)
		return -1
	}
	if size > MaxFileSize {
		logging.Debug("file exceeds size limit", "path", path, "size", util.FormatBytes(uint64(size)))
		return -1
	}
	return size
}

// CheckSizes verifies that two inputs of the given sizes hold the same
// number of whole frames.
func CheckSizes(sizeA, sizeB, frameSize int64) error {
	if sizeA <= 0 || sizeB <= 0 {
		return perrors.NewFileSizeError("input file size exceeds 2GB limit")
	}
	if sizeA != sizeB || frameSize <= 0 || sizeA%frameSize != 0 {
		return perrors.NewFileSizeError(fmt.Sprintf(
			"input files must be same size and have only full frames (file sizes:%d, %d)", sizeA, sizeB))
	}
	return nil
}

// Open validates the sizes of pathA and pathB against d and opens both. No
// content is read. On error every handle opened so far has been closed.
func Open(pathA, pathB string, d clip.Descriptor) (*FilePair, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	frameSize := d.FrameSize()
	sizeA := FileSize(pathA)
	sizeB := FileSize(pathB)
	logging.Debug("input sizes",
		"frame", d.String(),
		"frame_size", util.FormatBytes(uint64(frameSize)),
		"size_a", sizeA,
		"size_b", sizeB)

	if err := CheckSizes(sizeA, sizeB, frameSize); err != nil {
		return nil, err
	}

	a, err := os.Open(pathA)
	if err != nil {
		return nil, perrors.NewFileOpenError(pathA, err)
	}

	b, err := os.Open(pathB)
	if err != nil {
		_ = a.Close()
		return nil, perrors.NewFileOpenError(pathB, err)
	}

	return &FilePair{A: a, B: b, Size: sizeA, FrameSize: frameSize}, nil
}
