package reporter

import (
	"github.com/five82/yuvpsnr/internal/logging"
	"github.com/five82/yuvpsnr/internal/util"
)

// LogReporter writes events to a structured logger. Per-frame progress is
// logged at debug level.
type LogReporter struct {
	logger *logging.Logger
}

// NewLogReporter creates a reporter writing to logger, or to the global
// logger when logger is nil.
func NewLogReporter(logger *logging.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

func (r *LogReporter) log() *logging.Logger {
	if r.logger == nil {
		return logging.Global()
	}
	return r.logger
}

func (r *LogReporter) ComparisonStarted(info ComparisonInfo) {
	r.log().Info("comparison started",
		"a", info.PathA,
		"b", info.PathB,
		"width", info.Width,
		"height", info.Height,
		"frame_size", util.FormatBytes(uint64(info.FrameSize)),
		"file_size", util.FormatBytes(uint64(info.FileSize)),
		"frames", info.TotalFrames)
}

func (r *LogReporter) FrameProgress(progress FrameProgress) {
	r.log().Debug("frame compared",
		"frame", progress.Frame,
		"total", progress.TotalFrames,
		"sse", progress.TotalSquaredError)
}

func (r *LogReporter) ComparisonComplete(result ComparisonResult) {
	if !result.Reported {
		r.log().Info("comparison complete, no frames compared")
		return
	}
	r.log().Info("comparison complete",
		"frames", result.Frames,
		"samples", result.Samples,
		"sse", result.TotalSquaredError,
		"psnr", result.PSNR)
}

func (r *LogReporter) Error(err ReporterError) {
	r.log().Error("comparison failed", "kind", err.Kind.String(), "message", err.Message)
}
