package reporter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"
	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// TerminalOptions controls TerminalReporter output.
type TerminalOptions struct {
	// Progress shows a frame progress bar. It is only drawn on a terminal.
	Progress bool
	// NoColor disables colored diagnostics.
	NoColor bool
}

// TerminalReporter writes diagnostics, and optionally a progress bar, to a
// terminal stream (normally stderr). Failures produce exactly one line.
type TerminalReporter struct {
	mu           sync.Mutex
	w            io.Writer
	showProgress bool
	colorize     bool
	progress     *progressbar.ProgressBar
	red          *color.Color
	bold         *color.Color
}

// NewTerminalReporter creates a terminal reporter writing to w.
func NewTerminalReporter(w io.Writer, opts TerminalOptions) *TerminalReporter {
	tty := isTerminal(w)
	r := &TerminalReporter{
		w:            w,
		showProgress: opts.Progress && tty,
		colorize:     !opts.NoColor && tty,
		red:          color.New(color.FgRed, color.Bold),
		bold:         color.New(color.Bold),
	}
	if r.colorize {
		r.red.EnableColor()
		r.bold.EnableColor()
	} else {
		r.red.DisableColor()
		r.bold.DisableColor()
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *TerminalReporter) finishProgress() {
	if r.progress != nil {
		_ = r.progress.Finish()
		r.progress = nil
	}
}

func (r *TerminalReporter) ComparisonStarted(info ComparisonInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finishProgress()
	if !r.showProgress || info.TotalFrames <= 0 {
		return
	}

	r.progress = progressbar.NewOptions64(
		info.TotalFrames,
		progressbar.OptionSetDescription(fmt.Sprintf("%dx%d", info.Width, info.Height)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(r.colorize),
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "Comparing [",
			BarEnd:        "]",
		}),
	)
}

func (r *TerminalReporter) FrameProgress(progress FrameProgress) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.progress == nil {
		return
	}
	_ = r.progress.Set64(progress.Frame)
}

func (r *TerminalReporter) ComparisonComplete(ComparisonResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.finishProgress()
}

// Error prints a single diagnostic line. Usage errors are printed as the
// usage synopsis, everything else is prefixed with "ERROR:".
func (r *TerminalReporter) Error(err ReporterError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.finishProgress()
	if err.Kind == perrors.KindUsage {
		_, _ = r.bold.Fprintln(r.w, err.Message)
		return
	}
	_, _ = r.red.Fprintf(r.w, "ERROR: %s.\n", err.Message)
}
