package reporter

import (
	"bytes"
	"strings"
	"testing"

	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/five82/yuvpsnr/internal/logging"
)

type recorder struct {
	events []string
}

func (r *recorder) ComparisonStarted(ComparisonInfo)    { r.events = append(r.events, "started") }
func (r *recorder) FrameProgress(FrameProgress)         { r.events = append(r.events, "frame") }
func (r *recorder) ComparisonComplete(ComparisonResult) { r.events = append(r.events, "complete") }
func (r *recorder) Error(ReporterError)                 { r.events = append(r.events, "error") }

func TestTerminalReporterErrorLine(t *testing.T) {
	tests := []struct {
		name string
		err  ReporterError
		want string
	}{
		{
			name: "usage",
			err:  ReporterError{Kind: perrors.KindUsage, Message: "Usage: ./psnr <yuv_file1> <yuv_file2> <width> <height> <max_frames>"},
			want: "Usage: ./psnr <yuv_file1> <yuv_file2> <width> <height> <max_frames>\n",
		},
		{
			name: "args",
			err:  ReporterError{Kind: perrors.KindArgs, Message: "invalid frame size 0x2"},
			want: "ERROR: invalid frame size 0x2.\n",
		},
		{
			name: "file open",
			err:  ReporterError{Kind: perrors.KindFileOpen, Message: "unable to open input file b.yuv"},
			want: "ERROR: unable to open input file b.yuv.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewTerminalReporter(&buf, TerminalOptions{Progress: true})
			r.Error(tt.err)
			if got := buf.String(); got != tt.want {
				t.Errorf("Error() wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTerminalReporterSilentOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, TerminalOptions{Progress: true})

	r.ComparisonStarted(ComparisonInfo{Width: 2, Height: 2, FrameSize: 6, FileSize: 12, TotalFrames: 2})
	r.FrameProgress(FrameProgress{Frame: 1, TotalFrames: 2})
	r.FrameProgress(FrameProgress{Frame: 2, TotalFrames: 2})
	r.ComparisonComplete(ComparisonResult{Frames: 2, Samples: 12, PSNR: 100, Reported: true})

	if buf.Len() != 0 {
		t.Errorf("non-terminal writer received %q", buf.String())
	}
}

func TestCompositeReporter(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	c := NewCompositeReporter(a, nil, b)

	c.ComparisonStarted(ComparisonInfo{})
	c.FrameProgress(FrameProgress{})
	c.ComparisonComplete(ComparisonResult{})
	c.Error(ReporterError{})

	want := "started,frame,complete,error"
	for i, r := range []*recorder{a, b} {
		if got := strings.Join(r.events, ","); got != want {
			t.Errorf("reporter %d events = %q, want %q", i, got, want)
		}
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf, Enabled: true})
	r := NewLogReporter(logger)

	r.ComparisonStarted(ComparisonInfo{PathA: "a.yuv", PathB: "b.yuv", Width: 2, Height: 2, FrameSize: 6, FileSize: 12, TotalFrames: 2})
	r.FrameProgress(FrameProgress{Frame: 1, TotalFrames: 2, TotalSquaredError: 49})
	r.ComparisonComplete(ComparisonResult{Frames: 1, Samples: 6, TotalSquaredError: 49, PSNR: 40.9, Reported: true})
	r.Error(ReporterError{Kind: perrors.KindFileSize, Message: "sizes differ"})

	out := buf.String()
	for _, want := range []string{
		"comparison started", "a=a.yuv", "frame_size=\"6 B\"",
		"frame compared", "sse=49",
		"comparison complete", "psnr=40.9",
		"comparison failed", "kind=\"File size error\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogReporterNoFrames(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelInfo, Output: &buf, Enabled: true})
	NewLogReporter(logger).ComparisonComplete(ComparisonResult{})

	if !strings.Contains(buf.String(), "no frames compared") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestNullReporter(t *testing.T) {
	var r Reporter = NullReporter{}
	r.ComparisonStarted(ComparisonInfo{})
	r.FrameProgress(FrameProgress{})
	r.ComparisonComplete(ComparisonResult{})
	r.Error(ReporterError{})
}
