// Package cli implements the psnr command line.
package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/five82/yuvpsnr/internal/clip"
	"github.com/five82/yuvpsnr/internal/compare"
	"github.com/five82/yuvpsnr/internal/config"
	perrors "github.com/five82/yuvpsnr/internal/errors"
	"github.com/five82/yuvpsnr/internal/logging"
	"github.com/five82/yuvpsnr/internal/reporter"
	"github.com/five82/yuvpsnr/internal/util"
	"github.com/spf13/cobra"
)

const defaultProgName = "psnr"

// NewRootCommand builds the psnr command. prog is the name the program was
// invoked as and appears in the usage line. Flag parsing is disabled: the
// command takes exactly five positional values, and a negative width such
// as "-4" must reach the argument check instead of being read as a flag.
func NewRootCommand(prog string, cfg *config.Config, stdout io.Writer, rep reporter.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   filepath.Base(prog) + " " + clip.Synopsis,
		Short: "Compute the overall PSNR of two raw YUV 4:2:0 clips",
		Long: `Compute the overall PSNR of two raw planar YUV 4:2:0 clips.

Both files must be the same size and hold only whole frames of
width*height*3/2 bytes. At most max_frames frames are compared and the
result is printed in decibels with three decimals.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := clip.ParseArgs(prog, args)
			if err != nil {
				compare.ReportError(rep, err)
				return err
			}

			res, err := compare.Run(compare.Request{
				PathA:      parsed.PathA,
				PathB:      parsed.PathB,
				Descriptor: parsed.Descriptor,
				Peak:       cfg.Peak,
			}, rep)
			if err != nil {
				return err
			}

			if res.Reported {
				_, _ = fmt.Fprintln(stdout, util.FormatDecibels(res.PSNR))
			}
			return nil
		},
	}
}

// Run executes the command line argv (program name first) and returns the
// process exit status. lookup reads configuration from the environment.
func Run(argv []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	prog := defaultProgName
	args := []string{}
	if len(argv) > 0 {
		prog = argv[0]
		args = argv[1:]
	}

	cfg, err := config.FromEnv(lookup)
	if err != nil {
		// A malformed switch must not change the exit status contract.
		cfg = config.NewConfig()
	}

	var rep reporter.Reporter = reporter.NewTerminalReporter(stderr, reporter.TerminalOptions{
		Progress: cfg.Progress,
		NoColor:  cfg.NoColor,
	})
	if cfg.Verbose {
		logging.Init(logging.LevelDebug, stderr)
		defer logging.SetGlobal(nil)
		rep = reporter.NewCompositeReporter(rep, reporter.NewLogReporter(nil))
	}

	cmd := NewRootCommand(prog, cfg, stdout, rep)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return perrors.ExitCode(cmd.Execute())
}
