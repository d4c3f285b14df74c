package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/five82/yuvpsnr/internal/metric"
)

// Environment variables read by FromEnv. The command line is reserved for
// the five positional arguments, so these are the only switches.
const (
	EnvVerbose  = "PSNR_VERBOSE"
	EnvProgress = "PSNR_PROGRESS"
	EnvNoColor  = "NO_COLOR"
)

// DefaultPeak is the peak sample value used for PSNR.
const DefaultPeak = metric.Peak8Bit

// MaxPeak is the largest peak accepted (16-bit samples).
const MaxPeak = 65535.0

// Config holds runtime settings.
type Config struct {
	// Verbose enables debug logging on stderr.
	Verbose bool
	// Progress shows a frame progress bar when stderr is a terminal.
	Progress bool
	// NoColor disables colored diagnostics.
	NoColor bool
	// Peak is the peak sample value used for PSNR.
	Peak float64
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		Peak: DefaultPeak,
	}
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv builds a Config from environment variables. A nil lookup reads the
// process environment. NO_COLOR disables color whenever it is set to a
// non-empty value, following no-color.org.
func FromEnv(lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := NewConfig()

	var err error
	if cfg.Verbose, err = envBool(lookup, EnvVerbose); err != nil {
		return nil, err
	}
	if cfg.Progress, err = envBool(lookup, EnvProgress); err != nil {
		return nil, err
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envBool(lookup LookupFunc, key string) (bool, error) {
	v, ok := lookup(key)
	if !ok {
		return false, nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalidBool, key, v)
	}
	return b, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Peak < 1 || c.Peak > MaxPeak {
		return fmt.Errorf("%w: %v (must be 1-%v)", ErrInvalidPeak, c.Peak, MaxPeak)
	}
	return nil
}
