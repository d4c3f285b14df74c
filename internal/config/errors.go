// Package config provides runtime settings for psnr.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidBool indicates an environment switch that is not a boolean.
	ErrInvalidBool = errors.New("invalid boolean value")

	// ErrInvalidPeak indicates a peak sample value outside 1-65535.
	ErrInvalidPeak = errors.New("peak sample value out of range")
)
