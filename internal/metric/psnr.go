// Package metric converts accumulated squared error into PSNR.
package metric

import "math"

const (
	// MaxPSNR is the ceiling applied to every result and the value reported
	// for a zero error.
	MaxPSNR = 100.0

	// Peak8Bit is the largest sample value of 8-bit full-range video.
	Peak8Bit = 255.0
)

// MSEToPSNR returns 10*log10(peak^2 * samples / sse) in decibels, clamped to
// MaxPSNR. sse is the total squared error over samples samples; a
// non-positive sse yields MaxPSNR.
func MSEToPSNR(samples, peak, sse float64) float64 {
	psnr := MaxPSNR
	if sse > 0 {
		psnr = 10 * math.Log10(peak*peak*samples/sse)
	}
	if psnr > MaxPSNR {
		psnr = MaxPSNR
	}
	return psnr
}
