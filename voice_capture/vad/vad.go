package vad

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// VAD computes the positive spectral flux of successive audio frames. A
// sharp rise in flux marks the onset of speech; a sustained drop back marks
// quiet. The caller owns the onset/quiet thresholds.
type VAD struct {
	frameSize int
	previous  []float64
}

func New(frameSize int) *VAD {
	return &VAD{
		frameSize: frameSize,
	}
}

// Flux returns the sum of positive magnitude changes between this frame's
// spectrum and the previous one. The first frame establishes the baseline
// and yields the frame's total spectral magnitude.
func (v *VAD) Flux(samples []int16) float64 {
	in := make([]float64, len(samples))
	for i, s := range samples {
		in[i] = float64(s) / 32768.0
	}

	spectrum := fft.FFTReal(in)

	// real input: only the first half of the spectrum is informative
	magnitudes := make([]float64, len(spectrum)/2)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(spectrum[i])
	}

	var flux float64

	if v.previous == nil {
		for _, m := range magnitudes {
			flux += m
		}
	} else {
		for i, m := range magnitudes {
			if d := m - v.previous[i]; d > 0 {
				flux += d
			}
		}
	}

	v.previous = magnitudes

	return flux
}
