// Package testutil builds deterministic audio and spectrogram fixtures for tests.
package testutil

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// Sine returns n samples of a sine at freqHz sampled at rate, scaled to amp.
func Sine(freqHz float64, rate int, amp float64, n int) []int16 {
	out := make([]int16, n)
	step := 2 * math.Pi * freqHz / float64(rate)
	for i := range out {
		out[i] = int16(amp * math.Sin(step*float64(i)))
	}
	return out
}

// Ramp returns n samples counting up from start.
func Ramp(start int16, n int) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = start + int16(i)
	}
	return out
}

// MatrixText renders a rows×cols grid where every cell is fn(r, c).
func MatrixText(rows, cols int, fn func(r, c int) float64) string {
	var b strings.Builder
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&b, "%.2f ", fn(r, c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteMatrix writes a rows×cols grid of fn(r, c) to path.
func WriteMatrix(path string, rows, cols int, fn func(r, c int) float64) error {
	return os.WriteFile(path, []byte(MatrixText(rows, cols, fn)), 0644)
}

// Zero is a MatrixText cell function returning 0.
func Zero(int, int) float64 { return 0 }
