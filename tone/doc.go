// Package tone synthesizes short 16-bit test signals.
//
// Four shapes are available (sine, sawtooth, square and triangle). A Tone
// is gated off after Gate, so a file longer than the gate ends in silence.
// Grid returns the fixed set of tones written by the sinegen command.
package tone
