// Command sinegen writes a fixed set of short test tones as WAV files.
//
// Every combination of two sample rates (8 kHz and 16 kHz), four shapes
// (sine, sawtooth, square, triangle) and ten frequency/amplitude pairs is
// generated, 80 files in total, named like wave_8k_sine_f440_a1000.wav.
// The file names are also listed per rate in 8k.scp and 16k.scp, ready for
// the cascade command.
//
// Usage:
//
//	sinegen [-dir .] [-duration 100ms] [-gate 100ms]
package main
