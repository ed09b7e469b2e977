// Package cascade joins short audio files end to end into one WAV file.
//
// Inputs may be PCM WAV or FLAC. Samples are copied as integers, so a
// merge of 16-bit files reproduces every input sample exactly.
package cascade
