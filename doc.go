// Package spectshow loads the two inputs of the spectshow tool.
//
// A Waveform is read from an uncompressed 16-bit linear PCM WAV file and a
// Matrix is read from a whitespace separated ASCII spectrogram, one spectral
// frame per line. Both loaders read the whole input into memory and fail with
// a *LoadError describing the offending file. The render package turns the
// pair into a two panel page.
package spectshow
