// Command spectshow plots a WAV waveform above a precomputed spectrogram.
//
// The spectrogram is a text matrix with one spectral frame per line and one
// whitespace separated value per frequency bin, as written by common
// spectrogram dumpers. Both panels are drawn on a single page.
//
// Usage:
//
//	spectshow [flags] <in_wav> <in_txt> <out_pdf>
//
// Flags:
//
//	-axes physical|index   label axes in seconds and hertz, or in frame and bin numbers
//	-frame-interval 10ms   time between spectrogram rows
//	-dft 0                 DFT size for bin spacing, 0 spreads bins up to Nyquist
//	-colorbar=true         draw a color legend under the spectrogram
//	-reproducible          pin document timestamps to the Unix epoch
//
// The input WAV must be 16-bit linear PCM. The output format follows the
// extension of out_pdf (pdf, svg, eps or png) and defaults to PDF. On
// success the command prints "Generated <FORMAT>: <out_pdf>".
//
// Any call without exactly three paths, -h included, prints the usage and
// exits 1.
package main
