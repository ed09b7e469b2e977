// Package render draws a waveform panel above a spectrogram panel and
// writes them to a single page document.
//
// A Page holds the layout and axis settings. NewPage returns the defaults
// used by the spectshow command:
//
//	page := render.NewPage()
//	page.Axes = render.Index
//	err := page.Render(wave, matrix, "out.pdf")
//
// The output format follows the file extension: pdf, svg, eps or png.
// Any other extension produces a PDF.
package render
