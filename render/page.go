package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/neurlang/spectshow"
	"github.com/neurlang/spectshow/internal/fsutil"
)

var (
	ErrNoWaveform    = errors.New("waveform has no sample rate")
	ErrNoMatrix      = errors.New("spectrogram matrix is empty")
	ErrFrameInterval = errors.New("frame interval must be positive")
	ErrDFTSize       = errors.New("DFT size must not be negative")
	ErrAxes          = errors.New("unknown axes mode")
)

// Axes selects how the panels are labeled.
type Axes int

const (
	// Physical puts seconds and hertz on the axes.
	Physical Axes = iota
	// Index puts sample, frame and bin numbers on the axes.
	Index
)

func (a Axes) String() string {
	switch a {
	case Physical:
		return "physical"
	case Index:
		return "index"
	}
	return fmt.Sprintf("Axes(%d)", int(a))
}

// ParseAxes converts "physical" or "index" to an Axes value.
func ParseAxes(s string) (Axes, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical":
		return Physical, nil
	case "index":
		return Index, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrAxes, s)
}

// Page represents the configuration of the rendered document.
type Page struct {
	Width  vg.Length
	Height vg.Length
	Axes   Axes

	// FrameInterval is the time between spectrogram rows.
	FrameInterval time.Duration
	// DFTSize sets the bin spacing to SampleRate/DFTSize. Zero spreads
	// the bins evenly from 0 to the Nyquist frequency.
	DFTSize int

	ColorBar     bool
	LegendHeight vg.Length
	Colors       int

	// Timestamp is stored as the PDF creation and modification date.
	// The zero value means the time of rendering.
	Timestamp time.Time
}

// NewPage creates a new Page with default values.
func NewPage() *Page {
	return &Page{
		Width:         8 * vg.Inch,
		Height:        10 * vg.Inch,
		Axes:          Physical,
		FrameInterval: 10 * time.Millisecond,
		ColorBar:      true,
		LegendHeight:  vg.Inch,
		Colors:        256,
	}
}

// Figure holds the plots making up a page. Legend is nil when the color
// bar is disabled.
type Figure struct {
	Waveform    *plot.Plot
	Spectrogram *plot.Plot
	Legend      *plot.Plot
}

// Figure builds the waveform and spectrogram plots without drawing them.
func (p *Page) Figure(w *spectshow.Waveform, m *spectshow.Matrix) (*Figure, error) {
	if w == nil || w.SampleRate <= 0 {
		return nil, ErrNoWaveform
	}
	if m == nil || len(m.Rows) == 0 || len(m.Rows[0]) == 0 {
		return nil, ErrNoMatrix
	}
	if p.Axes == Physical && p.FrameInterval <= 0 {
		return nil, ErrFrameInterval
	}
	if p.DFTSize < 0 {
		return nil, ErrDFTSize
	}

	wave, err := p.waveform(w)
	if err != nil {
		return nil, err
	}
	spec, legend, err := p.spectrogram(w, m)
	if err != nil {
		return nil, err
	}
	return &Figure{Waveform: wave, Spectrogram: spec, Legend: legend}, nil
}

func (p *Page) waveform(w *spectshow.Waveform) (*plot.Plot, error) {
	xys := make(plotter.XYs, len(w.Samples))
	for i, s := range w.Samples {
		if p.Axes == Physical {
			xys[i].X = w.Time(i)
		} else {
			xys[i].X = float64(i)
		}
		xys[i].Y = float64(s)
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 255, A: 255}
	line.Width = vg.Points(0.5)

	pl := plot.New()
	pl.Title.Text = "Waveform"
	pl.Y.Label.Text = "Amplitude"
	if p.Axes == Physical {
		pl.X.Label.Text = "Time (s)"
	} else {
		pl.X.Label.Text = "Sample"
	}
	pl.Add(line)
	return pl, nil
}

func (p *Page) spectrogram(w *spectshow.Waveform, m *spectshow.Matrix) (*plot.Plot, *plot.Plot, error) {
	g := grid{m: m, dx: 1, dy: 1}
	if p.Axes == Physical {
		_, cols := m.Dims()
		g.dx = p.FrameInterval.Seconds()
		g.dy = p.binSpacing(w.SampleRate, cols)
	}

	cm := moreland.Kindlmann()
	cm.SetMin(0)
	cm.SetMax(1)
	pal, err := sample(cm, p.colors())
	if err != nil {
		return nil, nil, err
	}
	hm := plotter.NewHeatMap(g, pal)
	hm.Min, hm.Max = colorRange(m)
	cs := pal.Colors()
	hm.Underflow = cs[0]
	hm.Overflow = cs[len(cs)-1]
	hm.NaN = color.Gray{Y: 0x80}

	pl := plot.New()
	pl.Title.Text = "Spectrogram"
	if p.Axes == Physical {
		pl.X.Label.Text = "Time (s)"
		pl.Y.Label.Text = "Frequency (Hz)"
	} else {
		pl.X.Label.Text = "Frame"
		pl.Y.Label.Text = "Bin"
	}
	pl.Add(hm)

	if !p.ColorBar {
		return pl, nil, nil
	}
	legend := plot.New()
	legend.HideY()
	legend.X.Padding = 0
	legend.Add(colorLegend(pal, hm.Min, hm.Max))
	return pl, legend, nil
}

// colorLegend draws pal over [min, max] as one row of cells. It is drawn
// with paths rather than an image so every output format can hold it.
func colorLegend(pal palette.Palette, min, max float64) *plotter.HeatMap {
	hm := plotter.NewHeatMap(scale{min: min, max: max, n: len(pal.Colors())}, pal)
	hm.Min, hm.Max = min, max
	return hm
}

// binSpacing returns the width in hertz of one frequency bin.
func (p *Page) binSpacing(rate, cols int) float64 {
	if p.DFTSize > 0 {
		return float64(rate) / float64(p.DFTSize)
	}
	nyquist := float64(rate) / 2
	if cols < 2 {
		return nyquist
	}
	return nyquist / float64(cols-1)
}

func (p *Page) colors() int {
	if p.Colors < 2 {
		return 2
	}
	return p.Colors
}

// pdfMu guards the package level document defaults of fpdf, which are
// read when a PDF canvas is created.
var pdfMu sync.Mutex

// Compose draws the page in memory and returns the encoded document.
// Pages may be composed from several goroutines at once.
func (p *Page) Compose(w *spectshow.Waveform, m *spectshow.Matrix, format string) (data []byte, err error) {
	fig, err := p.Figure(w, m)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			data, err = nil, fmt.Errorf("plot: %v", r)
		}
	}()

	c, err := p.canvas(format)
	if err != nil {
		return nil, err
	}
	p.layout(fig, draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// canvas creates the output canvas. For PDF the creation date, the
// modification date and the catalog order are taken from p, and the fpdf
// defaults are reset once the document exists.
func (p *Page) canvas(format string) (vg.CanvasWriterTo, error) {
	if format != "pdf" {
		return draw.NewFormattedCanvas(p.Width, p.Height, format)
	}
	pdfMu.Lock()
	defer pdfMu.Unlock()
	fpdf.SetDefaultCreationDate(p.Timestamp)
	fpdf.SetDefaultModificationDate(p.Timestamp)
	fpdf.SetDefaultCatalogSort(true)
	defer func() {
		fpdf.SetDefaultCreationDate(time.Time{})
		fpdf.SetDefaultModificationDate(time.Time{})
		fpdf.SetDefaultCatalogSort(false)
	}()
	return draw.NewFormattedCanvas(p.Width, p.Height, format)
}

func (p *Page) layout(fig *Figure, dc draw.Canvas) {
	pad := vg.Inch / 5
	body := dc
	var strip draw.Canvas
	if fig.Legend != nil {
		body = draw.Crop(dc, 0, 0, p.LegendHeight, 0)
		strip = draw.Crop(dc, 0, 0, pad, p.LegendHeight-(dc.Max.Y-dc.Min.Y))
	}

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
		PadY:      2 * pad,
	}
	cs := plot.Align([][]*plot.Plot{{fig.Waveform}, {fig.Spectrogram}}, tiles, body)
	fig.Waveform.Draw(cs[0][0])
	fig.Spectrogram.Draw(cs[1][0])

	if fig.Legend == nil {
		return
	}
	// Line the color bar up with the spectrogram data area.
	da := fig.Spectrogram.DataCanvas(cs[1][0])
	la := fig.Legend.DataCanvas(strip)
	strip.Min.X += da.Min.X - la.Min.X
	strip.Max.X += da.Max.X - la.Max.X
	fig.Legend.Draw(strip)
}

// Render composes the page and writes it to path. The format is chosen by
// the extension of path. Nothing is left at path when rendering fails.
func (p *Page) Render(w *spectshow.Waveform, m *spectshow.Matrix, path string) error {
	data, err := p.Compose(w, m, Format(path))
	if err != nil {
		return &spectshow.RenderError{Path: path, Err: err}
	}
	if err := fsutil.WriteFileAtomic(path, data); err != nil {
		return &spectshow.RenderError{Path: path, Err: err}
	}
	return nil
}

// Format returns the document format for the extension of path.
func Format(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return "svg"
	case ".eps":
		return "eps"
	case ".png":
		return "png"
	}
	return "pdf"
}
