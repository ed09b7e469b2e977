package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"

	"github.com/neurlang/spectshow"
)

// grid exposes a spectrogram matrix as plotter.GridXYZ. Matrix rows run
// along X (time) and columns along Y (frequency).
type grid struct {
	m      *spectshow.Matrix
	dx, dy float64
}

func (g grid) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return rows, cols
}

func (g grid) Z(c, r int) float64 { return g.m.At(c, r) }
func (g grid) X(c int) float64    { return float64(c) * g.dx }
func (g grid) Y(r int) float64    { return float64(r) * g.dy }

// colorRange returns the dynamic range of the heat map. Flat and
// non-finite matrices get a unit wide range around their value.
func colorRange(m *spectshow.Matrix) (min, max float64) {
	min, max, ok := m.Range()
	if !ok {
		return -0.5, 0.5
	}
	if min == max {
		return min - 0.5, max + 0.5
	}
	return min, max
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// sample picks n evenly spaced colors from cm. The last color is taken at
// exactly cm.Max so rounding never steps past the end of the map.
func sample(cm palette.ColorMap, n int) (palette.Palette, error) {
	min, max := cm.Min(), cm.Max()
	out := make(colors, n)
	for i := range out {
		v := max
		if i < n-1 {
			v = min + (max-min)*float64(i)/float64(n-1)
		}
		c, err := cm.At(math.Min(v, max))
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// scale is a single row of n cells spanning [min, max]. Drawn as a heat
// map it gives a color legend built from vector paths only.
type scale struct {
	min, max float64
	n        int
}

func (s scale) Dims() (c, r int)   { return s.n, 1 }
func (s scale) Z(c, _ int) float64 { return s.X(c) }
func (s scale) X(c int) float64    { return s.min + (s.max-s.min)*(float64(c)+0.5)/float64(s.n) }
func (s scale) Y(int) float64      { return 0 }
