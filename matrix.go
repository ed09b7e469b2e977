package spectshow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// maxLine bounds a single spectrogram row; wide DFTs produce long lines.
const maxLine = 16 << 20

// Matrix is a rectangular grid of spectrogram values. Each row is one
// spectral frame and each column one frequency bin.
type Matrix struct {
	Rows [][]float64
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	if len(m.Rows) == 0 {
		return 0, 0
	}
	return len(m.Rows), len(m.Rows[0])
}

// At returns the value at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.Rows[r][c]
}

// Range returns the smallest and largest finite values. ok is false when the
// matrix holds no finite value.
func (m *Matrix) Range() (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, row := range m.Rows {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

// LoadMatrix reads an ASCII spectrogram file.
func LoadMatrix(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindSpectrogram, Path: path, Err: err}
	}
	defer f.Close()

	m, err := ParseMatrix(f)
	if err != nil {
		return nil, &LoadError{Kind: KindSpectrogram, Path: path, Err: err}
	}
	return m, nil
}

// ParseMatrix parses one row per line of whitespace separated floats.
// Blank lines are skipped. The returned error wraps ErrEmpty, ErrJagged or
// ErrNotNumber.
func ParseMatrix(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var m Matrix
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(m.Rows) > 0 && len(fields) != len(m.Rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d",
				ErrJagged, line, len(fields), len(m.Rows[0]))
		}
		row := make([]float64, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%w: line %d: %q", ErrNotNumber, line, tok)
			}
			row[i] = v
		}
		m.Rows = append(m.Rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.Rows) == 0 {
		return nil, ErrEmpty
	}
	return &m, nil
}
