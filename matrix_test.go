package spectshow

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neurlang/spectshow/internal/testutil"
)

func TestParseMatrixShape(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		rows, cols int
	}{
		{"single cell", "1.5\n", 1, 1},
		{"no trailing newline", "1 2 3\n4 5 6", 2, 3},
		{"producer trailing spaces", "-12.00 3.50 \n0.00 1.25 \n", 2, 2},
		{"tabs and runs of spaces", "1\t2   3\n  4 5\t\t6\n", 2, 3},
		{"blank lines skipped", "\n1 2\n\n3 4\n\n", 2, 2},
		{"eight by sixteen zeros", testutil.MatrixText(8, 16, testutil.Zero), 8, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ParseMatrix(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("ParseMatrix() error = %v", err)
			}
			rows, cols := m.Dims()
			if rows != tt.rows || cols != tt.cols {
				t.Errorf("Dims() = %d×%d, want %d×%d", rows, cols, tt.rows, tt.cols)
			}
		})
	}
}

func TestParseMatrixValues(t *testing.T) {
	m, err := ParseMatrix(strings.NewReader("1 -2.5\n3e2 NaN\n"))
	if err != nil {
		t.Fatal(err)
	}
	if m.At(0, 1) != -2.5 || m.At(1, 0) != 300 || !math.IsNaN(m.At(1, 1)) {
		t.Errorf("unexpected values %v", m.Rows)
	}
	min, max, ok := m.Range()
	if !ok || min != -2.5 || max != 300 {
		t.Errorf("Range() = %v, %v, %v, want -2.5, 300, true", min, max, ok)
	}
}

func TestParseMatrixRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"only blank lines", "\n  \n\t\n", ErrEmpty},
		{"jagged", "1 2 3\n4 5\n", ErrJagged},
		{"jagged wider", "1\n2 3\n", ErrJagged},
		{"word token", "1 2\n3 four\n", ErrNotNumber},
		{"comma separated", "1,2\n", ErrNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatrix(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseMatrix() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMatrixRangeNonFinite(t *testing.T) {
	m := &Matrix{Rows: [][]float64{{math.NaN(), math.Inf(1)}}}
	if _, _, ok := m.Range(); ok {
		t.Error("Range() ok = true for a matrix without finite values")
	}
}

func TestLoadMatrix(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "spec.txt")
	if err := testutil.WriteMatrix(path, 4, 3, func(r, c int) float64 { return float64(r*3 + c) }); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMatrix(path)
	if err != nil {
		t.Fatalf("LoadMatrix() error = %v", err)
	}
	if m.At(3, 2) != 11 {
		t.Errorf("At(3, 2) = %v, want 11", m.At(3, 2))
	}

	var le *LoadError
	_, err = LoadMatrix(filepath.Join(dir, "missing.txt"))
	if !errors.As(err, &le) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want *LoadError wrapping fs.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("1 2\n3 x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadMatrix(bad)
	if !errors.As(err, &le) || le.Kind != KindSpectrogram || !errors.Is(err, ErrNotNumber) {
		t.Errorf("error = %v, want spectrogram *LoadError wrapping ErrNotNumber", err)
	}
}
