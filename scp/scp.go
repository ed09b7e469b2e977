package scp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/neurlang/spectshow/internal/fsutil"
)

// Parse reads one entry per line. Surrounding whitespace is trimmed and
// blank lines are skipped.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads the list at path. Relative entries are resolved against the
// directory holding the list.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i, e := range entries {
		if !filepath.IsAbs(e) {
			entries[i] = filepath.Join(dir, e)
		}
	}
	return entries, nil
}

// Write writes entries one per line.
func Write(w io.Writer, entries []string) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes entries to path, replacing any previous list.
func Save(path string, entries []string) error {
	var buf bytes.Buffer
	if err := Write(&buf, entries); err != nil {
		return err
	}
	return fsutil.WriteFileAtomic(path, buf.Bytes())
}
