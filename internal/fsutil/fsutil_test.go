package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	if err := WriteFileAtomic(path, []byte("first")); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second")); err != nil {
		t.Fatalf("WriteFileAtomic() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("content = %q, want %q", got, "second")
	}
	assertOnlyFile(t, dir, "out.pdf")
}

func TestWriteAtomicFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")
	boom := errors.New("boom")

	err := WriteAtomic(path, func(f *os.File) error {
		if _, err := f.Write([]byte("partial")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteAtomic() error = %v, want %v", err, boom)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("destination exists after failed write: %v", err)
	}
	assertOnlyFile(t, dir)
}

func TestWriteAtomicFailureKeepsPrevious(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(path, []byte("previous"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteAtomic(path, func(f *os.File) error { return errors.New("boom") })
	if err == nil {
		t.Fatal("WriteAtomic() error = nil")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "previous" {
		t.Errorf("content = %q, want %q", got, "previous")
	}
}

func TestWriteAtomicPendingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.wav")

	err := WriteAtomic(path, func(f *os.File) error {
		if got := filepath.Dir(f.Name()); got != dir {
			t.Errorf("pending file in %q, want %q", got, dir)
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("destination visible before replace: %v", err)
		}
		_, err := f.Write([]byte("RIFF"))
		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm()&0600 != 0600 {
		t.Errorf("mode = %v, want owner read and write", fi.Mode())
	}
	assertOnlyFile(t, dir, "out.wav")
}

func TestWriteAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.pdf")
	if err := WriteFileAtomic(path, []byte("x")); err == nil {
		t.Error("WriteFileAtomic() error = nil for a missing directory")
	}
}

func assertOnlyFile(t *testing.T, dir string, names ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(names) {
		var got []string
		for _, e := range entries {
			got = append(got, e.Name())
		}
		t.Fatalf("directory holds %v, want %v", got, names)
	}
	for i, e := range entries {
		if e.Name() != names[i] {
			t.Errorf("entry %d = %q, want %q", i, e.Name(), names[i])
		}
	}
}
