// Package fsutil writes output files so that a failed run never leaves a
// partial file at the destination.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

const perm = 0644

// WriteAtomic calls fill with a pending file created next to path and,
// when fill succeeds, replaces path with it. On any failure the pending
// file is removed and path is left untouched.
func WriteAtomic(path string, fill func(f *os.File) error) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(perm),
	)
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := fill(pf.File); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}

// WriteFileAtomic writes data to path.
func WriteFileAtomic(path string, data []byte) error {
	return renameio.WriteFile(path, data, perm, renameio.WithTempDir(filepath.Dir(path)))
}
