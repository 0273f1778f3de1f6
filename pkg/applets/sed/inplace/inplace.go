// Package inplace implements sed's -i rewrite: run the engine against a
// single file's contents, then swap the result in atomically.
package inplace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rcarmo/go-busybox/pkg/applets/sed/sederr"
	"github.com/rcarmo/go-busybox/pkg/core/fs"
)

// Rewrite calls run with a writer that captures the engine's output,
// then installs the result over path via a temp-file,
// optional-backup, atomic-replace sequence.
func Rewrite(path string, suffix string, followSymlinks bool, run func(w *os.File) error) error {
	realPath := path
	if followSymlinks {
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			realPath = resolved
		}
	}

	dir := filepath.Dir(realPath)
	tmp, err := os.CreateTemp(dir, ".sed-tmp-*")
	if err != nil {
		return &sederr.InPlaceError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if info, err := fs.Stat(realPath); err == nil {
		os.Chmod(tmpPath, info.Mode())
	}

	if err := run(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return &sederr.InPlaceError{Path: path, Err: err}
	}

	if suffix != "" {
		backupPath := backupName(path, suffix)
		if err := fs.Rename(realPath, backupPath); err != nil {
			return &sederr.InPlaceError{Path: path, Err: err}
		}
	}

	if err := fs.Rename(tmpPath, realPath); err != nil {
		return &sederr.InPlaceError{Path: path, Err: err}
	}
	return nil
}

// backupName applies GNU sed's SUFFIX convention: a suffix containing
// "*" substitutes the original basename at each "*"; otherwise the
// suffix is appended to the original path.
func backupName(path, suffix string) string {
	if strings.Contains(suffix, "*") {
		return strings.ReplaceAll(suffix, "*", path)
	}
	return path + suffix
}
