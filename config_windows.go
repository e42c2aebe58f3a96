//go:build windows

package main

import (
	"os"
	"path/filepath"
)

// renameio excludes windows, so the pending file is rebuilt here on top of
// os.Rename, which replaces an existing destination on windows as well.
type windowsPendingFile struct {
	*os.File

	path   string
	done   bool
	closed bool
}

func renameioTempFile(dir, path string) (pendingFile, error) {
	f, err := os.CreateTemp(dir, "."+filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return &windowsPendingFile{File: f, path: path}, nil
}

// Cleanup removes the temp file unless it already replaced the destination.
func (t *windowsPendingFile) Cleanup() error {
	if t.done {
		return nil
	}
	var closeErr error
	if !t.closed {
		closeErr = t.Close()
	}
	if err := os.Remove(t.Name()); err != nil {
		return err
	}
	return closeErr
}

func (t *windowsPendingFile) CloseAtomicallyReplace() error {
	if err := t.Sync(); err != nil {
		return err
	}
	t.closed = true
	if err := t.Close(); err != nil {
		return err
	}
	if err := os.Rename(t.Name(), t.path); err != nil {
		return err
	}
	t.done = true
	return nil
}
