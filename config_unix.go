//go:build !windows

package main

import "github.com/google/renameio"

func renameioTempFile(dir, path string) (pendingFile, error) {
	return renameio.TempFile(dir, path)
}
