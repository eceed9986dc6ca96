package util

import (
	"fmt"
	"io"
	"os"
)

// CopyFile copies srcPath to dstPath, replacing any existing file.
func CopyFile(srcPath, dstPath string) (err error) {
	fin, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer fin.Close()

	fout, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fout.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", dstPath, cerr)
		}
	}()

	if _, err = io.Copy(fout, fin); err != nil {
		return fmt.Errorf("copying %s: %w", srcPath, err)
	}
	return nil
}
