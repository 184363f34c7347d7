//go:build windows

package provision

import (
	"io"
	"os"
)

// replaceFile truncates dst and rewrites it in place. Windows cannot rename
// over a file that may be open, so there is no atomic swap here.
func replaceFile(dst string, r io.Reader, perm os.FileMode) error {
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, r); err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, perm)
}
