//go:build !windows

package provision

import (
	"io"
	"os"

	"github.com/google/renameio/v2"
)

// replaceFile writes r to a temporary file next to dst and renames it over
// dst, so readers never see a truncated binary.
func replaceFile(dst string, r io.Reader, perm os.FileMode) error {
	pf, err := renameio.NewPendingFile(dst, renameio.WithStaticPermissions(perm))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if _, err := io.Copy(pf, r); err != nil {
		return err
	}

	return pf.CloseAtomicallyReplace()
}
