package provision

import (
	"fmt"
	"os"
)

// copyExecutable copies src to dst byte for byte and gives dst the
// permission bits perm. An existing dst is replaced.
func copyExecutable(src, dst string, perm os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source %q: %w", src, err)
	}
	defer in.Close()

	if err := replaceFile(dst, in, perm); err != nil {
		return fmt.Errorf("copy %q to %q: %w", src, dst, err)
	}
	return nil
}
