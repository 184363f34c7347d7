package platform

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedArchitecture is returned for a CPU architecture with no
	// staged artifact label.
	ErrUnsupportedArchitecture = errors.New("unsupported architecture")
	// ErrUnsupportedOS is returned for an operating system outside
	// linux, darwin and windows.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)

// archAliases maps raw identifiers reported by Go, Node and uname to their
// canonical family.
var archAliases = map[string]string{
	"386":     Arch386,
	"ia32":    Arch386,
	"x86":     Arch386,
	"i386":    Arch386,
	"i686":    Arch386,
	"amd64":   ArchAMD64,
	"x64":     ArchAMD64,
	"x86_64":  ArchAMD64,
	"arm64":   ArchARM64,
	"aarch64": ArchARM64,
}

// defaultArchLabels is the directory-name label for each family. This
// naming is shared with the release step that stages the binaries.
var defaultArchLabels = map[string]string{
	Arch386:   "386",
	ArchAMD64: "amd64",
	ArchARM64: "arm64",
}

// NormalizeArch converts a raw architecture identifier to its canonical family.
func NormalizeArch(arch string) (string, error) {
	if family, ok := archAliases[strings.ToLower(strings.TrimSpace(arch))]; ok {
		return family, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedArchitecture, arch)
}

// ValidateOS reports whether os is one of the supported operating systems.
func ValidateOS(os string) error {
	switch os {
	case OSLinux, OSDarwin, OSWindows:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOS, os)
	}
}

// ResolveArchitectureLabel returns the staged artifact label for a raw
// architecture identifier. Overrides are keyed by canonical family and take
// precedence over the default table.
func ResolveArchitectureLabel(arch string, overrides map[string]string) (string, error) {
	family, err := NormalizeArch(arch)
	if err != nil {
		return "", err
	}
	if label, ok := overrides[family]; ok && label != "" {
		return label, nil
	}
	return defaultArchLabels[family], nil
}

// IsArchFamily reports whether name is a canonical architecture family.
func IsArchFamily(name string) bool {
	_, ok := defaultArchLabels[name]
	return ok
}

func normalizeDistro(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
