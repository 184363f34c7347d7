// Package platform identifies the host operating system and CPU architecture
// and maps them onto the labels used by staged release artifacts.
//
// Detection uses runtime.GOOS and runtime.GOARCH for the platform key and
// gopsutil for Linux distribution details, which are informational only.
// The same information is exposed to Lua metadata files as a read-only
// platform table.
package platform

import "context"

// Supported operating systems.
const (
	OSLinux   = "linux"
	OSDarwin  = "darwin"
	OSWindows = "windows"
)

// Canonical architecture families.
const (
	Arch386   = "386"
	ArchAMD64 = "amd64"
	ArchARM64 = "arm64"
)

// Key identifies a platform by operating system and raw architecture.
type Key struct {
	OS   string
	Arch string // raw runtime identifier, e.g. "x64", "amd64", "aarch64"
}

// String returns the key as "os/arch".
func (k Key) String() string {
	return k.OS + "/" + k.Arch
}

// Info contains platform detection information.
type Info struct {
	OS      string // "linux", "darwin", "windows"
	Arch    string // canonical family: "386", "amd64", "arm64"
	ArchRaw string // original GOARCH
	Distro  string // distro ID (Linux only, e.g. "ubuntu")
	Version string // distro version (Linux only, e.g. "22.04")
}

// Key returns the platform key for i.
func (i *Info) Key() Key {
	arch := i.ArchRaw
	if arch == "" {
		arch = i.Arch
	}
	return Key{OS: i.OS, Arch: arch}
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == OSLinux
}

// IsMacOS returns true if the platform is macOS.
func (i *Info) IsMacOS() bool {
	return i.OS == OSDarwin
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == OSWindows
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
