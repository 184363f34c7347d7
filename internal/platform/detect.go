package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect returns the host platform. OS and architecture come from the Go
// runtime; on Linux the distribution is looked up through gopsutil.
//
// A failed distro lookup leaves Distro and Version empty and is not an
// error, since nothing in provisioning depends on them. A cancelled context
// is.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	return detect(ctx, runtime.GOOS, runtime.GOARCH)
}

func detect(ctx context.Context, goos, goarch string) (*Info, error) {
	info := &Info{
		OS:      goos,
		ArchRaw: goarch,
	}

	arch, err := NormalizeArch(goarch)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.Arch = arch

	if goos != OSLinux {
		return info, nil
	}

	distro, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}

	if distro = normalizeDistro(distro); distro != "" {
		info.Distro = distro
		info.Version = normalizeDistro(version)
	}

	return info, nil
}

// StaticDetector returns a fixed Info. The CLI uses it to hand an
// already detected platform to the metadata loader; tests use it to pin
// the platform.
type StaticDetector struct {
	Info *Info
	Err  error
}

// Detect returns the configured info and error.
func (d StaticDetector) Detect(ctx context.Context) (*Info, error) {
	return d.Info, d.Err
}
