package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/ZebulonRouseFrantzich/binstage/internal/config"
	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
	"github.com/ZebulonRouseFrantzich/binstage/internal/provision"
)

func (a *app) execute(ctx context.Context, command provision.Command, s settings) error {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return usageError{fmt.Errorf("invalid --%s %q", flagLogLevel, s.LogLevel)}
	}
	logger := log.NewWithOptions(a.stderr, log.Options{
		Level:  level,
		Prefix: "binstage",
	})

	if s.InstallDir != "" && s.InstallDirCommand != "" {
		return usageError{fmt.Errorf("%s and %s are mutually exclusive", flagInstallDir, flagInstallDirCommand)}
	}

	key := platform.Key{OS: runtime.GOOS, Arch: runtime.GOARCH}
	info, detectErr := a.detector.Detect(ctx)
	switch {
	case detectErr == nil:
		key = info.Key()
		logger.Debug("Detected platform", "platform", key, "distro", info.Distro, "version", info.Version)
	case command == provision.CommandUninstall && !errors.Is(detectErr, context.Canceled):
		// Uninstall never looks at the staged artifact. Lua metadata still
		// gets the raw runtime values.
		logger.Debug("Platform detection failed", "err", detectErr)
		info = &platform.Info{OS: runtime.GOOS, ArchRaw: runtime.GOARCH}
		detectErr = nil
	default:
		return detectErr
	}

	// Detect once and hand the result to the metadata loader.
	spec, err := config.Load(ctx, s.Metadata, platform.StaticDetector{Info: info, Err: detectErr})
	if err != nil {
		return err
	}
	spec = applyOverrides(spec, s)
	logger.Debug("Loaded binary spec", "source", spec.Source, "name", spec.Name, "tool", spec.StagingName())

	p, err := provision.New(provision.Options{
		Spec:        spec,
		Platform:    key,
		StagingRoot: s.StagingRoot,
		Strict:      s.Strict,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	return p.Run(ctx, command)
}

// applyOverrides returns a copy of spec with the command-line settings
// applied. A directory flag replaces the whole directory policy.
func applyOverrides(spec *config.BinarySpec, s settings) *config.BinarySpec {
	out := *spec
	switch {
	case s.InstallDir != "":
		out.InstallDir = s.InstallDir
		out.InstallDirCommand = ""
	case s.InstallDirCommand != "":
		out.InstallDirCommand = s.InstallDirCommand
		out.InstallDir = ""
	}
	if s.ToolName != "" {
		out.ToolName = s.ToolName
	}
	return &out
}
