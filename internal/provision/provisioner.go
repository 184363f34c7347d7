package provision

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ZebulonRouseFrantzich/binstage/internal/config"
	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
)

// DefaultStagingRoot is where the release build leaves staged binaries.
const DefaultStagingRoot = "dist"

// Options configures a Provisioner.
type Options struct {
	// Spec describes the binary. Required.
	Spec *config.BinarySpec
	// Platform is the host platform. Required for Install.
	Platform platform.Key
	// StagingRoot is the root of the staged artifact tree.
	// Defaults to DefaultStagingRoot.
	StagingRoot string
	// Resolver determines the installation directory. Defaults to
	// NewResolver(Spec).
	Resolver DirectoryResolver
	// Strict makes Uninstall fail with ErrTargetNotFound when nothing is
	// installed. By default that case is logged and ignored.
	Strict bool
	// Logger receives progress messages. Defaults to a no-op logger.
	Logger Logger
}

// Provisioner installs and uninstalls one binary.
type Provisioner struct {
	spec        *config.BinarySpec
	platform    platform.Key
	stagingRoot string
	resolver    DirectoryResolver
	strict      bool
	log         Logger
	id          string
}

// New creates a Provisioner. The spec is validated here so that a bad
// configuration fails before anything touches the filesystem.
func New(opts Options) (*Provisioner, error) {
	if opts.Spec == nil {
		return nil, fmt.Errorf("binary spec is required")
	}
	if err := opts.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid binary spec: %w", err)
	}

	stagingRoot := opts.StagingRoot
	if stagingRoot == "" {
		stagingRoot = DefaultStagingRoot
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = NewResolver(opts.Spec)
	}

	logger := opts.Logger
	if logger == nil {
		logger = noopLogger{}
	}

	id := uuid.New().String()

	return &Provisioner{
		spec:        opts.Spec,
		platform:    opts.Platform,
		stagingRoot: stagingRoot,
		resolver:    resolver,
		strict:      opts.Strict,
		log:         withFields(logger, "binary", opts.Spec.Name, "op", id),
		id:          id,
	}, nil
}

// ID returns the operation ID attached to this provisioner's log entries.
func (p *Provisioner) ID() string {
	return p.id
}

// Run performs cmd.
func (p *Provisioner) Run(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandInstall:
		return p.Install(ctx)
	case CommandUninstall:
		return p.Uninstall(ctx)
	case CommandUnknown:
	}
	return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
}

// StagedArtifactPath returns the path of the staged binary for the host
// platform, <stagingRoot>/<tool>_<os>_<archLabel>/<name>.
func (p *Provisioner) StagedArtifactPath() (string, error) {
	if err := platform.ValidateOS(p.platform.OS); err != nil {
		return "", err
	}
	label, err := platform.ResolveArchitectureLabel(p.platform.Arch, p.spec.ArchLabels)
	if err != nil {
		return "", err
	}

	dir := fmt.Sprintf("%s_%s_%s", p.spec.StagingName(), p.platform.OS, label)
	return filepath.Join(p.stagingRoot, dir, p.spec.Name), nil
}

// InstalledPath resolves the installation directory and returns the path
// of the installed binary inside it.
func (p *Provisioner) InstalledPath(ctx context.Context) (string, error) {
	dir, err := p.resolver.Resolve(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, p.spec.Name), nil
}

// Install copies the staged binary for the host platform into the
// installation directory, creating the directory if needed and replacing
// any existing copy.
func (p *Provisioner) Install(ctx context.Context) error {
	src, err := p.StagedArtifactPath()
	if err != nil {
		return err
	}
	p.log.Debug("Resolved staged binary", "platform", p.platform, "src", src)

	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s (platform %s)", ErrSourceNotFound, src, p.platform)
		}
		return fmt.Errorf("stat staged binary: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%w: %s is not a regular file", ErrSourceNotFound, src)
	}

	dst, err := p.InstalledPath(ctx)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create install dir: %w", err)
	}

	if err := copyExecutable(src, dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("install binary: %w", err)
	}

	p.log.Info("Installed binary", "src", src, "dst", dst, "mode", info.Mode().Perm())
	return nil
}

// Uninstall removes the installed binary. A missing binary is only an
// error in strict mode.
func (p *Provisioner) Uninstall(ctx context.Context) error {
	dst, err := p.InstalledPath(ctx)
	if err != nil {
		return err
	}
	p.log.Info("Removing binary", "path", dst)

	info, err := os.Lstat(dst)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p.targetNotFound(dst)
		}
		return fmt.Errorf("stat installed binary: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("remove binary: %s is a directory", dst)
	}

	if err := os.Remove(dst); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return p.targetNotFound(dst)
		}
		return fmt.Errorf("remove binary: %w", err)
	}

	return nil
}

func (p *Provisioner) targetNotFound(dst string) error {
	err := fmt.Errorf("%w: %s", ErrTargetNotFound, dst)
	if p.strict {
		return err
	}
	p.log.Warn("Nothing to uninstall", "err", err)
	return nil
}
