package provision

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/mattn/go-shellwords"

	"github.com/ZebulonRouseFrantzich/binstage/internal/config"
)

// DirectoryResolver determines the installation directory.
type DirectoryResolver interface {
	Resolve(ctx context.Context) (string, error)
}

// FixedDir is a DirectoryResolver that always returns the same path.
type FixedDir string

// Resolve returns the configured path.
func (d FixedDir) Resolve(ctx context.Context) (string, error) {
	if strings.TrimSpace(string(d)) == "" {
		return "", fmt.Errorf("%w: no installation directory configured", ErrDirectoryDiscoveryFailed)
	}
	return string(d), nil
}

// CommandResolver asks an external command, typically the package manager,
// for the installation directory. The command line is split with shell
// quoting rules but is not run through a shell.
type CommandResolver struct {
	Command string
	// Dir is the working directory for the command. Empty means the
	// current directory.
	Dir string
}

// NewCommandResolver creates a resolver for the given command line.
func NewCommandResolver(command string) *CommandResolver {
	return &CommandResolver{Command: command}
}

// Resolve runs the command and returns its stdout with surrounding
// whitespace removed. A failed run or blank output is an error.
func (r *CommandResolver) Resolve(ctx context.Context) (string, error) {
	args, err := shellwords.Parse(r.Command)
	if err != nil {
		return "", fmt.Errorf("%w: parse command %q: %v", ErrDirectoryDiscoveryFailed, r.Command, err)
	}
	if len(args) == 0 {
		return "", fmt.Errorf("%w: empty command", ErrDirectoryDiscoveryFailed)
	}

	display := shellescape.QuoteCommand(args)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := fmt.Sprintf("%s: %v", display, err)
		if detail := strings.TrimSpace(stderr.String()); detail != "" {
			msg += ": " + detail
		}
		return "", fmt.Errorf("%w: %s", ErrDirectoryDiscoveryFailed, msg)
	}

	dir := strings.TrimSpace(stdout.String())
	if dir == "" {
		return "", fmt.Errorf("%w: %s produced no output", ErrDirectoryDiscoveryFailed, display)
	}

	return dir, nil
}

// NewResolver returns the resolver described by spec: a CommandResolver
// when a discovery command is set, otherwise a FixedDir.
func NewResolver(spec *config.BinarySpec) DirectoryResolver {
	if strings.TrimSpace(spec.InstallDirCommand) != "" {
		return NewCommandResolver(spec.InstallDirCommand)
	}
	return FixedDir(spec.InstallDir)
}
