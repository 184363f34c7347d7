package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
)

var (
	// ErrMissingField is returned when a required descriptor field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrConflictingFields is returned when both a fixed install directory
	// and a discovery command are configured.
	ErrConflictingFields = errors.New("conflicting fields")
	// ErrInvalidField is returned for a field with an unusable value.
	ErrInvalidField = errors.New("invalid field")
	// ErrUnsupportedFormat is returned for a metadata file binstage cannot read.
	ErrUnsupportedFormat = errors.New("unsupported metadata format")
)

// BinarySpec describes the binary to provision. It is built once at startup
// and not modified afterwards.
type BinarySpec struct {
	// Name is the executable file name, both in the staging tree and in the
	// installation directory.
	Name string
	// InstallDir is a fixed installation directory, relative to the working
	// directory or absolute.
	InstallDir string
	// InstallDirCommand is a command whose trimmed stdout is the installation
	// directory, e.g. "npm prefix -g".
	InstallDirCommand string
	// ToolName prefixes staged artifact directories (<tool>_<os>_<arch>).
	// Defaults to Name.
	ToolName string
	// ArchLabels overrides the staged directory label per architecture
	// family ("386", "amd64", "arm64").
	ArchLabels map[string]string
	// Source is the metadata file the spec was read from.
	Source string
}

// StagingName returns the tool name used in staged artifact directory names.
func (s *BinarySpec) StagingName() string {
	if s.ToolName != "" {
		return s.ToolName
	}
	return s.Name
}

// Validate checks that the spec is complete enough to install or uninstall.
func (s *BinarySpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: binary name", ErrMissingField)
	}
	if s.Name == "." || s.Name == ".." || s.Name != filepath.Base(s.Name) || strings.ContainsAny(s.Name, `/\`) {
		return fmt.Errorf("%w: binary name %q must be a file name, not a path", ErrInvalidField, s.Name)
	}

	hasDir := strings.TrimSpace(s.InstallDir) != ""
	hasCmd := strings.TrimSpace(s.InstallDirCommand) != ""
	switch {
	case !hasDir && !hasCmd:
		return fmt.Errorf("%w: install directory (set a path or a discovery command)", ErrMissingField)
	case hasDir && hasCmd:
		return fmt.Errorf("%w: install directory and install directory command are mutually exclusive", ErrConflictingFields)
	}

	for family, label := range s.ArchLabels {
		if !platform.IsArchFamily(family) {
			return fmt.Errorf("%w: arch label override for unknown architecture %q", ErrInvalidField, family)
		}
		if strings.TrimSpace(label) == "" || strings.ContainsAny(label, `/\`) {
			return fmt.Errorf("%w: arch label %q for %s", ErrInvalidField, label, family)
		}
	}

	return nil
}

// ParseError represents a metadata parsing error with friendly message.
type ParseError struct {
	Message string // User-friendly message
	Detail  string // Technical details
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// FormatError formats a ParseError for user display.
// In verbose mode the full detail, including any Lua stack traceback, is kept.
func FormatError(err error, verbose bool) string {
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		return err.Error()
	}
	if verbose {
		return fmt.Sprintf("%s\n\nDetails:\n%s", parseErr.Message, parseErr.Detail)
	}
	detail := parseErr.Detail
	if idx := strings.Index(detail, "stack traceback"); idx > 0 {
		detail = strings.TrimSpace(detail[:idx])
	}
	return fmt.Sprintf("%s: %s", parseErr.Message, detail)
}
