package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
)

// DefaultMetadataFile is read when no metadata path is given.
const DefaultMetadataFile = "package.json"

// Load reads a BinarySpec from the metadata file at path. The format is
// chosen from the file extension. detector is only consulted for Lua files.
//
// Load does not call Validate: command-line overrides may still fill in the
// installation directory.
func Load(ctx context.Context, path string, detector platform.Detector) (*BinarySpec, error) {
	if path == "" {
		path = DefaultMetadataFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var spec *BinarySpec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		spec, err = parseJSON(data)
	case ".yaml", ".yml":
		spec, err = parseYAML(data)
	case ".lua":
		spec, err = NewLuaParser(detector).ParseString(ctx, string(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Base(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	spec.Source = path
	return spec, nil
}
