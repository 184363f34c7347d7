package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// packageJSON is the subset of an npm package.json binstage reads.
type packageJSON struct {
	GoBinary *struct {
		Name        string            `json:"name"`
		Path        string            `json:"path"`
		PathCommand string            `json:"pathCommand"`
		ToolName    string            `json:"toolName"`
		ArchLabels  map[string]string `json:"archLabels"`
	} `json:"goBinary"`
}

// parseJSON reads the goBinary object from package.json content.
func parseJSON(data []byte) (*BinarySpec, error) {
	var pkg packageJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&pkg); err != nil {
		return nil, &ParseError{
			Message: "invalid JSON",
			Detail:  err.Error(),
		}
	}
	if pkg.GoBinary == nil {
		return nil, fmt.Errorf("%w: goBinary", ErrMissingField)
	}

	return &BinarySpec{
		Name:              pkg.GoBinary.Name,
		InstallDir:        pkg.GoBinary.Path,
		InstallDirCommand: pkg.GoBinary.PathCommand,
		ToolName:          pkg.GoBinary.ToolName,
		ArchLabels:        pkg.GoBinary.ArchLabels,
	}, nil
}
