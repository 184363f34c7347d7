package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Binary *yamlBinary `yaml:"binary"`
}

type yamlBinary struct {
	Name              string            `yaml:"name"`
	InstallDir        string            `yaml:"install_dir"`
	InstallDirCommand string            `yaml:"install_dir_command"`
	ToolName          string            `yaml:"tool_name"`
	ArchLabels        map[string]string `yaml:"arch_labels"`
}

// parseYAML reads the binary mapping from YAML content. Unknown keys are
// rejected so that typos do not silently fall back to defaults.
func parseYAML(data []byte) (*BinarySpec, error) {
	var file yamlFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, &ParseError{
			Message: "invalid YAML",
			Detail:  err.Error(),
		}
	}
	if file.Binary == nil {
		return nil, fmt.Errorf("%w: binary", ErrMissingField)
	}

	return &BinarySpec{
		Name:              file.Binary.Name,
		InstallDir:        file.Binary.InstallDir,
		InstallDirCommand: file.Binary.InstallDirCommand,
		ToolName:          file.Binary.ToolName,
		ArchLabels:        file.Binary.ArchLabels,
	}, nil
}
