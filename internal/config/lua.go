package config

import (
	"context"
	"fmt"

	"github.com/ZebulonRouseFrantzich/binstage/internal/platform"
	lua "github.com/yuin/gopher-lua"
)

// Lua field names. YAML uses the same keys.
const (
	luaGlobal              = "binstage"
	fieldName              = "name"
	fieldInstallDir        = "install_dir"
	fieldInstallDirCommand = "install_dir_command"
	fieldToolName          = "tool_name"
	fieldArchLabels        = "arch_labels"
)

// LuaParser reads a BinarySpec from a Lua script.
type LuaParser struct {
	detector platform.Detector
}

// NewLuaParser creates a parser that injects the platform table from
// detector. A nil detector skips injection.
func NewLuaParser(detector platform.Detector) *LuaParser {
	return &LuaParser{detector: detector}
}

// ParseString parses Lua source and extracts the binstage table.
func (p *LuaParser) ParseString(ctx context.Context, luaCode string) (*BinarySpec, error) {
	L := newSandboxedVM()
	defer L.Close()
	L.SetContext(ctx)

	if p.detector != nil {
		info, err := p.detector.Detect(ctx)
		if err != nil {
			return nil, fmt.Errorf("platform detection failed: %w", err)
		}
		if err := platform.InjectPlatformTable(L, info); err != nil {
			return nil, fmt.Errorf("inject platform table: %w", err)
		}
	}

	if err := L.DoString(luaCode); err != nil {
		return nil, &ParseError{
			Message: "Lua error",
			Detail:  err.Error(),
		}
	}

	return extractSpec(L)
}

// extractSpec reads the global binstage table. Non-string values are
// ignored so that platform conditionals evaluating to nil leave a field unset.
func extractSpec(L *lua.LState) (*BinarySpec, error) {
	global := L.GetGlobal(luaGlobal)
	table, ok := global.(*lua.LTable)
	if !ok {
		return nil, &ParseError{
			Message: fmt.Sprintf("missing or invalid '%s' table", luaGlobal),
			Detail:  fmt.Sprintf("expected table, got %s", global.Type()),
		}
	}

	spec := &BinarySpec{
		Name:              luaString(table, fieldName),
		InstallDir:        luaString(table, fieldInstallDir),
		InstallDirCommand: luaString(table, fieldInstallDirCommand),
		ToolName:          luaString(table, fieldToolName),
	}

	if labels, ok := table.RawGetString(fieldArchLabels).(*lua.LTable); ok {
		spec.ArchLabels = map[string]string{}
		labels.ForEach(func(k, v lua.LValue) {
			if k.Type() == lua.LTString && v.Type() == lua.LTString {
				spec.ArchLabels[k.String()] = v.String()
			}
		})
	}

	return spec, nil
}

func luaString(table *lua.LTable, field string) string {
	if v := table.RawGetString(field); v.Type() == lua.LTString {
		return v.String()
	}
	return ""
}
