package golatex

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestFile is the file name of a project manifest.
const ManifestFile = "latex.toml"

// ProjectManifest represents a parsed project manifest.
// The UnknownFields contains fields which were found but not expected.
type ProjectManifest struct {
	// Project contains details about the project itself.
	Project ProjectInfo `toml:"project"`
	// Tool is the tools section for third-party configuration.
	Tool ToolInfo `toml:"tool"`
	// UnknownFields contains all parsed but unknown fields for validation.
	UnknownFields map[string]any `toml:"-"`
}

// ProjectInfo represents the [project] key in the manifest.
type ProjectInfo struct {
	// Name is the name of the project.
	Name string `toml:"name"`
	// Main is the path of the document the build starts from.
	Main string `toml:"main"`
	// OutDir is the directory build artifacts go to.
	OutDir string `toml:"out-dir,omitempty"`
	// Bibliographies lists the project's bibliography files.
	Bibliographies []string `toml:"bibliographies,omitempty"`
	// Description is a short description of the project.
	Description *string `toml:"description,omitempty"`
}

// ToolInfo represents the [tool] key in the manifest. It holds one
// free-form section per third-party tool.
type ToolInfo map[string]map[string]any

// ParseProjectManifest parses a manifest from TOML text. Unknown fields
// are collected rather than rejected; Validate reports them.
func ParseProjectManifest(text string) (*ProjectManifest, error) {
	var manifest ProjectManifest
	meta, err := toml.Decode(text, &manifest)
	if err != nil {
		return nil, fmt.Errorf("golatex: invalid manifest: %w", err)
	}

	manifest.UnknownFields = make(map[string]any)
	for _, key := range meta.Undecoded() {
		manifest.UnknownFields[key.String()] = true
	}
	return &manifest, nil
}

// LoadProjectManifest reads and parses the manifest inside the given
// directory.
func LoadProjectManifest(dir string) (*ProjectManifest, error) {
	path := filepath.Join(dir, ManifestFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("golatex: read %s: %w", path, err)
	}
	return ParseProjectManifest(string(content))
}

// Validate ensures that the manifest describes a usable project.
func (m *ProjectManifest) Validate() error {
	if m.Project.Name == "" {
		return fmt.Errorf("golatex: manifest is missing a project name")
	}
	if m.Project.Main == "" {
		return fmt.Errorf("golatex: manifest is missing a main document")
	}
	if !strings.HasSuffix(m.Project.Main, ".tex") {
		return fmt.Errorf("golatex: main document %q is not a .tex file", m.Project.Main)
	}

	if len(m.UnknownFields) > 0 {
		keys := make([]string, 0, len(m.UnknownFields))
		for key := range m.UnknownFields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return fmt.Errorf("golatex: manifest contains unknown fields: %s", strings.Join(keys, ", "))
	}
	return nil
}
