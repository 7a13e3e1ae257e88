package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kastheco/axl/internal/atomicfile"
)

//go:embed templates
var templates embed.FS

// Values are substituted into the templates.
type Values struct {
	ProjectsDirectory string
	// ProjectsFile is the root projects file; the example group file is
	// written next to it.
	ProjectsFile string
}

// WriteResult tracks scaffold output for summary display.
type WriteResult struct {
	Path    string
	Created bool // true=written, false=skipped (file already existed)
}

// renderTemplate applies all placeholder substitutions to a template.
func renderTemplate(content string, v Values) string {
	rendered := content
	rendered = strings.ReplaceAll(rendered, "{{PROJECTS_FILE}}", v.ProjectsFile)
	rendered = strings.ReplaceAll(rendered, "{{PROJECTS_DIRECTORY}}", v.ProjectsDirectory)
	return rendered
}

// WriteConfig scaffolds config.toml into configDir.
func WriteConfig(configDir string, v Values, force bool) (WriteResult, error) {
	return writeTemplate("config.toml", filepath.Join(configDir, "config.toml"), v, force)
}

// WriteProjects scaffolds the root projects file and an example group file,
// in TOML when the projects file ends in .toml and YAML otherwise.
func WriteProjects(v Values, force bool) ([]WriteResult, error) {
	ext := ".yml"
	if filepath.Ext(v.ProjectsFile) == ".toml" {
		ext = ".toml"
	}
	root, err := writeTemplate("projects"+ext, v.ProjectsFile, v, force)
	if err != nil {
		return nil, err
	}
	example, err := writeTemplate("example"+ext, filepath.Join(filepath.Dir(v.ProjectsFile), "example"+ext), v, force)
	if err != nil {
		return nil, err
	}
	return []WriteResult{root, example}, nil
}

// ScaffoldAll writes every file axl needs to start.
func ScaffoldAll(configDir string, v Values, force bool) ([]WriteResult, error) {
	cfg, err := WriteConfig(configDir, v, force)
	if err != nil {
		return nil, fmt.Errorf("scaffold config: %w", err)
	}
	projects, err := WriteProjects(v, force)
	if err != nil {
		return []WriteResult{cfg}, fmt.Errorf("scaffold projects: %w", err)
	}
	return append([]WriteResult{cfg}, projects...), nil
}

func writeTemplate(name, dest string, v Values, force bool) (WriteResult, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return WriteResult{}, fmt.Errorf("read %s template: %w", name, err)
	}
	written, err := writeFile(dest, []byte(renderTemplate(string(content), v)), force)
	if err != nil {
		return WriteResult{}, err
	}
	return WriteResult{Path: dest, Created: written}, nil
}

func writeFile(path string, content []byte, force bool) (bool, error) {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return false, nil // skip existing
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	return true, atomicfile.Save(path, content, 0o644)
}
