package project

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kastheco/axl/internal/atomicfile"
	"gopkg.in/yaml.v3"
)

// Format is the serialization of a projects or group file, chosen by extension.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// LoadConfigProjectDirectory reads the root projects file.
func LoadConfigProjectDirectory(path string) (*ConfigProjectDirectory, error) {
	var d ConfigProjectDirectory
	if err := decodeFile(path, &d); err != nil {
		return nil, err
	}
	d.SourcePath = path
	return &d, nil
}

// LoadProjectGroupFile reads a group file. Group files are read fresh on
// every reference.
func LoadProjectGroupFile(path string) (*ProjectGroupFile, error) {
	var g ProjectGroupFile
	if err := decodeFile(path, &g); err != nil {
		return nil, err
	}
	g.SourcePath = path
	return &g, nil
}

func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ConfigIOError{Path: path, Err: err}
	}
	switch FormatOf(path) {
	case FormatTOML:
		if _, err := toml.Decode(string(data), v); err != nil {
			return &ConfigIOError{Path: path, Err: err}
		}
	default:
		if err := yaml.Unmarshal(data, v); err != nil {
			return &ConfigIOError{Path: path, Err: err}
		}
	}
	return nil
}

// Marshal renders the root file in the format of its SourcePath.
func (d *ConfigProjectDirectory) Marshal() ([]byte, error) {
	if FormatOf(d.SourcePath) == FormatTOML {
		doc := map[string]interface{}{
			"projects_directory": d.ProjectsDirectory,
			"include":            d.Include.tomlValue(),
		}
		return encodeTOML(doc)
	}
	return encodeYAML(d)
}

// Marshal renders the group file in the format of its SourcePath.
func (g *ProjectGroupFile) Marshal() ([]byte, error) {
	if FormatOf(g.SourcePath) == FormatTOML {
		doc := map[string]interface{}{
			"include": g.Include.tomlValue(),
		}
		if len(g.Tags) > 0 {
			doc["tags"] = []string(g.Tags)
		}
		return encodeTOML(doc)
	}
	return encodeYAML(g)
}

// Save rewrites the root file in place, keeping its permissions.
func (d *ConfigProjectDirectory) Save() error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := atomicfile.Save(d.SourcePath, data, atomicfile.PermOf(d.SourcePath, 0o644)); err != nil {
		return &ConfigIOError{Path: d.SourcePath, Err: err}
	}
	return nil
}

func encodeYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeTOML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalYAML decodes an include list: scalars are group file paths,
// mappings are projects.
func (inc *Include) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: include must be a list", node.Line)
	}
	items := make(Include, 0, len(node.Content))
	for _, child := range node.Content {
		switch child.Kind {
		case yaml.ScalarNode:
			var path string
			if err := child.Decode(&path); err != nil {
				return err
			}
			if path == "" {
				return fmt.Errorf("line %d: empty group file path", child.Line)
			}
			items = append(items, GroupFile(path))
		case yaml.MappingNode:
			for i := 0; i+1 < len(child.Content); i += 2 {
				if key := child.Content[i]; !isProjectKey(key.Value) {
					return fmt.Errorf("line %d: unknown project key %q", key.Line, key.Value)
				}
			}
			var p ConfigProject
			if err := child.Decode(&p); err != nil {
				return err
			}
			if p.Remote == "" {
				return fmt.Errorf("line %d: project is missing a remote", child.Line)
			}
			items = append(items, p)
		default:
			return fmt.Errorf("line %d: include entries must be a path or a project", child.Line)
		}
	}
	*inc = items
	return nil
}

func (inc Include) MarshalYAML() (interface{}, error) {
	out := make([]interface{}, 0, len(inc))
	for _, item := range inc {
		switch item := item.(type) {
		case GroupFile:
			out = append(out, string(item))
		case ConfigProject:
			out = append(out, item)
		default:
			return nil, fmt.Errorf("unknown include item %T", item)
		}
	}
	return out, nil
}

// UnmarshalTOML accepts both an inline array and an array of tables.
func (inc *Include) UnmarshalTOML(data interface{}) error {
	var raw []interface{}
	switch v := data.(type) {
	case []interface{}:
		raw = v
	case []map[string]interface{}:
		for _, m := range v {
			raw = append(raw, m)
		}
	default:
		return fmt.Errorf("include must be an array, got %T", data)
	}

	items := make(Include, 0, len(raw))
	for i, entry := range raw {
		switch entry := entry.(type) {
		case string:
			if entry == "" {
				return fmt.Errorf("include[%d]: empty group file path", i)
			}
			items = append(items, GroupFile(entry))
		case map[string]interface{}:
			p, err := projectFromTOML(entry)
			if err != nil {
				return fmt.Errorf("include[%d]: %w", i, err)
			}
			items = append(items, p)
		default:
			return fmt.Errorf("include[%d]: entries must be a path or a project, got %T", i, entry)
		}
	}
	*inc = items
	return nil
}

func isProjectKey(key string) bool {
	switch key {
	case "remote", "name", "tags":
		return true
	}
	return false
}

func projectFromTOML(m map[string]interface{}) (ConfigProject, error) {
	var p ConfigProject
	for key, value := range m {
		switch key {
		case "remote", "name":
			s, ok := value.(string)
			if !ok {
				return p, fmt.Errorf("%s must be a string", key)
			}
			if key == "remote" {
				p.Remote = s
			} else {
				p.Name = s
			}
		case "tags":
			list, ok := value.([]interface{})
			if !ok {
				return p, fmt.Errorf("tags must be an array of strings")
			}
			for _, v := range list {
				s, ok := v.(string)
				if !ok {
					return p, fmt.Errorf("tags must be an array of strings")
				}
				p.Tags = append(p.Tags, s)
			}
		default:
			return p, fmt.Errorf("unknown project key %q", key)
		}
	}
	if p.Remote == "" {
		return p, fmt.Errorf("project is missing a remote")
	}
	return p, nil
}

func (inc Include) tomlValue() []interface{} {
	out := make([]interface{}, 0, len(inc))
	for _, item := range inc {
		switch item := item.(type) {
		case GroupFile:
			out = append(out, string(item))
		case ConfigProject:
			m := map[string]interface{}{"remote": item.Remote}
			if item.Name != "" {
				m["name"] = item.Name
			}
			if len(item.Tags) > 0 {
				m["tags"] = []string(item.Tags)
			}
			out = append(out, m)
		}
	}
	return out
}
