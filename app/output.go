package app

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kastheco/axl/project"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how list-style commands print their results.
type OutputFormat string

const (
	OutputDebug   OutputFormat = "debug"
	OutputJSON    OutputFormat = "json"
	OutputJSONRaw OutputFormat = "json-raw"
	OutputYAML    OutputFormat = "yaml"
	OutputCSV     OutputFormat = "csv"
)

// OutputFormats lists the accepted --output values.
func OutputFormats() []OutputFormat {
	return []OutputFormat{OutputDebug, OutputJSON, OutputJSONRaw, OutputYAML, OutputCSV}
}

// ParseOutputFormat validates s. The empty string means debug.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return OutputDebug, nil
	}
	for _, f := range OutputFormats() {
		if string(f) == s {
			return f, nil
		}
	}
	names := make([]string, 0, len(OutputFormats()))
	for _, f := range OutputFormats() {
		names = append(names, string(f))
	}
	return "", fmt.Errorf("unknown output format %q, expected one of %s", s, strings.Join(names, ", "))
}

// writeStructured handles the formats shared by every command. It reports
// false for debug and csv, which callers render themselves.
func writeStructured(w io.Writer, format OutputFormat, v interface{}) (bool, error) {
	switch format {
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case OutputJSONRaw:
		data, err := json.Marshal(v)
		if err != nil {
			return true, err
		}
		_, err = fmt.Fprintln(w, string(data))
		return true, err
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	}
	return false, nil
}

func writeProjects(w io.Writer, format OutputFormat, projects []project.ResolvedProject) error {
	if projects == nil {
		projects = []project.ResolvedProject{}
	}
	if done, err := writeStructured(w, format, projects); done {
		return err
	}

	if format == OutputCSV {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"name", "remote", "path", "tags"}); err != nil {
			return err
		}
		for _, p := range projects {
			if err := cw.Write([]string{p.Name, p.Remote, p.Path, strings.Join(p.Tags, ";")}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	// debugProject drops the String method so %+v prints every field.
	type debugProject project.ResolvedProject
	for _, p := range projects {
		if _, err := fmt.Fprintf(w, "%+v\n", debugProject(p)); err != nil {
			return err
		}
	}
	return nil
}

func writeTags(w io.Writer, format OutputFormat, tags project.TagSet) error {
	if tags == nil {
		tags = project.TagSet{}
	}
	if done, err := writeStructured(w, format, tags); done {
		return err
	}

	if format == OutputCSV {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"tag"}); err != nil {
			return err
		}
		for _, t := range tags {
			if err := cw.Write([]string{t}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	}

	for _, t := range tags {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}
