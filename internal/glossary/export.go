// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v3"
)

// ExportEntry is one acronym with its definitions, as written by export.
type ExportEntry struct {
	Acronym     string   `json:"acronym" yaml:"acronym"`
	Definitions []string `json:"definitions" yaml:"definitions"`
}

// Entries returns the glossary as an ordered list of export entries.
func (g *Glossary) Entries() []ExportEntry {
	entries := make([]ExportEntry, 0, g.Len())
	for k, defs := range g.All() {
		entries = append(entries, ExportEntry{Acronym: k, Definitions: defs})
	}
	return entries
}

// ExportYAML writes the normalized glossary to w as a YAML list.
func ExportYAML(w io.Writer, g *Glossary) error {
	data, err := yaml.Marshal(g.Entries())
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes the normalized glossary to w as an indented JSON list.
func ExportJSON(w io.Writer, g *Glossary) error {
	data, err := json.MarshalIndent(g.Entries(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ExportFile writes the glossary to path in the given format (yaml or json).
func ExportFile(path, format string, g *Glossary) error {
	var export func(io.Writer, *Glossary) error
	switch format {
	case "yaml", "":
		export = ExportYAML
	case "json":
		export = ExportJSON
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := export(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
