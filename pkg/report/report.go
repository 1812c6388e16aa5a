// Package report renders parsed SEM header parameters for the console and
// serializes them to structured JSON or YAML documents.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"semio/pkg/header"
)

// Format selects the structured dump encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSON, YAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown dump format %q (want json or yaml)", s)
	}
}

// Render writes the parameters as readable text. With grouped set, output is
// nested under the fixed group headings; otherwise every parameter is listed
// in header appearance order. Either way the output is deterministic for a
// given parse result.
func Render(w io.Writer, p *header.Params, grouped bool) error {
	if grouped {
		for _, g := range p.Grouped() {
			if _, err := fmt.Fprintf(w, "%s parameters:\n", g.Name); err != nil {
				return err
			}
			for _, name := range g.Names {
				v, err := p.Get(name)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "\t%s = %s\n", name, v); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		return nil
	}

	for _, name := range p.Names() {
		v, err := p.Get(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", name, v); err != nil {
			return err
		}
	}
	return nil
}

// DumpOptions controls Dump.
type DumpOptions struct {
	// Format is the document encoding; empty means JSON.
	Format Format

	// Grouped mirrors the grouped view instead of the full mapping.
	Grouped bool

	// ImagePath, when non-empty, is recorded under the top-level key
	// "image_path" so the document identifies its source image.
	ImagePath string
}

// Dump writes the parameter mapping to path as a structured UTF-8 document.
// Measurements are encoded as {value, unit} objects and text parameters as
// plain strings, so an external re-load reproduces the mapping exactly.
func Dump(path string, p *header.Params, opts DumpOptions) error {
	doc := Document(p, opts)

	var data []byte
	var err error
	switch opts.Format {
	case YAML:
		data, err = yaml.Marshal(doc)
	case JSON, "":
		data, err = json.MarshalIndent(doc, "", "  ")
	default:
		return fmt.Errorf("unknown dump format %q", opts.Format)
	}
	if err != nil {
		return fmt.Errorf("encoding parameters: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating dump directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing dump file: %w", err)
	}
	return nil
}

// Document builds the serializable form of the parameter mapping: name to
// encoded value, nested one level deeper per group when Grouped is set.
func Document(p *header.Params, opts DumpOptions) map[string]any {
	doc := make(map[string]any)

	if opts.Grouped {
		for _, g := range p.Grouped() {
			group := make(map[string]any, len(g.Names))
			for _, name := range g.Names {
				if v, err := p.Get(name); err == nil {
					group[name] = encodeValue(v)
				}
			}
			doc[g.Name] = group
		}
	} else {
		for _, name := range p.Names() {
			if v, err := p.Get(name); err == nil {
				doc[name] = encodeValue(v)
			}
		}
	}

	if opts.ImagePath != "" {
		doc["image_path"] = opts.ImagePath
	}
	return doc
}

func encodeValue(v header.Value) any {
	switch v := v.(type) {
	case header.Measurement:
		return map[string]any{"value": v.Magnitude, "unit": v.Unit}
	default:
		return v.String()
	}
}
