package graphio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstrace/kruskal"
)

// Decode reads one Document in format f from r. It does not validate.
func Decode(r io.Reader, f Format) (Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("graphio: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return Document{}, fmt.Errorf("graphio: decode yaml: %w", err)
		}
	default:
		return Document{}, fmt.Errorf("graphio: decode %q: %w", f, ErrUnknownFormat)
	}

	return doc, nil
}

// Load opens path, decodes it by extension and validates the result.
func Load(path string) (Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer fh.Close()

	doc, err := Decode(fh, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(doc); err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Encode writes v to w in format f. JSON output is indented.
func Encode(w io.Writer, v interface{}, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("graphio: encode %q: %w", f, ErrUnknownFormat)
	}

	return nil
}

// NewReport packages a run for encoding.
func NewReport(res kruskal.RunResult, stats kruskal.Statistics) Report {
	return Report{
		Success:    true,
		MSTEdges:   res.MSTEdges,
		TotalCost:  res.TotalCost,
		Statistics: stats,
		Steps:      res.Steps,
	}
}

// Summarize validates doc and describes it; an invalid document yields
// IsValid == false with the validation message and no nodes.
func Summarize(doc Document) Summary {
	if err := Validate(doc); err != nil {
		return Summary{IsValid: false, Message: err.Error(), Nodes: []string{}}
	}
	g := kruskal.New(doc.Edges)

	return Summary{
		IsValid:     true,
		Message:     "graph is valid",
		Nodes:       g.Nodes(),
		EdgesCount:  g.EdgeCount(),
		SortedEdges: g.SortedEdges(),
	}
}
