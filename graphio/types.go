package graphio

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/mstrace/kruskal"
)

// Sentinel errors. Use errors.Is to branch.
var (
	ErrNoEdges       = errors.New("graphio: no edges provided")
	ErrEmptyNode     = errors.New("graphio: empty node identifier")
	ErrBadWeight     = errors.New("graphio: weight must be a finite number > 0")
	ErrUnknownFormat = errors.New("graphio: unknown format")
)

// Format names a wire encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document is the on-disk / on-wire graph description.
type Document struct {
	Edges []kruskal.Edge `json:"edges" yaml:"edges"`
}

// Report is the full output of one run, ready for encoding.
type Report struct {
	Success    bool                 `json:"success" yaml:"success"`
	MSTEdges   []kruskal.Edge       `json:"mst_edges" yaml:"mst_edges"`
	TotalCost  float64              `json:"total_cost" yaml:"total_cost"`
	Statistics kruskal.Statistics   `json:"statistics" yaml:"statistics"`
	Steps      []kruskal.StepRecord `json:"steps" yaml:"steps"`
}

// Summary describes a validated graph without running it.
type Summary struct {
	IsValid     bool           `json:"is_valid" yaml:"is_valid"`
	Message     string         `json:"message" yaml:"message"`
	Nodes       []string       `json:"nodes" yaml:"nodes"`
	EdgesCount  int            `json:"edges_count" yaml:"edges_count"`
	SortedEdges []kruskal.Edge `json:"sorted_edges,omitempty" yaml:"sorted_edges,omitempty"`
}

// ParseFormat maps "json", "yaml" and "yml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", ErrUnknownFormat
	}
}

// FormatFromPath picks a Format from a file extension; unknown extensions
// fall back to JSON.
func FormatFromPath(path string) Format {
	if f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), ".")); err == nil {
		return f
	}

	return FormatJSON
}
