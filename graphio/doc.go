// Package graphio reads, validates and writes graph documents.
//
// It is the validation collaborator that sits in front of package kruskal:
// kruskal trusts its input, graphio makes sure that trust is earned.
//
// Document shape (JSON or YAML):
//
//	edges:
//	  - {source: A, target: B, weight: 1}
//	  - {source: B, target: C, weight: 2}
//
// Validate rejects an empty edge list (ErrNoEdges), empty endpoints
// (ErrEmptyNode) and weights that are not finite and > 0 (ErrBadWeight).
// All per-edge problems are reported together via errors.Join.
package graphio
