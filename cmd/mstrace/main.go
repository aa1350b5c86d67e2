// mstrace computes Kruskal minimum spanning trees and their step-by-step traces.
//
// Usage:
//
//	mstrace run      <graph.json|graph.yaml>... [--verify] [--steps] [-o json|yaml]
//	mstrace replay   <graph> [--speed 2] [--delay 1s]
//	mstrace validate <graph>
//	mstrace gen      --topology complete --size 6 [--seed 1] [--min 1 --max 10]
package main

import (
	"fmt"
	"os"
)

func main() {
	root, a := newRootCmd()
	if err := a.execute(root); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
