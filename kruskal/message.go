package kruskal

import (
	"fmt"
	"strconv"
)

// stepMessage renders the human-readable rationale attached to a StepRecord.
func stepMessage(e Edge, s Status, total float64) string {
	w := formatWeight(e.Weight)
	if s == StatusSelected {
		return fmt.Sprintf(
			"accept edge %s → %s (weight %s) | reason: %s and %s lie in different components, no cycle is formed | total cost: %s",
			e.Source, e.Target, w, e.Source, e.Target, formatWeight(total))
	}

	return fmt.Sprintf(
		"reject edge %s → %s (weight %s) | reason: cycle, %s and %s are already in the same component | total cost: %s",
		e.Source, e.Target, w, e.Source, e.Target, formatWeight(total))
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}
