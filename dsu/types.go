package dsu

import "errors"

// ErrUnknownNode indicates Find/Union/Rank was called with a node that is not
// part of the set. It is raised via panic: a caller bug, not an input problem.
var ErrUnknownNode = errors.New("dsu: unknown node")

// ErrDuplicateNode indicates New received the same node twice.
var ErrDuplicateNode = errors.New("dsu: duplicate node")

// ComponentMap maps every node to a dense component id.
// Ids are assigned 0,1,2,... in order of first encounter while walking nodes
// in their construction order.
type ComponentMap map[string]int

// Groups returns the number of distinct component ids in m.
func (m ComponentMap) Groups() int {
	seen := make(map[int]struct{}, len(m))
	for _, id := range m {
		seen[id] = struct{}{}
	}

	return len(seen)
}
