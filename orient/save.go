package orient

import "github.com/agitter/meo/graph"

// Save snapshots the current Orientation of every conflict edge, in
// ConflictEdges order. Pairs with Load to satisfy spec.md §8 invariant
// 6: "save ; mutate ; load restores the exact orientation vector and
// hence the exact globalScore."
func (e *Engine) Save() []graph.Orientation {
	out := make([]graph.Orientation, len(e.conflictEdges))
	for i, id := range e.conflictEdges {
		if edge, err := e.g.EdgeByID(id); err == nil {
			out[i] = edge.(*graph.UndirectedEdge).State
		}
	}

	return out
}

// Load restores a previously Save()d orientation vector. states must
// have been produced by Save() against the same conflict-edge list;
// Load does not validate length and silently ignores excess/short
// vectors beyond the shorter of the two.
func (e *Engine) Load(states []graph.Orientation) {
	n := len(e.conflictEdges)
	if len(states) < n {
		n = len(states)
	}

	for i := 0; i < n; i++ {
		edge, err := e.g.EdgeByID(e.conflictEdges[i])
		if err != nil {
			continue
		}
		ue := edge.(*graph.UndirectedEdge)
		ue.State = states[i]
	}
	for _, p := range e.g.Paths() {
		p.Refresh()
	}
	e.g.GraphStateChanged()
}
