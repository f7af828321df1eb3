package orient

import "github.com/agitter/meo/graph"

// GlobalScore is the sum of Weight() over every enumerated path
// (spec.md §4.3).
func (e *Engine) GlobalScore() float64 {
	var total float64
	for _, p := range e.g.Paths() {
		total += p.Weight()
	}

	return total
}

// MaxGlobalScore is the sum of MaxWeight() over every enumerated path:
// the unattainable upper bound GlobalScore never exceeds (spec.md
// §4.3, invariant 3).
func (e *Engine) MaxGlobalScore() float64 {
	var total float64
	for _, p := range e.g.Paths() {
		total += p.MaxWeight()
	}

	return total
}

// FlipDelta returns the change in GlobalScore that would result from
// flipping conflict edge id (spec.md §4.3):
//
//	flipDelta(e) = sum(maxWeight of paths that would switch 0->max)
//	             - sum(maxWeight of paths that currently use e and would break)
//
// FlipDelta does not mutate e; it only inspects the edge's current
// path-association set against its current and hypothetical state.
func (e *Engine) FlipDelta(id graph.EdgeID) float64 {
	ue, err := e.g.EdgeByID(id)
	if err != nil {
		return 0
	}
	undirected, ok := ue.(*graph.UndirectedEdge)
	if !ok {
		return 0
	}

	opposite := oppositeOrientation(undirected.State)

	var gain, loss float64
	for _, p := range e.g.Paths() {
		if !pathUsesEdge(p, id) {
			continue
		}

		before := p.Weight()
		afterSatisfied := p.SatisfiedIfFlipped(id, opposite)
		after := 0.0
		if afterSatisfied {
			after = p.MaxWeight()
		}

		if before == 0 && after > 0 {
			gain += after
		} else if before > 0 && after == 0 {
			loss += before
		}
	}

	return gain - loss
}

// oppositeOrientation returns the non-fixed orientation opposite o,
// treating Unoriented as Forward's opposite (Backward), matching the
// "choose the other of the two live states" semantics FlipDelta needs.
func oppositeOrientation(o graph.Orientation) graph.Orientation {
	switch o {
	case graph.Forward:
		return graph.Backward
	case graph.Backward, graph.Unoriented:
		return graph.Forward
	default:
		return o
	}
}

func pathUsesEdge(p *graph.Path, id graph.EdgeID) bool {
	for _, e := range p.Edges() {
		if e.EdgeID() == id {
			return true
		}
	}

	return false
}
