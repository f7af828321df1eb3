package orient

import "github.com/agitter/meo/graph"

// RunLocalSearch performs steepest-ascent edge-flip local search
// (spec.md §4.4 "Local Search"): each round it computes FlipDelta for
// every conflict edge, flips the one with the largest positive delta
// (ties broken by first-in-list edge id), and repeats until the best
// delta is <= 0. GlobalScore is non-decreasing and strictly increases
// each iteration, so the loop terminates in finite steps (spec.md §8
// invariant 5). Returns the total score gained.
func (e *Engine) RunLocalSearch() (float64, error) {
	if !e.conflictsRun {
		return 0, ErrConflictsNotFound
	}

	var gained float64

	for {
		bestDelta := graph.NoFlipSentinel
		var bestEdge graph.EdgeID
		found := false

		for _, id := range e.conflictEdges {
			delta := e.FlipDelta(id)
			if delta > bestDelta {
				bestDelta = delta
				bestEdge = id
				found = true
			}
		}

		if !found || bestDelta <= 0 {
			break
		}

		ue, err := e.g.EdgeByID(bestEdge)
		if err != nil {
			break
		}
		if err := ue.(*graph.UndirectedEdge).Flip(); err != nil {
			break
		}
		for _, p := range e.g.Paths() {
			p.Refresh()
		}
		gained += bestDelta
	}

	e.g.GraphStateChanged()

	return gained, nil
}
