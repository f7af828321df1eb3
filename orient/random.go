package orient

import "github.com/agitter/meo/graph"

// RunRandom assigns each conflict edge Forward or Backward
// independently and uniformly at random, using the Engine's injected
// *rand.Rand (spec.md §4.4 "Random"). FindConflicts must have run.
func (e *Engine) RunRandom() error {
	if !e.conflictsRun {
		return ErrConflictsNotFound
	}

	for _, id := range e.conflictEdges {
		ue, err := e.g.EdgeByID(id)
		if err != nil {
			continue
		}
		undirected := ue.(*graph.UndirectedEdge)
		if e.rng.Intn(2) == 0 {
			_ = undirected.SetOrientation(graph.Forward)
		} else {
			_ = undirected.SetOrientation(graph.Backward)
		}
	}
	for _, p := range e.g.Paths() {
		p.Refresh()
	}
	e.g.GraphStateChanged()

	return nil
}

// RunRandomSearch repeats RunRandom followed by RunLocalSearch restarts
// times, keeping the best-scoring configuration found and restoring it
// before returning. A restarts value below 1 is treated as 1.
func (e *Engine) RunRandomSearch(restarts int) error {
	if restarts < 1 {
		restarts = 1
	}

	var best []graph.Orientation
	bestScore := graph.NoFlipSentinel

	for i := 0; i < restarts; i++ {
		if err := e.RunRandom(); err != nil {
			return err
		}
		if _, err := e.RunLocalSearch(); err != nil {
			return err
		}

		score := e.GlobalScore()
		if score > bestScore {
			bestScore = score
			best = e.Save()
		}
	}

	if best != nil {
		e.Load(best)
	}

	return nil
}
