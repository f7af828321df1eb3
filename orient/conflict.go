package orient

import "github.com/agitter/meo/graph"

// FindConflicts classifies every undirected edge by its current
// path-association set (spec.md §4.2):
//
//   - empty               -> unused, left Unoriented.
//   - all paths agree     -> fixed to that direction.
//   - otherwise           -> a conflict edge, appended to ConflictEdges.
//
// Only conflict edges participate in the orientation algorithms.
// FindConflicts must run once per FindPaths call before Random,
// RandomSearch, LocalSearch, or the WCSP phases.
func (e *Engine) FindConflicts() {
	e.conflictEdges = e.conflictEdges[:0]

	for _, ue := range e.g.UndirectedEdges() {
		assocs := ue.Assocs()
		if len(assocs) == 0 {
			continue // unused: leave Unoriented
		}

		want := assocs[0].Desired
		uniform := true
		for _, a := range assocs[1:] {
			if a.Desired != want {
				uniform = false

				break
			}
		}

		if uniform {
			if want == graph.DirForward {
				ue.Fix(graph.FixedForward)
			} else {
				ue.Fix(graph.FixedBackward)
			}

			continue
		}

		e.conflictEdges = append(e.conflictEdges, ue.EdgeID())
	}

	e.conflictsRun = true
	e.g.GraphStateChanged()
}
