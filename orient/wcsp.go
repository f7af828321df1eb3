package orient

import (
	"fmt"
	"io"
	"math"

	"github.com/agitter/meo/graph"
	"github.com/agitter/meo/wcsp"
)

// edgeVarName is the WCSP variable name for conflict edge id, stable
// across Encode/Score within one Engine (spec.md §4.4, §6.4).
func edgeVarName(id graph.EdgeID) string {
	return fmt.Sprintf("E%d", id)
}

// ConflictPaths returns every enumerated path that traverses at least
// one conflict edge (spec.md GLOSSARY "Conflict path"). Non-conflict
// paths are already satisfied by fixing (spec.md §4.4) and need no
// WCSP constraint.
func (e *Engine) ConflictPaths() []*graph.Path {
	conflict := make(map[graph.EdgeID]bool, len(e.conflictEdges))
	for _, id := range e.conflictEdges {
		conflict[id] = true
	}

	var out []*graph.Path
	for _, p := range e.g.Paths() {
		for _, edge := range p.Edges() {
			if conflict[edge.EdgeID()] {
				out = append(out, p)

				break
			}
		}
	}

	return out
}

// EncodeWCSP writes the XCSP 2.1 instance for the current
// conflict-edge/conflict-path set (spec.md §4.4 "Weighted-CSP",
// §6.4). Each conflict edge is one binary variable; each conflict path
// contributes one soft relation whose single allowed tuple is the
// assignment that satisfies it, with defaultCost =
// round(path.MaxWeight() * CostMultiplier). The global maximalCost is
// (CostMultiplier * numConflictPaths) + 1 — effective infinity.
//
// Returns wcsp.ErrZeroArity if a conflict path somehow traverses zero
// conflict edges (spec.md §7 invariant error: "a path reports arity 0
// when treated as a conflict path" — this indicates a bug in
// ConflictPaths/FindConflicts, never a valid input).
func (e *Engine) EncodeWCSP(w io.Writer) error {
	if !e.conflictsRun {
		return ErrConflictsNotFound
	}

	isConflictEdge := make(map[graph.EdgeID]bool, len(e.conflictEdges))
	inst := wcsp.Instance{}
	for _, id := range e.conflictEdges {
		isConflictEdge[id] = true
		inst.Variables = append(inst.Variables, wcsp.Variable{Name: edgeVarName(id)})
	}

	conflictPaths := e.ConflictPaths()
	inst.MaximalCost = CostMultiplier*len(conflictPaths) + 1

	for pi, p := range conflictPaths {
		var varNames []string
		var tuple []int
		for _, edge := range p.Edges() {
			ue, ok := edge.(*graph.UndirectedEdge)
			if !ok {
				continue
			}
			if !isConflictEdge[ue.ID] {
				continue
			}

			desired, _ := p.Desired(ue.ID)
			assignment := 0 // BACKWARD
			if desired == graph.DirForward {
				assignment = 1 // FORWARD
			}
			varNames = append(varNames, edgeVarName(ue.ID))
			tuple = append(tuple, assignment)
		}

		name := fmt.Sprintf("R%d", pi)
		inst.Relations = append(inst.Relations, wcsp.Relation{
			Name:        name,
			Arity:       len(varNames),
			DefaultCost: int(math.Round(p.MaxWeight() * CostMultiplier)),
			Tuple:       tuple,
		})
		inst.Constraints = append(inst.Constraints, wcsp.Constraint{
			Name:         fmt.Sprintf("C%d", pi),
			RelationName: name,
			VarNames:     varNames,
		})
	}

	return wcsp.WriteInstance(w, inst)
}

// ScoreFromSolution applies a WCSP solution line — read by the caller
// via wcsp.ReadSolution — to the conflict edges it names, in
// ConflictEdges() order (spec.md §4.4 "Scoring phase"). sol[i]==1
// means FORWARD, 0 means BACKWARD. Returns ErrSolutionLenMismatch if
// len(sol) != len(ConflictEdges()).
func (e *Engine) ScoreFromSolution(sol []int) error {
	if !e.conflictsRun {
		return ErrConflictsNotFound
	}
	if len(sol) != len(e.conflictEdges) {
		return ErrSolutionLenMismatch
	}

	for i, id := range e.conflictEdges {
		edge, err := e.g.EdgeByID(id)
		if err != nil {
			continue
		}
		ue := edge.(*graph.UndirectedEdge)
		if sol[i] == 1 {
			_ = ue.SetOrientation(graph.Forward)
		} else {
			_ = ue.SetOrientation(graph.Backward)
		}
	}
	for _, p := range e.g.Paths() {
		p.Refresh()
	}
	e.g.GraphStateChanged()

	return nil
}
