package graph

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// edgeDesire pairs an edge on a Path with the direction that Path wants
// it traversed. Directed edges are always "satisfied" by construction,
// so only the UndirectedEdge entries matter to scoring.
type edgeDesire struct {
	Edge    Edge
	Desired Direction
}

// Path is an ordered, simple source->target walk of length 1..L. Its
// maxWeight and weight-statistics are cached once at construction;
// edge-use statistics are recomputed after every orientation change via
// Refresh.
type Path struct {
	id       PathID
	Vertices []VertexID
	edges    []edgeDesire

	maxWeight float64

	minEdgeWeight, avgEdgeWeight, maxEdgeWeight float64
	minDegree, avgDegree, maxDegree             float64

	minEdgeUse, avgEdgeUse, maxEdgeUse float64
}

// ID returns the path's stable id within the Graph that produced it.
func (p *Path) ID() PathID { return p.id }

// Edges returns the path's edges in traversal order.
func (p *Path) Edges() []Edge {
	out := make([]Edge, len(p.edges))
	for i, d := range p.edges {
		out[i] = d.Edge
	}

	return out
}

// Desired returns the direction this path wants edge id traversed, and
// whether the path uses that edge at all.
func (p *Path) Desired(id EdgeID) (Direction, bool) {
	for _, d := range p.edges {
		if d.Edge.EdgeID() == id {
			return d.Desired, true
		}
	}

	return DirForward, false
}

// MaxWeight is the unattainable-upper-bound weight of this path: the
// product of its edge weights, its vertex weights, and the target
// vertex's target-weight (spec.md §3 "Path").
func (p *Path) MaxWeight() float64 { return p.maxWeight }

// Weight returns the path's weight under the graph's current
// orientation: 0 if any undirected edge on the path is set opposite to
// the path's desired direction, else MaxWeight (spec.md §4.3).
func (p *Path) Weight() float64 {
	if !p.Satisfied() {
		return 0
	}

	return p.maxWeight
}

// Satisfied reports whether every edge on the path currently agrees
// with the path's desired direction (directed edges and unoriented
// edges always agree).
func (p *Path) Satisfied() bool {
	for _, d := range p.edges {
		ue, ok := d.Edge.(*UndirectedEdge)
		if !ok {
			continue // directed edges are fixed in the path's favor by construction
		}
		if !ue.Satisfies(d.Desired) {
			return false
		}
	}

	return true
}

// SatisfiedIfFlipped reports what Satisfied() would return if the
// named undirected edge were hypothetically set to orientation o,
// leaving every other edge as-is. Used by FlipDelta.
func (p *Path) SatisfiedIfFlipped(flip EdgeID, o Orientation) bool {
	for _, d := range p.edges {
		ue, ok := d.Edge.(*UndirectedEdge)
		if !ok {
			continue
		}
		if ue.ID == flip {
			if !ue.SatisfiesIfSetTo(o, d.Desired) {
				return false
			}

			continue
		}
		if !ue.Satisfies(d.Desired) {
			return false
		}
	}

	return true
}

// EdgeWeightStats returns the cached min/avg/max of the path's edge
// weights (spec.md §4.6).
func (p *Path) EdgeWeightStats() (min, avg, max float64) {
	return p.minEdgeWeight, p.avgEdgeWeight, p.maxEdgeWeight
}

// VertexDegreeStats returns the cached min/avg/max degree of the
// path's vertices, computed once at construction time.
func (p *Path) VertexDegreeStats() (min, avg, max float64) {
	return p.minDegree, p.avgDegree, p.maxDegree
}

// EdgeUseStats returns the min/avg/max number of paths (including this
// one) currently using each of this path's undirected edges in its
// current orientation. Directed edges carry no path-association set and
// count as 0 uses. Call Refresh after an orientation change to update it.
func (p *Path) EdgeUseStats() (min, avg, max float64) {
	return p.minEdgeUse, p.avgEdgeUse, p.maxEdgeUse
}

// Refresh recomputes the edge-use statistics against the graph's
// current orientation. The engine calls this after mutating
// orientations when per-path edge-use numbers are needed for output
// ranking (spec.md §4.6).
func (p *Path) Refresh() {
	if len(p.edges) == 0 {
		return
	}

	uses := make([]float64, len(p.edges))
	for i, d := range p.edges {
		uses[i] = float64(edgeUseCount(d.Edge))
	}

	p.minEdgeUse = floats.Min(uses)
	p.maxEdgeUse = floats.Max(uses)
	p.avgEdgeUse = stat.Mean(uses, nil)
}

// edgeUseCount returns how many of e's associated paths want e in a
// direction its present orientation satisfies; whether the rest of each
// path is satisfied is not checked. A directed edge returns 0.
func edgeUseCount(e Edge) int {
	ue, ok := e.(*UndirectedEdge)
	if !ok {
		return 0
	}

	n := 0
	for _, a := range ue.assocs {
		if ue.Satisfies(a.Desired) {
			n++
		}
	}

	return n
}

// computeStats fills in the construction-time caches: maxWeight and the
// edge-weight / vertex-degree statistics.
func (p *Path) computeStats(g *Graph) {
	product := 1.0
	weights := make([]float64, len(p.edges))
	for i, d := range p.edges {
		weights[i] = d.Edge.EdgeWeight()
		product *= weights[i]
	}
	for _, vid := range p.Vertices {
		v, err := g.VertexByID(vid)
		if err == nil {
			product *= v.Weight
		}
	}
	last := p.Vertices[len(p.Vertices)-1]
	if v, err := g.VertexByID(last); err == nil {
		product *= v.TargetWeight
	}
	p.maxWeight = product

	if len(weights) > 0 {
		p.minEdgeWeight = floats.Min(weights)
		p.maxEdgeWeight = floats.Max(weights)
		p.avgEdgeWeight = stat.Mean(weights, nil)
	}

	degrees := make([]float64, len(p.Vertices))
	for i, vid := range p.Vertices {
		degrees[i] = float64(g.Degree(vid, false, false))
	}
	p.minDegree = floats.Min(degrees)
	p.maxDegree = floats.Max(degrees)
	p.avgDegree = stat.Mean(degrees, nil)

	p.Refresh()
}
