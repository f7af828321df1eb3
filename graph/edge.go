package graph

// Edge is the capability set shared by DirectedEdge and UndirectedEdge
// (see spec.md §9 "Polymorphic edge"): endpoints, weight, an
// orientation query, and whether the orientation can still change.
// Only UndirectedEdge exposes the mutation capability; engine code
// type-switches on the concrete type to reach it.
type Edge interface {
	EdgeID() EdgeID
	From() VertexID
	To() VertexID
	EdgeWeight() float64
	IsDirected() bool
	IsFixed() bool
}

// DirectedEdge is a fixed source->target edge. It is always oriented
// and never participates in conflict detection.
type DirectedEdge struct {
	ID       EdgeID
	Src      VertexID
	Dst      VertexID
	Weight   float64
	SrcName  string
	DstName  string
}

// EdgeID returns the edge's stable id.
func (e *DirectedEdge) EdgeID() EdgeID { return e.ID }

// From returns the edge's source vertex.
func (e *DirectedEdge) From() VertexID { return e.Src }

// To returns the edge's destination vertex.
func (e *DirectedEdge) To() VertexID { return e.Dst }

// EdgeWeight returns the edge's weight in (0,1].
func (e *DirectedEdge) EdgeWeight() float64 { return e.Weight }

// IsDirected always returns true for a DirectedEdge.
func (e *DirectedEdge) IsDirected() bool { return true }

// IsFixed always returns true: a directed edge's orientation never changes.
func (e *DirectedEdge) IsFixed() bool { return true }

// UndirectedEdge is an edge between two endpoints whose direction is
// assigned by the orientation engine. Assocs is the path-association
// set: for every Path that passes through this edge, the direction
// that path wants it oriented. It is the sole mechanism an edge uses
// to compute current edge-use counts and flip deltas.
type UndirectedEdge struct {
	ID      EdgeID
	A       VertexID
	B       VertexID
	Weight  float64
	AName   string
	BName   string
	State   Orientation
	assocs  []PathAssoc
}

// EdgeID returns the edge's stable id.
func (e *UndirectedEdge) EdgeID() EdgeID { return e.ID }

// From returns endpoint A. For an UndirectedEdge "From"/"To" only carry
// meaning relative to a traversal direction; callers that need the
// edge's current orientation should use State or Satisfies.
func (e *UndirectedEdge) From() VertexID { return e.A }

// To returns endpoint B.
func (e *UndirectedEdge) To() VertexID { return e.B }

// EdgeWeight returns the edge's weight in (0,1].
func (e *UndirectedEdge) EdgeWeight() float64 { return e.Weight }

// IsDirected always returns false for an UndirectedEdge.
func (e *UndirectedEdge) IsDirected() bool { return false }

// IsFixed reports whether the edge's orientation is terminal.
func (e *UndirectedEdge) IsFixed() bool { return e.State.IsFixed() }

// Other returns the endpoint opposite v, or -1 if v is not an endpoint.
func (e *UndirectedEdge) Other(v VertexID) VertexID {
	switch v {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return -1
	}
}

// DesiredDirectionFrom reports the Direction a traversal leaving v
// along this edge corresponds to.
func (e *UndirectedEdge) DesiredDirectionFrom(v VertexID) Direction {
	if v == e.A {
		return DirForward
	}

	return DirBackward
}

// Satisfies reports whether direction d agrees with the edge's current
// state. An edge that is still Unoriented satisfies every direction
// (spec.md §4.3: "unoriented edges count as satisfying the path").
func (e *UndirectedEdge) Satisfies(d Direction) bool {
	switch e.State {
	case Unoriented:
		return true
	case Forward, FixedForward:
		return d == DirForward
	case Backward, FixedBackward:
		return d == DirBackward
	default:
		return false
	}
}

// SatisfiesIfSetTo reports whether direction d would be satisfied if
// the edge were (hypothetically) set to Forward/Backward o. Used by
// FlipDelta to test a flip without mutating state.
func (e *UndirectedEdge) SatisfiesIfSetTo(o Orientation, d Direction) bool {
	switch o {
	case Forward, FixedForward:
		return d == DirForward
	case Backward, FixedBackward:
		return d == DirBackward
	default:
		return true
	}
}

// Flip inverts a non-fixed edge's orientation (Forward<->Backward). A
// still-Unoriented edge becomes Forward. Returns ErrFixedOrientation if
// the edge is FIXED.
func (e *UndirectedEdge) Flip() error {
	switch e.State {
	case Unoriented, Backward:
		e.State = Forward
	case Forward:
		e.State = Backward
	default:
		return ErrFixedOrientation
	}

	return nil
}

// SetOrientation assigns a non-fixed orientation explicitly (Forward or
// Backward). Returns ErrFixedOrientation if the edge is already FIXED.
func (e *UndirectedEdge) SetOrientation(o Orientation) error {
	if e.State.IsFixed() {
		return ErrFixedOrientation
	}
	e.State = o

	return nil
}

// Fix permanently locks the edge to FixedForward or FixedBackward,
// mapping a plain Forward/Backward to its fixed counterpart.
func (e *UndirectedEdge) Fix(o Orientation) {
	switch o {
	case Forward, FixedForward:
		e.State = FixedForward
	case Backward, FixedBackward:
		e.State = FixedBackward
	}
}

// addAssoc registers that path p wants this edge oriented in direction d.
func (e *UndirectedEdge) addAssoc(p PathID, d Direction) {
	e.assocs = append(e.assocs, PathAssoc{Path: p, Desired: d})
}

// clearAssocs drops all path associations, called when a path set is
// discarded by a fresh FindPaths run.
func (e *UndirectedEdge) clearAssocs() {
	e.assocs = e.assocs[:0]
}

// Assocs returns the edge's current path-association set. Callers must
// not mutate the returned slice.
func (e *UndirectedEdge) Assocs() []PathAssoc {
	out := make([]PathAssoc, len(e.assocs))
	copy(out, e.assocs)

	return out
}
