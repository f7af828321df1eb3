package graph

import "strings"

// degreeKey indexes the degree cache by vertex and the two filters
// FindPaths and the comparators care about (spec.md §3 "Graph").
type degreeKey struct {
	v              VertexID
	onlyOriented   bool
	onlyUndirected bool
}

// Graph is the registry of vertices and edges that the orientation
// engine operates on. It is built once at startup and mutated in place
// for the remainder of the run: undirected edges change Orientation,
// and FindPaths replaces the Path set.
type Graph struct {
	byName map[string]VertexID
	verts  []*Vertex

	directed   []*DirectedEdge
	undirected []*UndirectedEdge

	sources map[VertexID]struct{}
	targets map[VertexID]struct{}

	paths []*Path

	degreeCache map[degreeKey]int
	edgeByID    map[EdgeID]Edge
}

// NewGraph returns an empty Graph ready for vertex/edge registration.
func NewGraph() *Graph {
	return &Graph{
		byName:      make(map[string]VertexID),
		sources:     make(map[VertexID]struct{}),
		targets:     make(map[VertexID]struct{}),
		degreeCache: make(map[degreeKey]int),
		edgeByID:    make(map[EdgeID]Edge),
	}
}

// validateName enforces spec.md §3's uniqueness and reserved-character
// invariants.
func (g *Graph) validateName(name string) error {
	if name == "" {
		return ErrEmptyVertexName
	}
	if strings.ContainsRune(name, ReservedChar) {
		return ErrReservedChar
	}

	return nil
}

// AddVertex registers a new vertex with node-weight 1, or returns the
// existing one if name is already registered (edges files auto-register
// unknown endpoints; this is intentionally idempotent for that caller).
func (g *Graph) AddVertex(name string) (*Vertex, error) {
	if err := g.validateName(name); err != nil {
		return nil, err
	}
	if id, ok := g.byName[name]; ok {
		return g.verts[id], nil
	}

	v := &Vertex{
		ID:     VertexID(len(g.verts)),
		Name:   name,
		Weight: 1,
	}
	g.verts = append(g.verts, v)
	g.byName[name] = v.ID

	return v, nil
}

// VertexByName looks up a vertex by name.
func (g *Graph) VertexByName(name string) (*Vertex, error) {
	id, ok := g.byName[name]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.verts[id], nil
}

// VertexByID looks up a vertex by id.
func (g *Graph) VertexByID(id VertexID) (*Vertex, error) {
	if int(id) < 0 || int(id) >= len(g.verts) {
		return nil, ErrVertexNotFound
	}

	return g.verts[id], nil
}

// Vertices returns every registered vertex, in insertion order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.verts))
	copy(out, g.verts)

	return out
}

// MarkSource flags name as a source vertex, auto-registering it if
// necessary (spec.md §6.3 sources file).
func (g *Graph) MarkSource(name string) error {
	v, err := g.AddVertex(name)
	if err != nil {
		return err
	}
	v.IsSource = true
	g.sources[v.ID] = struct{}{}

	return nil
}

// MarkTarget flags name as a target vertex with the given target
// weight, auto-registering it if necessary (spec.md §6.3 targets file).
func (g *Graph) MarkTarget(name string, weight float64) error {
	v, err := g.AddVertex(name)
	if err != nil {
		return err
	}
	v.IsTarget = true
	v.TargetWeight = weight
	g.targets[v.ID] = struct{}{}

	return nil
}

// Sources returns the source vertex ids, in insertion order.
func (g *Graph) Sources() []VertexID {
	var out []VertexID
	for _, v := range g.verts {
		if v.IsSource {
			out = append(out, v.ID)
		}
	}

	return out
}

// Targets returns the target vertex ids, in insertion order.
func (g *Graph) Targets() []VertexID {
	var out []VertexID
	for _, v := range g.verts {
		if v.IsTarget {
			out = append(out, v.ID)
		}
	}

	return out
}

// AddDirectedEdge registers a fixed source->target edge. Endpoint
// vertices are auto-registered if unknown (spec.md §6.3).
func (g *Graph) AddDirectedEdge(from, to string, weight float64) (*DirectedEdge, error) {
	if weight <= 0 || weight > 1 {
		return nil, ErrBadWeight
	}
	sv, err := g.AddVertex(from)
	if err != nil {
		return nil, err
	}
	tv, err := g.AddVertex(to)
	if err != nil {
		return nil, err
	}

	e := &DirectedEdge{
		ID:      EdgeID(len(g.directed) + len(g.undirected)),
		Src:     sv.ID,
		Dst:     tv.ID,
		Weight:  weight,
		SrcName: from,
		DstName: to,
	}
	g.directed = append(g.directed, e)
	g.edgeByID[e.ID] = e
	sv.OutDirected = append(sv.OutDirected, e.ID)
	g.invalidateDegreeCache()

	return e, nil
}

// AddUndirectedEdge registers an Unoriented edge between a and b.
// Endpoint vertices are auto-registered if unknown.
func (g *Graph) AddUndirectedEdge(a, b string, weight float64) (*UndirectedEdge, error) {
	if weight <= 0 || weight > 1 {
		return nil, ErrBadWeight
	}
	av, err := g.AddVertex(a)
	if err != nil {
		return nil, err
	}
	bv, err := g.AddVertex(b)
	if err != nil {
		return nil, err
	}

	e := &UndirectedEdge{
		ID:     EdgeID(len(g.directed) + len(g.undirected)),
		A:      av.ID,
		B:      bv.ID,
		Weight: weight,
		AName:  a,
		BName:  b,
		State:  Unoriented,
	}
	g.undirected = append(g.undirected, e)
	g.edgeByID[e.ID] = e
	av.Undirected = append(av.Undirected, e.ID)
	bv.Undirected = append(bv.Undirected, e.ID)
	g.invalidateDegreeCache()

	return e, nil
}

// DirectedEdges returns every directed edge, in insertion order.
func (g *Graph) DirectedEdges() []*DirectedEdge {
	out := make([]*DirectedEdge, len(g.directed))
	copy(out, g.directed)

	return out
}

// UndirectedEdges returns every undirected edge, in insertion order.
func (g *Graph) UndirectedEdges() []*UndirectedEdge {
	out := make([]*UndirectedEdge, len(g.undirected))
	copy(out, g.undirected)

	return out
}

// Paths returns the Path set produced by the most recent FindPaths
// call, or an empty slice if FindPaths has not run yet.
func (g *Graph) Paths() []*Path {
	out := make([]*Path, len(g.paths))
	copy(out, g.paths)

	return out
}

// GraphStateChanged invalidates the degree cache. The engine MUST call
// this after every bulk orientation mutation (random init, local-search
// termination, WCSP scoring, save/load) — spec.md §5.
func (g *Graph) GraphStateChanged() {
	g.invalidateDegreeCache()
}

func (g *Graph) invalidateDegreeCache() {
	for k := range g.degreeCache {
		delete(g.degreeCache, k)
	}
}

// Degree returns the number of directed edges leaving v plus the
// number of undirected edges incident to v, optionally restricted to
// only-oriented or only-undirected edges, using the transient cache
// described in spec.md §3. Directed edges entering v are not counted.
func (g *Graph) Degree(v VertexID, onlyOriented, onlyUndirected bool) int {
	key := degreeKey{v: v, onlyOriented: onlyOriented, onlyUndirected: onlyUndirected}
	if d, ok := g.degreeCache[key]; ok {
		return d
	}

	vert, err := g.VertexByID(v)
	if err != nil {
		return 0
	}

	d := 0
	if !onlyUndirected {
		d += len(vert.OutDirected)
	}
	for _, eid := range vert.Undirected {
		ue := g.undirectedByID(eid)
		if ue == nil {
			continue
		}
		if onlyOriented && ue.State == Unoriented {
			continue
		}
		d++
	}

	g.degreeCache[key] = d

	return d
}

// undirectedByID resolves an EdgeID to its *UndirectedEdge, or nil if
// id does not name an undirected edge.
func (g *Graph) undirectedByID(id EdgeID) *UndirectedEdge {
	ue, _ := g.edgeByID[id].(*UndirectedEdge)

	return ue
}

// EdgeByID resolves any edge id (directed or undirected) to its Edge.
func (g *Graph) EdgeByID(id EdgeID) (Edge, error) {
	e, ok := g.edgeByID[id]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}
