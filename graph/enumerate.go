package graph

// frame is one step of the DFS stack: the edge used to arrive at To,
// and the direction that step wants that edge oriented.
type frame struct {
	edge    Edge
	desired Direction
	to      VertexID
}

// FindPaths enumerates every simple path of length 1..maxLen whose
// first vertex is a source and last vertex is a target, with
// maxWeight >= threshold (spec.md §4.1). Running FindPaths discards
// the previous Path set and deregisters it from the edges it used.
//
// A path whose edge sequence needs an already-FIXED undirected edge in
// the wrong direction is discarded at emit time (spec.md §4.1
// "Feasibility filter").
func (g *Graph) FindPaths(maxLen int, threshold float64) []*Path {
	g.discardPaths()

	var out []*Path
	visited := make(map[VertexID]bool)

	for _, src := range g.Sources() {
		visited[src] = true
		g.dfs(src, maxLen, []frame{}, visited, &out)
		visited[src] = false
	}

	for i, p := range out {
		p.id = PathID(i)
		for _, d := range p.edges {
			if ue, ok := d.Edge.(*UndirectedEdge); ok {
				ue.addAssoc(p.id, d.Desired)
			}
		}
	}
	for _, p := range out {
		p.computeStats(g)
	}
	out = filterByThreshold(out, threshold)
	g.paths = out

	return g.Paths()
}

// discardPaths deregisters the current Path set from every edge it
// used (spec.md §3 "Lifecycle").
func (g *Graph) discardPaths() {
	for _, e := range g.undirected {
		e.clearAssocs()
	}
	g.paths = nil
}

func filterByThreshold(paths []*Path, threshold float64) []*Path {
	if threshold <= 0 {
		return paths
	}
	kept := paths[:0]
	for _, p := range paths {
		if p.maxWeight >= threshold {
			kept = append(kept, p)
		}
	}

	return kept
}

// dfs explores from the vertex named by the last frame in stack (or
// src if stack is empty), appending a Path snapshot for every target
// reached within maxLen edges.
func (g *Graph) dfs(cur VertexID, maxLen int, stack []frame, visited map[VertexID]bool, out *[]*Path) {
	if len(stack) > 0 {
		v, err := g.VertexByID(cur)
		if err == nil && v.IsTarget && g.feasible(stack) {
			*out = append(*out, snapshot(stack))
		}
	}
	if len(stack) >= maxLen {
		return
	}

	v, err := g.VertexByID(cur)
	if err != nil {
		return
	}

	for _, eid := range v.OutDirected {
		e, _ := g.EdgeByID(eid).(*DirectedEdge)
		if e == nil || e.Src != cur {
			continue
		}
		if visited[e.Dst] {
			continue
		}
		visited[e.Dst] = true
		g.dfs(e.Dst, maxLen, append(stack, frame{edge: e, desired: DirForward, to: e.Dst}), visited, out)
		visited[e.Dst] = false
	}

	for _, eid := range v.Undirected {
		ue := g.undirectedByID(eid)
		if ue == nil {
			continue
		}
		next := ue.Other(cur)
		if next == -1 || visited[next] {
			continue
		}
		desired := ue.DesiredDirectionFrom(cur)
		visited[next] = true
		g.dfs(next, maxLen, append(stack, frame{edge: ue, desired: desired, to: next}), visited, out)
		visited[next] = false
	}
}

// feasible reports whether every FIXED undirected edge on stack is
// oriented the way the path wants to traverse it.
func (g *Graph) feasible(stack []frame) bool {
	for _, f := range stack {
		ue, ok := f.edge.(*UndirectedEdge)
		if !ok {
			continue
		}
		if !ue.State.IsFixed() {
			continue
		}
		if !ue.Satisfies(f.desired) {
			return false
		}
	}

	return true
}

// snapshot copies the current DFS stack into a standalone Path; the
// stack itself keeps mutating as the DFS continues (spec.md §4.1).
func snapshot(stack []frame) *Path {
	p := &Path{
		Vertices: make([]VertexID, 0, len(stack)+1),
		edges:    make([]edgeDesire, 0, len(stack)),
	}
	if len(stack) > 0 {
		p.Vertices = append(p.Vertices, origin(stack[0]))
	}
	for _, f := range stack {
		p.Vertices = append(p.Vertices, f.to)
		p.edges = append(p.edges, edgeDesire{Edge: f.edge, Desired: f.desired})
	}

	return p
}

// origin recovers the vertex the first frame departed from.
func origin(f frame) VertexID {
	switch e := f.edge.(type) {
	case *DirectedEdge:
		return e.Src
	case *UndirectedEdge:
		return e.Other(f.to)
	default:
		return -1
	}
}
