package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/agitter/meo/graph"
)

// WritePathOutput writes the path-output file (spec.md §6.5): header
// "Path\tIs satisfied?\tPath weight", then one line per enumerated
// path in the order given: colon-separated vertex names, a boolean,
// and the path's maxWeight.
func WritePathOutput(w io.Writer, g *graph.Graph, paths []*graph.Path) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, "Path\tIs satisfied?\tPath weight"); err != nil {
		return err
	}

	for _, p := range paths {
		names := make([]string, len(p.Vertices))
		for i, vid := range p.Vertices {
			v, err := g.VertexByID(vid)
			if err != nil {
				return err
			}
			names[i] = v.Name
		}

		line := fmt.Sprintf("%s\t%t\t%g", strings.Join(names, ":"), p.Satisfied(), p.MaxWeight())
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteEdgeOutput writes the edge-output file (spec.md §6.5): header
// "Source\tType\tTarget\tOriented\tWeight", then one line per edge
// that appears on >=1 satisfied path in paths, directed edges first
// then undirected.
func WriteEdgeOutput(w io.Writer, g *graph.Graph, paths []*graph.Path) error {
	used := make(map[graph.EdgeID]bool)
	for _, p := range paths {
		if !p.Satisfied() {
			continue
		}
		for _, e := range p.Edges() {
			used[e.EdgeID()] = true
		}
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "Source\tType\tTarget\tOriented\tWeight"); err != nil {
		return err
	}

	for _, e := range g.DirectedEdges() {
		if !used[e.EdgeID()] {
			continue
		}
		line := fmt.Sprintf("%s\tpd\t%s\t%t\t%g", e.SrcName, e.DstName, true, e.Weight)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	for _, e := range g.UndirectedEdges() {
		if !used[e.EdgeID()] {
			continue
		}
		line := fmt.Sprintf("%s\tpp\t%s\t%t\t%g", e.AName, e.BName, e.State != graph.Unoriented, e.Weight)
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
