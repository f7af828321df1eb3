package graph

import "sort"

// RankKey names a sortable Path statistic for the path-output writer
// (spec.md §4.6). It replaces a string-keyed comparator lookup with an
// enum and a dispatch table (spec.md §9 "Comparator selection by name").
type RankKey int

// The ten ranking keys the path-output writer can sort by.
const (
	RankPathWeight RankKey = iota
	RankMaxEdgeWeight
	RankAvgEdgeWeight
	RankMinEdgeWeight
	RankMaxEdgeUse
	RankAvgEdgeUse
	RankMinEdgeUse
	RankMaxVertexDegree
	RankAvgVertexDegree
	RankMinVertexDegree
)

// String names the ranking key, e.g. for CLI flags or log messages.
func (k RankKey) String() string {
	switch k {
	case RankPathWeight:
		return "pathWeight"
	case RankMaxEdgeWeight:
		return "maxEdgeWeight"
	case RankAvgEdgeWeight:
		return "avgEdgeWeight"
	case RankMinEdgeWeight:
		return "minEdgeWeight"
	case RankMaxEdgeUse:
		return "maxEdgeUse"
	case RankAvgEdgeUse:
		return "avgEdgeUse"
	case RankMinEdgeUse:
		return "minEdgeUse"
	case RankMaxVertexDegree:
		return "maxVertexDegree"
	case RankAvgVertexDegree:
		return "avgVertexDegree"
	case RankMinVertexDegree:
		return "minVertexDegree"
	default:
		return "unknown"
	}
}

// keyFns dispatches each RankKey to the float64 extractor it sorts on.
var keyFns = map[RankKey]func(*Path) float64{
	RankPathWeight:      (*Path).MaxWeight,
	RankMaxEdgeWeight:   func(p *Path) float64 { _, _, m := p.EdgeWeightStats(); return m },
	RankAvgEdgeWeight:   func(p *Path) float64 { _, a, _ := p.EdgeWeightStats(); return a },
	RankMinEdgeWeight:   func(p *Path) float64 { m, _, _ := p.EdgeWeightStats(); return m },
	RankMaxEdgeUse:      func(p *Path) float64 { _, _, m := p.EdgeUseStats(); return m },
	RankAvgEdgeUse:      func(p *Path) float64 { _, a, _ := p.EdgeUseStats(); return a },
	RankMinEdgeUse:      func(p *Path) float64 { m, _, _ := p.EdgeUseStats(); return m },
	RankMaxVertexDegree: func(p *Path) float64 { _, _, m := p.VertexDegreeStats(); return m },
	RankAvgVertexDegree: func(p *Path) float64 { _, a, _ := p.VertexDegreeStats(); return a },
	RankMinVertexDegree: func(p *Path) float64 { m, _, _ := p.VertexDegreeStats(); return m },
}

// SortByRank sorts paths descending by the statistic named by key, with
// ties broken by descending pathWeight (spec.md §4.6). paths is sorted
// in place.
func SortByRank(paths []*Path, key RankKey) {
	fn, ok := keyFns[key]
	if !ok {
		fn = keyFns[RankPathWeight]
	}

	sort.SliceStable(paths, func(i, j int) bool {
		vi, vj := fn(paths[i]), fn(paths[j])
		if vi != vj {
			return vi > vj
		}

		return paths[i].MaxWeight() > paths[j].MaxWeight()
	})
}
