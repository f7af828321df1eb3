// Package orient implements the MEO orientation engine (spec.md §4.2-
// §4.4): conflict detection over a graph.Graph's enumerated paths,
// scoring, and the three orientation strategies — Random,
// Random-plus-search, and Weighted-CSP (via the sibling wcsp package).
//
// An Engine wraps a *graph.Graph whose FindPaths has already run. It
// never mutates the path set itself; it only flips UndirectedEdge
// orientations and calls graph.GraphStateChanged after each bulk
// mutation, per spec.md §5.
//
// Errors:
//
//	ErrNoPaths            - FindPaths has not produced any paths yet.
//	ErrConflictsNotFound  - an operation needs FindConflicts to have run first.
//	ErrSolutionLenMismatch - a WCSP solution line's length != len(conflictEdges).
//	ErrUnknownAlgorithm   - an unrecognized "alg" selector.
package orient

import (
	"errors"
	"math/rand"

	"github.com/agitter/meo/graph"
)

// Sentinel errors for the orient package.
var (
	ErrNoPaths             = errors.New("orient: no paths enumerated")
	ErrConflictsNotFound   = errors.New("orient: FindConflicts has not run")
	ErrSolutionLenMismatch = errors.New("orient: solution length does not match conflict-edge count")
	ErrUnknownAlgorithm    = errors.New("orient: unknown algorithm")
)

// CostMultiplier scales a path's maxWeight into an integer WCSP cost
// (spec.md §4.4, §9 "WCSP cost quantization"). Exposed as a named
// constant so a caller whose solver rejects the default scale can use
// a wider one without touching the encoding logic.
const CostMultiplier = 1000

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithRand injects a *rand.Rand source for the Random algorithm,
// mirroring the teacher's builder.WithRand (spec.md §5: "the PRNG
// should be injectable for reproducibility"). A nil rng is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with seed and installs it,
// mirroring the teacher's builder.WithSeed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// Engine runs conflict detection and orientation algorithms over a
// graph.Graph whose paths have already been enumerated.
type Engine struct {
	g   *graph.Graph
	rng *rand.Rand

	conflictEdges []graph.EdgeID
	conflictsRun  bool
}

// NewEngine wraps g. g.FindPaths must already have been called.
func NewEngine(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{
		g:   g,
		rng: rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ConflictEdges returns the conflict-edge list produced by the most
// recent FindConflicts call, in stable list-index order (spec.md
// §4.2: "Their orderings/ids are assigned by list index and must be
// stable across the run.").
func (e *Engine) ConflictEdges() []graph.EdgeID {
	out := make([]graph.EdgeID, len(e.conflictEdges))
	copy(out, e.conflictEdges)

	return out
}

// Graph returns the wrapped graph.
func (e *Engine) Graph() *graph.Graph { return e.g }
