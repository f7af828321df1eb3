// Package wcsp writes and reads the XCSP 2.1 weighted-CSP instance
// format MEO's WCSP algorithm drives an external solver with (spec.md
// §4.4, §6.4). It knows nothing about graphs or paths: callers build an
// Instance describing the binary {0,1} variables (one per conflict
// edge) and the soft constraints (one per conflict path), and this
// package only serializes/deserializes.
//
// Errors:
//
//	ErrEmptyInstance       - an Instance has no variables.
//	ErrZeroArity           - a Relation has arity 0 (spec.md §7 invariant error).
//	ErrMalformedSolution   - a solution line has a non-0/1 token.
package wcsp

import "errors"

// Sentinel errors for the wcsp package.
var (
	ErrEmptyInstance     = errors.New("wcsp: instance has no variables")
	ErrZeroArity         = errors.New("wcsp: relation has arity 0")
	ErrMalformedSolution = errors.New("wcsp: malformed solution token")
)

// Variable is one binary decision variable: a conflict edge's
// orientation (0=BACKWARD, 1=FORWARD).
type Variable struct {
	Name string
}

// Relation is the arity-N soft constraint one conflict path
// contributes: exactly one allowed Tuple (the assignment that
// satisfies the path) and a DefaultCost charged for any other
// assignment.
type Relation struct {
	Name        string
	Arity       int
	DefaultCost int
	Tuple       []int // len == Arity, values in {0,1}
}

// Constraint binds a Relation to the ordered list of variables it
// constrains.
type Constraint struct {
	Name         string
	RelationName string
	VarNames     []string
}

// Instance is a complete WCSP problem: one shared {0,1} domain, one
// Variable per conflict edge, one Relation/Constraint pair per
// conflict path, and the global MaximalCost (spec.md §6.4).
type Instance struct {
	Variables   []Variable
	Relations   []Relation
	Constraints []Constraint
	MaximalCost int
}
