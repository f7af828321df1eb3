// Package config loads and validates the orientation engine's
// properties file (spec.md §6.2) using github.com/magiconair/properties,
// the idiomatic Go library for Java-style key=value files — the exact
// format spec.md's properties file already is.
//
// Load resolves every recognized key into a typed Config field and
// rejects anything it cannot validate as a fatal configuration error,
// mirroring the teacher's builder.Option pattern: a flat struct built
// once, validated eagerly, never mutated afterward.
//
// Errors:
//
//	ErrMissingKey      - a required key is absent from the file.
//	ErrInvalidValue    - a key's value fails its expected format/range.
//	ErrUnknownAlgorithm - "alg" is neither Random nor MAXCSP.
//	ErrUnknownCSPPhase  - "csp.phase" is neither Gen nor Score.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/magiconair/properties"
)

// Sentinel errors for the config package.
var (
	ErrMissingKey       = errors.New("config: missing required key")
	ErrInvalidValue     = errors.New("config: invalid value")
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
	ErrUnknownCSPPhase  = errors.New("config: unknown csp phase")
)

// Algorithm selects an orientation strategy (spec.md §6.2 "alg").
type Algorithm string

// Recognized Algorithm values.
const (
	AlgRandom Algorithm = "Random"
	AlgMAXCSP Algorithm = "MAXCSP"
)

// CSPPhase selects which half of the WCSP round trip a MAXCSP run
// performs (spec.md §6.2 "csp.phase").
type CSPPhase string

// Recognized CSPPhase values.
const (
	CSPGen   CSPPhase = "Gen"
	CSPScore CSPPhase = "Score"
)

// Config is the fully-resolved, validated run configuration.
type Config struct {
	EdgesFile   string
	SourcesFile string
	TargetsFile string

	EdgeOutputFile string
	PathOutputFile string

	MaxPathLength int
	LocalSearch   bool

	Algorithm    Algorithm
	RandRestarts int

	CSPPhase   CSPPhase
	CSPGenFile string
	CSPSolFile string
}

// Load reads path as a Java-style properties file and resolves it into
// a validated Config. Unknown key values are a fatal configuration
// error (spec.md §6.2).
func Load(path string) (*Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := &Config{}

	cfg.EdgesFile, err = requireString(p, "edges.file")
	if err != nil {
		return nil, err
	}
	cfg.SourcesFile, err = requireString(p, "sources.file")
	if err != nil {
		return nil, err
	}
	cfg.TargetsFile, err = requireString(p, "targets.file")
	if err != nil {
		return nil, err
	}
	cfg.EdgeOutputFile, err = requireString(p, "edge.output.file")
	if err != nil {
		return nil, err
	}
	cfg.PathOutputFile, err = requireString(p, "path.output.file")
	if err != nil {
		return nil, err
	}

	cfg.MaxPathLength = 5
	if v, ok := p.Get("max.path.length"); ok {
		if cfg.MaxPathLength, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("%w: max.path.length=%q", ErrInvalidValue, v)
		}
	}
	if cfg.MaxPathLength < 1 {
		return nil, fmt.Errorf("%w: max.path.length must be >= 1", ErrInvalidValue)
	}

	localSearch, err := requireYesNo(p, "local.search", true)
	if err != nil {
		return nil, err
	}
	cfg.LocalSearch = localSearch

	alg := Algorithm(p.GetString("alg", string(AlgRandom)))
	switch alg {
	case AlgRandom, AlgMAXCSP:
		cfg.Algorithm = alg
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}

	cfg.RandRestarts = 10
	if v, ok := p.Get("rand.restarts"); ok {
		if cfg.RandRestarts, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("%w: rand.restarts=%q", ErrInvalidValue, v)
		}
	}
	if cfg.RandRestarts < 1 {
		return nil, fmt.Errorf("%w: rand.restarts must be >= 1", ErrInvalidValue)
	}

	if cfg.Algorithm == AlgMAXCSP {
		phase := CSPPhase(p.GetString("csp.phase", ""))
		switch phase {
		case CSPGen, CSPScore:
			cfg.CSPPhase = phase
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownCSPPhase, phase)
		}

		if phase == CSPGen {
			cfg.CSPGenFile, err = requireString(p, "csp.gen.file")
			if err != nil {
				return nil, err
			}
		} else {
			cfg.CSPSolFile, err = requireString(p, "csp.sol.file")
			if err != nil {
				return nil, err
			}
		}
	}

	return cfg, nil
}

func requireString(p *properties.Properties, key string) (string, error) {
	v, ok := p.Get(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingKey, key)
	}

	return v, nil
}

func requireYesNo(p *properties.Properties, key string, def bool) (bool, error) {
	v, ok := p.Get(key)
	if !ok {
		return def, nil
	}

	switch v {
	case "Yes":
		return true, nil
	case "No":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s=%q must be Yes or No", ErrInvalidValue, key, v)
	}
}
