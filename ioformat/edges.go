// Package ioformat parses the plain-text edges/sources/targets input
// files and writes the path- and edge-output files (spec.md §6.3,
// §6.5). It knows nothing about orientation algorithms; it only moves
// data between a graph.Graph and the wire format.
//
// Errors:
//
//	ErrMalformedLine  - a line does not match its file's expected shape.
//	ErrUnknownEdgeType - an edges-file TYPE token is neither (pp) nor (pd).
package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agitter/meo/graph"
)

// Sentinel errors for the ioformat package.
var (
	ErrMalformedLine   = errors.New("ioformat: malformed line")
	ErrUnknownEdgeType = errors.New("ioformat: unknown edge type")
)

// LoadEdges reads the edges file (spec.md §6.3): one edge per line,
// "name1 TYPE name2 = weight" where TYPE is "(pp)" (undirected) or
// "(pd)" (directed name1->name2). Unknown vertex names are
// auto-registered by Graph's Add*Edge calls.
func LoadEdges(r io.Reader, g *graph.Graph) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 5 || fields[3] != "=" {
			return fmt.Errorf("ioformat: edges file line %d: %w", lineNo, ErrMalformedLine)
		}

		name1, typ, name2, weightTok := fields[0], fields[1], fields[2], fields[4]
		weight, err := strconv.ParseFloat(weightTok, 64)
		if err != nil {
			return fmt.Errorf("ioformat: edges file line %d: %w", lineNo, ErrMalformedLine)
		}

		switch typ {
		case "(pp)":
			if _, err := g.AddUndirectedEdge(name1, name2, weight); err != nil {
				return fmt.Errorf("ioformat: edges file line %d: %w", lineNo, err)
			}
		case "(pd)":
			if _, err := g.AddDirectedEdge(name1, name2, weight); err != nil {
				return fmt.Errorf("ioformat: edges file line %d: %w", lineNo, err)
			}
		default:
			return fmt.Errorf("ioformat: edges file line %d: %q: %w", lineNo, typ, ErrUnknownEdgeType)
		}
	}

	return sc.Err()
}

// LoadSources reads the sources file (spec.md §6.3): one vertex name
// per line, each flagged as a source.
func LoadSources(r io.Reader, g *graph.Graph) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		if err := g.MarkSource(name); err != nil {
			return fmt.Errorf("ioformat: sources file: %w", err)
		}
	}

	return sc.Err()
}

// LoadTargets reads the targets file (spec.md §6.3): one vertex name
// per line, with an optional tab-separated target weight (default 1).
func LoadTargets(r io.Reader, g *graph.Graph) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		name := fields[0]
		weight := 1.0
		if len(fields) > 1 {
			w, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return fmt.Errorf("ioformat: targets file: %w", ErrMalformedLine)
			}
			weight = w
		}

		if err := g.MarkTarget(name, weight); err != nil {
			return fmt.Errorf("ioformat: targets file: %w", err)
		}
	}

	return sc.Err()
}
