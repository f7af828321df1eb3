// Package meo implements the maximum-edge-orientation engine: given a
// mixed directed/undirected weighted graph with marked source and
// target vertices, it enumerates bounded-length simple source-target
// paths, detects which undirected edges are forced into conflicting
// orientations by those paths, and orients the conflict edges to
// maximize the total weight of satisfied paths.
//
// Everything under this root is documentation only; the runnable
// pieces live in subpackages:
//
//	graph/    — Vertex, Edge, Graph, Path: the data model and path enumeration
//	orient/   — conflict detection, scoring, and the Random/Local-Search/WCSP algorithms
//	wcsp/     — XCSP 2.1 weighted-CSP instance/solution encoding
//	ioformat/ — edges/sources/targets parsers, path/edge output writers
//	config/   — the run's properties-file configuration
//	cmd/meo/  — the command-line entry point
//
//	go get github.com/agitter/meo
package meo
