// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/fibpath/core"
)

// Sentinel errors for document handling.
var (
	// ErrUnknownFormat indicates an unsupported format or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrEmptyVertex indicates a vertex ID that is the empty string.
	ErrEmptyVertex = errors.New("graphio: empty vertex id")

	// ErrInvalidDocument indicates a document that could not be decoded.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// EdgeSpec is one weighted edge of a Document.
type EdgeSpec struct {
	From   string  `yaml:"from" json:"from"`
	To     string  `yaml:"to" json:"to"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// Document is the serialized form of a graph.
type Document struct {
	Undirected bool                          `yaml:"undirected,omitempty" json:"undirected,omitempty"`
	Vertices   []string                      `yaml:"vertices,omitempty" json:"vertices,omitempty"`
	Edges      []EdgeSpec                    `yaml:"edges,omitempty" json:"edges,omitempty"`
	Adjacency  map[string]map[string]float64 `yaml:"adjacency,omitempty" json:"adjacency,omitempty"`
}

// Graph builds a core.Graph[string] from d. Self-loops are allowed.
// Returns ErrEmptyVertex for empty IDs and core errors (e.g. ErrBadWeight)
// wrapped with the offending edge.
func (d *Document) Graph() (*core.Graph[string], error) {
	opts := []core.GraphOption{core.WithLoops()}
	if d.Undirected {
		opts = append(opts, core.WithUndirected())
	}
	g := core.NewGraph[string](opts...)

	for i, v := range d.Vertices {
		if v == "" {
			return nil, fmt.Errorf("%w: vertices[%d]", ErrEmptyVertex, i)
		}
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edges[%d]", ErrEmptyVertex, i)
		}
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("graphio: edges[%d]: %w", i, err)
		}
	}

	froms := make([]string, 0, len(d.Adjacency))
	for u := range d.Adjacency {
		froms = append(froms, u)
	}
	sort.Strings(froms)
	for _, u := range froms {
		if u == "" {
			return nil, fmt.Errorf("%w: adjacency key", ErrEmptyVertex)
		}
		g.AddVertex(u)
		tos := make([]string, 0, len(d.Adjacency[u]))
		for v := range d.Adjacency[u] {
			tos = append(tos, v)
		}
		sort.Strings(tos)
		for _, v := range tos {
			if v == "" {
				return nil, fmt.Errorf("%w: adjacency[%s]", ErrEmptyVertex, u)
			}
			if err := g.AddEdge(u, v, d.Adjacency[u][v]); err != nil {
				return nil, fmt.Errorf("graphio: adjacency[%s][%s]: %w", u, v, err)
			}
		}
	}

	return g, nil
}

// FromGraph serializes g into a Document, naming vertices with name.
// Vertices are listed in graph order and edges in neighbor order. For
// undirected graphs each mirrored pair is written once.
func FromGraph[V comparable](g *core.Graph[V], name func(V) string) *Document {
	d := &Document{Undirected: g.Undirected()}
	type pair struct{ u, v V }
	seen := make(map[pair]bool)

	for _, u := range g.Vertices() {
		d.Vertices = append(d.Vertices, name(u))
		edges, err := g.Neighbors(u)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if d.Undirected {
				if seen[pair{e.To, e.From}] {
					continue
				}
				seen[pair{e.From, e.To}] = true
			}
			d.Edges = append(d.Edges, EdgeSpec{From: name(e.From), To: name(e.To), Weight: e.Weight})
		}
	}

	return d
}
