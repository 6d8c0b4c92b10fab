// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fibpath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a new core.Graph[int] with graph options gopts,
// resolves bopts, and applies every constructor in order. Constructor
// errors are wrapped as "BuildGraph: %w" and returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices registers 0..n-1 in ascending order.
func addVertices(g *core.Graph[int], n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(i)
	}
}

// addEdge emits u→v with the next configured weight.
func addEdge(method string, g *core.Graph[int], cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	return nil
}
