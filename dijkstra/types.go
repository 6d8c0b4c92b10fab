// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the search functions.
var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the start or end vertex does not exist.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was relaxed.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that Path found no route to the end vertex.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrHookType indicates an OnSettle hook whose vertex type differs from the graph's.
	ErrHookType = errors.New("dijkstra: OnSettle hook does not match graph vertex type")
)

// Options configures a search.
//
// MaxDistance - stop exploring once the minimum tentative distance exceeds it.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Logger      - receives debug-level trace events; nil disables tracing.
type Options struct {
	MaxDistance float64
	Logger      logrus.FieldLogger

	// onSettle holds a func(V, float64); it is type-checked per run.
	onSettle any
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no distance cap, no hook and no logger.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance caps exploration: vertices whose distance would exceed
// max are never settled and are reported as core.Infinity.
// Panics if max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithOnSettle registers fn to be called each time a vertex's distance
// becomes final. Calls arrive in non-decreasing distance order.
// The vertex type must match the searched graph's, otherwise the search
// returns ErrHookType.
func WithOnSettle[V comparable](fn func(v V, dist float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onSettle = fn
		}
	}
}

// WithLogger enables debug tracing through l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// resolve applies opts over the defaults and extracts a typed hook.
func resolve[V comparable](opts []Option) (Options, func(V, float64), error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.onSettle == nil {
		return cfg, nil, nil
	}
	hook, ok := cfg.onSettle.(func(V, float64))
	if !ok {
		return cfg, nil, fmt.Errorf("%w: got %T", ErrHookType, cfg.onSettle)
	}

	return cfg, hook, nil
}
