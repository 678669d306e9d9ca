// SPDX-License-Identifier: MIT
// Package: segcolor/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildInstance(id, iopts, bopts, cons...). Creates a
//     Sketch, resolves cfg, runs cons in order, builds the instance.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical instances.

package builder

import (
	"fmt"

	"github.com/katalvlaran/segcolor/instance"
)

// Constructor draws one shape onto the sketch, starting at s.Origin().
type Constructor func(s *Sketch, cfg builderConfig) error

// BuildInstance runs the constructors on an empty sketch and converts the
// result into an instance with the given options. Constructor errors are
// wrapped with "BuildInstance: %w".
func BuildInstance(id string, iopts []instance.Option, bopts []BuilderOption, cons ...Constructor) (*instance.Instance, error) {
	cfg := newBuilderConfig(bopts...)
	s := newSketch()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildInstance: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildInstance: %w", err)
		}
		s.advance(cfg.gap)
	}

	return instance.New(id, len(s.points), s.points, s.edges, iopts...)
}
