// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	rng   *rand.Rand // nil ⇒ deterministic constructors only
	scale int64
	gap   int64
	span  int64
}

// newBuilderConfig applies options in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: DefaultScale,
		gap:   DefaultGap,
		span:  DefaultSpan,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
