// SPDX-License-Identifier: MIT

// Package contrasts: functional options for Build, New and Promote.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package contrasts

import "go.uber.org/zap"

const panicNilLogger = "contrasts: WithLogger: logger must not be nil"

// Option configures a build call.
type Option func(*options)

type options struct {
	logger *zap.Logger // DefaultLogger: zap.NewNop()
}

// WithLogger routes build diagnostics to l. Records are emitted at Debug level.
// Panics if l is nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
