// Package compat provides an alternative ingestion path into dynjson.Variant
// trees built on the standard library's encoding/json plus tidwall/jsonc
// preprocessing, rather than this module's own lenient engine. Where
// ParseBytes/ParseString return a single error, an Adapter reports problems
// as diag.Issue values in a diag.Result. It does not recover from a decode
// error: Parse stops at the first one, and ParseMany stops at the first
// document that fails to decode.
//
// Grounded on the teacher's adapter/json.Adapter: the same functional-option
// construction, the same strict-vs-jsonc-preprocessed toggle, generalized
// from instance-graph ingestion to building dynjson.Variant trees directly.
package compat

import "log/slog"

// Adapter parses JSON data into dynjson.Variant trees with diagnostic
// collection. It holds no mutable state after construction and is safe for
// concurrent use.
type Adapter struct {
	strictJSON bool
	maxIssues  int
	logger     *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// New creates an Adapter. By default it preprocesses input with jsonc
// (stripping comments and trailing commas) and collects an unlimited number
// of issues.
func New(opts ...Option) *Adapter {
	a := &Adapter{maxIssues: 0}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithStrictJSON configures whether input is parsed as strict JSON (no
// jsonc preprocessing). Strict mode rejects comments and trailing commas
// that jsonc would otherwise silently strip.
func WithStrictJSON(strict bool) Option {
	return func(a *Adapter) { a.strictJSON = strict }
}

// WithMaxIssues bounds how many issues a single Parse call collects before
// later ones are dropped (see diag.Collector). Zero means unlimited.
func WithMaxIssues(n int) Option {
	return func(a *Adapter) { a.maxIssues = n }
}

// WithLogger installs a logger for operation-boundary tracing (start/end,
// elapsed time) around Parse/ParseMany calls. A nil logger (the default)
// disables tracing entirely at near-zero cost.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}
