package project

import (
	"log/slog"

	"github.com/signadot/rpy-format/parse"
)

type loadOpts struct {
	logger    *slog.Logger
	parseOpts []parse.ParseOption
	deps      bool
}

type LoadOption func(*loadOpts)

// WithLogger sets the logger used to report skipped references.  By
// default nothing is logged.
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOpts) { o.logger = l }
}

func WithParseOptions(opts ...parse.ParseOption) LoadOption {
	return func(o *loadOpts) { o.parseOpts = append(o.parseOpts, opts...) }
}

// WithDependencies controls whether referenced unit files are loaded.
// It defaults to true; with false only the project file is parsed.
func WithDependencies(v bool) LoadOption {
	return func(o *loadOpts) { o.deps = v }
}
