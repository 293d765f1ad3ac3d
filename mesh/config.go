package mesh

import "github.com/katalvlaran/quadmesh/core"

// StopPredicate reports whether Reduce should stop, given the current
// iteration count and the current polygon count (evaluated after the
// iteration's collapse has been applied).
type StopPredicate func(iteration, polygonCount int) bool

// ReduceOption configures a Reduce call, following this module's
// functional-option idiom (see core.EdgeSelectionOption).
type ReduceOption func(*reduceConfig)

type reduceConfig struct {
	maxIterations      int
	hasMaxIterations   bool
	stopPredicate      StopPredicate
	edgeSelectionOpts  []core.EdgeSelectionOption
}

// WithMaxIterations caps Reduce at n collapse iterations.
func WithMaxIterations(n int) ReduceOption {
	return func(cfg *reduceConfig) {
		cfg.maxIterations = n
		cfg.hasMaxIterations = true
	}
}

// WithStopPredicate supplies a callback Reduce consults at the end of
// every iteration (after max-iterations, if both are supplied).
func WithStopPredicate(fn StopPredicate) ReduceOption {
	return func(cfg *reduceConfig) { cfg.stopPredicate = fn }
}

// WithOptimalPosition forwards the optimal-position QEM branch toggle to
// the underlying core.DeterminePreferredCollapsibleEdge calls Reduce makes.
func WithOptimalPosition(enabled bool) ReduceOption {
	return func(cfg *reduceConfig) {
		cfg.edgeSelectionOpts = append(cfg.edgeSelectionOpts, core.WithOptimalPosition(enabled))
	}
}

func newReduceConfig(opts ...ReduceOption) *reduceConfig {
	cfg := &reduceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (cfg *reduceConfig) valid() bool {
	return cfg.hasMaxIterations || cfg.stopPredicate != nil
}
