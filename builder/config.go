package builder

// BuilderOption customizes a fixture constructor. As a rule, option
// constructors never panic and silently ignore out-of-range input.
type BuilderOption func(cfg *builderConfig)

type builderConfig struct {
	scale float64
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{scale: 1.0}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithScale multiplies every fixture coordinate by s. Non-positive s is
// ignored (the default scale of 1.0 is kept).
func WithScale(s float64) BuilderOption {
	return func(cfg *builderConfig) {
		if s > 0 {
			cfg.scale = s
		}
	}
}
