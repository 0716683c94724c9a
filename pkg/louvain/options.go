package louvain

import (
	"errors"

	"github.com/dd0wney/cluso-communities/pkg/logging"
	"github.com/dd0wney/cluso-communities/pkg/metrics"
)

// DefaultMinModularityGrowth is the minimum per-level modularity gain
// required to accept a coarsening level.
const DefaultMinModularityGrowth = 1e-7

var (
	ErrInvalidGrowthThreshold = errors.New("modularity growth threshold must not be negative")
	ErrInvalidMaxLevels       = errors.New("max levels must not be negative")
)

// Options configures a community detection run.
type Options struct {
	// MinModularityGrowth is the acceptance threshold for a new level.
	// Zero means DefaultMinModularityGrowth.
	MinModularityGrowth float64

	// MaxLevels caps the number of accepted coarsening levels.
	// Zero means unbounded: the driver runs to local convergence.
	MaxLevels int

	// Logger receives per-level progress. Nil discards output.
	Logger logging.Logger

	// Metrics receives run observability. Nil disables recording.
	Metrics *metrics.Registry
}

// DefaultOptions returns the default detection configuration.
func DefaultOptions() Options {
	return Options{
		MinModularityGrowth: DefaultMinModularityGrowth,
	}
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.MinModularityGrowth < 0 {
		return ErrInvalidGrowthThreshold
	}
	if o.MaxLevels < 0 {
		return ErrInvalidMaxLevels
	}
	return nil
}

// growth returns the effective acceptance threshold.
func (o *Options) growth() float64 {
	if o.MinModularityGrowth == 0 {
		return DefaultMinModularityGrowth
	}
	return o.MinModularityGrowth
}

// logger returns the effective logger.
func (o *Options) logger() logging.Logger {
	if o.Logger == nil {
		return logging.NewNopLogger()
	}
	return o.Logger
}
