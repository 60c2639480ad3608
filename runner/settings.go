package runner

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/config"
	"github.com/crossplay/bestword/movegen"
)

// SolverOptions are the knobs of a single search. Zero values are filled
// in from the configuration by SetDefaults.
type SolverOptions struct {
	Method  string
	TopK    int
	Threads int
	// LiteralBlanks makes '?' on a rack match only a literal '?'.
	LiteralBlanks bool
}

func (opts *SolverOptions) SetDefaults(cfg *config.Config) {
	if opts.Method == "" {
		opts.Method = cfg.GetString(config.ConfigSearchMethod)
		log.Debug().Msgf("using search method %v", opts.Method)
	}
	if opts.TopK <= 0 {
		opts.TopK = cfg.GetInt(config.ConfigTopK)
	}
	if opts.Threads <= 0 {
		opts.Threads = max(1, cfg.GetInt(config.ConfigSolverThreads))
	}
	if !cfg.GetBool(config.ConfigBlanks) {
		opts.LiteralBlanks = true
	}
}

func (opts *SolverOptions) SetMethod(name string) error {
	switch name {
	case movegen.MethodProbabilistic, movegen.MethodExhaustive:
		opts.Method = name
	default:
		return fmt.Errorf("%w: %v", movegen.ErrUnknownSearchMethod, name)
	}
	return nil
}
