package equity

import (
	"github.com/rs/zerolog/log"

	"github.com/crossplay/bestword/board"
	"github.com/crossplay/bestword/cache"
	"github.com/crossplay/bestword/config"
)

// NewCalculator builds the calculator the configuration asks for. The bonus
// layout comes from the object cache, so it is parsed once per process.
func NewCalculator(cfg *config.Config) (Calculator, error) {
	if !cfg.GetBool(config.ConfigBonusTiles) {
		return NewNoBonusCalculator(), nil
	}
	layout := cfg.BoardLayoutPath()
	bm, err := cache.Load(cfg, "layout:"+layout, board.BonusMapLoadFunc)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("layout", layout).Int("premium-squares", len(bm)).Msg("loaded-bonus-map")
	return NewBonusCalculator(bm), nil
}
