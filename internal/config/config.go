// Package config loads engine tuning parameters from a TOML file.
package config

import (
	"github.com/BurntSushi/toml"
)

// MaterialWeights holds per-piece material weights whose defaults equal
// eval.MaterialEvaluator's constants. No other package reads them:
// MaterialEvaluator always scores with its compiled-in constants.
type MaterialWeights struct {
	Pawn   float64 `toml:"pawn"`
	Knight float64 `toml:"knight"`
	Bishop float64 `toml:"bishop"`
	Rook   float64 `toml:"rook"`
	Queen  float64 `toml:"queen"`
	King   float64 `toml:"king"`
}

// EngineConfig is the top-level decoded document.
type EngineConfig struct {
	SearchDepth     int             `toml:"search_depth"`
	TTSizeMB        int             `toml:"tt_size_mb"`
	MaterialWeights MaterialWeights `toml:"material_weights"`
}

// Default returns the configuration Load starts from: weights equal to
// eval.MaterialEvaluator's built-in ones and a modest default search
// depth/table size.
func Default() EngineConfig {
	return EngineConfig{
		SearchDepth: 4,
		TTSizeMB:    32,
		MaterialWeights: MaterialWeights{
			Pawn: 1.0, Knight: 3.0, Bishop: 3.5, Rook: 5.0, Queen: 9.0, King: 100000.0,
		},
	}
}

// Load decodes an EngineConfig from the TOML file at path, starting from
// Default() so a partial file only overrides the fields it sets.
func Load(path string) (EngineConfig, error) {
	cfg := Default()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return EngineConfig{}, err
	}
	return cfg, nil
}
