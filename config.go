package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/righthandabacus/tttai/engine"
	"github.com/righthandabacus/tttai/game"
)

// Config is the YAML file form of a match setup. It mirrors the flags; a
// config file, when given, wins over them.
type Config struct {
	Encoding string      `yaml:"encoding"` // "array" (default) or "bitboard"
	X        engine.Spec `yaml:"x"`
	O        engine.Spec `yaml:"o"`
}

func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Start is the empty board in the configured encoding. The searchers are
// encoding-agnostic; this is where the variant is picked.
func (c Config) Start() (game.State, error) {
	switch c.Encoding {
	case "", "array":
		return game.NewBoard(), nil
	case "bitboard":
		return game.NewBitboard(), nil
	}
	return nil, errors.Errorf("unknown encoding %q", c.Encoding)
}
