package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"ataxx/game"
	"ataxx/searcher"
)

// Config carries the engine's tunables, loaded from an optional ataxx.yaml
// (or an explicit file) with ATAXX_-prefixed environment overrides.
type Config struct {
	Depth      int      `mapstructure:"depth"`
	Seed       uint64   `mapstructure:"seed"`
	ListenAddr string   `mapstructure:"listen_addr"`
	ServerURL  string   `mapstructure:"server_url"`
	Blocks     []string `mapstructure:"blocks"` // e.g. ["c3", "b5"]; applied with reflection symmetry
}

// Load reads configuration from path, or from ./ataxx.yaml when path is
// empty; a missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("depth", searcher.MaxDepth)
	v.SetDefault("seed", 1)
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("server_url", "http://localhost:8080")
	v.SetDefault("blocks", []string{})

	v.SetEnvPrefix("ataxx")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("ataxx")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if c.Depth <= 0 {
		return nil, fmt.Errorf("depth must be positive, got %d", c.Depth)
	}
	return &c, nil
}

// NewBoard returns the starting position with the configured blocks set.
func (c *Config) NewBoard() (*game.Board, error) {
	board := game.NewBoard()
	for _, block := range c.Blocks {
		if len(block) != 2 {
			return nil, fmt.Errorf("malformed block %q", block)
		}
		if err := board.SetBlock(block[0], block[1]); err != nil {
			return nil, err
		}
	}
	return board, nil
}
