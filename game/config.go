package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the only knobs the board geometry derives from.
type Config struct {
	NodesPerSide  int `yaml:"nodes_per_side"`  // track cells per side, corners shared
	HomeLaneSteps int `yaml:"home_lane_steps"` // home lane length K
	// HomeLaneOverrides gives individual players a lane length other than
	// HomeLaneSteps.
	HomeLaneOverrides map[PlayerID]int `yaml:"home_lane_overrides,omitempty"`
	TokensPerPlayer   int              `yaml:"tokens_per_player"`
	MinPlayers        int              `yaml:"min_players"`
	MaxPlayers        int              `yaml:"max_players"`
}

// NewStandardConfig returns the configuration of the standard board: ten
// nodes per side (a 36 cell track), four step home lanes, four tokens each
// and two to four players.
func NewStandardConfig() Config {
	return Config{
		NodesPerSide:    10,
		HomeLaneSteps:   4,
		TokensPerPlayer: 4,
		MinPlayers:      2,
		MaxPlayers:      4,
	}
}

// ParseConfig overlays YAML on the standard configuration, so omitted keys
// keep their defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := NewStandardConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

func (c Config) Validate() error {
	if c.NodesPerSide < 2 {
		return fmt.Errorf("%w: nodes_per_side must be at least 2, got %d", ErrInvalidConfig, c.NodesPerSide)
	}
	if c.HomeLaneSteps < 0 {
		return fmt.Errorf("%w: home_lane_steps cannot be negative, got %d", ErrInvalidConfig, c.HomeLaneSteps)
	}
	for p, steps := range c.HomeLaneOverrides {
		if !p.Valid() {
			return fmt.Errorf("%w: home lane override for %v", ErrInvalidConfig, p)
		}
		if steps < 0 {
			return fmt.Errorf("%w: home lane override for %v cannot be negative, got %d", ErrInvalidConfig, p, steps)
		}
	}
	if c.TokensPerPlayer < 1 {
		return fmt.Errorf("%w: tokens_per_player must be at least 1, got %d", ErrInvalidConfig, c.TokensPerPlayer)
	}
	if c.MinPlayers < 1 || c.MaxPlayers > PlayerCount || c.MinPlayers > c.MaxPlayers {
		return fmt.Errorf("%w: player bounds %d..%d must lie within 1..%d", ErrInvalidConfig, c.MinPlayers, c.MaxPlayers, PlayerCount)
	}
	return nil
}

// ValidatePlayerCount checks a game's size against the configured bounds.
func (c Config) ValidatePlayerCount(n int) error {
	if n < c.MinPlayers || n > c.MaxPlayers {
		return fmt.Errorf("%w: player count must be between %d and %d inclusive, got %d", ErrInvalidPlayerCount, c.MinPlayers, c.MaxPlayers, n)
	}
	return nil
}

// homeLaneSteps is the lane length for p after overrides.
func (c Config) homeLaneSteps(p PlayerID) int {
	if steps, ok := c.HomeLaneOverrides[p]; ok {
		return steps
	}
	return c.HomeLaneSteps
}
