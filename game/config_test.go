package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfig(t *testing.T) {
	t.Run("standard config is valid", func(t *testing.T) {
		cfg := NewStandardConfig()
		require.NoError(t, cfg.Validate())
		require.Equal(t, 10, cfg.NodesPerSide)
		require.Equal(t, 4, cfg.HomeLaneSteps)
		require.Equal(t, 4, cfg.TokensPerPlayer)
		require.Equal(t, 2, cfg.MinPlayers)
		require.Equal(t, 4, cfg.MaxPlayers)
	})

	t.Run("parse overlays defaults", func(t *testing.T) {
		cfg, err := ParseConfig([]byte(`
nodes_per_side: 6
home_lane_overrides:
  green: 2
  Blue: 0
`))
		require.NoError(t, err)
		require.Equal(t, 6, cfg.NodesPerSide)
		require.Equal(t, 4, cfg.HomeLaneSteps, "Omitted keys should keep their defaults")
		require.Equal(t, map[PlayerID]int{Green: 2, Blue: 0}, cfg.HomeLaneOverrides)
		require.Equal(t, 2, cfg.homeLaneSteps(Green))
		require.Equal(t, 0, cfg.homeLaneSteps(Blue))
		require.Equal(t, 4, cfg.homeLaneSteps(Red))
	})

	t.Run("parse rejects unknown players and bad yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("home_lane_overrides:\n  purple: 3\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)

		_, err = ParseConfig([]byte("nodes_per_side: [1, 2]"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("validate", func(t *testing.T) {
		cases := map[string]func(*Config){
			"too few nodes":         func(c *Config) { c.NodesPerSide = 1 },
			"negative home lane":    func(c *Config) { c.HomeLaneSteps = -1 },
			"negative override":     func(c *Config) { c.HomeLaneOverrides = map[PlayerID]int{Red: -2} },
			"override unknown seat": func(c *Config) { c.HomeLaneOverrides = map[PlayerID]int{PlayerID(9): 2} },
			"no tokens":             func(c *Config) { c.TokensPerPlayer = 0 },
			"zero min players":      func(c *Config) { c.MinPlayers = 0 },
			"too many max players":  func(c *Config) { c.MaxPlayers = 5 },
			"min above max players": func(c *Config) { c.MinPlayers, c.MaxPlayers = 4, 3 },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				cfg := NewStandardConfig()
				mutate(&cfg)
				require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
			})
		}
	})

	t.Run("home lane of zero and one are valid", func(t *testing.T) {
		for _, k := range []int{0, 1} {
			cfg := NewStandardConfig()
			cfg.HomeLaneSteps = k
			require.NoError(t, cfg.Validate())
		}
	})

	t.Run("player count", func(t *testing.T) {
		cfg := NewStandardConfig()
		for n := 2; n <= 4; n++ {
			require.NoError(t, cfg.ValidatePlayerCount(n))
		}
		require.ErrorIs(t, cfg.ValidatePlayerCount(1), ErrInvalidPlayerCount)
		require.ErrorIs(t, cfg.ValidatePlayerCount(5), ErrInvalidPlayerCount)
	})

	t.Run("load from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "board.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tokens_per_player: 2\nmin_players: 1\n"), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 2, cfg.TokensPerPlayer)
		require.Equal(t, 1, cfg.MinPlayers)

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("marshal writes player names", func(t *testing.T) {
		cfg := NewStandardConfig()
		cfg.HomeLaneOverrides = map[PlayerID]int{Yellow: 3}
		data, err := yaml.Marshal(cfg)
		require.NoError(t, err)
		require.Contains(t, string(data), "Yellow: 3")

		back, err := ParseConfig(data)
		require.NoError(t, err)
		require.Equal(t, cfg, back)
	})
}

func TestPlayerID(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		for _, p := range PlayerOrder {
			got, err := ParsePlayerID(p.String())
			require.NoError(t, err)
			require.Equal(t, p, got)
		}
		got, err := ParsePlayerID(" yellow ")
		require.NoError(t, err)
		require.Equal(t, Yellow, got)

		_, err = ParsePlayerID("purple")
		require.ErrorIs(t, err, ErrInvalidPlayer)
	})

	t.Run("orientation", func(t *testing.T) {
		require.Equal(t, South, Red.Orientation())
		require.Equal(t, North, Blue.Orientation())
		require.Equal(t, West, Green.Orientation())
		require.Equal(t, East, Yellow.Orientation())
	})

	t.Run("first players", func(t *testing.T) {
		players, err := FirstPlayers(3)
		require.NoError(t, err)
		require.Equal(t, []PlayerID{Red, Blue, Green}, players)

		_, err = FirstPlayers(0)
		require.ErrorIs(t, err, ErrInvalidPlayerCount)
		_, err = FirstPlayers(5)
		require.ErrorIs(t, err, ErrInvalidPlayerCount)
	})

	t.Run("unknown ids print their number", func(t *testing.T) {
		require.Equal(t, "Player(9)", PlayerID(9).String())
		require.False(t, PlayerID(9).Valid())
	})
}
