package engine

import (
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"uckers/game"
	"uckers/player"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func tinyConfig() game.Config {
	cfg := game.NewStandardConfig()
	cfg.NodesPerSide = 2
	cfg.HomeLaneSteps = 1
	cfg.TokensPerPlayer = 1
	return cfg
}

type nilAgent struct{}

func (nilAgent) Choose(*game.GameState, []*game.Move) *game.Move { return nil }

func TestLocalEngineScripted(t *testing.T) {
	e, err := LocalEngine(
		tinyConfig(),
		[]game.PlayerID{game.Red, game.Blue},
		[]player.Agent{player.First(), player.First()},
		WithDice(NewScriptedDice(6, 3, 1, 1)),
		WithMetrics(),
	)
	require.NoError(t, err)

	winner, ok, m := e.Run()
	require.True(t, ok)
	require.Equal(t, game.Red, winner)
	require.Equal(t, "Red", m.Winner)
	require.Equal(t, "Red", m.StartingPlayer)
	require.Equal(t, e.Game.ID(), m.Game)
	require.Equal(t, 4, m.Turns)
	require.Equal(t, 3, m.Moves)
	require.Equal(t, 1, m.Passes)
	require.Equal(t, 1, m.ExtraTurns)
	require.Equal(t, 1, m.Finishes)
	require.Equal(t, 0, m.Captures)
}

func TestLocalEngineTurnCap(t *testing.T) {
	e, err := LocalEngine(
		tinyConfig(),
		[]game.PlayerID{game.Red, game.Blue},
		[]player.Agent{player.First(), player.First()},
		WithDice(NewScriptedDice(1)),
		WithMaxTurns(5),
		WithMetrics(),
	)
	require.NoError(t, err)

	_, ok, m := e.Run()
	require.False(t, ok, "Nobody can leave base without a six")
	require.Empty(t, m.Winner)
	require.Equal(t, 5, m.Turns)
	require.Equal(t, 5, m.Passes)
	require.False(t, e.Game.Over())
}

func TestLocalEngineIllegalChoiceFallsBack(t *testing.T) {
	e, err := LocalEngine(
		tinyConfig(),
		[]game.PlayerID{game.Red, game.Blue},
		[]player.Agent{nilAgent{}, player.First()},
		WithDice(NewScriptedDice(6, 3, 1, 1)),
	)
	require.NoError(t, err)

	winner, ok, _ := e.Run()
	require.True(t, ok)
	require.Equal(t, game.Red, winner)
}

func TestLocalEngineRandomGame(t *testing.T) {
	for _, n := range []int{2, 3, 4} {
		players, err := game.FirstPlayers(n)
		require.NoError(t, err)
		agents := make([]player.Agent, n)
		for i := range agents {
			agents[i] = player.NewRandom(uint64(i + 1))
		}

		e, err := LocalEngine(game.NewStandardConfig(), players, agents,
			WithDice(NewRandomDice(99)),
			WithMaxTurns(100000),
			WithMetrics(),
		)
		require.NoError(t, err)

		winner, ok, m := e.Run()
		require.True(t, ok, "%d player game should finish", n)
		require.Contains(t, players, winner)
		require.Equal(t, m.Turns, m.Moves+m.Passes)
		require.GreaterOrEqual(t, m.Finishes, 4)

		state := e.Game.State()
		require.NoError(t, state.ValidateInvariants())
		won, err := state.HasPlayerWon(winner)
		require.NoError(t, err)
		require.True(t, won)
	}
}

func TestLocalEngineValidation(t *testing.T) {
	_, err := LocalEngine(tinyConfig(), []game.PlayerID{game.Red, game.Blue}, []player.Agent{player.First()})
	require.Error(t, err)

	_, err = LocalEngine(tinyConfig(), []game.PlayerID{game.Red, game.Blue}, []player.Agent{player.First(), nil})
	require.Error(t, err)

	_, err = LocalEngine(tinyConfig(), []game.PlayerID{game.Red}, []player.Agent{player.First()})
	require.ErrorIs(t, err, game.ErrInvalidPlayerCount)
}

func TestDice(t *testing.T) {
	t.Run("random dice stay on the die", func(t *testing.T) {
		d := NewRandomDice(5)
		seen := map[int]bool{}
		for i := 0; i < 600; i++ {
			roll := d.Roll()
			require.GreaterOrEqual(t, roll, game.MinRoll)
			require.LessOrEqual(t, roll, game.MaxRoll)
			seen[roll] = true
		}
		require.Len(t, seen, 6)
	})

	t.Run("random dice repeat per seed", func(t *testing.T) {
		a, b := NewRandomDice(11), NewRandomDice(11)
		for i := 0; i < 50; i++ {
			require.Equal(t, a.Roll(), b.Roll())
		}
	})

	t.Run("scripted dice cycle", func(t *testing.T) {
		d := NewScriptedDice(2, 4)
		var rolls []int
		for i := 0; i < 5; i++ {
			rolls = append(rolls, d.Roll())
		}
		require.Equal(t, []int{2, 4, 2, 4, 2}, rolls)
		require.Panics(t, func() { NewScriptedDice() })
	})
}
