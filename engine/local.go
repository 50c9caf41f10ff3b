package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"uckers/game"
	"uckers/gamemaster"
	"uckers/meta"
	"uckers/metrics"
	"uckers/player"
)

type Option func(e *Engine)

// Engine plays a LocalGame to the end with one agent per seat.
type Engine struct {
	Game     *gamemaster.LocalGame
	agents   map[game.PlayerID]player.Agent
	dice     Dice
	maxTurns int
	metrics  metrics.Collector
}

func WithDice(dice Dice) Option {
	return func(e *Engine) {
		if dice != nil {
			e.dice = dice
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

// LocalEngine seats agents[i] as players[i].
func LocalEngine(cfg game.Config, players []game.PlayerID, agents []player.Agent, options ...Option) (*Engine, error) {
	if len(players) != len(agents) {
		return nil, fmt.Errorf("number of players (%d) does not match number of agents (%d)", len(players), len(agents))
	}
	g, err := gamemaster.NewLocalGame(cfg, players)
	if err != nil {
		return nil, err
	}

	e := &Engine{ // Default values
		Game:     g,
		agents:   make(map[game.PlayerID]player.Agent, len(players)),
		dice:     NewRandomDice(meta.DEFAULT_SEED),
		maxTurns: meta.MAX_TURNS,
		metrics:  metrics.NewDummyCollector(),
	}
	for i, p := range players {
		if agents[i] == nil {
			return nil, fmt.Errorf("no agent for %v", p)
		}
		e.agents[p] = agents[i]
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the game loop until a winner is found or maxTurns rolls have
// been taken.
func (e *Engine) Run() (game.PlayerID, bool, metrics.GameMetric) {
	id := e.Game.ID()
	e.metrics.Start(id, e.Game.CurrentPlayer())
	log.Info().Str("game", id).Msgf("player %v is starting", e.Game.CurrentPlayer())

	turn := 1
	for ; !e.Game.Over() && turn <= e.maxTurns; turn++ {
		current := e.Game.CurrentPlayer()
		roll := e.dice.Roll()
		e.metrics.AddTurn()

		moves, err := e.Game.Roll(roll)
		if err != nil {
			panic(err)
		}

		if len(moves) == 0 {
			e.metrics.AddPass()
			log.Debug().Str("game", id).Int("turn", turn).Stringer("player", current).Int("roll", roll).Msg("pass")
		} else {
			move := e.play(current, moves)
			e.metrics.AddMove(move)
			log.Debug().Str("game", id).Int("turn", turn).Stringer("player", current).Int("roll", roll).Stringer("move", move).Msg("move")
		}

		if game.HasExtraTurn(roll) && !e.Game.Over() {
			e.metrics.AddExtraTurn()
		}
	}

	winner, ok := e.Game.Winner()
	if ok {
		log.Info().Str("game", id).Stringer("winner", winner).Int("turns", turn-1).Msg("game ended with a winner")
	} else {
		log.Warn().Str("game", id).Int("turns", e.maxTurns).Msg("stopped at the turn cap with no winner")
	}
	return winner, ok, e.metrics.Complete(winner, ok)
}

// play asks the agent for a move, falling back to the first legal move when
// it answers with something the game rejects.
func (e *Engine) play(p game.PlayerID, moves []*game.Move) *game.Move {
	move := e.agents[p].Choose(e.Game.State(), moves)
	err := e.Game.Play(move)
	if err == nil {
		return move
	}
	if !errors.Is(err, gamemaster.ErrIllegalMove) {
		panic(err)
	}

	log.Warn().Err(err).Stringer("player", p).Msg("agent chose an illegal move, playing the first legal one")
	if err := e.Game.Play(moves[0]); err != nil {
		panic(err)
	}
	return moves[0]
}
