package gamemaster

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"uckers/game"
)

var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrRollPending = errors.New("a roll is waiting for a move")
	ErrNoRoll      = errors.New("no roll to play")
	ErrIllegalMove = errors.New("illegal move")
)

// Update is one resolved roll. Move is nil when the player had nothing to
// move and the turn passed.
type Update struct {
	Player game.PlayerID
	Roll   int
	Move   *game.Move
	State  *game.GameState // copy taken after the roll resolved
}

// LocalGame runs one game in process: roll, choose one of the legal moves,
// repeat. A six keeps the turn with the same player.
type LocalGame struct {
	id       string
	topology *game.BoardTopology
	state    *game.GameState
	rules    *game.RulesEngine
	turns    *game.TurnManager
	roll     int // 0 while no roll is waiting for a move
	pending  []*game.Move
	winner   game.PlayerID
	over     bool
	updates  []Update
}

func NewLocalGame(cfg game.Config, players []game.PlayerID) (*LocalGame, error) {
	topology, err := game.NewBoardTopology(cfg)
	if err != nil {
		return nil, err
	}
	state, err := game.NewGameState(topology, players)
	if err != nil {
		return nil, err
	}
	turns, err := game.NewTurnManager(players)
	if err != nil {
		return nil, err
	}

	g := &LocalGame{
		id:       uuid.NewString(),
		topology: topology,
		state:    state,
		rules:    game.NewRulesEngine(topology),
		turns:    turns,
	}
	log.Debug().Str("game", g.id).Stringer("starting", turns.CurrentPlayer()).Int("players", len(players)).Msg("game created")
	return g, nil
}

func (g *LocalGame) ID() string {
	return g.id
}

func (g *LocalGame) Topology() *game.BoardTopology {
	return g.topology
}

// State returns a copy of the current position.
func (g *LocalGame) State() *game.GameState {
	return g.state.Copy()
}

func (g *LocalGame) CurrentPlayer() game.PlayerID {
	return g.turns.CurrentPlayer()
}

func (g *LocalGame) Winner() (game.PlayerID, bool) {
	return g.winner, g.over
}

func (g *LocalGame) Over() bool {
	return g.over
}

// PendingMoves lists the moves the current roll allows, if a roll is
// waiting.
func (g *LocalGame) PendingMoves() []*game.Move {
	return slices.Clone(g.pending)
}

// Roll resolves a die roll for the current player and returns the legal
// moves. With no legal move the turn passes straight away and nil is
// returned.
func (g *LocalGame) Roll(roll int) ([]*game.Move, error) {
	if g.over {
		return nil, ErrGameOver
	}
	if g.roll != 0 {
		return nil, fmt.Errorf("%w: %d", ErrRollPending, g.roll)
	}

	player := g.turns.CurrentPlayer()
	moves, err := g.rules.LegalMoves(g.state, player, roll)
	if err != nil {
		return nil, err
	}

	if len(moves) == 0 {
		log.Debug().Str("game", g.id).Stringer("player", player).Int("roll", roll).Msg("no legal moves, turn passes")
		g.updates = append(g.updates, Update{Player: player, Roll: roll, State: g.state.Copy()})
		g.turns.AdvanceTurn(game.HasExtraTurn(roll))
		return nil, nil
	}

	g.roll = roll
	g.pending = moves
	return slices.Clone(moves), nil
}

// Play applies one of the moves offered by the last Roll.
func (g *LocalGame) Play(move *game.Move) error {
	if g.over {
		return ErrGameOver
	}
	if g.roll == 0 {
		return ErrNoRoll
	}

	chosen, ok := lo.Find(g.pending, func(m *game.Move) bool {
		return m.Equal(move)
	})
	if !ok {
		return fmt.Errorf("%w: %v is not one of the %d legal moves", ErrIllegalMove, move, len(g.pending))
	}

	if err := g.state.ApplyMove(chosen); err != nil {
		return err
	}
	log.Debug().Str("game", g.id).Stringer("move", chosen).Msg("move played")

	roll := g.roll
	g.roll = 0
	g.pending = nil
	g.updates = append(g.updates, Update{Player: chosen.Player, Roll: roll, Move: chosen, State: g.state.Copy()})

	won, err := g.state.HasPlayerWon(chosen.Player)
	if err != nil {
		return err
	}
	if won {
		g.over = true
		g.winner = chosen.Player
		log.Info().Str("game", g.id).Stringer("winner", chosen.Player).Msg("game over")
		return nil
	}

	g.turns.AdvanceTurn(game.HasExtraTurn(roll))
	return nil
}

// NextUpdate pops the oldest update not yet read.
func (g *LocalGame) NextUpdate() (Update, bool) {
	if len(g.updates) == 0 {
		return Update{}, false
	}
	u := g.updates[0]
	g.updates = g.updates[1:]
	return u, true
}
