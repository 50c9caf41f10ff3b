package game

import (
	"fmt"
	"slices"

	"uckers/utils"
)

// TurnManager is the round-robin turn order. The first player in the order
// starts.
type TurnManager struct {
	players []PlayerID
	current int
}

func NewTurnManager(order []PlayerID) (*TurnManager, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	return &TurnManager{players: slices.Clone(order)}, nil
}

func (tm *TurnManager) Players() []PlayerID {
	return slices.Clone(tm.players)
}

func (tm *TurnManager) CurrentPlayer() PlayerID {
	return tm.players[tm.current]
}

// PeekNextPlayer returns who plays after the current player without passing
// the turn.
func (tm *TurnManager) PeekNextPlayer() PlayerID {
	return tm.players[(tm.current+1)%len(tm.players)]
}

// AdvanceTurn passes the turn on, unless the current player earned an extra
// roll.
func (tm *TurnManager) AdvanceTurn(hasExtraRoll bool) {
	if hasExtraRoll {
		return
	}
	tm.current = (tm.current + 1) % len(tm.players)
}

// SetCurrentPlayer hands the turn to p.
func (tm *TurnManager) SetCurrentPlayer(p PlayerID) error {
	index := utils.FindIndex(tm.players, p)
	if index < 0 {
		return fmt.Errorf("%w: %v is not part of the turn order", ErrInvalidPlayer, p)
	}
	tm.current = index
	return nil
}
