// Package game is the rules core of a 2-4 player cross-track race-and-capture
// board game. Tokens leave their base on a six, run a lap of the shared track,
// peel off into a private home lane and must land exactly on the lane's last
// cell to finish. Landing on an opponent's track cell sends it back to base.
//
// The package is synchronous and holds no locks: callers serialize access to a
// GameState per game.
package game

const (
	MinRoll = 1
	MaxRoll = 6

	// LeaveBaseRoll is the only roll that brings a token out of base.
	LeaveBaseRoll = MaxRoll
	// ExtraTurnRoll keeps the turn with the current player.
	ExtraTurnRoll = MaxRoll

	// BaseProgress is the progress of every token waiting in base.
	BaseProgress = -1
)

// HasExtraTurn reports whether a roll keeps the turn with the roller.
func HasExtraTurn(roll int) bool {
	return roll == ExtraTurnRoll
}

func validRoll(roll int) bool {
	return roll >= MinRoll && roll <= MaxRoll
}
