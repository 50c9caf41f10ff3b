package game

import "errors"

// Every error returned by this package wraps one of these, so callers can
// branch with errors.Is.
var (
	ErrInvalidPlayer      = errors.New("invalid player")
	ErrInvalidTokenIndex  = errors.New("invalid token index")
	ErrInvalidRoll        = errors.New("invalid roll")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrOutOfRange         = errors.New("out of range")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidPlayerCount = errors.New("invalid player count")
	ErrInvalidMove        = errors.New("invalid move")
)
