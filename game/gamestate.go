package game

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// GameState holds the authoritative position of every token in one game.
// Tokens change only through ApplyMove, which re-checks every invariant
// afterwards. Everything else returns copies.
type GameState struct {
	topology *BoardTopology
	players  []PlayerID
	tokens   [PlayerCount][]tokenRecord // nil for seats not in this game
}

// NewGameState starts a game for the given turn order with every token in
// base.
func NewGameState(topology *BoardTopology, order []PlayerID) (*GameState, error) {
	if topology == nil {
		return nil, fmt.Errorf("%w: game state needs a topology", ErrInvalidConfig)
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	if err := topology.config.ValidatePlayerCount(len(order)); err != nil {
		return nil, err
	}

	gs := &GameState{
		topology: topology,
		players:  slices.Clone(order),
	}
	for _, p := range order {
		records := make([]tokenRecord, topology.TokensPerPlayer())
		for i := range records {
			records[i] = baseRecord()
		}
		gs.tokens[p] = records
	}

	if err := gs.ValidateInvariants(); err != nil {
		return nil, err
	}
	return gs, nil
}

// validateOrder checks that a turn order names known players, each once.
func validateOrder(order []PlayerID) error {
	if len(order) == 0 {
		return fmt.Errorf("%w: player order cannot be empty", ErrInvalidPlayerCount)
	}
	for _, p := range order {
		if err := checkPlayer(p); err != nil {
			return err
		}
	}
	if dups := lo.FindDuplicates(order); len(dups) > 0 {
		return fmt.Errorf("%w: %v appears more than once in the player order", ErrInvalidPlayer, dups)
	}
	return nil
}

// Copy returns a deep copy sharing only the immutable topology.
func (gs *GameState) Copy() *GameState {
	c := &GameState{
		topology: gs.topology,
		players:  slices.Clone(gs.players),
	}
	for _, p := range gs.players {
		c.tokens[p] = slices.Clone(gs.tokens[p])
	}
	return c
}

func (gs *GameState) Topology() *BoardTopology {
	return gs.topology
}

// Players returns the turn order the game was created with.
func (gs *GameState) Players() []PlayerID {
	return slices.Clone(gs.players)
}

// Tokens returns snapshots of all of a player's tokens ordered by index.
func (gs *GameState) Tokens(p PlayerID) ([]TokenSnapshot, error) {
	if err := gs.checkPlayer(p); err != nil {
		return nil, err
	}
	return lo.Map(gs.tokens[p], func(r tokenRecord, i int) TokenSnapshot {
		return snapshot(p, i, r)
	}), nil
}

// Token returns one token's snapshot.
func (gs *GameState) Token(p PlayerID, index int) (TokenSnapshot, error) {
	if err := gs.checkToken(p, index); err != nil {
		return TokenSnapshot{}, err
	}
	return snapshot(p, index, gs.tokens[p][index]), nil
}

// AllTokens iterates every token of every player, player-major in turn order.
// The sequence can be ranged over any number of times.
func (gs *GameState) AllTokens() iter.Seq[TokenSnapshot] {
	return func(yield func(TokenSnapshot) bool) {
		for _, p := range gs.players {
			for i, r := range gs.tokens[p] {
				if !yield(snapshot(p, i, r)) {
					return
				}
			}
		}
	}
}

// ApplyMove moves the acting token to the move's final step and sends every
// captured token back to base.
//
// Moves are expected to come from RulesEngine.LegalMoves for this state.
// Malformed moves are rejected before anything changes; an invariant that
// breaks after the update is a bug and panics.
func (gs *GameState) ApplyMove(move *Move) error {
	if move == nil {
		return fmt.Errorf("%w: nil move", ErrInvalidMove)
	}
	if err := gs.checkToken(move.Player, move.Token); err != nil {
		return err
	}
	if len(move.Steps) == 0 {
		return fmt.Errorf("%w: move must contain at least one step", ErrInvalidMove)
	}
	final := move.Final()
	landing := tokenRecord{status: final.Status, progress: final.Progress}
	if err := gs.checkRecord(move.Player, landing); err != nil {
		return err
	}
	for _, c := range move.Captures {
		if err := gs.checkToken(c.Player, c.Token); err != nil {
			return err
		}
		if c.Player == move.Player {
			return fmt.Errorf("%w: %v cannot capture its own token %d", ErrInvalidMove, c.Player, c.Token)
		}
	}

	gs.tokens[move.Player][move.Token] = landing
	for _, c := range move.Captures {
		gs.tokens[c.Player][c.Token] = baseRecord()
	}

	if err := gs.ValidateInvariants(); err != nil {
		panic(err)
	}
	return nil
}

// HasPlayerWon is true only once every one of the player's tokens is
// finished.
func (gs *GameState) HasPlayerWon(p PlayerID) (bool, error) {
	if err := gs.checkPlayer(p); err != nil {
		return false, err
	}
	return lo.EveryBy(gs.tokens[p], func(r tokenRecord) bool {
		return r.status == Finished
	}), nil
}

// Counts tallies a player's tokens by status.
func (gs *GameState) Counts(p PlayerID) (StatusCounts, error) {
	if err := gs.checkPlayer(p); err != nil {
		return StatusCounts{}, err
	}
	return countStatuses(gs.tokens[p]), nil
}

// ValidateInvariants checks token conservation and the status/progress
// pairing of every token.
func (gs *GameState) ValidateInvariants() error {
	want := gs.topology.TokensPerPlayer()
	for _, p := range gs.players {
		records := gs.tokens[p]
		if len(records) != want {
			return fmt.Errorf("%w: %v has %d tokens, expected %d", ErrInvariantViolation, p, len(records), want)
		}
		for _, r := range records {
			if err := gs.checkRecord(p, r); err != nil {
				return err
			}
		}

		counts := countStatuses(records)
		for _, n := range []int{counts.Base, counts.Track, counts.Home, counts.Finished} {
			if n < 0 || n > want {
				return fmt.Errorf("%w: %v status count %d outside 0..%d", ErrInvariantViolation, p, n, want)
			}
		}
		if counts.Total() != want {
			return fmt.Errorf("%w: token conservation violated for %v: %+v", ErrInvariantViolation, p, counts)
		}
	}
	return nil
}

// checkRecord validates the status/progress pairing for one of p's tokens.
func (gs *GameState) checkRecord(p PlayerID, r tokenRecord) error {
	t := gs.topology
	switch r.status {
	case Base:
		if r.progress != BaseProgress {
			return fmt.Errorf("%w: %v base token has progress %d, expected %d", ErrInvariantViolation, p, r.progress, BaseProgress)
		}
	case Track:
		if r.progress < 0 || r.progress >= t.trackLength {
			return fmt.Errorf("%w: %v track token has progress %d outside 0..%d", ErrInvariantViolation, p, r.progress, t.trackLength-1)
		}
	case Home:
		index := r.progress - t.trackLength
		if index < 0 || index >= t.homeLane[p] {
			return fmt.Errorf("%w: %v home token has progress %d outside %d..%d", ErrInvariantViolation, p, r.progress, t.trackLength, t.finalProgress(p))
		}
	case Finished:
		if r.progress != t.finalProgress(p) {
			return fmt.Errorf("%w: %v finished token has progress %d, expected %d", ErrInvariantViolation, p, r.progress, t.finalProgress(p))
		}
	default:
		return fmt.Errorf("%w: %v token has unknown status %v", ErrInvariantViolation, p, r.status)
	}
	return nil
}

func (gs *GameState) checkPlayer(p PlayerID) error {
	if !p.Valid() || gs.tokens[p] == nil {
		return fmt.Errorf("%w: %v is not part of this game", ErrInvalidPlayer, p)
	}
	return nil
}

func (gs *GameState) checkToken(p PlayerID, index int) error {
	if err := gs.checkPlayer(p); err != nil {
		return err
	}
	if index < 0 || index >= len(gs.tokens[p]) {
		return fmt.Errorf("%w: %d outside 0..%d", ErrInvalidTokenIndex, index, len(gs.tokens[p])-1)
	}
	return nil
}

func countStatuses(records []tokenRecord) StatusCounts {
	count := func(s TokenStatus) int {
		return lo.CountBy(records, func(r tokenRecord) bool { return r.status == s })
	}
	return StatusCounts{
		Base:     count(Base),
		Track:    count(Track),
		Home:     count(Home),
		Finished: count(Finished),
	}
}

func snapshot(p PlayerID, index int, r tokenRecord) TokenSnapshot {
	return TokenSnapshot{Player: p, Index: index, Status: r.status, Progress: r.progress}
}
