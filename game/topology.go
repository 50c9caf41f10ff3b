package game

import (
	"fmt"

	"uckers/utils"
)

// BoardTopology is the fixed index geometry of the board: the circular track,
// every player's entry and home-entry cells and home lane lengths. It is built
// once and never changes, so one value can be shared by every game using the
// same configuration.
//
// Progress values encode positions: track cells are 0..L-1 and home lane cell
// h is L+h, where L is the track length.
type BoardTopology struct {
	config      Config
	trackLength int
	maxLane     int

	entry     [PlayerCount]int
	homeEntry [PlayerCount]int
	homeLane  [PlayerCount]int
}

// NewBoardTopology derives the geometry from cfg.
func NewBoardTopology(cfg Config) (*BoardTopology, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	side := cfg.NodesPerSide - 1
	t := &BoardTopology{
		config:      cfg,
		trackLength: 4 * side,
	}
	for _, p := range PlayerOrder {
		// The lap runs South, East, North, West; a player enters at the
		// middle of its own side.
		start := int(p.Orientation()) * side
		t.entry[p] = start + side/2
		t.homeEntry[p] = utils.Mod(t.entry[p]-1, t.trackLength)
		t.homeLane[p] = cfg.homeLaneSteps(p)
		t.maxLane = max(t.maxLane, t.homeLane[p])
	}
	return t, nil
}

func (t *BoardTopology) Config() Config {
	return t.config
}

// TrackLength is L = 4*(NodesPerSide-1).
func (t *BoardTopology) TrackLength() int {
	return t.trackLength
}

func (t *BoardTopology) TokensPerPlayer() int {
	return t.config.TokensPerPlayer
}

// EntryIndex is the track cell a player's tokens appear on when leaving base.
func (t *BoardTopology) EntryIndex(p PlayerID) (int, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	return t.entry[p], nil
}

// HomeEntryIndex is the track cell a player's tokens branch off from into
// their home lane, one cell behind the entry.
func (t *BoardTopology) HomeEntryIndex(p PlayerID) (int, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	return t.homeEntry[p], nil
}

func (t *BoardTopology) HomeLaneLength(p PlayerID) (int, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	return t.homeLane[p], nil
}

// FinalHomeProgress is the progress of a finished token: the last cell of the
// player's home lane.
func (t *BoardTopology) FinalHomeProgress(p PlayerID) (int, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	return t.finalProgress(p), nil
}

func (t *BoardTopology) Orientation(p PlayerID) (Orientation, error) {
	if err := checkPlayer(p); err != nil {
		return 0, err
	}
	return p.Orientation(), nil
}

// ToHomeProgress maps a 0-based home lane index to its progress value.
func (t *BoardTopology) ToHomeProgress(homeIndex int) (int, error) {
	if homeIndex < 0 || homeIndex >= t.maxLane {
		return 0, fmt.Errorf("%w: home index %d outside 0..%d", ErrOutOfRange, homeIndex, t.maxLane-1)
	}
	return t.trackLength + homeIndex, nil
}

// ToHomeIndex maps a home progress value back to its 0-based lane index.
func (t *BoardTopology) ToHomeIndex(progress int) (int, error) {
	index := progress - t.trackLength
	if index < 0 || index >= t.maxLane {
		return 0, fmt.Errorf("%w: progress %d outside home range %d..%d", ErrOutOfRange, progress, t.trackLength, t.trackLength+t.maxLane-1)
	}
	return index, nil
}

func (t *BoardTopology) finalProgress(p PlayerID) int {
	return t.trackLength + t.homeLane[p] - 1
}

func checkPlayer(p PlayerID) error {
	if !p.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidPlayer, p)
	}
	return nil
}
