package game

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// PlayerID identifies one of the four seats around the board.
type PlayerID int

const (
	Red PlayerID = iota
	Blue
	Green
	Yellow
)

// PlayerCount is the number of seats the board has room for.
const PlayerCount = 4

// PlayerOrder is the canonical turn order. Games with fewer players take a
// prefix of it.
var PlayerOrder = []PlayerID{Red, Blue, Green, Yellow}

var playerNames = [PlayerCount]string{"Red", "Blue", "Green", "Yellow"}

// Orientation is the side of the board a player sits on. It fixes where the
// player's entry cell, home lane and base lie.
type Orientation int

const (
	South Orientation = iota
	East
	North
	West
)

var orientationNames = [...]string{"South", "East", "North", "West"}

// orientations binds every player to its side permanently.
var orientations = [PlayerCount]Orientation{
	Red:    South,
	Blue:   North,
	Green:  West,
	Yellow: East,
}

func (o Orientation) String() string {
	if o < South || o > West {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// Valid reports whether p is one of the four known players.
func (p PlayerID) Valid() bool {
	return p >= Red && p <= Yellow
}

func (p PlayerID) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Player(%d)", int(p))
	}
	return playerNames[p]
}

// Orientation returns the side of the board the player sits on.
func (p PlayerID) Orientation() Orientation {
	return orientations[p]
}

// ParsePlayerID resolves a player by name, ignoring case.
func ParsePlayerID(s string) (PlayerID, error) {
	for i, name := range playerNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return PlayerID(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown player %q", ErrInvalidPlayer, s)
}

// FirstPlayers returns the first n players of the canonical order.
func FirstPlayers(n int) ([]PlayerID, error) {
	if n < 1 || n > PlayerCount {
		return nil, fmt.Errorf("%w: %d players requested, board seats 1..%d", ErrInvalidPlayerCount, n, PlayerCount)
	}
	players := make([]PlayerID, n)
	copy(players, PlayerOrder[:n])
	return players, nil
}

func (p PlayerID) MarshalYAML() (interface{}, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPlayer, int(p))
	}
	return p.String(), nil
}

func (p *PlayerID) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	id, err := ParsePlayerID(name)
	if err != nil {
		return err
	}
	*p = id
	return nil
}
