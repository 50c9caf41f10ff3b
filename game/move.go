package game

import (
	"fmt"
	"slices"
)

// Step is one cell of a move's trajectory.
type Step struct {
	Progress int
	Status   TokenStatus
}

// Capture names an opponent token a move sends back to base.
type Capture struct {
	Player PlayerID
	Token  int
}

// Move is a legal move produced by the RulesEngine: the acting token, every
// cell it passes through in order, and the tokens it captures on landing.
// Presentation layers animate through Steps exactly as given.
type Move struct {
	Player   PlayerID
	Token    int
	Roll     int
	Steps    []Step
	Captures []Capture
}

// Final is the step the token comes to rest on.
func (m *Move) Final() Step {
	return m.Steps[len(m.Steps)-1]
}

// Equal compares two moves field by field.
func (m *Move) Equal(other *Move) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Player == other.Player &&
		m.Token == other.Token &&
		m.Roll == other.Roll &&
		slices.Equal(m.Steps, other.Steps) &&
		slices.Equal(m.Captures, other.Captures)
}

func (m *Move) String() string {
	if len(m.Steps) == 0 {
		return fmt.Sprintf("[%v#%d roll:%d no steps]", m.Player, m.Token, m.Roll)
	}
	final := m.Final()
	return fmt.Sprintf("[%v#%d roll:%d -> %v@%d captures:%d]", m.Player, m.Token, m.Roll, final.Status, final.Progress, len(m.Captures))
}
