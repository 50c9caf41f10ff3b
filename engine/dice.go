package engine

import (
	"golang.org/x/exp/rand"

	"uckers/game"
)

// Dice produces the rolls a game is played with.
type Dice interface {
	Roll() int
}

type randomDice struct {
	rng *rand.Rand
}

// NewRandomDice returns a fair six sided die. Equal seeds roll the same
// sequence.
func NewRandomDice(seed uint64) Dice {
	return &randomDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *randomDice) Roll() int {
	return game.MinRoll + d.rng.Intn(game.MaxRoll-game.MinRoll+1)
}

type scriptedDice struct {
	rolls []int
	next  int
}

// NewScriptedDice replays rolls in order, starting again from the first once
// they run out.
func NewScriptedDice(rolls ...int) Dice {
	if len(rolls) == 0 {
		panic("scripted dice need at least one roll")
	}
	return &scriptedDice{rolls: rolls}
}

func (d *scriptedDice) Roll() int {
	roll := d.rolls[d.next%len(d.rolls)]
	d.next++
	return roll
}
