package game

import "fmt"

// RulesEngine enumerates legal moves. It reads a GameState but never changes
// it; the chosen move is applied with GameState.ApplyMove.
type RulesEngine struct {
	topology *BoardTopology
}

func NewRulesEngine(topology *BoardTopology) *RulesEngine {
	return &RulesEngine{topology: topology}
}

// LegalMoves returns one move per token of p that can move with roll, in
// token order, each carrying its full trajectory and captures. An empty
// result means the player cannot move.
func (r *RulesEngine) LegalMoves(state *GameState, p PlayerID, roll int) ([]*Move, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: no game state", ErrInvalidMove)
	}
	if state.topology != r.topology {
		return nil, fmt.Errorf("%w: game state was built on a different topology", ErrInvalidConfig)
	}
	if !validRoll(roll) {
		return nil, fmt.Errorf("%w: %d outside %d..%d", ErrInvalidRoll, roll, MinRoll, MaxRoll)
	}
	tokens, err := state.Tokens(p)
	if err != nil {
		return nil, err
	}

	moves := make([]*Move, 0, len(tokens))
	for _, token := range tokens {
		steps := r.trajectory(token, roll)
		if len(steps) == 0 {
			continue
		}
		moves = append(moves, &Move{
			Player:   p,
			Token:    token.Index,
			Roll:     roll,
			Steps:    steps,
			Captures: captures(state, p, steps[len(steps)-1]),
		})
	}
	return moves, nil
}

// Trajectory simulates a single token for roll without looking at any other
// token. It returns no steps when the token cannot move.
func (r *RulesEngine) Trajectory(token TokenSnapshot, roll int) ([]Step, error) {
	if !validRoll(roll) {
		return nil, fmt.Errorf("%w: %d outside %d..%d", ErrInvalidRoll, roll, MinRoll, MaxRoll)
	}
	if err := checkPlayer(token.Player); err != nil {
		return nil, err
	}
	t := r.topology
	switch token.Status {
	case Base, Finished:
	case Track:
		if token.Progress < 0 || token.Progress >= t.trackLength {
			return nil, fmt.Errorf("%w: track progress %d", ErrOutOfRange, token.Progress)
		}
	case Home:
		index := token.Progress - t.trackLength
		if index < 0 || index >= t.homeLane[token.Player] {
			return nil, fmt.Errorf("%w: home progress %d", ErrOutOfRange, token.Progress)
		}
	default:
		return nil, fmt.Errorf("%w: unknown token status %v", ErrInvalidMove, token.Status)
	}
	return r.trajectory(token, roll), nil
}

func (r *RulesEngine) trajectory(token TokenSnapshot, roll int) []Step {
	switch token.Status {
	case Base:
		if roll != LeaveBaseRoll {
			return nil
		}
		return []Step{{Progress: r.topology.entry[token.Player], Status: Track}}
	case Track:
		return r.alongTrack(token.Player, token.Progress, roll)
	case Home:
		walk := homeWalk{index: token.Progress - r.topology.trackLength, direction: forward}
		return r.alongHome(token.Player, walk, 1, roll)
	default:
		return nil
	}
}

// alongTrack walks roll cells round the loop, branching into the home lane
// when the token stands on its home-entry cell.
func (r *RulesEngine) alongTrack(p PlayerID, start, roll int) []Step {
	t := r.topology
	steps := make([]Step, 0, roll)
	index := start
	for n := 1; n <= roll; n++ {
		if index != t.homeEntry[p] {
			index = (index + 1) % t.trackLength
			steps = append(steps, Step{Progress: index, Status: Track})
			continue
		}

		lane := t.homeLane[p]
		if lane == 0 {
			return append(steps, Step{Progress: t.finalProgress(p), Status: Finished})
		}
		if n == roll && lane == 1 {
			return append(steps, Step{Progress: t.trackLength, Status: Finished})
		}
		steps = append(steps, Step{Progress: t.trackLength, Status: Home})
		return append(steps, r.alongHome(p, homeWalk{index: 0, direction: forward}, n+1, roll)...)
	}
	return steps
}

// alongHome takes steps from..roll inside p's home lane, stopping early when
// the token finishes.
func (r *RulesEngine) alongHome(p PlayerID, walk homeWalk, from, roll int) []Step {
	t := r.topology
	lane := t.homeLane[p]
	var steps []Step
	for n := from; n <= roll; n++ {
		var finished bool
		walk, finished = walk.next(lane, n == roll)
		if finished {
			return append(steps, Step{Progress: t.trackLength + walk.index, Status: Finished})
		}
		steps = append(steps, Step{Progress: t.trackLength + walk.index, Status: Home})
	}
	return steps
}

const (
	forward  = 1
	backward = -1
)

// homeWalk is a token's position and heading inside a home lane.
type homeWalk struct {
	index     int
	direction int
}

// next moves one cell along a lane of length lane. A token finishes only
// when the last step of the roll lands on the lane's end while heading
// forward; otherwise it bounces off either end.
func (w homeWalk) next(lane int, last bool) (homeWalk, bool) {
	index := min(max(w.index+w.direction, 0), lane-1)
	if last && w.direction == forward && index == lane-1 {
		return homeWalk{index: index, direction: w.direction}, true
	}

	direction := w.direction
	if index == lane-1 {
		direction = backward
	} else if index == 0 {
		direction = forward
	}
	return homeWalk{index: index, direction: direction}, false
}

// captures lists every opponent token on the track cell a move ends on.
// Moves ending anywhere but the track capture nothing.
func captures(state *GameState, p PlayerID, final Step) []Capture {
	if final.Status != Track {
		return nil
	}
	var out []Capture
	for token := range state.AllTokens() {
		if token.Player != p && token.Status == Track && token.Progress == final.Progress {
			out = append(out, Capture{Player: token.Player, Token: token.Index})
		}
	}
	return out
}
