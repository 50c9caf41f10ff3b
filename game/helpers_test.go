package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var playerCounts = []int{2, 3, 4}

// testContext drives a game through scripted rolls.
type testContext struct {
	t        *testing.T
	topology *BoardTopology
	state    *GameState
	rules    *RulesEngine
	players  []PlayerID
}

func newTestContext(t *testing.T, playerCount int) *testContext {
	return newTestContextWith(t, NewStandardConfig(), playerCount)
}

func newTestContextWith(t *testing.T, cfg Config, playerCount int) *testContext {
	t.Helper()
	topology, err := NewBoardTopology(cfg)
	require.NoError(t, err)
	players, err := FirstPlayers(playerCount)
	require.NoError(t, err)
	state, err := NewGameState(topology, players)
	require.NoError(t, err)
	return &testContext{
		t:        t,
		topology: topology,
		state:    state,
		rules:    NewRulesEngine(topology),
		players:  players,
	}
}

// move returns the legal move for one token, failing the test if there is none.
func (c *testContext) move(p PlayerID, token, roll int) *Move {
	c.t.Helper()
	moves, err := c.rules.LegalMoves(c.state, p, roll)
	require.NoError(c.t, err)
	for _, m := range moves {
		if m.Token == token {
			return m
		}
	}
	require.FailNowf(c.t, "no legal move", "%v token %d has no move for roll %d", p, token, roll)
	return nil
}

func (c *testContext) apply(m *Move) {
	c.t.Helper()
	require.NoError(c.t, c.state.ApplyMove(m))
}

func (c *testContext) advance(p PlayerID, token, roll int) *Move {
	c.t.Helper()
	m := c.move(p, token, roll)
	c.apply(m)
	return m
}

func (c *testContext) leaveBase(p PlayerID, token int) {
	c.t.Helper()
	c.advance(p, token, LeaveBaseRoll)
}

// advanceBySteps moves a token in rolls of at most six and returns the last
// move played.
func (c *testContext) advanceBySteps(p PlayerID, token, steps int) *Move {
	c.t.Helper()
	var last *Move
	for remaining := steps; remaining > 0; {
		roll := min(MaxRoll, remaining)
		last = c.advance(p, token, roll)
		remaining -= roll
	}
	return last
}

// distanceOnTrack counts the cells from a track token to target.
func (c *testContext) distanceOnTrack(p PlayerID, token, target int) int {
	c.t.Helper()
	snap := c.token(p, token)
	require.Equal(c.t, Track, snap.Status, "Token must be on the track to measure distance")
	L := c.topology.TrackLength()
	return (target - snap.Progress + L) % L
}

// prepareForHome leaves base and runs the token round to its home-entry cell.
func (c *testContext) prepareForHome(p PlayerID, token int) {
	c.t.Helper()
	c.leaveBase(p, token)
	c.advanceBySteps(p, token, c.topology.TrackLength()-1)
}

func (c *testContext) finishToken(p PlayerID, token int) {
	c.t.Helper()
	c.prepareForHome(p, token)
	c.advance(p, token, 1)
	if steps := c.topology.homeLane[p] - 1; steps > 0 {
		c.advance(p, token, steps)
	}
	require.Equal(c.t, Finished, c.token(p, token).Status)
}

func (c *testContext) token(p PlayerID, token int) TokenSnapshot {
	c.t.Helper()
	snap, err := c.state.Token(p, token)
	require.NoError(c.t, err)
	return snap
}

// place puts a token anywhere without going through a move.
func (c *testContext) place(p PlayerID, token int, status TokenStatus, progress int) {
	c.t.Helper()
	c.state.tokens[p][token] = tokenRecord{status: status, progress: progress}
	require.NoError(c.t, c.state.ValidateInvariants())
}

func (c *testContext) homeProgress(homeIndex int) int {
	c.t.Helper()
	progress, err := c.topology.ToHomeProgress(homeIndex)
	require.NoError(c.t, err)
	return progress
}
