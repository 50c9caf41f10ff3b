package game

import "fmt"

// TokenStatus says where a token is, and how its progress is read.
type TokenStatus int

const (
	Base     TokenStatus = iota // progress is BaseProgress
	Track                       // progress is a track cell, 0..L-1
	Home                        // progress is L+h for home lane index h
	Finished                    // progress is the final home progress, forever
)

var statusNames = [...]string{"Base", "Track", "Home", "Finished"}

func (s TokenStatus) String() string {
	if s < Base || s > Finished {
		return fmt.Sprintf("TokenStatus(%d)", int(s))
	}
	return statusNames[s]
}

// TokenSnapshot is a read-only copy of one token's position.
type TokenSnapshot struct {
	Player   PlayerID
	Index    int
	Status   TokenStatus
	Progress int
}

func (t TokenSnapshot) String() string {
	return fmt.Sprintf("[%v#%d %v@%d]", t.Player, t.Index, t.Status, t.Progress)
}

// StatusCounts tallies a player's tokens per status.
type StatusCounts struct {
	Base     int
	Track    int
	Home     int
	Finished int
}

func (c StatusCounts) Total() int {
	return c.Base + c.Track + c.Home + c.Finished
}

type tokenRecord struct {
	status   TokenStatus
	progress int
}

func baseRecord() tokenRecord {
	return tokenRecord{status: Base, progress: BaseProgress}
}
