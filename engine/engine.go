package engine

import (
	"uckers/game"
	"uckers/metrics"
)

type Runner interface {
	// Run plays until there's a winner or the turn cap is reached
	Run() (winner game.PlayerID, ok bool, gameMetric metrics.GameMetric)
}

var _ Runner = (*Engine)(nil)
