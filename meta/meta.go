// meta/meta.go
package meta

// MAX_TURNS caps a headless game. Rolls that pass count as turns.
const MAX_TURNS = 2000

// DEFAULT_SEED seeds the dice and the random chooser when none is given.
const DEFAULT_SEED = 1

// DEFAULT_PLAYERS is the number of seats filled by the demo.
const DEFAULT_PLAYERS = 4
