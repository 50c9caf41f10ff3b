package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"uckers/engine"
	"uckers/game"
	"uckers/meta"
	"uckers/metrics"
	"uckers/player"
)

type options struct {
	players  []game.PlayerID
	seed     uint64
	maxTurns int
	random   bool
}

func main() {
	configPath := flag.String("config", "", "YAML board configuration, standard board if empty")
	numPlayers := flag.Int("players", meta.DEFAULT_PLAYERS, "Number of players (2-4)")
	seed := flag.Uint64("seed", meta.DEFAULT_SEED, "Seed for the dice and random agents")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "Stop a game after this many rolls")
	random := flag.Bool("random", false, "Choose moves at random instead of the first legal move")
	numGames := flag.Int("games", 1, "Number of games to play")
	outDir := flag.String("out", "", "Directory to write game metrics CSV to, none if empty")
	verbose := flag.Bool("verbose", false, "Log every turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := game.NewStandardConfig()
	if *configPath != "" {
		var err error
		cfg, err = game.LoadConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
	}

	players, err := game.FirstPlayers(*numPlayers)
	if err != nil {
		log.Fatal().Err(err).Msg("bad player count")
	}

	var records []metrics.GameMetric
	for i := 0; i < *numGames; i++ {
		m, err := runGame(cfg, options{
			players:  players,
			seed:     *seed + uint64(i),
			maxTurns: *maxTurns,
			random:   *random,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up game")
		}
		records = append(records, m)
	}

	if *outDir == "" {
		return
	}
	w, err := metrics.NewWriter(*outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := w.WriteGameMetrics(records); err != nil {
		log.Fatal().Err(err).Msg("failed to write game metrics")
	}
	log.Info().Str("dir", *outDir).Int("games", len(records)).Msg("game metrics written")
}

// runGame plays one headless game and logs its summary.
func runGame(cfg game.Config, opts options) (metrics.GameMetric, error) {
	agents := make([]player.Agent, len(opts.players))
	for i := range agents {
		if opts.random {
			agents[i] = player.NewRandom(opts.seed + uint64(i) + 1)
		} else {
			agents[i] = player.First()
		}
	}

	e, err := engine.LocalEngine(cfg, opts.players, agents,
		engine.WithDice(engine.NewRandomDice(opts.seed)),
		engine.WithMaxTurns(opts.maxTurns),
		engine.WithMetrics(),
	)
	if err != nil {
		return metrics.GameMetric{}, err
	}

	winner, ok, m := e.Run()
	event := log.Info().
		Str("game", m.Game).
		Uint64("seed", opts.seed).
		Int("turns", m.Turns).
		Int("moves", m.Moves).
		Int("passes", m.Passes).
		Int("captures", m.Captures).
		Int("extra_turns", m.ExtraTurns).
		Dur("duration", m.Duration)
	if ok {
		event.Stringer("winner", winner).Msg("game over")
	} else {
		event.Msg("no winner")
	}
	return m, nil
}
