package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kmacmillan/gridmind/internal/config"
	"github.com/kmacmillan/gridmind/internal/minesweeper"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	height := flag.Int("height", -1, "Board height (-1 to use config default)")
	width := flag.Int("width", -1, "Board width (-1 to use config default)")
	mines := flag.Int("mines", -1, "Mine count (-1 to use config default)")
	games := flag.Int("games", -1, "Number of games to play (-1 to use config default)")
	seed := flag.Int64("seed", 0, "Random seed (0 to use config default, which falls back to the clock)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}

	cfg := config.Get()

	// Use config defaults if not overridden by flags
	if *logLevel == "" {
		*logLevel = cfg.Log.Level
	}
	if *height == -1 {
		*height = cfg.Minesweeper.Height
	}
	if *width == -1 {
		*width = cfg.Minesweeper.Width
	}
	if *mines == -1 {
		*mines = cfg.Minesweeper.Mines
	}
	if *games == -1 {
		*games = cfg.Demo.Games
	}
	if *seed == 0 {
		*seed = cfg.Demo.Seed
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	setupLogging(*logLevel, cfg.Log.Format)

	config.WatchConfig(func() {
		log.Info().Msg("Configuration reloaded")
	})

	log.Info().
		Int("height", *height).
		Int("width", *width).
		Int("mines", *mines).
		Int("games", *games).
		Int64("seed", *seed).
		Msg("Starting minesweeper AI")

	rng := rand.New(rand.NewSource(*seed))

	wins := 0
	for i := 0; i < *games; i++ {
		if playGame(i+1, *height, *width, *mines, cfg.Demo.MaxMoves, rng) {
			wins++
		}
	}
	log.Info().Int("games", *games).Int("wins", wins).Msg("All games finished")
}

// playGame runs one full game: the agent probes until it flags every
// mine, steps on one, or runs out of cells it is willing to touch.
func playGame(n, height, width, mineCount, maxMoves int, rng *rand.Rand) bool {
	gameID := uuid.New().String()
	logger := log.With().Str("game_id", gameID).Int("game", n).Logger()

	field := minesweeper.NewField(height, width, mineCount, rng)
	agent := minesweeper.NewAgent(height, width, logger)

	for move := 0; move < maxMoves && !field.Won(); move++ {
		cell, strategy, ok := nextMove(agent, rng)
		if !ok {
			logger.Info().Msg("No untried cells left")
			break
		}
		if field.IsMine(cell) {
			logger.Info().Str("cell", cell.String()).Str("strategy", strategy).Msg("Stepped on a mine")
			fmt.Printf("Game %d: lost at %s\n%s\n\n", n, cell, field)
			return false
		}

		nearby := field.NearbyMines(cell)
		agent.AddObservation(cell, nearby)
		logger.Info().
			Str("cell", cell.String()).
			Str("strategy", strategy).
			Int("nearby", nearby).
			Msg("Probed cell")

		for _, mine := range agent.KnownMines() {
			field.Flag(mine)
		}
	}

	won := field.Won()
	stats := agent.Stats()
	logger.Info().
		Bool("won", won).
		Int("moves_made", stats.MovesMade).
		Int("known_mines", stats.KnownMines).
		Int("known_safes", stats.KnownSafes).
		Int("sentences", stats.Sentences).
		Msg("Game over")
	fmt.Printf("Game %d: %s\n%s\n\n", n,
		map[bool]string{true: "won", false: "out of safe progress"}[won], field)
	return won
}

// nextMove asks the agent for a certain move first and falls back to a
// random probe when no safe cell is known.
func nextMove(agent *minesweeper.Agent, rng *rand.Rand) (minesweeper.Cell, string, bool) {
	if cell, ok := agent.SafeMove(); ok {
		return cell, "safe", true
	}
	if cell, ok := agent.RandomMove(rng); ok {
		return cell, "random", true
	}
	return minesweeper.Cell{}, "", false
}

func setupLogging(level, format string) {
	// Parse log level
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		// Pretty console output for development
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
	}
}
