package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kmacmillan/gridmind/internal/config"
	"github.com/kmacmillan/gridmind/internal/tictactoe"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	games := flag.Int("games", -1, "Number of self-play games (-1 to use config default)")
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
	if *games == -1 {
		*games = cfg.Demo.Games
	}

	setupLogging(*logLevel, cfg.Log.Format)

	log.Info().Int("games", *games).Msg("Starting tic-tac-toe self-play")

	for i := 0; i < *games; i++ {
		playGame(i + 1)
	}
}

// playGame runs one game with the search playing both sides. Perfect
// play from both players always ends in a draw.
func playGame(n int) {
	gameID := uuid.New().String()
	logger := log.With().Str("game_id", gameID).Int("game", n).Logger()

	board := tictactoe.NewBoard()
	moves := 0
	for {
		move, ok := tictactoe.OptimalMove(board)
		if !ok {
			break
		}
		player := board.CurrentPlayer()
		next, err := board.Apply(move)
		if err != nil {
			logger.Error().Err(err).Str("move", move.String()).Msg("Search produced an illegal move")
			return
		}
		board = next
		moves++
		logger.Info().Str("player", player.String()).Str("move", move.String()).Msg("Move played")
	}

	winner := board.Winner()
	result := "draw"
	if winner != tictactoe.NoMark {
		result = winner.String() + " wins"
	}
	logger.Info().Int("moves", moves).Str("result", result).Msg("Game over")
	fmt.Printf("Game %d: %s in %d moves\n%s\n\n", n, result, moves, board)
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
