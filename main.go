package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ataxx/communication/client"
	"ataxx/communication/server"
	"ataxx/config"
	"ataxx/engine"
	"ataxx/experiments"
	"ataxx/game"
	"ataxx/player"
	"ataxx/searcher"
	"ataxx/searcher/agent"
)

func main() {
	mode := flag.String("mode", "play", "local | play | serve | remote | experiment")
	configPath := flag.String("config", "", "path to a config file (default ./ataxx.yaml if present)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	switch *mode {
	case "local":
		runLocal(cfg)
	case "play":
		runPlay(cfg)
	case "serve":
		runServe(cfg)
	case "remote":
		runRemote(cfg)
	case "experiment":
		experiments.RunDepthToStrength()
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// runLocal plays one game, searcher against the seeded random baseline,
// and prints the result.
func runLocal(cfg *config.Config) {
	board := mustBoard(cfg)
	red := agent.NewMinimaxAgent(searcher.WithDepth(cfg.Depth), searcher.WithMetrics())
	blue := agent.NewRandomAgent(cfg.Seed)
	e := engine.NewEngine(board, red, blue)
	winner, _ := e.Run()
	fmt.Println(e.Board)
	fmt.Printf("winner: %s\n", winner)
}

// runPlay is an interactive terminal game: human plays Red, the searcher
// plays Blue.
func runPlay(cfg *config.Config) {
	board := mustBoard(cfg)
	human := player.NewHuman(os.Stdin, os.Stdout)
	blue := agent.NewMinimaxAgent(searcher.WithDepth(cfg.Depth))
	e := engine.NewEngine(board, human, blue)
	winner, _ := e.Run()
	fmt.Println(e.Board)
	fmt.Printf("winner: %s\n", winner)
}

func runServe(cfg *config.Config) {
	board := mustBoard(cfg)
	a := agent.NewMinimaxAgent(searcher.WithDepth(cfg.Depth), searcher.WithMetrics())
	s := server.New(a, board)
	if err := s.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// runRemote plays the Red side of a remote game with the local searcher,
// polling the server for its turn.
func runRemote(cfg *config.Config) {
	c := client.New(cfg.ServerURL)
	a := agent.NewMinimaxAgent(searcher.WithDepth(cfg.Depth))
	for {
		state, err := c.State()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to fetch remote state")
		}
		if state.Over {
			fmt.Printf("winner: %s\n", state.Winner)
			return
		}
		if state.NextPlayer != game.Red.String() {
			time.Sleep(time.Second)
			continue
		}
		board := state.ToBoard()
		move, _ := a.FindMove(board, game.Red)
		result, err := c.SendMove(move)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to send move")
		}
		log.Info().Str("played", result.Played).Str("reply", result.Reply).Msg("exchanged moves")
	}
}

func mustBoard(cfg *config.Config) *game.Board {
	board, err := cfg.NewBoard()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up board")
	}
	return board
}
