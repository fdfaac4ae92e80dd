package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"ataxx/engine"
	"ataxx/experiments/metrics"
	"ataxx/searcher"
	"ataxx/searcher/agent"
)

const (
	// NumGames is played per matchup.
	NumGames = 20
	// BaselineSeed seeds the random baseline agent; identical seeds make
	// runs reproducible.
	BaselineSeed = 20080217
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "minimax", Depth: 1},
	{ID: 2, Kind: "minimax", Depth: 2},
	{ID: 3, Kind: "minimax", Depth: 3},
	{ID: 4, Kind: "minimax", Depth: 4},
}

// RunDepthToStrength pits fixed-depth searchers of increasing depth
// against a random baseline and records outcomes per game, alternating
// colors between games to cancel the first-move advantage.
func RunDepthToStrength() {
	baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: BaselineSeed}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	runExperiment("depth_to_strength", append(depthConfigs, baseline), matchUps)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) {
	writer, err := metrics.NewWriter(name)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics writer")
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}

	var gameRecords []metrics.GameRecord
	gameID := 0
	for _, matchUp := range matchUps {
		log.Info().
			Interface("agent1", matchUp[0]).
			Interface("agent2", matchUp[1]).
			Msg("running matchup")

		for i := 0; i < NumGames; i++ {
			gameID++
			// Alternate colors between games
			red, blue := matchUp[0], matchUp[1]
			if i%2 == 1 {
				red, blue = blue, red
			}

			start := time.Now()
			e := engine.LocalEngine(buildAgent(red, uint64(gameID)), buildAgent(blue, uint64(gameID)))
			winner, moveRecords := e.Run()

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:        gameID,
				RedAgent:  red.ID,
				BlueAgent: blue.ID,
				Winner:    winner.String(),
				Moves:     len(moveRecords),
				Duration:  time.Since(start),
			})
			if err := writer.WriteMoveRecords(gameID, moveRecords); err != nil {
				log.Fatal().Err(err).Msg("failed to write move records")
			}
			log.Info().Int("game", gameID).Str("winner", winner.String()).Msg("game finished")
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	log.Info().Str("experiment", name).Int("games", gameID).Msg("experiment finished")
}

func buildAgent(config metrics.AgentConfig, gameOffset uint64) agent.Agent {
	switch config.Kind {
	case "random":
		return agent.NewRandomAgent(config.Seed + gameOffset)
	default:
		return agent.NewMinimaxAgent(
			searcher.WithDepth(config.Depth),
			searcher.WithMetrics(),
		)
	}
}
