package metrics

import (
	"time"
)

// AgentConfig identifies one agent configuration under test.
type AgentConfig struct {
	ID    int
	Kind  string // "minimax" or "random"
	Depth int    // minimax only
	Seed  uint64 // random only
}

// MoveRecord is one move of one game with its search statistics.
type MoveRecord struct {
	Step     int
	Player   string
	Move     string
	Depth    int
	Nodes    int64
	Leaves   int64
	Cutoffs  int64
	Duration time.Duration
}

// GameRecord is the outcome of one game between two configured agents.
type GameRecord struct {
	ID        int
	RedAgent  int // AgentConfig.ID
	BlueAgent int // AgentConfig.ID
	Winner    string
	Moves     int
	Duration  time.Duration
}
