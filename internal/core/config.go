package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended in a win
	Paused   bool // Whether the game is paused
}

// EventKind identifies something a game reports to the platform.
type EventKind int

const (
	// EventLevelFinished is emitted once when a level is won or lost.
	EventLevelFinished EventKind = iota + 1
	// EventGameFinished is emitted once when the whole run ends.
	EventGameFinished
)

// Event is a notable occurrence during a tick, for persistence and logging.
type Event struct {
	Kind      EventKind
	LevelID   string // EventLevelFinished
	Score     int    // Level score, or run total for EventGameFinished
	Won       bool
	MovesUsed int // EventLevelFinished
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
