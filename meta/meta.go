// meta/meta.go
package meta

// GO_ROUTINES defines the number of arena games played concurrently.
const GO_ROUTINES = 8

// EPISODES defines the number of self-play games used to train the learning agent.
const EPISODES = 3000

// ARENA_GAMES defines the number of evaluation games per arena run.
const ARENA_GAMES = 100

// MAX_TURNS bounds a single game. A double-six game always ends well before it.
const MAX_TURNS = 300

// Search defaults
const (
	DEPTH_FULL_HAND  = 7 // depth while the seat still holds its whole hand
	DEPTH_SHORT_HAND = 9 // depth once a tile has been played
	ENDGAME_TILES    = 3 // at or below this many opponent tiles search defers to another policy
)

// Learning defaults
const (
	GAMMA        = 0.9
	STEP_PENALTY = -0.1
	EXPLORE_NE   = 5
	EXPLORE_R    = 4.0
	ALPHA_C      = 60.0
)

// Rule defaults for the double-six set
const (
	MAX_PIP   = 6
	HAND_SIZE = 7
	WIN       = 4.0
	LOSS      = -1.0
)
