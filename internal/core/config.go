package core

// RuntimeConfig carries the values the platform hands to a game session.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means the platform picks one from the clock
}
