package game

// Config holds game configuration options.
type Config struct {
	// Seed drives level generation and spawning. Zero means derive a
	// seed from the clock.
	Seed int64
}
