package generator

// Config holds the generation knobs. The five scalar parameters are
// clamped to a minimum of 1 before use; the two weights are taken
// as-is.
type Config struct {
	RoomCount  int // number of rooms to place
	MapWidth   int // grid columns
	MapHeight  int // grid rows
	MinRoomDim int // smallest full room dimension
	MaxRoomDim int // largest full room dimension (its own half is never drawn)

	// RoomWeight and PathWeight scale the cost bumps deposited around
	// committed rooms and corridor cells. Higher weights push later
	// structures further away.
	RoomWeight float64
	PathWeight float64
}

// DefaultConfig returns the parameters used by the CLI when no flags
// are given.
func DefaultConfig() Config {
	return Config{
		RoomCount:  8,
		MapWidth:   64,
		MapHeight:  32,
		MinRoomDim: 5,
		MaxRoomDim: 15,
		RoomWeight: 5,
		PathWeight: 2,
	}
}

// normalized returns a copy with the scalar knobs clamped to sane
// values. Weights are left untouched.
func (c Config) normalized() Config {
	if c.RoomCount < 1 {
		c.RoomCount = 1
	}
	if c.MapWidth < 1 {
		c.MapWidth = 1
	}
	if c.MapHeight < 1 {
		c.MapHeight = 1
	}
	if c.MinRoomDim < 1 {
		c.MinRoomDim = 1
	}
	if c.MaxRoomDim < c.MinRoomDim {
		c.MaxRoomDim = c.MinRoomDim
	}
	return c
}
