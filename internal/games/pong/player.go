package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Player identifies a control scheme and a score counter.
type Player int

const (
	PlayerOne Player = iota // Left paddle, W/S
	PlayerTwo               // Right paddle, Up/Down
)

// String returns a human-readable name for the player.
func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player 1"
	case PlayerTwo:
		return "Player 2"
	default:
		return "Unknown"
	}
}

// direction derives the paddle direction from the input flags.
// The down key is checked after the up key, so down wins when both are held.
func (p Player) direction(in core.InputState) float64 {
	dir := 0.0
	switch p {
	case PlayerOne:
		if in.KeyW {
			dir = 1
		}
		if in.KeyS {
			dir = -1
		}
	case PlayerTwo:
		if in.ArrowUp {
			dir = 1
		}
		if in.ArrowDown {
			dir = -1
		}
	}
	return dir
}
