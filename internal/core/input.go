package core

// Key is one of the four logical control keys the simulation understands.
// Frontends translate platform key codes into Keys; anything else maps to KeyNone.
type Key int

const (
	KeyNone      Key = iota
	KeyW             // Player one, move up
	KeyS             // Player one, move down
	KeyArrowUp       // Player two, move up
	KeyArrowDown     // Player two, move down
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyArrowUp:
		return "Up"
	case KeyArrowDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// InputState holds the live pressed/released status of the control keys.
// It has a single writer (the key event handler) and a single reader (paddle
// motion), both on the simulation goroutine.
type InputState struct {
	KeyW      bool
	KeyS      bool
	ArrowUp   bool
	ArrowDown bool
}

// OnKeyEvent records a press (pressed=true) or release of k.
// Unrecognized keys are ignored.
func (s *InputState) OnKeyEvent(k Key, pressed bool) {
	switch k {
	case KeyW:
		s.KeyW = pressed
	case KeyS:
		s.KeyS = pressed
	case KeyArrowUp:
		s.ArrowUp = pressed
	case KeyArrowDown:
		s.ArrowDown = pressed
	}
}

// Read returns a copy of the current flags.
func (s InputState) Read() InputState {
	return s
}

// Pressed reports whether k is currently held.
func (s InputState) Pressed(k Key) bool {
	switch k {
	case KeyW:
		return s.KeyW
	case KeyS:
		return s.KeyS
	case KeyArrowUp:
		return s.ArrowUp
	case KeyArrowDown:
		return s.ArrowDown
	default:
		return false
	}
}
