package pong

import "fmt"

// Score holds one counter per player. Counters only ever increase.
type Score struct {
	PlayerOne uint32
	PlayerTwo uint32
}

// Add credits one point to p and returns that player's new total.
func (s *Score) Add(p Player) uint32 {
	if p == PlayerTwo {
		s.PlayerTwo++
		return s.PlayerTwo
	}
	s.PlayerOne++
	return s.PlayerOne
}

// Text formats the score for display as "<player one> - <player two>".
func (s Score) Text() string {
	return fmt.Sprintf("%d - %d", s.PlayerOne, s.PlayerTwo)
}
