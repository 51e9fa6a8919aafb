// Package tui provides the Bubble Tea integration for pong.
// It handles the terminal UI loop, key mapping, and the fixed-step simulation clock.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// frame interval at the given rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
