package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
)

var controlKeys = map[ebiten.Key]core.Key{
	ebiten.KeyW:         core.KeyW,
	ebiten.KeyS:         core.KeyS,
	ebiten.KeyArrowUp:   core.KeyArrowUp,
	ebiten.KeyArrowDown: core.KeyArrowDown,
}

// translate maps a window key to a control key, or core.KeyNone.
func translate(k ebiten.Key) core.Key {
	if ck, ok := controlKeys[k]; ok {
		return ck
	}
	return core.KeyNone
}
