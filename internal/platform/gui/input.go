package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Edges is the input that changed during one Update.
// Windows report key releases, so steering follows the physical keys.
type Edges struct {
	LeftDown, LeftUp   bool
	RightDown, RightUp bool
	LeftHeld, RightHeld bool
	Jump               bool
	Restart            bool
	Pause              bool
	Quit               bool

	Clicked        bool
	ClickX, ClickY int
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}
	pauseKeys   = []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
)

// readEdges samples the keyboard and mouse.
func readEdges() Edges {
	e := Edges{
		LeftDown:  anyJustPressed(leftKeys),
		LeftUp:    anyJustReleased(leftKeys),
		RightDown: anyJustPressed(rightKeys),
		RightUp:   anyJustReleased(rightKeys),
		LeftHeld:  anyPressed(leftKeys),
		RightHeld: anyPressed(rightKeys),
		Jump:      anyJustPressed(jumpKeys),
		Restart:   anyJustPressed(restartKeys),
		Pause:     anyJustPressed(pauseKeys),
		Quit:      anyJustPressed(quitKeys),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		e.Jump = e.Jump || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
		e.LeftDown = e.LeftDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		e.LeftUp = e.LeftUp || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonLeftLeft)
		e.RightDown = e.RightDown || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonLeftRight)
		e.RightUp = e.RightUp || inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonLeftRight)
		e.LeftHeld = e.LeftHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftLeft)
		e.RightHeld = e.RightHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonLeftRight)
		e.Restart = e.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.Clicked = true
		e.ClickX, e.ClickY = ebiten.CursorPosition()
	}
	return e
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
