package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/slasharena/common"
)

const stickDeadzone = 0.2

// Input is one frame of player intent.
type Input struct {
	Move common.Vec
	// Cursor is the mouse position; StickAim, when set, overrides it.
	Cursor   common.Vec
	StickAim common.Vec

	Slash    bool
	Beam     bool
	Bomb     bool
	Finisher bool

	Pause   bool
	Debug   bool
	Restart bool
	Mute    bool
}

func readInput() Input {
	var in Input

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Move.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Move.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Move.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Move.Y += 1
	}

	cx, cy := ebiten.CursorPosition()
	in.Cursor = common.V(float64(cx), float64(cy))

	in.Slash = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeyJ)
	in.Beam = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) || inpututil.IsKeyJustPressed(ebiten.KeyK)
	in.Bomb = inpututil.IsKeyJustPressed(ebiten.KeyE)
	in.Finisher = inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsKeyJustPressed(ebiten.KeyL)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Debug = inpututil.IsKeyJustPressed(ebiten.KeyF3)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Mute = inpututil.IsKeyJustPressed(ebiten.KeyM)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.Move = common.V(lx, ly)
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > stickDeadzone {
			in.StickAim = common.V(rx, ry)
		}

		in.Slash = in.Slash || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft)
		in.Beam = in.Beam || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		in.Bomb = in.Bomb || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight)
		in.Finisher = in.Finisher || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightTop)
		in.Pause = in.Pause || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight)
		in.Restart = in.Restart || inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	return in
}
