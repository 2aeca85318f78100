package game

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelwalk/internal/engine/input"
	"github.com/Faultbox/voxelwalk/internal/engine/overlay"
	"github.com/Faultbox/voxelwalk/internal/engine/renderer"
	"github.com/Faultbox/voxelwalk/internal/game/player"
	"github.com/Faultbox/voxelwalk/internal/game/states"
	"github.com/Faultbox/voxelwalk/internal/game/world"
)

// State is everything that changes from frame to frame, advanced by Tick.
type State struct {
	World      *world.World
	Player     player.State
	Forward    mgl32.Vec3
	Controller *player.Controller
	Modes      *states.Manager
	Dialog     overlay.Layout // pause dialog hit areas in window coordinates
}

// NewState places the player at spawn looking along yaw 0, pitch 0, in Playing mode.
func NewState(w *world.World, c *player.Controller, spawn mgl32.Vec3) *State {
	return &State{
		World:      w,
		Player:     player.State{Position: spawn},
		Forward:    player.Forward(0, 0),
		Controller: c,
		Modes:      states.NewManager(),
	}
}

// Tick applies one frame of input. While paused the player is frozen and clicks go to
// the exit dialog.
func (s *State) Tick(f input.Frame) {
	if f.PauseToggled {
		s.Modes.Toggle()
	}

	if s.Modes.Playing() {
		s.Player, s.Forward = s.Controller.Step(s.Player, player.Input{
			MouseDX: f.MouseDX,
			MouseDY: f.MouseDY,
			Keys:    keysOf(f),
			DT:      f.DT,
		})
		return
	}

	if !f.Clicked {
		return
	}
	switch s.Dialog.HitTest(f.ClickX, f.ClickY) {
	case overlay.ActionConfirmExit:
		s.Modes.ConfirmExit()
	case overlay.ActionResume:
		s.Modes.Resume()
	}
}

// Camera returns the eye pose for rendering.
func (s *State) Camera() renderer.Camera {
	return renderer.Camera{Position: s.Player.Position, Forward: s.Forward}
}

func keysOf(f input.Frame) player.Keys {
	var k player.Keys
	if f.Forward {
		k |= player.KeyForward
	}
	if f.Back {
		k |= player.KeyBack
	}
	if f.Left {
		k |= player.KeyLeft
	}
	if f.Right {
		k |= player.KeyRight
	}
	return k
}
