// Package player implements first-person mouse-look and WASD movement.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch limits in degrees.
const (
	MinPitch = -90.0
	MaxPitch = 90.0
)

// WorldUp is the up axis used for strafing.
var WorldUp = mgl32.Vec3{0, 1, 0}

// Keys is the set of held movement keys.
type Keys uint8

const (
	KeyForward Keys = 1 << iota
	KeyBack
	KeyLeft
	KeyRight
)

// Has reports whether k is held.
func (k Keys) Has(key Keys) bool {
	return k&key != 0
}

// State is the player pose. Yaw is unbounded, pitch stays within [MinPitch, MaxPitch].
type State struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Yaw      float32 // degrees
	Pitch    float32 // degrees
}

// Input is one frame of movement input.
type Input struct {
	MouseDX float32
	MouseDY float32
	Keys    Keys
	DT      float32 // seconds
}

// Settings tunes the controller.
type Settings struct {
	Sensitivity  float32 // degrees per pixel of mouse motion
	MoveSpeed    float32 // units per second
	Gravity      float32 // units per second squared, negative is down
	GroundHeight float32
	Bounds       int // ground clamp applies while floor(x) and floor(z) are in [0, Bounds)
}

// DefaultSettings returns the tuning the demo ships with.
func DefaultSettings() Settings {
	return Settings{
		Sensitivity:  1.1,
		MoveSpeed:    3.33,
		Gravity:      -9.8,
		GroundHeight: 1.0,
		Bounds:       48,
	}
}

// Controller advances the player state once per frame.
type Controller struct {
	settings Settings
}

// NewController creates a controller with the given settings.
func NewController(s Settings) *Controller {
	return &Controller{settings: s}
}

// Settings returns the controller tuning.
func (c *Controller) Settings() Settings {
	return c.settings
}

// SetSensitivity changes the mouse sensitivity.
func (c *Controller) SetSensitivity(s float32) {
	c.settings.Sensitivity = s
}

// Step applies mouse-look, horizontal movement, gravity and the ground clamp.
// It returns the next state and the camera forward vector.
func (c *Controller) Step(prev State, in Input) (State, mgl32.Vec3) {
	next := prev

	next.Yaw += in.MouseDX * c.settings.Sensitivity
	next.Pitch -= in.MouseDY * c.settings.Sensitivity
	next.Pitch = mgl32.Clamp(next.Pitch, MinPitch, MaxPitch)

	forward := Forward(next.Yaw, next.Pitch)

	move := MoveDirection(forward, in.Keys).Mul(c.settings.MoveSpeed * in.DT)
	next.Position[0] += move.X()
	next.Position[2] += move.Z()

	next.Velocity[1] += c.settings.Gravity * in.DT
	next.Position = next.Position.Add(next.Velocity.Mul(in.DT))

	if c.overGround(next.Position) && next.Velocity.Y() < 0 && next.Position.Y() <= c.settings.GroundHeight {
		next.Position[1] = c.settings.GroundHeight
		next.Velocity[1] = 0
	}

	return next, forward
}

// overGround reports whether the position is above the bounded play area.
func (c *Controller) overGround(pos mgl32.Vec3) bool {
	bx := math.Floor(float64(pos.X()))
	bz := math.Floor(float64(pos.Z()))
	limit := float64(c.settings.Bounds)
	return bx >= 0 && bx < limit && bz >= 0 && bz < limit
}

// Forward converts yaw and pitch in degrees to a unit look vector.
// Yaw 0 looks along +X, positive yaw turns towards +Z.
func Forward(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	dir := mgl32.Vec3{
		float32(math.Cos(p) * math.Cos(y)),
		float32(math.Sin(p)),
		float32(math.Cos(p) * math.Sin(y)),
	}
	return normalize(dir)
}

// MoveDirection sums the held keys into a horizontal unit vector.
// Opposite keys cancel out and yield the zero vector.
func MoveDirection(forward mgl32.Vec3, keys Keys) mgl32.Vec3 {
	right := normalize(forward.Cross(WorldUp))

	var dir mgl32.Vec3
	if keys.Has(KeyForward) {
		dir = dir.Add(forward)
	}
	if keys.Has(KeyBack) {
		dir = dir.Sub(forward)
	}
	if keys.Has(KeyLeft) {
		dir = dir.Sub(right)
	}
	if keys.Has(KeyRight) {
		dir = dir.Add(right)
	}
	dir[1] = 0
	return normalize(dir)
}

// normalize returns v scaled to unit length, or v unchanged when it has no length.
func normalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() == 0 {
		return v
	}
	return v.Normalize()
}
