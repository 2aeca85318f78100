package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the first-person eye pose.
type Camera struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3 // unit length
}

// View returns the view matrix.
func (c Camera) View() mgl32.Mat4 {
	up := mgl32.Vec3{0, 1, 0}
	// Looking straight up or down makes the world up axis degenerate.
	if abs32(c.Forward.Y()) > 0.999 {
		up = mgl32.Vec3{0, 0, -1}
	}
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Forward), up)
}

// Projection returns a perspective matrix for the viewport size.
func Projection(fovDeg float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(1)
	if height > 0 {
		aspect = float32(width) / float32(height)
	}
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
