// Package lighting describes the scene lighting shared by the renderer and its shader.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Environment is an ambient term plus one directional light.
type Environment struct {
	Ambient      mgl32.Vec3
	SunDirection mgl32.Vec3 // direction the light travels, not towards the sun
	SunColor     mgl32.Vec3
}

// Default returns flat white ambient at 0.4 and a white sun shining down and towards -X.
func Default() Environment {
	return Environment{
		Ambient:      mgl32.Vec3{0.4, 0.4, 0.4},
		SunDirection: mgl32.Vec3{-1, -0.8, -0.2},
		SunColor:     mgl32.Vec3{1, 1, 1},
	}
}

// Diffuse returns the Lambert factor for a surface normal, matching the block shader.
func (e Environment) Diffuse(normal mgl32.Vec3) float32 {
	d := normal.Normalize().Dot(e.SunDirection.Normalize().Mul(-1))
	if d < 0 {
		return 0
	}
	return d
}

// Shade returns the light reaching a surface with the given normal, per channel.
func (e Environment) Shade(normal mgl32.Vec3) mgl32.Vec3 {
	return e.Ambient.Add(e.SunColor.Mul(e.Diffuse(normal)))
}
