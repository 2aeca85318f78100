package world

import "github.com/go-gl/mathgl/mgl32"

// Material is the surface a block is drawn with.
type Material uint8

const (
	Grass Material = iota
	Brick
)

// Materials lists every material in draw order.
var Materials = []Material{Grass, Brick}

func (m Material) String() string {
	switch m {
	case Grass:
		return "grass"
	case Brick:
		return "brick"
	default:
		return "unknown"
	}
}

// Block is a unit cube placed at integer grid columns and a layer height.
type Block struct {
	X        int
	Y        float32
	Z        int
	Material Material
}

// Center returns the world-space centre of the block.
func (b Block) Center() mgl32.Vec3 {
	return mgl32.Vec3{float32(b.X), b.Y, float32(b.Z)}
}
