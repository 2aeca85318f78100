package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/voxelwalk/internal/game/world"
)

// Vertex layout: position (3) + normal (3) + uv (2).
const (
	FloatsPerVertex = 8
	VerticesPerCube = 36
	vertexStride    = FloatsPerVertex * 4
)

type cubeFace struct {
	normal  mgl32.Vec3
	corners [4]mgl32.Vec3 // counter-clockwise seen from outside
}

var cubeUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Unit cube centred on the origin.
var cubeFaces = [6]cubeFace{
	{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}}},
	{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}}},
	{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}}},
	{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}}},
	{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}}},
	{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}}},
}

var faceTriangles = [6]int{0, 1, 2, 0, 2, 3}

// BuildBatch returns interleaved vertices for every block of the given material.
// Blocks of other materials are skipped.
func BuildBatch(blocks []world.Block, mat world.Material) []float32 {
	n := 0
	for _, b := range blocks {
		if b.Material == mat {
			n++
		}
	}

	vertices := make([]float32, 0, n*VerticesPerCube*FloatsPerVertex)
	for _, b := range blocks {
		if b.Material != mat {
			continue
		}
		center := b.Center()
		for _, face := range cubeFaces {
			for _, i := range faceTriangles {
				p := face.corners[i].Add(center)
				uv := cubeUVs[i]
				vertices = append(vertices,
					p[0], p[1], p[2],
					face.normal[0], face.normal[1], face.normal[2],
					uv[0], uv[1],
				)
			}
		}
	}
	return vertices
}
