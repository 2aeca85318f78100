// Package world holds the block world built from floor and wall maps.
package world

import (
	"io/fs"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelwalk/internal/logger"
)

// World is the insertion-ordered list of placed blocks plus the player spawn.
// Overlapping blocks from different layers are all kept.
type World struct {
	fsys     fs.FS
	blocks   []Block
	spawn    mgl32.Vec3
	hasSpawn bool
}

// New creates an empty world that reads map files from fsys.
func New(fsys fs.FS) *World {
	return &World{fsys: fsys}
}

// LoadFloor appends a floor layer. A missing or unreadable file is logged and whatever
// was parsed is kept; the spawn only changes if the layer defines one.
func (w *World) LoadFloor(name string, yOffset float32) {
	layer, err := LoadFloor(w.fsys, name, yOffset)
	if err != nil {
		logger.Named("world").Error("failed to load floor map",
			zap.String("path", name),
			zap.Float32("yOffset", yOffset),
			zap.Int("partialBlocks", len(layer.Blocks)),
			zap.Error(err))
	}
	w.append(layer)
}

// LoadWalls appends a wall layer. Safe to call repeatedly with the same file at
// different heights.
func (w *World) LoadWalls(name string, yOffset float32) {
	layer, err := LoadWalls(w.fsys, name, yOffset)
	if err != nil {
		logger.Named("world").Error("failed to load walls map",
			zap.String("path", name),
			zap.Float32("yOffset", yOffset),
			zap.Int("partialBlocks", len(layer.Blocks)),
			zap.Error(err))
	}
	w.append(layer)
}

func (w *World) append(layer Layer) {
	w.blocks = append(w.blocks, layer.Blocks...)
	if layer.HasSpawn {
		w.spawn = layer.Spawn
		w.hasSpawn = true
	}
}

// Blocks returns the placed blocks in load order. The slice must not be modified.
func (w *World) Blocks() []Block {
	return w.blocks
}

// Spawn returns the spawn found in the floor map, if any.
func (w *World) Spawn() (mgl32.Vec3, bool) {
	return w.spawn, w.hasSpawn
}

// SpawnOr returns the map spawn or the fallback when no floor defined one.
func (w *World) SpawnOr(fallback mgl32.Vec3) mgl32.Vec3 {
	if w.hasSpawn {
		return w.spawn
	}
	return fallback
}

// Summary counts blocks per material.
func (w *World) Summary() map[Material]int {
	counts := make(map[Material]int, len(Materials))
	for _, b := range w.blocks {
		counts[b.Material]++
	}
	return counts
}
