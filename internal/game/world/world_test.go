package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestWorld_StacksWallLayers(t *testing.T) {
	fsys := mapFS(map[string]string{
		"floor.txt": "###\n#&#\n###\n",
		"walls.txt": "###\n#.#\n#&#\n",
	})

	w := New(fsys)
	w.LoadFloor("floor.txt", -1)
	w.LoadWalls("walls.txt", 0)
	w.LoadWalls("walls.txt", 1)
	w.LoadWalls("walls.txt", 2)

	// floor 9, ground walls 8 (7 '#' + '&'), two upper layers 7 each
	if got := len(w.Blocks()); got != 9+8+7+7 {
		t.Errorf("len(Blocks()) = %d, want %d", got, 9+8+7+7)
	}

	first := w.Blocks()[0]
	if first != (Block{X: 0, Y: -1, Z: 0, Material: Grass}) {
		t.Errorf("first block = %+v, floor should load first", first)
	}

	counts := w.Summary()
	if counts[Grass] != 8 {
		t.Errorf("grass = %d, want 8", counts[Grass])
	}
	if counts[Brick] != 1+8+7+7 {
		t.Errorf("brick = %d, want %d", counts[Brick], 1+8+7+7)
	}

	spawn, ok := w.Spawn()
	if !ok || spawn != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("Spawn() = %v, %v, want [1 0 1], true", spawn, ok)
	}
}

func TestWorld_KeepsOverlappingBlocks(t *testing.T) {
	fsys := mapFS(map[string]string{"walls.txt": "#"})

	w := New(fsys)
	w.LoadWalls("walls.txt", 0)
	w.LoadWalls("walls.txt", 0)

	if got := len(w.Blocks()); got != 2 {
		t.Errorf("len(Blocks()) = %d, want 2 overlapping blocks", got)
	}
}

func TestWorld_MissingFilesAreTolerated(t *testing.T) {
	w := New(mapFS(map[string]string{"walls.txt": "#"}))
	w.LoadFloor("floor.txt", -1)
	w.LoadWalls("walls.txt", 0)

	if got := len(w.Blocks()); got != 1 {
		t.Errorf("len(Blocks()) = %d, want 1", got)
	}

	fallback := mgl32.Vec3{8, 1.8, 8}
	if _, ok := w.Spawn(); ok {
		t.Error("spawn should stay unset when the floor is missing")
	}
	if got := w.SpawnOr(fallback); got != fallback {
		t.Errorf("SpawnOr() = %v, want fallback %v", got, fallback)
	}
}

func TestBlockCenter(t *testing.T) {
	b := Block{X: 3, Y: -1, Z: 7, Material: Brick}
	if got := b.Center(); got != (mgl32.Vec3{3, -1, 7}) {
		t.Errorf("Center() = %v, want [3 -1 7]", got)
	}
	if Brick.String() != "brick" || Grass.String() != "grass" {
		t.Errorf("unexpected material names %s, %s", Grass, Brick)
	}
}
