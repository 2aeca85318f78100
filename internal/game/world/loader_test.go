package world

import (
	"errors"
	"io"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"
	"testing/iotest"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoadFloor_SingleRow(t *testing.T) {
	fsys := mapFS(map[string]string{"floor.txt": "\n\n##&##\n"})

	layer, err := LoadFloor(fsys, "floor.txt", -1)
	if err != nil {
		t.Fatalf("LoadFloor() error = %v", err)
	}

	want := []Block{
		{X: 0, Y: -1, Z: 2, Material: Grass},
		{X: 1, Y: -1, Z: 2, Material: Grass},
		{X: 2, Y: -1, Z: 2, Material: Brick},
		{X: 3, Y: -1, Z: 2, Material: Grass},
		{X: 4, Y: -1, Z: 2, Material: Grass},
	}
	if len(layer.Blocks) != len(want) {
		t.Fatalf("got %d blocks, want %d: %v", len(layer.Blocks), len(want), layer.Blocks)
	}
	for i := range want {
		if layer.Blocks[i] != want[i] {
			t.Errorf("block[%d] = %+v, want %+v", i, layer.Blocks[i], want[i])
		}
	}

	if !layer.HasSpawn {
		t.Fatal("expected spawn to be set")
	}
	if layer.Spawn != (mgl32.Vec3{2, 0, 2}) {
		t.Errorf("spawn = %v, want [2 0 2]", layer.Spawn)
	}
}

func TestLoadFloor_IgnoresOtherSymbols(t *testing.T) {
	fsys := mapFS(map[string]string{"floor.txt": ".x #\n~~~~\n  #"})

	layer, err := LoadFloor(fsys, "floor.txt", 0)
	if err != nil {
		t.Fatalf("LoadFloor() error = %v", err)
	}

	want := []Block{
		{X: 3, Y: 0, Z: 0, Material: Grass},
		{X: 2, Y: 0, Z: 2, Material: Grass},
	}
	if len(layer.Blocks) != len(want) {
		t.Fatalf("got %v, want %v", layer.Blocks, want)
	}
	for i := range want {
		if layer.Blocks[i] != want[i] {
			t.Errorf("block[%d] = %+v, want %+v", i, layer.Blocks[i], want[i])
		}
	}
	if layer.HasSpawn {
		t.Error("expected no spawn without '&'")
	}
}

func TestLoadFloor_LastSpawnWins(t *testing.T) {
	fsys := mapFS(map[string]string{"floor.txt": "&\n.&"})

	layer, err := LoadFloor(fsys, "floor.txt", -1)
	if err != nil {
		t.Fatalf("LoadFloor() error = %v", err)
	}
	if layer.Spawn != (mgl32.Vec3{1, 0, 1}) {
		t.Errorf("spawn = %v, want [1 0 1]", layer.Spawn)
	}
	if len(layer.Blocks) != 2 {
		t.Errorf("expected a brick under each '&', got %v", layer.Blocks)
	}
}

func TestLoadFloor_CRLFAndRaggedLines(t *testing.T) {
	fsys := mapFS(map[string]string{"floor.txt": "#\r\n####\r\n\r\n##"})

	layer, err := LoadFloor(fsys, "floor.txt", -1)
	if err != nil {
		t.Fatalf("LoadFloor() error = %v", err)
	}
	if len(layer.Blocks) != 7 {
		t.Fatalf("got %d blocks, want 7", len(layer.Blocks))
	}
	last := layer.Blocks[len(layer.Blocks)-1]
	if last.X != 1 || last.Z != 3 {
		t.Errorf("last block at (%d,%d), want (1,3)", last.X, last.Z)
	}
}

func TestLoadFloor_LongLine(t *testing.T) {
	// Longer than bufio.Scanner's default token limit.
	line := strings.Repeat(".", 70000) + "#"
	fsys := mapFS(map[string]string{"floor.txt": line})

	layer, err := LoadFloor(fsys, "floor.txt", 0)
	if err != nil {
		t.Fatalf("LoadFloor() error = %v", err)
	}
	if len(layer.Blocks) != 1 || layer.Blocks[0].X != 70000 {
		t.Errorf("got %v, want one block at x=70000", layer.Blocks)
	}
}

func TestLoadFloor_ColumnsCountRunes(t *testing.T) {
	fsys := mapFS(map[string]string{"floor.txt": "éé#"})

	layer, err := LoadFloor(fsys, "floor.txt", 0)
	if err != nil {
		t.Fatalf("LoadFloor() error = %v", err)
	}
	if len(layer.Blocks) != 1 || layer.Blocks[0].X != 2 {
		t.Errorf("got %v, want one block at x=2", layer.Blocks)
	}
}

func TestLoadWalls_SpawnSymbol(t *testing.T) {
	fsys := mapFS(map[string]string{"walls.txt": "#&#\n"})

	tests := []struct {
		yOffset float32
		want    int
	}{
		{0, 3},
		{1, 2},
		{2, 2},
	}

	for _, tt := range tests {
		layer, err := LoadWalls(fsys, "walls.txt", tt.yOffset)
		if err != nil {
			t.Fatalf("LoadWalls(%v) error = %v", tt.yOffset, err)
		}
		if len(layer.Blocks) != tt.want {
			t.Errorf("LoadWalls(%v) = %d blocks, want %d", tt.yOffset, len(layer.Blocks), tt.want)
		}
		for _, b := range layer.Blocks {
			if b.Material != Brick {
				t.Errorf("wall block %+v should be brick", b)
			}
			if b.Y != tt.yOffset {
				t.Errorf("wall block %+v should sit at y=%v", b, tt.yOffset)
			}
		}
		if layer.HasSpawn {
			t.Errorf("LoadWalls(%v) should never set a spawn", tt.yOffset)
		}
	}
}

func TestLoadWalls_GroundSpawnMatchesBlock(t *testing.T) {
	fsys := mapFS(map[string]string{"a.txt": "&", "b.txt": "#"})

	a, _ := LoadWalls(fsys, "a.txt", 0)
	b, _ := LoadWalls(fsys, "b.txt", 0)
	if len(a.Blocks) != 1 || len(b.Blocks) != 1 || a.Blocks[0] != b.Blocks[0] {
		t.Errorf("'&' on ground wall layer = %v, want same as '#' = %v", a.Blocks, b.Blocks)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := mapFS(nil)

	layer, err := LoadFloor(fsys, "floor.txt", -1)
	if !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("LoadFloor() error = %v, want ErrResourceNotFound", err)
	}
	if !strings.Contains(err.Error(), "floor.txt") {
		t.Errorf("error %q should name the path", err)
	}
	if len(layer.Blocks) != 0 || layer.HasSpawn {
		t.Errorf("expected empty layer, got %+v", layer)
	}

	if _, err := LoadWalls(fsys, "walls.txt", 0); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("LoadWalls() error = %v, want ErrResourceNotFound", err)
	}
}

var errDisk = errors.New("disk on fire")

// brokenFS serves files whose content is followed by a read error.
type brokenFS map[string]string

func (b brokenFS) Open(name string) (fs.File, error) {
	data, ok := b[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &brokenFile{r: io.MultiReader(strings.NewReader(data), iotest.ErrReader(errDisk))}, nil
}

type brokenFile struct{ r io.Reader }

func (f *brokenFile) Read(p []byte) (int, error) { return f.r.Read(p) }
func (f *brokenFile) Close() error               { return nil }
func (f *brokenFile) Stat() (fs.FileInfo, error) { return brokenInfo{}, nil }

type brokenInfo struct{}

func (brokenInfo) Name() string       { return "broken" }
func (brokenInfo) Size() int64        { return 0 }
func (brokenInfo) Mode() fs.FileMode  { return 0 }
func (brokenInfo) ModTime() time.Time { return time.Time{} }
func (brokenInfo) IsDir() bool        { return false }
func (brokenInfo) Sys() any           { return nil }

func TestLoad_ReadFailureKeepsPartial(t *testing.T) {
	fsys := brokenFS{"floor.txt": "##\n&"}

	layer, err := LoadFloor(fsys, "floor.txt", -1)
	if !errors.Is(err, ErrResourceReadFailure) {
		t.Fatalf("LoadFloor() error = %v, want ErrResourceReadFailure", err)
	}
	if !errors.Is(err, errDisk) {
		t.Errorf("LoadFloor() error = %v, should wrap the underlying cause", err)
	}
	if len(layer.Blocks) != 3 {
		t.Errorf("expected 3 partial blocks, got %v", layer.Blocks)
	}
	if !layer.HasSpawn {
		t.Error("expected spawn read before the failure to be kept")
	}
}

func TestLoad_ReadFailureBeforeAnyLine(t *testing.T) {
	fsys := brokenFS{"walls.txt": ""}

	layer, err := LoadWalls(fsys, "walls.txt", 0)
	if !errors.Is(err, ErrResourceReadFailure) {
		t.Fatalf("LoadWalls() error = %v, want ErrResourceReadFailure", err)
	}
	if len(layer.Blocks) != 0 {
		t.Errorf("expected no blocks, got %v", layer.Blocks)
	}
}
