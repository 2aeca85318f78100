package world

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Map symbols.
const (
	SymbolBlock = '#'
	SymbolSpawn = '&'
)

var (
	// ErrResourceNotFound is returned when a map file does not exist.
	ErrResourceNotFound = errors.New("map resource not found")
	// ErrResourceReadFailure is returned when a map file cannot be opened or read.
	ErrResourceReadFailure = errors.New("map resource read failure")
)

// Layer is the result of parsing one map file at one height.
type Layer struct {
	Blocks   []Block
	Spawn    mgl32.Vec3
	HasSpawn bool
}

type layerKind int

const (
	floorLayer layerKind = iota
	wallLayer
)

func (k layerKind) String() string {
	if k == floorLayer {
		return "floor"
	}
	return "walls"
}

// LoadFloor parses a floor map. '#' becomes grass, '&' marks the spawn one unit above the
// layer and is paved with brick.
//
// On error the returned layer holds whatever was parsed before the failure.
func LoadFloor(fsys fs.FS, name string, yOffset float32) (Layer, error) {
	return load(fsys, name, floorLayer, yOffset)
}

// LoadWalls parses a walls map. '#' becomes brick; '&' becomes brick only on the
// ground layer (yOffset == 0) so the spawn doorway stays open above it.
//
// On error the returned layer holds whatever was parsed before the failure.
func LoadWalls(fsys fs.FS, name string, yOffset float32) (Layer, error) {
	return load(fsys, name, wallLayer, yOffset)
}

func load(fsys fs.FS, name string, kind layerKind, yOffset float32) (Layer, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Layer{}, fmt.Errorf("%s map %s: %w", kind, name, ErrResourceNotFound)
		}
		return Layer{}, fmt.Errorf("%w: %s map %s: %w", ErrResourceReadFailure, kind, name, err)
	}
	defer f.Close()

	layer, err := parse(f, kind, yOffset)
	if err != nil {
		return layer, fmt.Errorf("%w: %s map %s: %w", ErrResourceReadFailure, kind, name, err)
	}
	return layer, nil
}

// parse reads the grid line by line. Lines have no length limit and the last line
// is processed whether or not it ends with a newline.
func parse(r io.Reader, kind layerKind, yOffset float32) (Layer, error) {
	var layer Layer
	br := bufio.NewReader(r)

	for z := 0; ; z++ {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			parseLine(&layer, line, kind, yOffset, z)
		}
		if err == io.EOF {
			return layer, nil
		}
		if err != nil {
			return layer, err
		}
	}
}

func parseLine(layer *Layer, line string, kind layerKind, yOffset float32, z int) {
	x := 0
	for _, ch := range line {
		switch ch {
		case SymbolBlock:
			mat := Brick
			if kind == floorLayer {
				mat = Grass
			}
			layer.Blocks = append(layer.Blocks, Block{X: x, Y: yOffset, Z: z, Material: mat})
		case SymbolSpawn:
			if kind == floorLayer {
				layer.Spawn = mgl32.Vec3{float32(x), yOffset + 1.0, float32(z)}
				layer.HasSpawn = true
				layer.Blocks = append(layer.Blocks, Block{X: x, Y: yOffset, Z: z, Material: Brick})
			} else if yOffset == 0 {
				layer.Blocks = append(layer.Blocks, Block{X: x, Y: yOffset, Z: z, Material: Brick})
			}
		}
		x++
	}
}
