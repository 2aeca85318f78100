// Package game wires the world, the player and the engine into the main loop.
package game

import (
	"fmt"
	"image"
	"io/fs"
	"math/rand"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelwalk/internal/assets"
	"github.com/Faultbox/voxelwalk/internal/config"
	"github.com/Faultbox/voxelwalk/internal/engine/input"
	"github.com/Faultbox/voxelwalk/internal/engine/overlay"
	"github.com/Faultbox/voxelwalk/internal/engine/renderer"
	"github.com/Faultbox/voxelwalk/internal/engine/texture"
	"github.com/Faultbox/voxelwalk/internal/engine/window"
	"github.com/Faultbox/voxelwalk/internal/game/player"
	"github.com/Faultbox/voxelwalk/internal/game/states"
	"github.com/Faultbox/voxelwalk/internal/game/world"
	"github.com/Faultbox/voxelwalk/internal/logger"
)

// Title is the window title.
const Title = "voxelwalk"

// Game is the main game instance.
type Game struct {
	config   *config.Config
	window   *window.Window
	input    *input.Input
	renderer *renderer.Renderer
	overlay  *overlay.Overlay
	textures map[world.Material]uint32
	state    *State
}

// New loads the maps and creates the window and GPU resources.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("maps", cfg.World.MapDir),
	)

	g := &Game{
		config:   cfg,
		textures: make(map[world.Material]uint32),
	}

	var err error
	g.input, err = input.New(input.Bindings{
		Forward: cfg.Controls.Keys.Forward,
		Back:    cfg.Controls.Keys.Back,
		Left:    cfg.Controls.Keys.Left,
		Right:   cfg.Controls.Keys.Right,
		Pause:   cfg.Controls.Keys.Pause,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bind keys: %w", err)
	}

	w := loadWorld(mapFS(cfg.World.MapDir), cfg.World)
	spawn := w.SpawnOr(mgl32.Vec3(cfg.World.Spawn))
	g.state = NewState(w, player.NewController(playerSettings(cfg)), spawn)
	logger.Info("player spawned", zap.Any("position", spawn))

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	dw, dh := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  dw,
		Height: dh,
		FOV:    cfg.Graphics.FOV,
		Near:   cfg.Graphics.Near,
		Far:    cfg.Graphics.Far,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	ww, wh := g.window.GetSize()
	g.overlay, err = overlay.New(ww, wh)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create overlay: %w", err)
	}

	for mat, img := range generateTextures(cfg.Textures) {
		g.textures[mat] = texture.Upload(img)
	}
	g.renderer.SetWorld(w.Blocks(), g.textures)

	g.resize()
	g.state.Modes.OnChange(g.onModeChange)
	g.window.SetMouseCaptured(true)

	logger.Info("game initialized successfully")
	return g, nil
}

// Run runs the frame loop until the window is closed or exit is confirmed.
func (g *Game) Run() error {
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		frame := g.input.Poll(float32(dt))
		if frame.Quit {
			logger.Info("quit event received")
			return nil
		}
		if frame.Resized {
			g.resize()
		}

		g.state.Tick(frame)
		if g.state.Modes.ExitRequested() {
			logger.Info("exit confirmed")
			return nil
		}

		g.render()
		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)),
				zap.Any("position", g.state.Player.Position),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Close cleans up game resources. Safe to call on a partially constructed game.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.overlay != nil {
		g.overlay.Close()
	}
	for mat, id := range g.textures {
		texture.Delete(id)
		delete(g.textures, mat)
	}
	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}

func (g *Game) render() {
	g.renderer.Draw(g.state.Camera())
	if !g.state.Modes.Playing() {
		g.overlay.Draw()
	}
}

// resize syncs the viewport and dialog with the window. The renderer works in
// framebuffer pixels, the dialog in window coordinates like mouse events.
func (g *Game) resize() {
	dw, dh := g.window.DrawableSize()
	g.renderer.Resize(dw, dh)

	ww, wh := g.window.GetSize()
	g.overlay.Resize(ww, wh)
	g.state.Dialog = g.overlay.Layout()
}

func (g *Game) onModeChange(from, to states.Mode) {
	logger.Info("mode changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)
	g.window.SetMouseCaptured(to == states.Playing)
	if to == states.Paused {
		g.window.SetTitle(Title + " (paused)")
	} else {
		g.window.SetTitle(Title)
	}
}

// mapFS serves maps from dir, falling back to the built-in maps for files dir lacks.
func mapFS(dir string) *assets.Manager {
	m := assets.NewManager()
	m.AddLayer("builtin", assets.Builtin())
	m.AddLayer(dir, os.DirFS(dir))
	return m
}

// loadWorld reads the floor map and stacks the wall map once per configured layer.
// Missing or unreadable maps are logged by the world and leave it partially filled.
func loadWorld(fsys fs.FS, cfg config.WorldConfig) *world.World {
	w := world.New(fsys)
	w.LoadFloor(cfg.FloorFile, cfg.FloorOffset)
	for _, y := range cfg.WallLayers {
		w.LoadWalls(cfg.WallsFile, y)
	}

	summary := w.Summary()
	logger.Info("world loaded",
		zap.String("dir", cfg.MapDir),
		zap.Int("blocks", len(w.Blocks())),
		zap.Int("grass", summary[world.Grass]),
		zap.Int("brick", summary[world.Brick]),
	)
	return w
}

func playerSettings(cfg *config.Config) player.Settings {
	return player.Settings{
		Sensitivity:  cfg.Controls.MouseSensitivity,
		MoveSpeed:    cfg.Controls.MoveSpeed,
		Gravity:      cfg.Controls.Gravity,
		GroundHeight: cfg.World.GroundHeight,
		Bounds:       cfg.World.Bounds,
	}
}

// generateTextures builds one image per material. A zero seed picks a time-based one.
func generateTextures(cfg config.TexturesConfig) map[world.Material]*image.RGBA {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var grass *image.RGBA
	switch cfg.Noise {
	case "perlin":
		grass = texture.GrassPerlin(cfg.Size, seed)
	default:
		grass = texture.Grass(cfg.Size, rand.New(rand.NewSource(seed)))
	}

	logger.Debug("textures generated",
		zap.Int("size", cfg.Size),
		zap.Int64("seed", seed),
		zap.String("noise", cfg.Noise),
	)
	return map[world.Material]*image.RGBA{
		world.Grass: grass,
		world.Brick: texture.Brick(cfg.Size),
	}
}
