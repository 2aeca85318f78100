// Package config handles game configuration loading and management.
package config

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	World    WorldConfig    `yaml:"world"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // Vertical field of view in degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// ControlsConfig holds input and movement tuning.
type ControlsConfig struct {
	MouseSensitivity float32     `yaml:"mouse_sensitivity"`
	MoveSpeed        float32     `yaml:"move_speed"`
	Gravity          float32     `yaml:"gravity"`
	Keys             KeyBindings `yaml:"keys"`
}

// KeyBindings maps actions to SDL scancode names ("W", "Escape", ...).
type KeyBindings struct {
	Forward string `yaml:"forward"`
	Back    string `yaml:"back"`
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Pause   string `yaml:"pause"`
}

// WorldConfig holds map files and play-area settings.
type WorldConfig struct {
	MapDir       string     `yaml:"map_dir"`
	FloorFile    string     `yaml:"floor_file"`
	FloorOffset  float32    `yaml:"floor_offset"`
	WallsFile    string     `yaml:"walls_file"`
	WallLayers   []float32  `yaml:"wall_layers"`
	Bounds       int        `yaml:"bounds"`        // Side of the square area where the ground clamp applies
	GroundHeight float32    `yaml:"ground_height"` // Eye height the player is clamped to
	Spawn        [3]float32 `yaml:"spawn"`         // Used when the floor map has no '&'
}

// TexturesConfig holds procedural texture settings.
type TexturesConfig struct {
	Size  int    `yaml:"size"`
	Seed  int64  `yaml:"seed"`  // 0 picks a time-based seed
	Noise string `yaml:"noise"` // "uniform" or "perlin"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FOV:        67,
			Near:       0.1,
			Far:        300,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 1.1,
			MoveSpeed:        3.33,
			Gravity:          -9.8,
			Keys: KeyBindings{
				Forward: "W",
				Back:    "S",
				Left:    "A",
				Right:   "D",
				Pause:   "Escape",
			},
		},
		World: WorldConfig{
			MapDir:       ".",
			FloorFile:    "floor.txt",
			FloorOffset:  -1,
			WallsFile:    "walls.txt",
			WallLayers:   []float32{0, 1, 2},
			Bounds:       48,
			GroundHeight: 1.0,
			Spawn:        [3]float32{8, 1.8, 8},
		},
		Textures: TexturesConfig{
			Size:  64,
			Seed:  0,
			Noise: "uniform",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
