package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where cmd/duckgame looks for its configuration.
const DefaultPath = "duckgame.yaml"

// Config is the DuckGame configuration file.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Terrain TerrainConfig `yaml:"terrain"`
	Weapons WeaponConfig  `yaml:"weapons"`
	Render  RenderConfig  `yaml:"render"`
	Props   []PropConfig  `yaml:"props"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
}

// TerrainConfig names a heightmap image. When the file is missing a
// heightmap is generated from Seed at Width x Depth.
type TerrainConfig struct {
	Heightmap string `yaml:"heightmap"`
	Seed      uint64 `yaml:"seed"`
	Width     int    `yaml:"width"`
	Depth     int    `yaml:"depth"`
}

type WeaponConfig struct {
	AmmoSpeed float32  `yaml:"ammo_speed"`
	Damage    float32  `yaml:"damage"`
	AmmoSize  float32  `yaml:"ammo_size"`
	Cooldown  Duration `yaml:"cooldown"`
}

type RenderConfig struct {
	Solid          bool   `yaml:"solid"`
	BoundingBoxes  bool   `yaml:"bounding_boxes"`
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
}

// PropConfig spawns one GameObject holding the named component, built by
// the factory registered under Component.
type PropConfig struct {
	Name      string         `yaml:"name"`
	Component string         `yaml:"component"`
	Props     map[string]any `yaml:"props"`
}

// Duration wraps time.Duration for YAML unmarshaling.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration back in time.Duration string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "DuckGame",
			TargetFPS: 60,
		},
		Terrain: TerrainConfig{
			Heightmap: "assets/heightmap.png",
			Seed:      1,
			Width:     128,
			Depth:     128,
		},
		Weapons: WeaponConfig{
			AmmoSpeed: 40,
			Damage:    10,
			AmmoSize:  0.5,
			Cooldown:  Duration(150 * time.Millisecond),
		},
		Render: RenderConfig{
			Solid:          true,
			VertexShader:   "assets/shaders/lighting.vs",
			FragmentShader: "assets/shaders/lighting.fs",
		},
		Props: []PropConfig{
			{Name: "Crate", Component: "box", Props: map[string]any{"position": []any{-8, 12, 0}, "size": []any{2, 2, 2}}},
			{Name: "Ball", Component: "sphere", Props: map[string]any{"position": []any{-4, 12, 0}, "radius": 1}},
			{Name: "Barrel", Component: "cylinder", Props: map[string]any{"position": []any{0, 12, 0}, "radius": 1, "height": 2}},
			{Name: "Pill", Component: "capsule", Props: map[string]any{"position": []any{4, 12, 0}, "radius": 0.5, "length": 2}},
			{Name: "Cone", Component: "cone", Props: map[string]any{"position": []any{8, 12, 0}, "radius": 1, "height": 2}},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Weapons.AmmoSize <= 0 {
		return fmt.Errorf("weapons.ammo_size must be positive, got %v", c.Weapons.AmmoSize)
	}
	if c.Weapons.Cooldown < 0 {
		return fmt.Errorf("weapons.cooldown must not be negative")
	}
	for i, p := range c.Props {
		if p.Component == "" {
			return fmt.Errorf("props[%d] has no component", i)
		}
	}
	return nil
}
