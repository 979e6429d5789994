package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/pacman/render"
	"gopkg.in/yaml.v3"
)

const (
	GameSpecFile   = "game.yaml"
	PlayerSpecFile = "player.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// GameSpec holds window and session settings.
type GameSpec struct {
	Name    string      `yaml:"name"`
	Title   string      `yaml:"title"`
	TPS     int         `yaml:"tps"`
	Maze    string      `yaml:"maze"`
	Probe   string      `yaml:"probe"`
	Debug   bool        `yaml:"debug"`
	Palette PaletteSpec `yaml:"palette"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec](GameSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.TPS <= 0 {
		spec.TPS = 60
	}
	if spec.Title == "" {
		spec.Title = "pacman"
	}
	return &spec, nil
}

type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Wall       *YAMLColor `yaml:"wall"`
	Player     *YAMLColor `yaml:"player"`
	Debug      *YAMLColor `yaml:"debug"`
}

// Palette resolves the spec against the default palette; unset entries keep
// their default.
func (p PaletteSpec) Palette() render.Palette {
	out := render.DefaultPalette()
	pick := func(dst *color.RGBA, c *YAMLColor) {
		if c != nil {
			*dst = c.RGBA
		}
	}
	pick(&out.Background, p.Background)
	pick(&out.Wall, p.Wall)
	pick(&out.Player, p.Player)
	pick(&out.Debug, p.Debug)
	return out
}

// PlayerSpec places and tunes the player. Spawn is in tiles, everything else
// in world units.
type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Spawn    SpawnSpec    `yaml:"spawn"`
	Collider ColliderSpec `yaml:"collider"`
	Velocity VelocitySpec `yaml:"velocity"`
	Facing   string       `yaml:"facing"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if spec.Collider.Width <= 0 || spec.Collider.Height <= 0 {
		return nil, fmt.Errorf("prefabs: %s: collider must have positive size, got %vx%v", PlayerSpecFile, spec.Collider.Width, spec.Collider.Height)
	}
	return &spec, nil
}

type SpawnSpec struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type VelocitySpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLColor decodes a color name ("red") or "#rrggbb".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := render.ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = parsed
	return nil
}
