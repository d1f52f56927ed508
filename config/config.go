// The config package holds the demo runner's settings. Defaults reproduce the constants the
// demos were tuned with, and a YAML file can override any subset of them.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

const (
	DemoStaticTriangle     = "static_triangle"
	DemoTranslatedTriangle = "translated_triangle"
	DemoRotatedSquare      = "rotated_square"
	DemoPerspectiveSquare  = "perspective_square"
	DemoMovableSquare      = "movable_square"
	DemoMovableSquares     = "movable_squares"
	DemoPerspectiveCube    = "perspective_cube"
)

var knownDemos = map[string]bool{
	DemoStaticTriangle:     true,
	DemoTranslatedTriangle: true,
	DemoRotatedSquare:      true,
	DemoPerspectiveSquare:  true,
	DemoMovableSquare:      true,
	DemoMovableSquares:     true,
	DemoPerspectiveCube:    true,
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

// DemoConfig is the tuning of one demo. Fields a demo doesn't use are left zero.
type DemoConfig struct {
	// Seconds for one full turn around the vertical (Y) and depth (Z) axes
	VerticalPeriod float32 `yaml:"vertical_period"`
	DepthPeriod    float32 `yaml:"depth_period"`

	FrustumScale float32 `yaml:"frustum_scale"`
	ZNear        float32 `yaml:"z_near"`
	ZFar         float32 `yaml:"z_far"`

	// ObjectDepth is the z offset applied to the drawn object, negative is away from the viewer
	ObjectDepth float32 `yaml:"object_depth"`

	// MoveStep and CameraStep are the distances moved per frame while a key is held
	MoveStep   float32 `yaml:"move_step"`
	CameraStep float32 `yaml:"camera_step"`

	CircleRadius float32 `yaml:"circle_radius"`
	CirclePeriod float32 `yaml:"circle_period"`

	// ShaderPath optionally replaces the demo's built in shader with a combined shader file
	ShaderPath string `yaml:"shader_path"`
}

type Config struct {
	Demo       string                `yaml:"demo"`
	Window     WindowConfig          `yaml:"window"`
	ClearColor [4]float32            `yaml:"clear_color"`
	Demos      map[string]DemoConfig `yaml:"demos"`
}

func Default() Config {

	return Config{
		Demo: DemoPerspectiveCube,
		Window: WindowConfig{
			Title:  "glscaffold",
			Width:  640,
			Height: 480,
			VSync:  true,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
		Demos: map[string]DemoConfig{
			DemoStaticTriangle: {},
			DemoTranslatedTriangle: {
				CircleRadius: 0.7,
				CirclePeriod: 0.25,
			},
			DemoRotatedSquare: {
				VerticalPeriod: 5,
				DepthPeriod:    1,
			},
			DemoPerspectiveSquare: {
				VerticalPeriod: 5,
				DepthPeriod:    1,
				FrustumScale:   1,
				ZNear:          1,
				ZFar:           3,
				ObjectDepth:    -2,
			},
			DemoMovableSquare: {
				MoveStep: 0.025,
			},
			DemoMovableSquares: {
				MoveStep: 0.025,
			},
			DemoPerspectiveCube: {
				VerticalPeriod: 60,
				DepthPeriod:    12,
				FrustumScale:   2,
				ZNear:          0.1,
				ZFar:           10,
				ObjectDepth:    -2,
				CameraStep:     10.0 / 60.0,
			},
		},
	}
}

func (dc *DemoConfig) Validate() error {

	if dc.VerticalPeriod < 0 || dc.DepthPeriod < 0 || dc.CirclePeriod < 0 {
		return errors.New("rotation and circle periods must not be negative")
	}

	if dc.FrustumScale < 0 {
		return fmt.Errorf("frustum scale must not be negative, got %v", dc.FrustumScale)
	}

	if (dc.ZNear != 0 || dc.ZFar != 0) && dc.ZNear == dc.ZFar {
		return fmt.Errorf("z near and z far must differ, both are %v", dc.ZNear)
	}

	if dc.MoveStep < 0 || dc.CameraStep < 0 {
		return errors.New("move and camera steps must not be negative")
	}

	return nil
}

func (c *Config) Validate() error {

	if c.Demo == "" {
		return errors.New("no demo selected")
	}

	if !knownDemos[c.Demo] {
		return fmt.Errorf("unknown demo '%s'. Known demos: %v", c.Demo, KnownDemoNames())
	}

	if _, ok := c.Demos[c.Demo]; !ok {
		return fmt.Errorf("no settings for demo '%s'", c.Demo)
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	for _, name := range c.DemoNames() {

		if !knownDemos[name] {
			return fmt.Errorf("settings given for unknown demo '%s'", name)
		}

		dc := c.Demos[name]
		if err := dc.Validate(); err != nil {
			return fmt.Errorf("invalid settings for demo '%s': %w", name, err)
		}
	}

	return nil
}

// DemoNames returns the configured demo names in sorted order
func (c *Config) DemoNames() []string {

	names := make([]string, 0, len(c.Demos))
	for k := range c.Demos {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}

// KnownDemoNames returns the name of every demo, in sorted order
func KnownDemoNames() []string {

	names := make([]string, 0, len(knownDemos))
	for k := range knownDemos {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}

// Parse overlays the YAML in data on the defaults and validates the result.
// Demo entries are merged field by field, so a file only needs the values it changes,
// and settings for demos that don't exist are rejected.
func Parse(data []byte) (Config, error) {

	cfg := Default()
	demos := cfg.Demos
	cfg.Demos = nil

	// Demo entries are decoded separately, each over a copy of its defaults, so that
	// only the fields present in the file change (explicit zeros included)
	var raw struct {
		Demos map[string]yaml.Node `yaml:"demos"`
	}

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	for name, node := range raw.Demos {

		dc := demos[name]
		if err := node.Decode(&dc); err != nil {
			return Config{}, fmt.Errorf("failed to parse settings of demo '%s': %w", name, err)
		}

		demos[name] = dc
	}
	cfg.Demos = demos

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func Load(path string) (Config, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config file '%s': %w", path, err)
	}

	return cfg, nil
}
