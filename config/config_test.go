package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DemoPerspectiveCube, cfg.Demo)
	assert.Len(t, cfg.Demos, 7)

	cube := cfg.Demos[DemoPerspectiveCube]
	assert.Equal(t, float32(60), cube.VerticalPeriod)
	assert.Equal(t, float32(12), cube.DepthPeriod)
	assert.Equal(t, float32(2), cube.FrustumScale)

	ps := cfg.Demos[DemoPerspectiveSquare]
	assert.Equal(t, float32(1), ps.ZNear)
	assert.Equal(t, float32(3), ps.ZFar)
}

func TestParseOverlaysDefaults(t *testing.T) {

	cfg, err := Parse([]byte(`
demo: rotated_square
window:
  title: spinning
  vsync: false
demos:
  rotated_square:
    vertical_period: 10
`))
	require.NoError(t, err)

	assert.Equal(t, DemoRotatedSquare, cfg.Demo)
	assert.Equal(t, "spinning", cfg.Window.Title)
	assert.False(t, cfg.Window.VSync)

	// Untouched fields keep their defaults
	assert.Equal(t, int32(640), cfg.Window.Width)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.ClearColor)

	rs := cfg.Demos[DemoRotatedSquare]
	assert.Equal(t, float32(10), rs.VerticalPeriod)
	assert.Equal(t, float32(1), rs.DepthPeriod)

	// Other demos are still present
	assert.Contains(t, cfg.Demos, DemoPerspectiveCube)
}

func TestParseRejectsBadValues(t *testing.T) {

	tests := []struct {
		name string
		yml  string
	}{
		{name: "unknown demo", yml: "demo: teapot"},
		{name: "unknown demo with settings", yml: "demo: teapot\ndemos:\n  teapot: {}\n"},
		{name: "settings for unknown demo", yml: "demos:\n  teapot:\n    move_step: 1\n"},
		{name: "bad demo field type", yml: "demos:\n  rotated_square:\n    depth_period: fast\n"},
		{name: "empty demo", yml: `demo: ""`},
		{name: "equal near and far", yml: "demos:\n  perspective_square:\n    z_near: 3\n"},
		{name: "negative period", yml: "demos:\n  rotated_square:\n    depth_period: -1\n"},
		{name: "bad window", yml: "window:\n  width: -5\n"},
		{name: "malformed", yml: "demo: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yml))
			assert.Error(t, err)
		})
	}
}

func TestParseExplicitZeroOverridesDefault(t *testing.T) {

	cfg, err := Parse([]byte(`
demos:
  perspective_square:
    object_depth: 0
  perspective_cube:
    camera_step: 0
`))
	require.NoError(t, err)

	ps := cfg.Demos[DemoPerspectiveSquare]
	assert.Zero(t, ps.ObjectDepth)
	assert.Equal(t, float32(3), ps.ZFar, "fields missing from the file keep their defaults")

	assert.Zero(t, cfg.Demos[DemoPerspectiveCube].CameraStep)

	// Defaults are rebuilt on every call
	assert.Equal(t, float32(-2), Default().Demos[DemoPerspectiveSquare].ObjectDepth)
}

func TestKnownDemoNames(t *testing.T) {

	cfg := Default()
	assert.Equal(t, cfg.DemoNames(), KnownDemoNames())
}

func TestLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "glscaffold.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo: movable_squares\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DemoMovableSquares, cfg.Demo)
	assert.Equal(t, float32(0.025), cfg.Demos[DemoMovableSquares].MoveStep)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDemoNamesSorted(t *testing.T) {

	cfg := Default()
	names := cfg.DemoNames()
	require.Len(t, names, 7)
	assert.IsIncreasing(t, names)
}
