package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	wantC := *C
	wantPete := Pete
	wantWorld := World
	wantInput := Input.Bindings

	require.NoError(t, Apply(DefaultYAML))

	assert.Equal(t, wantC, *C)
	assert.Equal(t, wantPete, Pete)
	assert.Equal(t, wantWorld, World)
	assert.Equal(t, wantInput, Input.Bindings)
}

func TestApply_PartialOverlay(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	err := Apply([]byte(`
pete:
  max_x_speed: 3
world:
  default_level: caves
input:
  jump: [Z]
`))
	require.NoError(t, err)

	assert.Equal(t, 3.0, Pete.MaxXSpeed)
	assert.Equal(t, 2.0, Pete.MaxYSpeed)
	assert.Equal(t, 15.0, Pete.Height)
	assert.Equal(t, "caves", World.DefaultLevel)
	assert.Equal(t, 16, World.CellSize)
	assert.Equal(t, []string{"Z"}, Input.Bindings[ActionJump].Keys)
	assert.Equal(t, []string{"RightBottom"}, Input.Bindings[ActionJump].GamepadButtons)
	assert.Equal(t, []string{"ArrowLeft", "A"}, Input.Bindings[ActionMoveLeft].Keys)
}

func TestApply_Empty(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	require.NoError(t, Apply(nil))
	assert.Equal(t, 640, C.Width)
}

func TestApply_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "pete:\n  wings: 2\n"},
		{"zero cell", "world:\n  cell_size: 0\n"},
		{"negative body", "pete:\n  width: -1\n"},
		{"loud", "audio:\n  sfx_volume: 2\n"},
		{"unknown action", "input:\n  fly: [F]\n"},
		{"bad yaml", "screen: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(Reset)
			Reset()

			err := Apply([]byte(tt.yaml))
			require.Error(t, err)

			// Nothing applied.
			assert.Equal(t, 16, World.CellSize)
			assert.Equal(t, 16.0, Pete.Width)
			assert.Equal(t, 1.0, Audio.DefaultSFXVol)
		})
	}
}

func TestLoad_FromFS(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	fsys := fstest.MapFS{"cfg/pete.yaml": {Data: []byte("screen:\n  width: 800\n")}}
	require.NoError(t, Load(fsys, "cfg/pete.yaml"))
	assert.Equal(t, 800, C.Width)
	assert.Equal(t, 480, C.Height)

	assert.Error(t, Load(fsys, "missing.yaml"))
}

func TestActionNames(t *testing.T) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		got, ok := ActionByName(id.String())
		require.True(t, ok, id.String())
		assert.Equal(t, id, got)
	}

	_, ok := ActionByName("none")
	assert.False(t, ok)
	assert.Equal(t, "unknown", ActionCount.String())
}
