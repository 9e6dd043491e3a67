package systems

import (
	"bytes"
	"fmt"
	"io/fs"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

type missingSFX struct{}

func (missingSFX) LoadSFX(path string) (*audio.Player, error) {
	return nil, fmt.Errorf("read audio file %s: %w", path, fs.ErrNotExist)
}

func TestLoadSFX_WarnsWhenMissing(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	assert.Nil(t, loadSFX(missingSFX{}, "audio/jump.wav"))

	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, `"path":"audio/jump.wav"`)
	assert.Contains(t, out, "sound effect unavailable")
}
