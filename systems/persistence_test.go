package systems

import (
	"testing"

	cfg "github.com/automoto/timetravel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyName(t *testing.T, k ebiten.Key) string {
	t.Helper()
	text, err := k.MarshalText()
	require.NoError(t, err)
	return string(text)
}

func TestEncodeBindings(t *testing.T) {
	saved := EncodeBindings(cfg.DefaultBindings())

	assert.Equal(t, []string{keyName(t, ebiten.KeyF)}, saved["fire"])
	assert.Equal(t, []string{keyName(t, ebiten.KeyW)}, saved["up"])
	assert.Len(t, saved, len(cfg.ActionNames))
}

func TestApplyBindings(t *testing.T) {
	base := cfg.DefaultBindings()
	saved := SavedBindings{
		"fire":     {keyName(t, ebiten.KeyG), keyName(t, ebiten.KeySpace)},
		"dance":    {keyName(t, ebiten.KeyX)},
		"hookshot": {"NotAKey"},
	}

	out := ApplyBindings(base, saved)

	assert.Equal(t, []ebiten.Key{ebiten.KeyG, ebiten.KeySpace}, out[cfg.ActionFire].Keys)
	assert.Equal(t, base[cfg.ActionFire].StandardGamepadButtons, out[cfg.ActionFire].StandardGamepadButtons)
	assert.Equal(t, base[cfg.ActionHookshot].Keys, out[cfg.ActionHookshot].Keys)
	assert.Equal(t, base[cfg.ActionMoveUp].Keys, out[cfg.ActionMoveUp].Keys)

	// base is left untouched
	assert.Equal(t, []ebiten.Key{ebiten.KeyF}, base[cfg.ActionFire].Keys)
}

func TestApplyBindingsRoundTrip(t *testing.T) {
	base := cfg.DefaultBindings()
	assert.Equal(t, base, ApplyBindings(base, EncodeBindings(base)))
}

func TestLoadBindingsWithoutStore(t *testing.T) {
	saved, err := LoadBindings()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveBindings(cfg.DefaultBindings()))
}
