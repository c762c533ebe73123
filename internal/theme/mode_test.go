package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode("light")
	require.NoError(t, err)
	assert.Equal(t, ModeLight, m)

	m, err = ParseMode("Dark")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)

	_, err = ParseMode("dusk")
	assert.Error(t, err)
}

func TestModeOpposite(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Opposite())
	assert.Equal(t, ModeLight, ModeDark.Opposite())

	// Double toggle is the identity.
	assert.Equal(t, ModeLight, ModeLight.Opposite().Opposite())
}

func TestModeLightValueRoundTrip(t *testing.T) {
	assert.Equal(t, uint32(1), ModeLight.lightValue())
	assert.Equal(t, uint32(0), ModeDark.lightValue())
	assert.Equal(t, ModeLight, modeFromLightValue(1))
	assert.Equal(t, ModeDark, modeFromLightValue(0))
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "light", ModeLight.String())
	assert.Equal(t, "dark", ModeDark.String())
}
