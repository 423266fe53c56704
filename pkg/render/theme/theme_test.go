package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	th, err := Lookup("dracula")
	require.NoError(t, err)
	assert.Equal(t, "dracula", th.Name)
	assert.Equal(t, "#282A36", th.Palette.Background)
	assert.Equal(t, "#ff79c6", th.ActivityColor(VeryHigh))
}

func TestLookupAlias(t *testing.T) {
	th, err := Lookup("catpuccin-macchiato")
	require.NoError(t, err)
	assert.Equal(t, "catppuccin-macchiato", th.Name)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("solarized-neon")
	assert.Error(t, err)
}

func TestResolveFallback(t *testing.T) {
	th, err := Resolve("", "dark")
	require.NoError(t, err)
	assert.Equal(t, "dark", th.Name)

	th, err = Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, Default, th.Name)
}

func TestCalendarColor(t *testing.T) {
	th, err := Lookup("white")
	require.NoError(t, err)

	assert.Equal(t, "#e5e5e5", th.CalendarColor("#ebedf0"))
	assert.Equal(t, "#216e39", th.CalendarColor("#216E39"))
	assert.Equal(t, "#123456", th.CalendarColor("#123456"), "unknown colors pass through")
}

func TestEveryThemeIsComplete(t *testing.T) {
	names := Names()
	require.Len(t, names, 12)
	for _, name := range names {
		th, err := Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.Palette.Background, name)
		assert.NotEmpty(t, th.Palette.Text, name)
		for step, c := range th.Activity {
			assert.NotEmpty(t, c, "%s step %d", name, step)
		}
	}
}
