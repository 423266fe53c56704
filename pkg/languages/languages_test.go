package languages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor(t *testing.T) {
	assert.Equal(t, "#00ADD8", Color("Go"))
	assert.Equal(t, "#00ADD8", Color("go"))
	assert.Equal(t, "#dea584", Color("RUST"))
	assert.Equal(t, "#178600", Color("C#"))
}

func TestColorDefault(t *testing.T) {
	assert.Equal(t, DefaultColor, Color("Brainfunk++"))
	assert.Equal(t, DefaultColor, Color(""))
	assert.False(t, Known("Brainfunk++"))
}

func TestTableKeysAreLowercase(t *testing.T) {
	for name, c := range colors {
		assert.Equal(t, strings.ToLower(name), name)
		assert.True(t, strings.HasPrefix(c, "#"), name)
	}
}
