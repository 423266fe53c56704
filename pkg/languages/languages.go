// Package languages maps programming language names to their display colors.
package languages

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// DefaultColor is used for languages missing from the table.
const DefaultColor = "#818181"

//go:embed colors.json
var colorsJSON []byte

// colors is keyed by lowercase language name.
var colors = mustLoad(colorsJSON)

func mustLoad(data []byte) map[string]string {
	m := make(map[string]string)
	if err := json.Unmarshal(data, &m); err != nil {
		panic("languages: decode color table: " + err.Error())
	}
	return m
}

// Color returns the display color for a language. Matching is
// case-insensitive; unknown languages get DefaultColor.
func Color(name string) string {
	if c, ok := colors[strings.ToLower(name)]; ok {
		return c
	}
	return DefaultColor
}

// Known reports whether the language has its own color.
func Known(name string) bool {
	_, ok := colors[strings.ToLower(name)]
	return ok
}
