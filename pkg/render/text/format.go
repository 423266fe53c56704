package text

import (
	"bytes"
	"encoding/xml"
	"strconv"
)

var countSuffixes = []string{"", "k", "M"}

// FormatCount renders a counter compactly: values up to 999 as-is, larger
// values scaled by 1000 with one decimal and a k or M suffix (1234 -> "1.2k").
func FormatCount(n int) string {
	if n <= 999 && n >= -999 {
		return strconv.Itoa(n)
	}

	v := float64(n)
	i := 0
	for i < len(countSuffixes)-1 && (v >= 1000 || v <= -1000) {
		v /= 1000
		i++
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + countSuffixes[i]
}

// EscapeXML escapes s for use in SVG text content and attribute values.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
