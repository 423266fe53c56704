package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalendarFirstDay(t *testing.T) {
	var empty Calendar
	_, ok := empty.FirstDay()
	assert.False(t, ok)

	c := Calendar{Months: []Month{
		{Name: "Jan", Weeks: []Week{{}}},
		{Name: "Feb", Weeks: []Week{{Days: []Day{{Weekday: 3, Date: "2024-02"}}}}},
	}}
	d, ok := c.FirstDay()
	assert.True(t, ok)
	assert.Equal(t, 3, d.Weekday)
	assert.Equal(t, 1, c.DayCount())
}

func TestParseHubKind(t *testing.T) {
	for _, s := range []string{"model", "dataset", "space"} {
		k, ok := ParseHubKind(s)
		assert.True(t, ok, s)
		assert.Equal(t, s, string(k))
	}
	_, ok := ParseHubKind("collection")
	assert.False(t, ok)

	assert.True(t, HubModel.HasDownloads())
	assert.True(t, HubDataset.HasDownloads())
	assert.False(t, HubSpace.HasDownloads())
}
