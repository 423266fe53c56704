// Package stats defines the normalized statistics that sit between the
// upstream API clients and the card renderer.
//
// Every type here is plain data with JSON tags: the result cache stores these
// values serialized, and a cached value decodes back into exactly what the
// normalizer produced.
package stats

// Day is a single calendar cell.
type Day struct {
	Weekday int    `json:"weekday"`
	Count   int    `json:"count"`
	Color   string `json:"color"`
	Date    string `json:"date"` // YYYY-MM prefix of the ISO date
}

// Week is the run of days rendered in one calendar column. A week split by a
// month boundary appears as two Weeks, one at the end of each Month.
type Week struct {
	Days []Day `json:"days"`
}

// Month is a contiguous group of weeks labelled with the month's name.
type Month struct {
	Name     string `json:"name"`
	FirstDay string `json:"first_day"`
	Weeks    []Week `json:"weeks"`
}

// Calendar is a contribution calendar grouped by month.
type Calendar struct {
	Months []Month `json:"months"`
}

// FirstDay returns the first day of the calendar, if any.
func (c Calendar) FirstDay() (Day, bool) {
	for _, m := range c.Months {
		for _, w := range m.Weeks {
			if len(w.Days) > 0 {
				return w.Days[0], true
			}
		}
	}
	return Day{}, false
}

// DayCount returns the total number of days across all months.
func (c Calendar) DayCount() int {
	n := 0
	for _, m := range c.Months {
		for _, w := range m.Weeks {
			n += len(w.Days)
		}
	}
	return n
}

// MaxLanguages caps the language breakdown.
const MaxLanguages = 6

// Language is one entry of a language breakdown. Percent is relative to the
// displayed entries only.
type Language struct {
	Name    string  `json:"name"`
	Color   string  `json:"color"`
	Percent float64 `json:"percent"`
}

// Repo holds the facts shown on a repository pin.
type Repo struct {
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language,omitempty"`
}

// Gist holds the facts shown on a gist pin. Name and Language come from the
// gist's largest file.
type Gist struct {
	ID          string `json:"id"`
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
	Language    string `json:"language,omitempty"`
}

// HubKind is the Hugging Face repository type.
type HubKind string

const (
	HubModel   HubKind = "model"
	HubDataset HubKind = "dataset"
	HubSpace   HubKind = "space"
)

// ParseHubKind validates a repository type name.
func ParseHubKind(s string) (HubKind, bool) {
	switch k := HubKind(s); k {
	case HubModel, HubDataset, HubSpace:
		return k, true
	}
	return "", false
}

// HasDownloads reports whether the hub exposes a download counter for kind.
func (k HubKind) HasDownloads() bool { return k != HubSpace }

// Hub holds the facts shown on a Hugging Face pin.
type Hub struct {
	Kind      HubKind  `json:"kind"`
	ID        string   `json:"id"` // owner/name as reported upstream
	Owner     string   `json:"owner"`
	Name      string   `json:"name"`
	Likes     int      `json:"likes"`
	Downloads int      `json:"downloads"`
	Tags      []string `json:"tags"`
}
