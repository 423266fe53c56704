package huggingface

import (
	"encoding/json"
	"strings"
)

// Response is a decoded Hub payload: Failure holds the error string, or
// Repo the repository.
type Response struct {
	Failure string
	Repo    *Repo
}

// Repo covers the fields the pin card needs from all three repository kinds.
type Repo struct {
	ID          string       `json:"id"`
	Author      string       `json:"author"`
	Private     bool         `json:"private"`
	Likes       int          `json:"likes"`
	Downloads   int          `json:"downloads"`
	Tags        []string     `json:"tags"`
	CardData    *CardData    `json:"cardData"`
	PipelineTag string       `json:"pipeline_tag"`
	LibraryName string       `json:"library_name"`
	Config      *ModelConfig `json:"config"`
	Runtime     *Runtime     `json:"runtime"`
}

// CardData is the parsed README front matter.
type CardData struct {
	License        StringList `json:"license"`
	TaskCategories StringList `json:"task_categories"`
}

// ModelConfig is the subset of a model's config.json the Hub exposes.
type ModelConfig struct {
	ModelType string `json:"model_type"`
}

// Runtime describes a space's current deployment.
type Runtime struct {
	Stage    string `json:"stage"`
	Hardware struct {
		Current string `json:"current"`
	} `json:"hardware"`
}

// StringList decodes a field the Hub sends either as one string or as a
// list of strings.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		*s = nil
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// First returns the first entry or "".
func (s StringList) First() string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}
