package github

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/statcards/pkg/integrations"
)

// Failure is GitHub's error payload. REST errors carry only Message;
// GraphQL errors carry Errors and no data.
type Failure struct {
	Message string         `json:"message"`
	Errors  []GraphQLError `json:"errors,omitempty"`
}

// GraphQLError is one entry of a GraphQL errors array.
type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Response is a decoded GitHub payload: exactly one of Failure or Data is set.
type Response[T any] struct {
	Failure *Failure
	Data    *T
}

type envelope struct {
	Message *string         `json:"message"`
	Errors  []GraphQLError  `json:"errors"`
	Data    json.RawMessage `json:"data"`
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// decodeGraphQL tries the failure shape first: a top-level message, or a
// non-empty errors array without data. Anything else must carry data.
func decodeGraphQL[T any](body []byte) (Response[T], error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Response[T]{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	if env.Message != nil {
		return Response[T]{Failure: &Failure{Message: *env.Message}}, nil
	}
	if len(env.Errors) > 0 && isNull(env.Data) {
		return Response[T]{Failure: &Failure{Message: env.Errors[0].Message, Errors: env.Errors}}, nil
	}
	if isNull(env.Data) {
		return Response[T]{}, fmt.Errorf("%w: no data", integrations.ErrDecode)
	}
	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return Response[T]{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	return Response[T]{Data: &data}, nil
}

// decodeREST tries the failure shape first: a top-level message string.
func decodeREST[T any](body []byte) (Response[T], error) {
	var probe struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return Response[T]{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	if probe.Message != nil {
		return Response[T]{Failure: &Failure{Message: *probe.Message}}, nil
	}
	var data T
	if err := json.Unmarshal(body, &data); err != nil {
		return Response[T]{}, fmt.Errorf("%w: %v", integrations.ErrDecode, err)
	}
	return Response[T]{Data: &data}, nil
}

// ActivityData is the payload of the contribution calendar query.
// User is nil when the login does not exist.
type ActivityData struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar Calendar `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// Calendar is GitHub's contribution calendar.
type Calendar struct {
	TotalContributions int             `json:"totalContributions"`
	Weeks              []CalendarWeek  `json:"weeks"`
	Months             []CalendarMonth `json:"months"`
}

// CalendarWeek is one column of the calendar.
type CalendarWeek struct {
	ContributionDays []ContributionDay `json:"contributionDays"`
}

// ContributionDay is one calendar cell. Color is one of GitHub's stock
// intensity colors.
type ContributionDay struct {
	Weekday           int    `json:"weekday"`
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
	Color             string `json:"color"`
}

// CalendarMonth is GitHub's month boundary metadata.
type CalendarMonth struct {
	Name       string `json:"name"`
	Year       int    `json:"year"`
	FirstDay   string `json:"firstDay"`
	TotalWeeks int    `json:"totalWeeks"`
}

// LanguagesData is the payload of the repository languages query.
type LanguagesData struct {
	User *struct {
		Repositories struct {
			Nodes []RepoLanguages `json:"nodes"`
		} `json:"repositories"`
	} `json:"user"`
}

// RepoLanguages lists the languages of one repository, largest first.
type RepoLanguages struct {
	Languages struct {
		Edges []LanguageEdge `json:"edges"`
	} `json:"languages"`
}

// LanguageEdge is a language and its size in bytes within one repository.
type LanguageEdge struct {
	Size int64 `json:"size"`
	Node struct {
		Name string `json:"name"`
	} `json:"node"`
}

// GistData is the payload of the gist query. Gist is nil when not found.
type GistData struct {
	Viewer struct {
		Gist *Gist `json:"gist"`
	} `json:"viewer"`
}

// Gist is a single gist.
type Gist struct {
	Description    *string `json:"description"`
	StargazerCount int     `json:"stargazerCount"`
	Forks          struct {
		TotalCount int `json:"totalCount"`
	} `json:"forks"`
	Owner struct {
		Login string `json:"login"`
	} `json:"owner"`
	Files []GistFile `json:"files"`
}

// GistFile is one file of a gist. Language is nil for unrecognized files.
type GistFile struct {
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Language *struct {
		Name string `json:"name"`
	} `json:"language"`
}

// Repository is the REST repository payload.
type Repository struct {
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Description     *string `json:"description"`
	StargazersCount int     `json:"stargazers_count"`
	ForksCount      int     `json:"forks_count"`
	Language        *string `json:"language"`
	Owner           struct {
		Login string `json:"login"`
	} `json:"owner"`
}
