package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/matzehuels/statcards/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		rows []rule
		want errs.Code
	}{
		{"API rate limit exceeded for 1.2.3.4", nil, errs.ErrCodeRateLimited},
		{"Bad credentials", nil, errs.ErrCodeBadCredentials},
		{"Invalid username or password.", nil, errs.ErrCodeBadCredentials},
		{"Repository not found", nil, errs.ErrCodeRepoNotFound},
		{"Not Found", restRules, errs.ErrCodeRepoNotFound},
		{"Not found.", wakaTimeRules, errs.ErrCodeUserNotFound},
		{"NOT FOUND.", wakaTimeRules, errs.ErrCodeUserNotFound},
		{"Time range not matching user's public stats range.", wakaTimeRules, errs.ErrCodeLanguagesUnavailable},
		{"Something exploded", wakaTimeRules, errs.ErrCodeUnknown},
		{"Not Found", nil, errs.ErrCodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.msg, tt.rows))
		})
	}
}

func TestTransportErrorIsUnknown(t *testing.T) {
	err := transportError("github", errors.New("connection reset"))
	assert.True(t, errs.Is(err, errs.ErrCodeUnknown))
	assert.Contains(t, err.Error(), "connection reset")
}
