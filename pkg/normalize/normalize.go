// Package normalize turns upstream API results into canonical statistics or
// one of the six ErrorClass codes.
//
// Each upstream gets one function per query. The failure mapping is a flat
// decision table: the first matching row wins, and a new upstream error
// string is handled by adding a row, never by branching code.
//
// A transport failure (network error, undecodable payload) is always
// UNKNOWN. A success payload whose subject is null is always the
// not-found class of the query's subject.
package normalize

import (
	"strings"

	errs "github.com/matzehuels/statcards/pkg/errors"
)

// rule maps an upstream error message to an ErrorClass.
type rule struct {
	match func(msg string) bool
	code  errs.Code
}

func contains(phrase string) func(string) bool {
	return func(msg string) bool {
		return strings.Contains(strings.ToLower(msg), phrase)
	}
}

func equals(phrase string) func(string) bool {
	return func(msg string) bool {
		return strings.EqualFold(strings.TrimSpace(msg), phrase)
	}
}

// sharedRules apply to every upstream, ahead of the source rows.
var sharedRules = []rule{
	{contains("rate limit"), errs.ErrCodeRateLimited},
	{contains("bad credentials"), errs.ErrCodeBadCredentials},
	{contains("invalid credentials"), errs.ErrCodeBadCredentials},
	{contains("invalid username or password"), errs.ErrCodeBadCredentials},
	{contains("repository not found"), errs.ErrCodeRepoNotFound},
}

// classify walks the shared rows, then the source rows.
func classify(msg string, source []rule) errs.Code {
	for _, r := range sharedRules {
		if r.match(msg) {
			return r.code
		}
	}
	for _, r := range source {
		if r.match(msg) {
			return r.code
		}
	}
	return errs.ErrCodeUnknown
}

func upstreamError(source, msg string, rows []rule) error {
	return errs.New(classify(msg, rows), "%s: %s", source, msg)
}

func transportError(source string, err error) error {
	return errs.Wrap(errs.ErrCodeUnknown, err, "%s request failed", source)
}
