package errors

import (
	"regexp"
	"unicode"
)

const maxSubjectLength = 100

// githubLoginRegex matches GitHub logins: alphanumerics and single hyphens,
// no leading hyphen.
var githubLoginRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?$`)

// repoNameRegex matches repository names on GitHub and Hugging Face.
var repoNameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// gistIDRegex matches gist names (hex ids).
var gistIDRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// ValidateUsername validates a user handle before it reaches an upstream API.
// An empty or malformed handle is answered the same way as a missing user.
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeUserNotFound, "username cannot be empty")
	}
	if err := checkSubject(name, ErrCodeUserNotFound); err != nil {
		return err
	}
	if !githubLoginRegex.MatchString(name) && !repoNameRegex.MatchString(name) {
		return New(ErrCodeUserNotFound, "invalid username: %q", name)
	}
	return nil
}

// ValidateRepoName validates an owner/repository pair.
func ValidateRepoName(owner, repo string) error {
	if owner == "" || repo == "" {
		return New(ErrCodeRepoNotFound, "owner and repository cannot be empty")
	}
	for _, s := range []string{owner, repo} {
		if err := checkSubject(s, ErrCodeRepoNotFound); err != nil {
			return err
		}
		if !repoNameRegex.MatchString(s) || s == "." || s == ".." {
			return New(ErrCodeRepoNotFound, "invalid repository name: %q", s)
		}
	}
	return nil
}

// ValidateGistID validates a gist identifier.
func ValidateGistID(id string) error {
	if id == "" {
		return New(ErrCodeRepoNotFound, "gist id cannot be empty")
	}
	if err := checkSubject(id, ErrCodeRepoNotFound); err != nil {
		return err
	}
	if !gistIDRegex.MatchString(id) {
		return New(ErrCodeRepoNotFound, "invalid gist id: %q", id)
	}
	return nil
}

func checkSubject(s string, code Code) error {
	if len(s) > maxSubjectLength {
		return New(code, "identifier too long (max %d characters)", maxSubjectLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(code, "identifier contains invalid control characters")
		}
	}
	return nil
}
