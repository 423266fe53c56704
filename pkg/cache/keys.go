package cache

import "fmt"

// Keyer builds cache keys from request fingerprints. A key is the source
// tag, the subject identifiers and the variant, joined by colons.
type Keyer interface {
	ActivityKey(user, period string) string
	GitHubLanguagesKey(user string) string
	WakaTimeLanguagesKey(user string) string
	RepoKey(owner, repo string) string
	GistKey(id string) string
	HubKey(kind, owner, repo string) string
}

// DefaultKeyer produces the canonical key layout.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the canonical keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) ActivityKey(user, period string) string {
	return fmt.Sprintf("github:activity:%s:%s", user, period)
}

func (DefaultKeyer) GitHubLanguagesKey(user string) string {
	return "github:langs:" + user
}

func (DefaultKeyer) WakaTimeLanguagesKey(user string) string {
	return "wakatime:langs:" + user
}

func (DefaultKeyer) RepoKey(owner, repo string) string {
	return fmt.Sprintf("github:repo:%s:%s", owner, repo)
}

func (DefaultKeyer) GistKey(id string) string {
	return "github:gist:" + id
}

func (DefaultKeyer) HubKey(kind, owner, repo string) string {
	return fmt.Sprintf("huggingface:%s:%s:%s", kind, owner, repo)
}
