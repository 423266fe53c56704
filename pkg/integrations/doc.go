// Package integrations provides HTTP clients for the upstream statistics APIs.
//
// Each upstream has its own subpackage:
//
//   - [github]: GraphQL (contribution calendar, languages, gists) and REST
//     (repositories)
//   - [wakatime]: all-time coding statistics
//   - [huggingface]: model, dataset and space metadata
//
// # Client Pattern
//
// Every source client embeds the shared [Client], which applies default
// headers, throttles requests with a token bucket, retries transport
// failures and 5xx responses, and reports each call to the observability
// hooks. Bodies of 2xx-4xx responses are returned as payloads because the
// upstream error shapes live there; each source decodes them into an
// explicit success-or-failure value, trying the failure shape first.
//
//	gh := github.NewClient(token, integrations.Options{RPS: 10})
//	resp, err := gh.Languages(ctx, "octocat")
//	if err != nil {
//	    // transport failure: integrations.ErrNetwork or a decode error
//	}
//	if resp.Failure != nil {
//	    // upstream error payload
//	}
//
// [github]: github.com/matzehuels/statcards/pkg/integrations/github
// [wakatime]: github.com/matzehuels/statcards/pkg/integrations/wakatime
// [huggingface]: github.com/matzehuels/statcards/pkg/integrations/huggingface
package integrations
