// Package github fetches contribution calendars, language breakdowns, gists
// and repositories from GitHub.
//
// The calendar, languages and gist queries go through the GraphQL endpoint;
// repositories through REST. Both endpoints answer failures with a JSON body
// that is told apart from a success only by its fields, so every call
// returns a [Response] holding exactly one of Failure or Data.
package github
