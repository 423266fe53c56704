// Package httputil provides transport helpers for the upstream API clients.
//
// [Retry] re-runs a request while it fails with a [RetryableError], doubling
// the delay between attempts. Upstream clients wrap network failures and 5xx
// responses in [RetryableError]; everything else (including 4xx responses,
// whose bodies carry the upstream error payload) is final on the first try.
//
//	err := httputil.Retry(ctx, httputil.DefaultPolicy, func() error {
//	    return fetch(ctx)
//	})
package httputil
