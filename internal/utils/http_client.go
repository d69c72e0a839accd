// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries the per-request id on outbound calls.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// The resty client keeps a cookie jar, so session cookies set by the
// upstream (for example an auth cookie issued on login) are replayed on every
// later request made through the same HTTPClient.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose requests always carry an
// X-Request-ID header. The id is taken from the request context when present
// (see [WithRequestID]) and generated otherwise.
//
// Each call returns an independent client with its own connection pool and
// cookie jar.
func NewHTTPClient() *HTTPClient {
	ids := NewUUIDGenerator()
	client := resty.New().
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) != "" {
				return nil
			}
			id, ok := GetRequestIDFromContext(r.Context())
			if !ok {
				id = ids.Generate()
			}
			r.SetHeader(RequestIDHeader, id)
			return nil
		})

	return &HTTPClient{Client: client}
}

// NewPassThroughClient returns a client for forwarding third-party requests
// to baseURL. Cookies are not stored and redirects are not followed: both
// belong to the original caller.
func NewPassThroughClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := NewHTTPClient()
	c.SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetCookieJar(nil).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}))
	return c
}
