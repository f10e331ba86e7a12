package letta

import (
	"net/http"
	"time"
)

// Option configures a Client via the functional options pattern.
type Option func(*clientOptions)

// clientOptions holds all configurable fields set via Option functions.
type clientOptions struct {
	baseURL    string
	token      string
	httpClient *http.Client
	timeout    time.Duration
	maxRetries uint64
	userAgent  string
}

// applyDefaults fills in zero-value fields with sensible defaults.
func (o *clientOptions) applyDefaults() {
	if o.baseURL == "" {
		if o.token != "" {
			o.baseURL = CloudBaseURL
		} else {
			o.baseURL = DefaultBaseURL
		}
	}
	if o.timeout == 0 {
		o.timeout = DefaultTimeout
	}
	if o.maxRetries == 0 {
		o.maxRetries = DefaultMaxRetries
	}
	if o.userAgent == "" {
		o.userAgent = defaultUserAgent
	}
	if o.httpClient == nil {
		o.httpClient = &http.Client{Timeout: o.timeout}
	}
}

// resolveOptions applies all option functions and fills defaults.
func resolveOptions(opts []Option) clientOptions {
	var o clientOptions
	for _, fn := range opts {
		fn(&o)
	}
	o.applyDefaults()
	return o
}

// WithBaseURL points the client at a self-hosted server.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) { o.baseURL = url }
}

// WithToken sets the API token. When no base URL is given the client targets
// the hosted service.
func WithToken(token string) Option {
	return func(o *clientOptions) { o.token = token }
}

// WithHTTPClient replaces the underlying http.Client. The caller owns the
// client's timeout when this option is used.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTimeout sets the per-request timeout for the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) { o.timeout = d }
}

// WithMaxRetries caps retry attempts for rate-limited and 5xx responses.
func WithMaxRetries(n uint64) Option {
	return func(o *clientOptions) { o.maxRetries = n }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *clientOptions) { o.userAgent = ua }
}
