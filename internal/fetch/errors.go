package fetch

import "errors"

// Fetch errors. Callers use errors.Is to tell them apart.
var (
	// ErrInvalidURL is returned when the URL cannot be parsed or has no host.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrRequest is returned when the request could not be completed:
	// DNS failure, refused connection, TLS error or timeout.
	ErrRequest = errors.New("request failed")

	// ErrHTTPStatus is returned for a non-2xx response status.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrBodyTooLarge is returned when the body exceeds the size limit.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrInvalidProxy is returned when the proxy URL is malformed or uses
	// an unsupported scheme.
	ErrInvalidProxy = errors.New("invalid proxy: expected socks5://host:port or http(s)://host:port")
)
