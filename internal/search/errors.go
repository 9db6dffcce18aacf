package search

import "errors"

// ErrUpstreamUnavailable wraps any failed catalog call. It is logged and
// absorbed; the affected term and source contribute nothing.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")
