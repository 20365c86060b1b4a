package notion

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/jomei/notionapi"
)

type ErrorKind string

const (
	KindConfig              ErrorKind = "config"
	KindValidation          ErrorKind = "validation"
	KindUpstreamUnavailable ErrorKind = "upstream_unavailable"
	KindUpstreamRejected    ErrorKind = "upstream_rejected"
)

// Classify maps an error returned by the Notion API client onto a kind.
// API errors are sorted by HTTP status; transport failures and deadlines count
// as the upstream being unavailable.
func Classify(err error) ErrorKind {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Status == http.StatusUnauthorized,
			apiErr.Status == http.StatusForbidden,
			apiErr.Status == http.StatusNotFound:
			return KindConfig
		case apiErr.Status == http.StatusBadRequest:
			return KindValidation
		case apiErr.Status == http.StatusTooManyRequests,
			apiErr.Status >= http.StatusInternalServerError:
			return KindUpstreamUnavailable
		default:
			return KindUpstreamRejected
		}
	}

	var throttled *notionapi.RateLimitedError
	if errors.As(err, &throttled) {
		return KindUpstreamUnavailable
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.As(err, &netErr) {
		return KindUpstreamUnavailable
	}

	return KindUpstreamRejected
}
