package log

import "net/http"

// CorrelationTransport stamps outgoing requests with the correlation id carried
// by the request context, so client and server log lines can be joined.
type CorrelationTransport struct {
	Base http.RoundTripper
}

func (t *CorrelationTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	id, ok := CorrelationIDFromContext(req.Context())
	if !ok || req.Header.Get(CorrelationIDHeader) != "" {
		return base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set(CorrelationIDHeader, id)
	return base.RoundTrip(clone)
}
