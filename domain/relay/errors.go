package relay

import (
	"errors"

	"github.com/akeren/waitlist-relay/internal/notion"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
)

// Sentinel errors for the relay domain.
var (
	ErrNotionNotConfigured   = errors.New("notion credential or database id is not configured")
	ErrEmptyUpstreamResponse = errors.New("notion returned an empty page")
)

// upstreamError wraps a Notion client failure in the app error type matching its kind.
func upstreamError(err error) *apperrors.AppError {
	switch notion.Classify(err) {
	case notion.KindConfig:
		return apperrors.NewConfigurationError("notion rejected the credential or database id", err)
	case notion.KindValidation:
		return apperrors.NewInvalidRequestError("notion rejected the record", err)
	case notion.KindUpstreamUnavailable:
		return apperrors.NewUpstreamUnavailableError("notion is unavailable", err)
	default:
		return apperrors.NewUpstreamRejectedError("notion page creation failed", err)
	}
}
