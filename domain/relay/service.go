package relay

import (
	"context"

	"github.com/akeren/waitlist-relay/internal/log"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
)

type RelayService interface {
	// Submit forwards one waitlist submission upstream. Every call writes a new
	// record; there is no idempotency key and no retry.
	Submit(ctx context.Context, req *SubmissionRequest) error
}

type relayService struct {
	logger *log.Logger
	writer WaitlistWriter
}

func NewRelayService(logger *log.Logger, writer WaitlistWriter) RelayService {
	return &relayService{logger: logger, writer: writer}
}

func (s *relayService) Submit(ctx context.Context, req *SubmissionRequest) error {
	logger := log.GetLoggerInstanceFromContext(ctx, s.logger)

	if req == nil {
		logger.Error("Submit received empty request")
		return apperrors.NewInvalidRequestError("request cannot be nil", nil)
	}

	if err := s.writer.CreateEntry(ctx, ToWaitlistSubmission(req)); err != nil {
		if apperrors.GetErrorType(err) == apperrors.ErrorTypeUnknown {
			err = apperrors.NewInternalServerError("failed to relay waitlist submission", err)
		}
		logger.Error("Failed to relay waitlist submission",
			"error_type", apperrors.GetErrorType(err),
			"error", err,
		)
		return err
	}

	logger.Info("Waitlist submission relayed", "referral_source", req.ReferralSource)
	return nil
}
