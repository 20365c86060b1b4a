package relay

import (
	"net/http"

	"github.com/akeren/waitlist-relay/config/router"
	"github.com/akeren/waitlist-relay/internal/log"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
)

// NewRelayController mounts POST /api/notion. The response contract is two-valued:
// 200 {"success":true} or 500 {"success":false}, whatever the cause of failure.
func NewRelayController(logger *log.Logger, writer WaitlistWriter) *router.RESTController {
	return router.NewRESTController(
		"RelayController",
		"/api",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.ExemptFromRateLimit(c)
			service := NewRelayService(logger, writer)
			metrics := newSubmissionMetrics(rs.MetricsRegisterer())

			rs.AddPostHandler(c, nil, "notion", createSubmissionHandler(service, metrics))
		},
	)
}

func createSubmissionHandler(service RelayService, metrics *submissionMetrics) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.ServiceResult {
		logger := router.GetLogger(ctx)

		var req SubmissionRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Failed to decode submission body", "error", err)
			metrics.observe(apperrors.ErrorTypeInvalidRequest)
			return failureResult()
		}

		if err := service.Submit(ctx.Request.Context(), &req); err != nil {
			logger.Warn("Responding with generic failure",
				"reason", apperrors.GetHumanReadableMessage(err),
				"status_hint", apperrors.HTTPStatusCode(err),
			)
			metrics.observe(apperrors.GetErrorType(err))
			return failureResult()
		}

		metrics.observe(outcomeSuccess)
		return router.RawResult(http.StatusOK, SubmissionResponse{Success: true})
	}
}

func failureResult() *router.ServiceResult {
	return router.RawResult(http.StatusInternalServerError, SubmissionResponse{Success: false})
}
