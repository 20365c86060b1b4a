package monitoring

import (
	"context"
	"time"

	"github.com/akeren/waitlist-relay/config/router"
	"github.com/akeren/waitlist-relay/internal/log"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
	"github.com/akeren/waitlist-relay/pkg/ratelimit"
)

const (
	monitoringRequestsPerMinute = 10
	checkTimeout                = 3 * time.Second
)

type Cache interface {
	Ping(ctx context.Context) error
}

// UpstreamChecker confirms the upstream accepts the configured credential and
// destination without writing anything.
type UpstreamChecker interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Cache    int `json:"cache"`    // 1 = healthy, 0 = unhealthy/not configured
	Upstream int `json:"upstream"` // 1 = healthy, 0 = unhealthy/not configured
	Uptime   int `json:"uptime"`   // seconds
}

type MonitoringController struct {
	logger    *log.Logger
	cache     Cache
	upstream  UpstreamChecker
	startTime time.Time
}

func NewMonitoringController(logger *log.Logger, cache Cache, upstream UpstreamChecker) *router.RESTController {
	ctrl := &MonitoringController{
		logger:    logger,
		cache:     cache,
		upstream:  upstream,
		startTime: time.Now(),
	}

	return router.NewRESTController(
		"MonitoringController",
		"/",
		func(routerService *router.RouterService, controller *router.RESTController) {
			limiter := ratelimit.NewInMemoryRateLimiter(monitoringRequestsPerMinute, time.Minute)

			routerService.AddGetHandler(controller, limiter, "", ctrl.monitor)
			routerService.AddGetHandler(controller, limiter, "health", ctrl.healthCheck)
		},
	)
}

func (ctrl *MonitoringController) monitor(c *router.RequestContext) *router.ServiceResult {
	return router.OKResult("Waitlist relay is operational.", "Monitoring successful")
}

func (ctrl *MonitoringController) healthCheck(c *router.RequestContext) *router.ServiceResult {
	logger := router.GetLogger(c)
	logger.Info("Health check endpoint called")

	status := ctrl.performHealthChecks(c.Request.Context(), logger)

	return router.OKResult(status, "waitlist-relay health check completed")
}

func (ctrl *MonitoringController) performHealthChecks(ctx context.Context, logger *log.Logger) HealthStatus {
	return HealthStatus{
		Cache:    probe(ctx, logger, "cache", ctrl.cache),
		Upstream: probe(ctx, logger, "upstream", ctrl.upstream),
		Uptime:   int(time.Since(ctrl.startTime).Seconds()),
	}
}

type pinger interface {
	Ping(ctx context.Context) error
}

func probe(ctx context.Context, logger *log.Logger, name string, target pinger) int {
	if target == nil {
		logger.Info("Health check skipped, dependency not configured", "dependency", name)
		return 0
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if err := target.Ping(ctx); err != nil {
		logger.Error("Health check failed",
			"dependency", name,
			"error_type", apperrors.GetErrorType(err),
			"status_hint", apperrors.HTTPStatusCode(err),
		)
		return 0
	}

	logger.Info("Health check passed", "dependency", name)
	return 1
}
