package monitoring

import (
	"github.com/akeren/waitlist-relay/config/router"
	"github.com/akeren/waitlist-relay/internal/log"
)

type MonitoringControllerFactory interface {
	CreateController() *router.RESTController
}

type DefaultMonitoringControllerFactory struct {
	logger   *log.Logger
	cache    Cache
	upstream UpstreamChecker
}

func NewMonitoringControllerFactory(logger *log.Logger, cache Cache, upstream UpstreamChecker) MonitoringControllerFactory {
	return &DefaultMonitoringControllerFactory{
		logger:   logger,
		cache:    cache,
		upstream: upstream,
	}
}

func (f *DefaultMonitoringControllerFactory) CreateController() *router.RESTController {
	return NewMonitoringController(f.logger, f.cache, f.upstream)
}
