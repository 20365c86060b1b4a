package monitoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akeren/waitlist-relay/config/router"
	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err   error
	calls int
}

func (s *stubPinger) Ping(ctx context.Context) error {
	s.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("health checks must carry a deadline")
	}
	return s.err
}

func newMonitoringRouter(t *testing.T, cache Cache, upstream UpstreamChecker) *router.RouterService {
	t.Helper()

	rs := router.CreateRouterService(log.NewDiscardLogger(), nil, &router.RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
	rs.MountController(NewMonitoringControllerFactory(log.NewDiscardLogger(), cache, upstream).CreateController())
	return rs
}

func getHealth(t *testing.T, rs *router.RouterService) HealthStatus {
	t.Helper()

	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Code int          `json:"code"`
		Data HealthStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data
}

func TestHealthCheck(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		cache, upstream := &stubPinger{}, &stubPinger{}
		status := getHealth(t, newMonitoringRouter(t, cache, upstream))

		assert.Equal(t, 1, status.Cache)
		assert.Equal(t, 1, status.Upstream)
		assert.Equal(t, 1, cache.calls)
		assert.Equal(t, 1, upstream.calls)
	})

	t.Run("upstream failing", func(t *testing.T) {
		status := getHealth(t, newMonitoringRouter(t, &stubPinger{}, &stubPinger{err: errors.New("401")}))

		assert.Equal(t, 1, status.Cache)
		assert.Equal(t, 0, status.Upstream)
	})

	t.Run("nothing configured", func(t *testing.T) {
		status := getHealth(t, newMonitoringRouter(t, nil, nil))

		assert.Equal(t, 0, status.Cache)
		assert.Equal(t, 0, status.Upstream)
		assert.GreaterOrEqual(t, status.Uptime, 0)
	})
}

func TestMonitor_IsRateLimited(t *testing.T) {
	rs := newMonitoringRouter(t, nil, nil)

	var last int
	for i := 0; i <= monitoringRequestsPerMinute; i++ {
		w := httptest.NewRecorder()
		rs.GetEngine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		last = w.Code
		if i < monitoringRequestsPerMinute {
			assert.Equal(t, http.StatusOK, w.Code)
		}
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
