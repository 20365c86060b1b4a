package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/akeren/waitlist-relay/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayClient_Submit(t *testing.T) {
	submission := &models.WaitlistSubmission{
		Name:           "Ada",
		Email:          "ada@x.io",
		ReferralSource: "Friend",
	}

	t.Run("posts json and accepts 2xx", func(t *testing.T) {
		var got map[string]any
		var contentType, correlationID string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/notion", r.URL.Path)
			contentType = r.Header.Get("Content-Type")
			correlationID = r.Header.Get(log.CorrelationIDHeader)
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		ctx := log.ContextWithCorrelationID(context.Background(), "cid-1")
		require.NoError(t, NewRelayClient(srv.URL+"/", nil).Submit(ctx, submission))

		assert.Equal(t, "application/json", contentType)
		assert.Equal(t, "cid-1", correlationID)
		assert.Equal(t, map[string]any{
			"name":           "Ada",
			"email":          "ada@x.io",
			"profession":     "",
			"referralSource": "Friend",
		}, got)
	})

	t.Run("429 is rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer srv.Close()

		err := NewRelayClient(srv.URL, nil).Submit(context.Background(), submission)
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("500 is a relay failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"success":false}`))
		}))
		defer srv.Close()

		err := NewRelayClient(srv.URL, nil).Submit(context.Background(), submission)
		assert.ErrorIs(t, err, ErrRelayFailed)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("transport error passes through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		err := NewRelayClient(srv.URL, nil).Submit(context.Background(), submission)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrRelayFailed)
		assert.NotErrorIs(t, err, ErrRateLimited)
		assert.Equal(t, MessageUnknown, ToastMessage(err))
	})
}
