package notion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/akeren/waitlist-relay/internal/models"
	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func newFakeNotion(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest, *int32) {
	t.Helper()

	captured := &capturedRequest{}
	var hits int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.auth = r.Header.Get("Authorization")
		if r.Body != nil && r.ContentLength != 0 {
			_ = json.NewDecoder(r.Body).Decode(&captured.body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	return srv, captured, &hits
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewClient(Options{Token: "secret_test", BaseURL: baseURL})
	require.NoError(t, err)
	return client
}

func property(t *testing.T, body map[string]any, name string) map[string]any {
	t.Helper()

	props, ok := body["properties"].(map[string]any)
	require.True(t, ok, "properties missing from %v", body)
	prop, ok := props[name].(map[string]any)
	require.True(t, ok, "property %q missing", name)
	return prop
}

func firstRunContent(t *testing.T, prop map[string]any, key string) string {
	t.Helper()

	runs, ok := prop[key].([]any)
	require.True(t, ok)
	require.Len(t, runs, 1)
	text := runs[0].(map[string]any)["text"].(map[string]any)
	return text["content"].(string)
}

func TestCreateWaitlistPage_MapsSubmissionOntoSchema(t *testing.T) {
	srv, captured, hits := newFakeNotion(t, http.StatusOK, `{"object":"page","id":"page-1"}`)
	client := newTestClient(t, srv.URL)

	page, err := client.CreateWaitlistPage(context.Background(), "db-123", &models.WaitlistSubmission{
		Name:           "Ada",
		Email:          "ada@x.io",
		Profession:     "Engineer",
		ReferralSource: "Friend",
	})

	require.NoError(t, err)
	require.NotNil(t, page)
	assert.Equal(t, "page-1", string(page.ID))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/v1/pages", captured.path)
	assert.Equal(t, "Bearer secret_test", captured.auth)

	parent := captured.body["parent"].(map[string]any)
	assert.Equal(t, "db-123", parent["database_id"])

	assert.Equal(t, "ada@x.io", property(t, captured.body, "Email")["email"])
	assert.Equal(t, "Ada", firstRunContent(t, property(t, captured.body, "Name"), "title"))
	assert.Equal(t, "Engineer", firstRunContent(t, property(t, captured.body, "Profession"), "rich_text"))
	assert.Equal(t, "Friend", firstRunContent(t, property(t, captured.body, "Referral Source"), "rich_text"))
}

func TestCreateWaitlistPage_EmptyProfessionIsOneEmptyRun(t *testing.T) {
	req := BuildPageCreateRequest("db-123", &models.WaitlistSubmission{
		Name:           "Lin",
		Email:          "lin@y.org",
		ReferralSource: "Podcast",
	})

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "", firstRunContent(t, property(t, body, "Profession"), "rich_text"))
	assert.Equal(t, "Podcast", firstRunContent(t, property(t, body, "Referral Source"), "rich_text"))
}

func TestCreateWaitlistPage_NilSubmission(t *testing.T) {
	client := newTestClient(t, "")

	_, err := client.CreateWaitlistPage(context.Background(), "db", nil)
	assert.Error(t, err)
}

func TestCreateWaitlistPage_APIErrorIsClassified(t *testing.T) {
	srv, _, _ := newFakeNotion(t, http.StatusBadRequest,
		`{"object":"error","status":400,"code":"validation_error","message":"Email is not a valid email"}`)
	client := newTestClient(t, srv.URL)

	_, err := client.CreateWaitlistPage(context.Background(), "db-123", &models.WaitlistSubmission{Name: "Ada"})

	require.Error(t, err)
	assert.Equal(t, KindValidation, Classify(err))
}

func TestCreateWaitlistPage_ThrottledIsNotRetried(t *testing.T) {
	srv, _, hits := newFakeNotion(t, http.StatusTooManyRequests,
		`{"object":"error","status":429,"code":"rate_limited","message":"slow down"}`)
	client := newTestClient(t, srv.URL)

	_, err := client.CreateWaitlistPage(context.Background(), "db-123", &models.WaitlistSubmission{Name: "Ada"})

	require.Error(t, err)
	var rateLimited *notionapi.RateLimitedError
	assert.ErrorAs(t, err, &rateLimited)
	assert.Equal(t, KindUpstreamUnavailable, Classify(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestCheckDatabase(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		srv, captured, _ := newFakeNotion(t, http.StatusOK, `{"object":"database","id":"db-123"}`)
		client := newTestClient(t, srv.URL)

		require.NoError(t, client.CheckDatabase(context.Background(), "db-123"))
		assert.Equal(t, http.MethodGet, captured.method)
		assert.Equal(t, "/v1/databases/db-123", captured.path)
	})

	t.Run("unauthorized", func(t *testing.T) {
		srv, _, _ := newFakeNotion(t, http.StatusUnauthorized,
			`{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`)
		client := newTestClient(t, srv.URL)

		err := client.CheckDatabase(context.Background(), "db-123")
		require.Error(t, err)
		assert.Equal(t, KindConfig, Classify(err))
	})
}

func TestNewClient_RejectsBadBaseURL(t *testing.T) {
	_, err := NewClient(Options{Token: "t", BaseURL: "localhost-without-scheme"})
	assert.Error(t, err)
}

func TestRewriteTransport_KeepsPathPrefix(t *testing.T) {
	srv, captured, _ := newFakeNotion(t, http.StatusOK, `{"object":"database","id":"db"}`)
	client := newTestClient(t, srv.URL+"/proxy/")

	require.NoError(t, client.CheckDatabase(context.Background(), "db"))
	assert.Equal(t, "/proxy/v1/databases/db", captured.path)
}
