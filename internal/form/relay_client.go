package form

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/akeren/waitlist-relay/internal/models"
)

const relayPath = "/api/notion"

var (
	ErrRateLimited = errors.New("form: relay rate limited the submission")
	ErrRelayFailed = errors.New("form: relay failed to save the submission")
)

// RelayClient posts submissions to a running relay. It adds no timeout of its
// own; the caller's context bounds the request.
type RelayClient struct {
	endpoint   string
	httpClient *http.Client
}

func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{Transport: &log.CorrelationTransport{}}
	}
	return &RelayClient{
		endpoint:   strings.TrimSuffix(baseURL, "/") + relayPath,
		httpClient: httpClient,
	}
}

func (rc *RelayClient) Submit(ctx context.Context, submission *models.WaitlistSubmission) error {
	body, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rc.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := rc.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		return nil
	case res.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: status %d", ErrRelayFailed, res.StatusCode)
	}
}
