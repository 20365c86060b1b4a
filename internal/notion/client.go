package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akeren/waitlist-relay/internal/models"
	"github.com/akeren/waitlist-relay/pkg/constants"
	"github.com/jomei/notionapi"
)

type Options struct {
	Token string
	// BaseURL redirects API calls to another host (a proxy or a test server).
	// Empty means https://api.notion.com.
	BaseURL string
	// Timeout of zero leaves the http.Client without a deadline; the caller's
	// context still applies.
	Timeout time.Duration
}

// Client writes waitlist submissions as pages of a Notion database.
// It is safe for concurrent use.
type Client struct {
	api *notionapi.Client
}

func NewClient(opts Options) (*Client, error) {
	var transport http.RoundTripper = http.DefaultTransport

	if strings.TrimSpace(opts.BaseURL) != "" {
		target, err := url.Parse(opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("notion: invalid base url %q: %w", opts.BaseURL, err)
		}
		if target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("notion: base url %q needs a scheme and host", opts.BaseURL)
		}
		transport = &rewriteTransport{target: target, next: transport}
	}

	httpClient := &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}

	// A single attempt: the first 429 comes back as *notionapi.RateLimitedError.
	return &Client{
		api: notionapi.NewClient(
			notionapi.Token(opts.Token),
			notionapi.WithHTTPClient(httpClient),
			notionapi.WithRetry(1),
		),
	}, nil
}

// CreateWaitlistPage appends one page to the database. Nothing is deduplicated:
// two identical submissions produce two pages.
func (c *Client) CreateWaitlistPage(ctx context.Context, databaseID string, submission *models.WaitlistSubmission) (*notionapi.Page, error) {
	if submission == nil {
		return nil, errors.New("notion: submission is nil")
	}

	return c.api.Page.Create(ctx, BuildPageCreateRequest(databaseID, submission))
}

// CheckDatabase fetches the database schema to confirm the credential and the
// destination id. It never reads pages.
func (c *Client) CheckDatabase(ctx context.Context, databaseID string) error {
	db, err := c.api.Database.Get(ctx, notionapi.DatabaseID(databaseID))
	if err != nil {
		return err
	}
	if db == nil {
		return errors.New("notion: empty database response")
	}
	return nil
}

func BuildPageCreateRequest(databaseID string, submission *models.WaitlistSubmission) *notionapi.PageCreateRequest {
	return &notionapi.PageCreateRequest{
		Parent: notionapi.Parent{
			Type:       notionapi.ParentTypeDatabaseID,
			DatabaseID: notionapi.DatabaseID(databaseID),
		},
		Properties: notionapi.Properties{
			constants.NotionPropertyEmail: notionapi.EmailProperty{
				Type:  notionapi.PropertyTypeEmail,
				Email: submission.Email,
			},
			constants.NotionPropertyName: notionapi.TitleProperty{
				Type:  notionapi.PropertyTypeTitle,
				Title: textRuns(submission.Name),
			},
			constants.NotionPropertyProfession: notionapi.RichTextProperty{
				Type:     notionapi.PropertyTypeRichText,
				RichText: textRuns(submission.Profession),
			},
			constants.NotionPropertyReferralSource: notionapi.RichTextProperty{
				Type:     notionapi.PropertyTypeRichText,
				RichText: textRuns(submission.ReferralSource),
			},
		},
	}
}

func textRuns(content string) []notionapi.RichText {
	return []notionapi.RichText{
		{
			Type: notionapi.ObjectTypeText,
			Text: &notionapi.Text{Content: content},
		},
	}
}

type rewriteTransport struct {
	target *url.URL
	next   http.RoundTripper
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	if prefix := strings.TrimSuffix(t.target.Path, "/"); prefix != "" {
		out.URL.Path = prefix + out.URL.Path
	}
	out.Host = t.target.Host
	return t.next.RoundTrip(out)
}
