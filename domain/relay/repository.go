package relay

import (
	"context"

	"github.com/akeren/waitlist-relay/config"
	"github.com/akeren/waitlist-relay/internal/models"
	"github.com/akeren/waitlist-relay/internal/notion"
	apperrors "github.com/akeren/waitlist-relay/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/akeren/waitlist-relay/domain/relay"

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=relay

type WaitlistWriter interface {
	// CreateEntry appends one record to the upstream waitlist database.
	CreateEntry(ctx context.Context, submission *models.WaitlistSubmission) error
	// Ping confirms the upstream accepts the configured credential and destination.
	Ping(ctx context.Context) error
}

type notionWaitlistWriter struct {
	client *notion.Client
	config *config.NotionConfig
}

func NewWaitlistWriter(client *notion.Client, notionConfig *config.NotionConfig) WaitlistWriter {
	return &notionWaitlistWriter{client: client, config: notionConfig}
}

func (w *notionWaitlistWriter) CreateEntry(ctx context.Context, submission *models.WaitlistSubmission) error {
	if err := w.ensureConfigured(); err != nil {
		return err
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "notion.pages.create")
	defer span.End()
	span.SetAttributes(attribute.String("notion.database_id", w.config.DatabaseID))

	page, err := w.client.CreateWaitlistPage(ctx, w.config.DatabaseID, submission)
	if err != nil {
		appErr := upstreamError(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, appErr.Type)
		return appErr
	}

	if page == nil || page.ID == "" {
		span.SetStatus(codes.Error, apperrors.ErrorTypeEmptyResponse)
		return apperrors.NewEmptyResponseError("failed to add entry to notion", ErrEmptyUpstreamResponse)
	}

	span.SetAttributes(attribute.String("notion.page_id", string(page.ID)))
	return nil
}

func (w *notionWaitlistWriter) Ping(ctx context.Context) error {
	if err := w.ensureConfigured(); err != nil {
		return err
	}

	if err := w.client.CheckDatabase(ctx, w.config.DatabaseID); err != nil {
		return upstreamError(err)
	}

	return nil
}

func (w *notionWaitlistWriter) ensureConfigured() error {
	if w.client == nil || w.config == nil || !w.config.IsConfigured() {
		return apperrors.NewConfigurationError("notion is not configured", ErrNotionNotConfigured)
	}
	return nil
}
