package relay

import (
	"github.com/akeren/waitlist-relay/config"
	"github.com/akeren/waitlist-relay/config/router"
	"github.com/akeren/waitlist-relay/internal/log"
	"github.com/akeren/waitlist-relay/internal/notion"
)

type RelayServiceFactory interface {
	CreateWriter() WaitlistWriter
	CreateController() *router.RESTController
}

type DefaultRelayServiceFactory struct {
	client       *notion.Client
	notionConfig *config.NotionConfig
	logger       *log.Logger
}

func NewRelayServiceFactory(client *notion.Client, notionConfig *config.NotionConfig, logger *log.Logger) RelayServiceFactory {
	return &DefaultRelayServiceFactory{
		client:       client,
		notionConfig: notionConfig,
		logger:       logger,
	}
}

func (f *DefaultRelayServiceFactory) CreateWriter() WaitlistWriter {
	return NewWaitlistWriter(f.client, f.notionConfig)
}

func (f *DefaultRelayServiceFactory) CreateController() *router.RESTController {
	return NewRelayController(f.logger, f.CreateWriter())
}
