package domain

import (
	"github.com/akeren/waitlist-relay/config"
	"github.com/akeren/waitlist-relay/domain/monitoring"
	"github.com/akeren/waitlist-relay/domain/relay"
)

func SetupCoreDomain(appConfig *config.ApplicationConfig) {
	relayFactory := relay.NewRelayServiceFactory(appConfig.NotionClient, appConfig.Notion, appConfig.Logger)

	appConfig.RouterService.MountController(
		monitoring.NewMonitoringControllerFactory(appConfig.Logger, appConfig.Cache, relayFactory.CreateWriter()).CreateController(),
	)
	appConfig.RouterService.MountController(relayFactory.CreateController())
}
