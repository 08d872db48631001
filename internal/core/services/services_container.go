package services

import (
	portsrepo "github.com/svctracker/service_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/svctracker/service_tracker_app/internal/core/ports/services"
	"github.com/svctracker/service_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Catalog = NewCatalogService(repos.ServiceRepo)
	container.ServiceLog = NewServiceLogService(repos.ServiceLogRepo, repos.UserRepo, repos.ServiceRepo)
	container.Reporting = NewReportingService(repos.ServiceLogRepo, repos.UserRepo, cfg.ReportLocation)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
