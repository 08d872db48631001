package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/svctracker/service_tracker_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	serviceRepo := newPgxServiceRepository(dbPool)
	serviceLogRepo := newPgxServiceLogRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:       userRepo,
		ServiceRepo:    serviceRepo,
		ServiceLogRepo: serviceLogRepo,
	}
}
