// Package persistence selects the repository implementation configured for
// the process.
package persistence

import (
	"log/slog"

	"locator/config"
	"locator/internal/domain/constants"
	"locator/internal/domain/repository"
	"locator/internal/domain/service"
	"locator/internal/errors"
	"locator/internal/infra/persistence/memory"
	"locator/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the repository set, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Clock  service.Clock `optional:"true"`
	Logger *slog.Logger
}

// Repositories exposes the repositories to the Fx graph. The provider
// repository is named so the cache layer can wrap it.
type Repositories struct {
	fx.Out

	ProviderStore   repository.ProviderRepository `name:"providerStore"`
	AppointmentRepo repository.AppointmentRepository
	TxManager       repository.TransactionManager
	SearchLogRepo   repository.SearchLogRepository
}

// New builds the repositories for the configured storage driver.
func New(params Params) (Repositories, error) {
	driver := constants.StorageDriverPostgres
	if params.Config.Storage != nil && params.Config.Storage.Driver != "" {
		driver = params.Config.Storage.Driver
	}

	switch driver {
	case constants.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage; data is lost on restart")
		store := memory.NewStore(memory.WithClock(params.Clock))

		return Repositories{
			ProviderStore:   memory.NewProviderRepository(store),
			AppointmentRepo: memory.NewAppointmentRepository(store),
			TxManager:       memory.NewTransactionManager(store),
			SearchLogRepo:   memory.NewSearchLogRepository(store),
		}, nil
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			ProviderStore:   postgres.NewProviderRepository(db),
			AppointmentRepo: postgres.NewAppointmentRepository(db),
			TxManager:       postgres.NewTransactionManager(db),
			SearchLogRepo:   postgres.NewSearchLogRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver %q", driver)
	}
}
