package main

import (
	"context"
	"log/slog"

	"addrbook/config"
	"addrbook/internal/domain/entity"
	"addrbook/internal/domain/service"
	"addrbook/internal/infra/geocoding"
	logs "addrbook/internal/infra/log"
	"addrbook/internal/infra/persistence/postgres"
	"addrbook/internal/usecase"
	"addrbook/internal/usecase/impl"
	"addrbook/internal/validation"

	"go.uber.org/fx"
)

type startParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Book   usecase.AddressBookUsecase
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		fx.Invoke(
			start,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAddressRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			entity.NewOwnerRegistry,
			newGeocoder,
			newRules,
		),
	)
}

// newGeocoder creates the geocoding client from configuration.
func newGeocoder(cfg *config.Config) service.Geocoder {
	return geocoding.NewGoogleGeocoder(cfg.Address.Geocoding)
}

// newRules compiles the configured validation rule set.
func newRules(cfg *config.Config) (*validation.Rules, error) {
	return validation.New(cfg.Address)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddressBookService,
		),
	)
}

// start logs readiness once the dependency graph, including the database
// connection, is up. Delivery layers are registered by embedders.
func start(params startParams) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			params.Logger.Info("address book ready",
				slog.String("service", params.Config.Env.ServiceName),
				slog.String("table", params.Config.Address.TableName),
			)

			return nil
		},
	})
}
