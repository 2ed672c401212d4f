package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"github.com/LuizaMunis/HealthCare-sub000/auth"
	"github.com/LuizaMunis/HealthCare-sub000/authz"
	"github.com/LuizaMunis/HealthCare-sub000/conditions"
	"github.com/LuizaMunis/HealthCare-sub000/config"
	"github.com/LuizaMunis/HealthCare-sub000/consultations"
	"github.com/LuizaMunis/HealthCare-sub000/logger"
	"github.com/LuizaMunis/HealthCare-sub000/measurements"
	"github.com/LuizaMunis/HealthCare-sub000/medications"
	"github.com/LuizaMunis/HealthCare-sub000/profiles"
	"github.com/LuizaMunis/HealthCare-sub000/store"
	"github.com/LuizaMunis/HealthCare-sub000/users"
	"github.com/LuizaMunis/HealthCare-sub000/vaccines"
)

func Start(e *echo.Echo, cfg *config.Config, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := e.Start(fmt.Sprintf(":%d", cfg.HttpPort)); err != nil {
					fmt.Println(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}

func SetReady(healthCheck *HealthCheck, db *mongo.Database, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := db.Client().Ping(ctx, nil); err != nil {
				return err
			}

			// It's important this is set after mongo is initialized, which is ensured
			// by taking a dependency on mongo in the constructor, because lifecycle hooks
			// are executed in topological order
			healthCheck.SetReady(true)
			return nil
		},
		OnStop: nil,
	})
}

// Dependencies is the full DI graph of the service. The CLI reuses it to run
// one-shot commands against the same wiring the server runs with.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			config.NewConfig,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			auth.NewAuthConfig,
			auth.NewAuthenticator,
			users.NewRepository,
			users.NewService,
			profiles.NewRepository,
			profiles.NewService,
			conditions.NewConditionRepository,
			conditions.NewSymptomRepository,
			conditions.NewService,
			medications.NewMedicationRepository,
			medications.NewUseLogRepository,
			medications.NewService,
			vaccines.NewRepository,
			vaccines.NewService,
			consultations.NewRepository,
			consultations.NewService,
			measurements.NewBloodPressureRepository,
			measurements.NewHeartRateRepository,
			measurements.NewTemperatureRepository,
			measurements.NewService,
			authz.NewGuard,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		resolversModule,
		deletersModule,
	}
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}

// resolversModule adapts the repositories into the interfaces the ownership
// guard walks the parent chain with.
var resolversModule = fx.Provide(
	func(r profiles.Repository) authz.ProfileResolver { return r },
	func(r conditions.ConditionRepository) authz.ConditionResolver { return r },
	func(r medications.MedicationRepository) authz.MedicationResolver { return r },
)

// deletersModule registers every record family into the cascade executed when
// a profile is deleted.
var deletersModule = fx.Provide(
	fx.Annotate(
		func(s conditions.Service) profiles.ProfileDataDeleter { return s },
		fx.ResultTags(`group:"profileDeleters"`),
	),
	fx.Annotate(
		func(s medications.Service) profiles.ProfileDataDeleter { return s },
		fx.ResultTags(`group:"profileDeleters"`),
	),
	fx.Annotate(
		func(s vaccines.Service) profiles.ProfileDataDeleter { return s },
		fx.ResultTags(`group:"profileDeleters"`),
	),
	fx.Annotate(
		func(s consultations.Service) profiles.ProfileDataDeleter { return s },
		fx.ResultTags(`group:"profileDeleters"`),
	),
	fx.Annotate(
		func(r measurements.BloodPressureRepository) profiles.ProfileDataDeleter { return r },
		fx.ResultTags(`group:"profileDeleters"`),
	),
	fx.Annotate(
		func(r measurements.HeartRateRepository) profiles.ProfileDataDeleter { return r },
		fx.ResultTags(`group:"profileDeleters"`),
	),
	fx.Annotate(
		func(r measurements.TemperatureRepository) profiles.ProfileDataDeleter { return r },
		fx.ResultTags(`group:"profileDeleters"`),
	),
)
