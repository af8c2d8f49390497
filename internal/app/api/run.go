package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpapi "github.com/JDavidVR/zendesk-support-api/internal/domains/support/adapters/http"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/adapters/memory"
	supportobs "github.com/JDavidVR/zendesk-support-api/internal/domains/support/adapters/observability"
	supportpostgres "github.com/JDavidVR/zendesk-support-api/internal/domains/support/adapters/persistence/postgres"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/application"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
	platformobservability "github.com/JDavidVR/zendesk-support-api/internal/platform/observability"
	platformpostgres "github.com/JDavidVR/zendesk-support-api/internal/platform/postgres"
	"github.com/JDavidVR/zendesk-support-api/internal/shared/format"
)

const serviceName = "zendesk-support-api"

// Run boots the connector HTTP API with observability and repositories wired.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	repos, configStore, cleanup := buildAdapters(ctx, cfg, logger)
	defer cleanup()

	money, err := format.NewMoneyFormatter(cfg.Locale, cfg.CurrencyCode)
	if err != nil {
		return fmt.Errorf("money formatter: %w", err)
	}
	dates, err := format.NewDateFormatter("", cfg.Timezone)
	if err != nil {
		return fmt.Errorf("date formatter: %w", err)
	}

	service := supportobs.New(
		application.NewService(
			repos.customers, repos.orders, repos.groups, repos.stores,
			money, dates,
			application.WithOrderLimit(cfg.OrderLimit),
			application.WithLogger(logger),
		),
		supportobs.WithLogger(logger),
		supportobs.WithTracer(instruments.Tracer("internal.domains.support.application")),
		supportobs.WithMeter(instruments.Meter("internal.domains.support.application")),
	)
	authorizer := application.NewAuthorizer(configStore, application.WithAuthorizerLogger(logger))

	api := httpapi.NewCustomerOrderAPI(authorizer, service, logger)
	router := httpapi.NewRouter(api, otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("customer order API listening", slog.String("addr", addr))
	return router.Run(addr)
}

// adapterSet groups the repository ports behind one wiring decision.
type adapterSet struct {
	customers ports.CustomerRepository
	orders    ports.OrderRepository
	groups    ports.GroupRepository
	stores    ports.StoreRepository
}

// buildAdapters connects to PostgreSQL when a DSN is configured, falling
// back to empty in-memory repositories otherwise. The config store follows
// the same decision unless the environment pins it in-process.
func buildAdapters(ctx context.Context, cfg Config, logger *slog.Logger) (adapterSet, ports.ConfigStore, func()) {
	memoryConfig := memory.NewConfigStore(cfg.APIEnabled, cfg.APIToken, cfg.ProvisionToken)

	if cfg.PostgresDSN == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memoryAdapters(), memoryConfig, func() {}
	}
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to in-memory repositories", slog.String("error", err.Error()))
		return memoryAdapters(), memoryConfig, func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to in-memory repositories", slog.String("error", err.Error()))
		return memoryAdapters(), memoryConfig, func() {}
	}
	logger.Info("support repositories configured with postgres")

	repo := supportpostgres.NewRepository(db)
	adapters := adapterSet{customers: repo, orders: repo, groups: repo, stores: repo}

	var configStore ports.ConfigStore = memoryConfig
	if cfg.ConfigFromDB {
		configStore = supportpostgres.NewConfigStore(db)
		logger.Info("connector configuration read from the store config table")
	}
	return adapters, configStore, func() { _ = sqlDB.Close() }
}

func memoryAdapters() adapterSet {
	repo := memory.NewRepository()
	return adapterSet{customers: repo, orders: repo, groups: repo, stores: repo}
}
