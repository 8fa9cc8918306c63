// Package dependency wires the application's components together.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/application/adapter"
	"github.com/money-manager/backend/internal/application/usecase/analytics"
	"github.com/money-manager/backend/internal/application/usecase/auth"
	"github.com/money-manager/backend/internal/application/usecase/balance"
	"github.com/money-manager/backend/internal/application/usecase/budget"
	"github.com/money-manager/backend/internal/application/usecase/settings"
	"github.com/money-manager/backend/internal/application/usecase/transaction"
	"github.com/money-manager/backend/internal/infra/db"
	"github.com/money-manager/backend/internal/integration/adapters"
	"github.com/money-manager/backend/internal/integration/entrypoint/controller"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/money-manager/backend/internal/integration/persistence"
	"github.com/money-manager/backend/internal/integration/persistence/memory"
)

// Injector holds the wired controllers and middleware of the application.
type Injector struct {
	HealthController      *controller.HealthController
	AuthController        *controller.AuthController
	TransactionController *controller.TransactionController
	BalanceController     *controller.BalanceController
	AnalyticsController   *controller.AnalyticsController
	BudgetController      *controller.BudgetController
	SettingsController    *controller.SettingsController
	TokenService          adapter.TokenService
	AuthRateLimiter       *middleware.RateLimiter
}

// NewInjector builds the full dependency graph. In demo mode everything runs
// against in-memory stores; otherwise PostgreSQL backs the repositories and
// Redis tracks refresh tokens.
func NewInjector(cfg *config.Config) (*Injector, error) {
	clock := adapters.NewSystemClock()

	var (
		transactionRepo adapter.TransactionRepository
		budgetRepo      adapter.BudgetRepository
		userRepo        adapter.UserRepository
		tokenStore      adapter.RefreshTokenStore
	)

	if cfg.DemoMode {
		slog.Info("demo mode enabled, using in-memory stores")
		transactionRepo = memory.NewTransactionStore()
		budgetRepo = memory.NewBudgetStore()
		userRepo = memory.NewUserStore()
		tokenStore = adapters.NewMemoryTokenStore(clock)
	} else {
		database, err := db.NewPostgresConnection(cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(database); err != nil {
			return nil, err
		}
		transactionRepo = persistence.NewTransactionRepository(database)
		budgetRepo = persistence.NewBudgetRepository(database)
		userRepo = persistence.NewUserRepository(database)

		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		tokenStore = adapters.NewRedisTokenStore(redisClient)
	}

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenDuration,
		cfg.JWT.RefreshTokenDuration,
		tokenStore,
		clock,
	)

	return &Injector{
		HealthController: controller.NewHealthController(),
		AuthController: controller.NewAuthController(
			auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
			auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
			auth.NewRefreshTokenUseCase(tokenService),
			auth.NewLogoutUserUseCase(tokenService),
		),
		TransactionController: controller.NewTransactionController(
			transaction.NewCreateTransactionUseCase(transactionRepo, clock),
			transaction.NewUpdateTransactionUseCase(transactionRepo, clock),
			transaction.NewDeleteTransactionUseCase(transactionRepo),
			transaction.NewListTransactionsUseCase(transactionRepo),
		),
		BalanceController: controller.NewBalanceController(
			balance.NewGetBalancesUseCase(transactionRepo),
		),
		AnalyticsController: controller.NewAnalyticsController(
			analytics.NewGetPeriodStatsUseCase(transactionRepo, userRepo, clock),
		),
		BudgetController: controller.NewBudgetController(
			budget.NewCreateBudgetUseCase(budgetRepo, clock),
			budget.NewUpdateBudgetUseCase(budgetRepo, clock),
			budget.NewDeleteBudgetUseCase(budgetRepo),
			budget.NewListBudgetsUseCase(budgetRepo, transactionRepo),
		),
		SettingsController: controller.NewSettingsController(
			settings.NewGetSettingsUseCase(userRepo),
			settings.NewUpdateSettingsUseCase(userRepo),
		),
		TokenService:    tokenService,
		AuthRateLimiter: middleware.NewRateLimiter(10, time.Minute),
	}, nil
}
