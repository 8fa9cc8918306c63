//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/money-manager/backend/config"
	"github.com/money-manager/backend/internal/application/usecase/analytics"
	"github.com/money-manager/backend/internal/application/usecase/auth"
	"github.com/money-manager/backend/internal/application/usecase/balance"
	"github.com/money-manager/backend/internal/application/usecase/budget"
	"github.com/money-manager/backend/internal/application/usecase/settings"
	"github.com/money-manager/backend/internal/application/usecase/transaction"
	"github.com/money-manager/backend/internal/infra/dependency"
	"github.com/money-manager/backend/internal/infra/server/router"
	"github.com/money-manager/backend/internal/integration/adapters"
	"github.com/money-manager/backend/internal/integration/entrypoint/controller"
	"github.com/money-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/money-manager/backend/internal/integration/persistence/memory"
	"github.com/money-manager/backend/test/integration/mock"
)

var suiteStart = time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

// apiSuite drives the HTTP API through an in-process server backed by
// in-memory stores and a controllable clock.
type apiSuite struct {
	server      *httptest.Server
	clock       *mock.Clock
	accessToken string

	lastStatus int
	lastBody   map[string]any
	lastTxnID  string
	lastDraft  map[string]any
}

func newAPISuite() *apiSuite {
	clock := mock.NewClock(suiteStart)

	transactionRepo := memory.NewTransactionStore()
	budgetRepo := memory.NewBudgetStore()
	userRepo := memory.NewUserStore()
	tokenStore := adapters.NewMemoryTokenStore(clock)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("integration-secret", time.Hour, 24*time.Hour, tokenStore, clock)

	injector := &dependency.Injector{
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
		AuthRateLimiter: middleware.NewRateLimiter(1000, time.Minute),
	}

	cfg := &config.Config{}
	cfg.Server.Env = "test"

	return &apiSuite{
		server: httptest.NewServer(router.New(cfg, injector)),
		clock:  clock,
	}
}

func (s *apiSuite) close() {
	s.server.Close()
}

func (s *apiSuite) request(method, path string, body map[string]any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	s.lastStatus = resp.StatusCode
	s.lastBody = nil
	return json.NewDecoder(resp.Body).Decode(&s.lastBody)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
			Strict:   true,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("integration scenarios failed")
	}
}

func initializeScenario(sc *godog.ScenarioContext) {
	var s *apiSuite

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		s = newAPISuite()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		s.close()
		return ctx, nil
	})

	registerSteps(sc, func() *apiSuite { return s })
}
