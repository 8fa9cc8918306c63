package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/money-manager/backend/internal/domain/entity"
	domainerror "github.com/money-manager/backend/internal/domain/error"
)

type fakeBudgetRepo struct {
	byID map[uuid.UUID]*entity.Budget
}

func newFakeBudgetRepo() *fakeBudgetRepo {
	return &fakeBudgetRepo{byID: make(map[uuid.UUID]*entity.Budget)}
}

func (r *fakeBudgetRepo) Create(ctx context.Context, budget *entity.Budget) error {
	r.byID[budget.ID] = budget
	return nil
}

func (r *fakeBudgetRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	budget, ok := r.byID[id]
	if !ok {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	copied := *budget
	return &copied, nil
}

func (r *fakeBudgetRepo) FindByUserAndMonth(ctx context.Context, userID uuid.UUID, month string) ([]*entity.Budget, error) {
	var out []*entity.Budget
	for _, budget := range r.byID {
		if budget.UserID == userID && budget.Month == month {
			copied := *budget
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBudgetRepo) ExistsByKey(ctx context.Context, userID uuid.UUID, month string, category entity.Category, division entity.Division) (bool, error) {
	for _, budget := range r.byID {
		if budget.UserID == userID && budget.Month == month && budget.Category == category && budget.Division == division {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBudgetRepo) Update(ctx context.Context, budget *entity.Budget) error {
	if _, ok := r.byID[budget.ID]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	copied := *budget
	r.byID[budget.ID] = &copied
	return nil
}

func (r *fakeBudgetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return domainerror.ErrBudgetNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *fakeTransactionRepo) Update(ctx context.Context, transaction *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2025, 8, 15, 8, 0, 0, 0, time.UTC)

func budgetErrorCode(t *testing.T, err error) domainerror.BudgetErrorCode {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError, got %v", err)
	}
	return budgetErr.Code
}

func createInput(userID uuid.UUID) CreateBudgetInput {
	return CreateBudgetInput{
		UserID:       userID,
		Month:        "2025-08",
		Category:     entity.CategoryFood,
		Division:     entity.DivisionPersonal,
		BudgetAmount: decimal.NewFromInt(5000),
	}
}

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a valid budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		useCase := NewCreateBudgetUseCase(repo, &fixedClock{now: testNow})

		budget, err := useCase.Execute(context.Background(), createInput(userID))
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if budget.Month != "2025-08" || budget.Category != entity.CategoryFood {
			t.Errorf("stored budget key = %s/%s", budget.Month, budget.Category)
		}
	})

	t.Run("defaults division to Personal", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		useCase := NewCreateBudgetUseCase(repo, &fixedClock{now: testNow})

		input := createInput(userID)
		input.Division = ""
		budget, err := useCase.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if budget.Division != entity.DivisionPersonal {
			t.Errorf("Division = %s, want Personal", budget.Division)
		}
	})

	t.Run("rejects a duplicate key", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		useCase := NewCreateBudgetUseCase(repo, &fixedClock{now: testNow})

		if _, err := useCase.Execute(context.Background(), createInput(userID)); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := useCase.Execute(context.Background(), createInput(userID))
		if got := budgetErrorCode(t, err); got != domainerror.ErrCodeDuplicateBudget {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeDuplicateBudget)
		}
	})

	t.Run("same key under another division is allowed", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		useCase := NewCreateBudgetUseCase(repo, &fixedClock{now: testNow})

		if _, err := useCase.Execute(context.Background(), createInput(userID)); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		input := createInput(userID)
		input.Division = entity.DivisionOffice
		if _, err := useCase.Execute(context.Background(), input); err != nil {
			t.Errorf("Office division budget must not collide with Personal: %v", err)
		}
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		useCase := NewCreateBudgetUseCase(repo, &fixedClock{now: testNow})

		input := createInput(userID)
		input.Month = "08-2025"
		_, err := useCase.Execute(context.Background(), input)
		if got := budgetErrorCode(t, err); got != domainerror.ErrCodeInvalidBudgetMonth {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeInvalidBudgetMonth)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		useCase := NewCreateBudgetUseCase(repo, &fixedClock{now: testNow})

		input := createInput(userID)
		input.BudgetAmount = decimal.Zero
		_, err := useCase.Execute(context.Background(), input)
		if got := budgetErrorCode(t, err); got != domainerror.ErrCodeInvalidBudgetAmount {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeInvalidBudgetAmount)
		}
	})
}

func TestUpdateBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	seed := func(t *testing.T, repo *fakeBudgetRepo) *entity.Budget {
		t.Helper()
		budget := entity.NewBudget(userID, "2025-08", entity.CategoryFood, entity.DivisionPersonal, decimal.NewFromInt(5000), testNow)
		if err := repo.Create(context.Background(), budget); err != nil {
			t.Fatalf("seeding budget: %v", err)
		}
		return budget
	}

	t.Run("amends the amount", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		seeded := seed(t, repo)
		useCase := NewUpdateBudgetUseCase(repo, &fixedClock{now: testNow.Add(time.Hour)})

		budget, err := useCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:     seeded.ID,
			UserID:       userID,
			BudgetAmount: decimal.NewFromInt(7500),
		})
		if err != nil {
			t.Fatalf("Execute failed: %v", err)
		}
		if !budget.BudgetAmount.Equal(decimal.NewFromInt(7500)) {
			t.Errorf("BudgetAmount = %s, want 7500", budget.BudgetAmount)
		}
	})

	t.Run("rejects another user's budget", func(t *testing.T) {
		repo := newFakeBudgetRepo()
		seeded := seed(t, repo)
		useCase := NewUpdateBudgetUseCase(repo, &fixedClock{now: testNow})

		_, err := useCase.Execute(context.Background(), UpdateBudgetInput{
			BudgetID:     seeded.ID,
			UserID:       uuid.New(),
			BudgetAmount: decimal.NewFromInt(100),
		})
		if got := budgetErrorCode(t, err); got != domainerror.ErrCodeNotAuthorizedBudget {
			t.Errorf("error code = %s, want %s", got, domainerror.ErrCodeNotAuthorizedBudget)
		}
	})
}

func TestListBudgetsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	budgetRepo := newFakeBudgetRepo()
	budget := entity.NewBudget(userID, "2025-08", entity.CategoryFood, entity.DivisionPersonal, decimal.NewFromInt(5000), testNow)
	if err := budgetRepo.Create(context.Background(), budget); err != nil {
		t.Fatalf("seeding budget: %v", err)
	}

	transactionRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(1200), Date: time.Date(2025, 8, 10, 0, 0, 0, 0, time.UTC),
			Category: entity.CategoryFood, Division: entity.DivisionPersonal, Account: "Cash",
		},
		{
			ID: uuid.New(), UserID: userID, Type: entity.TransactionTypeExpense,
			Amount: decimal.NewFromInt(800), Date: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			Category: entity.CategoryFood, Division: entity.DivisionPersonal, Account: "Cash",
		},
	}}
	useCase := NewListBudgetsUseCase(budgetRepo, transactionRepo)

	output, err := useCase.Execute(context.Background(), ListBudgetsInput{UserID: userID, Month: "2025-08"})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(output.Budgets) != 1 {
		t.Fatalf("expected 1 budget, got %d", len(output.Budgets))
	}
	if !output.Budgets[0].SpentAmount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("SpentAmount = %s, want 1200 (July spend excluded)", output.Budgets[0].SpentAmount)
	}
}
