package account_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type fakeAccountRepository struct {
	createFn          func(ctx context.Context, a *account.Account) error
	updateFn          func(ctx context.Context, a *account.Account) error
	deleteFn          func(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) error
	getByIDFn         func(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) (*account.Account, error)
	getByOwnerFn      func(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*account.Account, int64, error)
	getTotalBalanceFn func(ctx context.Context, ownerID uuid.UUID) (float64, error)
	updateBalanceFn   func(ctx context.Context, accountID ulid.ULID, delta float64) error
}

func (f *fakeAccountRepository) Create(ctx context.Context, a *account.Account) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAccountRepository) Update(ctx context.Context, a *account.Account) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAccountRepository) Delete(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, accountID, ownerID)
	}
	return nil
}

func (f *fakeAccountRepository) GetById(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) (*account.Account, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, accountID, ownerID)
	}
	return nil, appErrors.ErrRecordNotFound
}

func (f *fakeAccountRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*account.Account, int64, error) {
	if f.getByOwnerFn != nil {
		return f.getByOwnerFn(ctx, ownerID, pagination)
	}
	return nil, 0, nil
}

func (f *fakeAccountRepository) GetTotalBalance(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	if f.getTotalBalanceFn != nil {
		return f.getTotalBalanceFn(ctx, ownerID)
	}
	return 0, nil
}

func (f *fakeAccountRepository) UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error {
	if f.updateBalanceFn != nil {
		return f.updateBalanceFn(ctx, accountID, delta)
	}
	return nil
}

func (f *fakeAccountRepository) UpdateBalanceWithTx(ctx context.Context, tx interface{}, accountID ulid.ULID, delta float64) error {
	return f.UpdateBalance(ctx, accountID, delta)
}

func (f *fakeAccountRepository) BeginTx(ctx context.Context) (interface{}, error) {
	return struct{}{}, nil
}

func (f *fakeAccountRepository) CommitTx(tx interface{}) error   { return nil }
func (f *fakeAccountRepository) RollbackTx(tx interface{}) error { return nil }

func TestCreateAccountValidations(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name        string
		req         *account.CreateAccountRequest
		wantErrCode string
	}{
		{
			name: "empty name",
			req: &account.CreateAccountRequest{
				OwnerId: ownerID,
				Name:    "   ",
				Type:    account.TypeCash,
			},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name: "unknown type",
			req: &account.CreateAccountRequest{
				OwnerId: ownerID,
				Name:    "Banco",
				Type:    account.AccountType("Cripto"),
			},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name: "valid request",
			req: &account.CreateAccountRequest{
				OwnerId:        ownerID,
				Name:           "Banco",
				Type:           account.TypeDigitalWallet,
				OpeningBalance: 250,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := account.NewService(&fakeAccountRepository{})

			acc, err := svc.CreateAccount(ctx, tt.req)
			if tt.wantErrCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if acc.Balance != tt.req.OpeningBalance {
					t.Fatalf("expected balance seeded at %v, got %v", tt.req.OpeningBalance, acc.Balance)
				}
				if pkg.IsEmptyULID(acc.Id) {
					t.Fatalf("expected generated id")
				}
				return
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok || appErr.Code != tt.wantErrCode {
				t.Fatalf("expected %s, got %v", tt.wantErrCode, err)
			}
		})
	}
}

func TestGetAccountByIDOwnership(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	strangerID := uuid.New()
	accountID := pkg.NewULID()

	repo := &fakeAccountRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, owner uuid.UUID) (*account.Account, error) {
			return &account.Account{Id: id, OwnerId: ownerID, Name: "Banco", Type: account.TypeCash}, nil
		},
	}
	svc := account.NewService(repo)
	ctx := context.Background()

	if _, err := svc.GetAccountByID(ctx, accountID, ownerID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.GetAccountByID(ctx, accountID, strangerID)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrResourceNotOwned.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrResourceNotOwned.Code, err)
	}
}

func TestGetAccountByIDClassifiesLookupErrors(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	ctx := context.Background()

	// An absent row is not-found.
	svc := account.NewService(&fakeAccountRepository{})
	_, err := svc.GetAccountByID(ctx, pkg.NewULID(), ownerID)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrAccountNotFound.Code {
		t.Fatalf("expected %s, got %v", appErrors.ErrAccountNotFound.Code, err)
	}

	// A failing store is not.
	svc = account.NewService(&fakeAccountRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, owner uuid.UUID) (*account.Account, error) {
			return nil, errors.New("connection refused")
		},
	})
	_, err = svc.GetAccountByID(ctx, pkg.NewULID(), ownerID)
	appErr, ok = appErrors.AsAppError(err)
	if !ok || appErr.Code != "STORE_WRITE_FAILURE" {
		t.Fatalf("expected STORE_WRITE_FAILURE, got %v", err)
	}
}

func TestUpdateAccountDoesNotTouchBalance(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	accountID := pkg.NewULID()

	var saved *account.Account
	repo := &fakeAccountRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, owner uuid.UUID) (*account.Account, error) {
			return &account.Account{Id: id, OwnerId: ownerID, Name: "Banco", Type: account.TypeCash, Balance: 340}, nil
		},
		updateFn: func(ctx context.Context, a *account.Account) error {
			saved = a
			return nil
		},
	}
	svc := account.NewService(repo)

	newName := "Banco Principal"
	newType := account.TypeSavings
	err := svc.UpdateAccount(context.Background(), accountID, ownerID, &account.UpdateAccountRequest{
		Name: &newName,
		Type: &newType,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatalf("expected update to be persisted")
	}
	if saved.Name != newName || saved.Type != newType {
		t.Fatalf("expected edits applied, got %+v", saved)
	}
	if saved.Balance != 340 {
		t.Fatalf("expected balance untouched, got %v", saved.Balance)
	}
}

func TestGetTotalBalance(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	repo := &fakeAccountRepository{
		getTotalBalanceFn: func(ctx context.Context, owner uuid.UUID) (float64, error) {
			return 1234.56, nil
		},
	}
	svc := account.NewService(repo)

	total, err := svc.GetTotalBalance(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1234.56 {
		t.Fatalf("expected 1234.56, got %v", total)
	}
}
