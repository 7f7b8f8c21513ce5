package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// CreateAccount persists the account row seeded at the opening balance. The
// opening transaction that mirrors that balance for history is the ledger's
// job (see the transaction service), not this one's.
func (s *Service) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now()
	account := &Account{
		Id:        pkg.NewULID(),
		OwnerId:   req.OwnerId,
		Name:      strings.TrimSpace(req.Name),
		Type:      req.Type,
		Balance:   req.OpeningBalance,
		IsCredit:  req.IsCredit,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, account); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return account, nil
}

// UpdateAccount edits name, type and the credit flag. Balance is not
// editable here; it only moves through the ledger.
func (s *Service) UpdateAccount(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID, req *UpdateAccountRequest) error {
	account, err := s.GetAccountByID(ctx, accountID, ownerID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "El nombre no puede estar vacío")
		}
		account.Name = name
	}

	if req.Type != nil {
		if !req.Type.IsValid() {
			return appErrors.NewValidationError("type", "Tipo de cuenta inválido")
		}
		account.Type = *req.Type
	}

	if req.IsCredit != nil {
		account.IsCredit = *req.IsCredit
	}

	account.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, account); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteAccount(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) error {
	if _, err := s.GetAccountByID(ctx, accountID, ownerID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, accountID, ownerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetAccountByID(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) (*Account, error) {
	account, err := s.Repository.GetById(ctx, accountID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	if account.OwnerId != ownerID {
		return nil, appErrors.ErrResourceNotOwned
	}

	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*Account, int64, error) {
	accounts, total, err := s.Repository.GetByOwner(ctx, ownerID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return accounts, total, nil
}

func (s *Service) GetTotalBalance(ctx context.Context, ownerID uuid.UUID) (float64, error) {
	total, err := s.Repository.GetTotalBalance(ctx, ownerID)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return total, nil
}

// ApplyDelta adjusts the cached balance by a signed amount. Balances may go
// negative; direction is the caller's responsibility.
func (s *Service) ApplyDelta(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID, delta float64) error {
	if _, err := s.GetAccountByID(ctx, accountID, ownerID); err != nil {
		return err
	}

	if err := s.Repository.UpdateBalance(ctx, accountID, delta); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) validateCreateRequest(req *CreateAccountRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return appErrors.NewValidationError("name", "El nombre es obligatorio")
	}

	if !req.Type.IsValid() {
		return appErrors.NewValidationError("type", "Tipo de cuenta inválido")
	}

	return nil
}

type CreateAccountRequest struct {
	OwnerId        uuid.UUID
	Name           string
	Type           AccountType
	OpeningBalance float64
	IsCredit       bool
}

type UpdateAccountRequest struct {
	Name     *string
	Type     *AccountType
	IsCredit *bool
}
