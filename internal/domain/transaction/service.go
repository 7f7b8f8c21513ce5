package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/logger"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

// CategoryResolver answers whether a category reference resolves for an
// owner. Implemented by the category service.
type CategoryResolver interface {
	Exists(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error
}

// Service is the ledger reconciler: every transaction mutation routes through
// it so that each account's cached balance stays equal to its opening balance
// plus the signed sum of its subsequent transactions.
type Service struct {
	Repository Repository
	Accounts   *account.Service
	Categories CategoryResolver
}

func NewService(repo Repository, accounts *account.Service, categories CategoryResolver) *Service {
	return &Service{
		Repository: repo,
		Accounts:   accounts,
		Categories: categories,
	}
}

// PostTransaction persists the candidate and applies its signed amount to the
// referenced account's balance.
func (s *Service) PostTransaction(ctx context.Context, t *Transaction) error {
	if err := s.validateCandidate(t); err != nil {
		return err
	}

	if _, err := s.Accounts.GetAccountByID(ctx, t.AccountId, t.OwnerId); err != nil {
		return err
	}

	if err := s.resolveCategory(ctx, t.CategoryId, t.OwnerId); err != nil {
		return err
	}

	if pkg.IsEmptyULID(t.Id) {
		t.Id = pkg.NewULID()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Date.IsZero() {
		t.Date = now
	}

	// The insert and the balance adjustment share one store transaction so a
	// failure between them cannot leave an orphan row.
	tx, err := s.Accounts.Repository.BeginTx(ctx)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.CreateWithTx(ctx, tx, t); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Accounts.Repository.UpdateBalanceWithTx(ctx, tx, t.AccountId, t.SignedAmount()); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Accounts.Repository.CommitTx(tx); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// Changes is a partial revision; nil fields are left untouched.
type Changes struct {
	Label      *string
	Notes      *string
	Amount     *float64
	Type       *Types
	Date       *time.Time
	AccountId  *ulid.ULID
	CategoryId *ulid.ULID
}

// ReviseTransaction re-runs reconciliation for an edited transaction: the old
// signed amount is reverted on the old account, the record is rewritten, and
// the new signed amount is applied to the effective account. The three writes
// share one store transaction, so a failed revise leaves balances untouched.
// When the account did not change, the two balance legs are atomic increments
// on the same row and collapse to the single net delta.
func (s *Service) ReviseTransaction(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID, changes *Changes) error {
	old, err := s.Repository.GetByIDAndOwner(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return appErrors.ErrTransactionNotFound.WithError(err)
		}
		return appErrors.NewDatabaseError(err)
	}

	revised, err := s.merge(ctx, old, ownerID, changes)
	if err != nil {
		return err
	}

	tx, err := s.Accounts.Repository.BeginTx(ctx)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Accounts.Repository.UpdateBalanceWithTx(ctx, tx, old.AccountId, -old.SignedAmount()); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.UpdateWithTx(ctx, tx, revised); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Accounts.Repository.UpdateBalanceWithTx(ctx, tx, revised.AccountId, revised.SignedAmount()); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Accounts.Repository.CommitTx(tx); err != nil {
		_ = s.Accounts.Repository.RollbackTx(tx)
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// RetractTransaction reverses the transaction's effect on its account and
// removes the record. Retracting an id that no longer exists is a no-op;
// a failing lookup is not, and is surfaced as a store error.
func (s *Service) RetractTransaction(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) error {
	t, err := s.Repository.GetByIDAndOwner(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return nil
		}
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Accounts.Repository.UpdateBalance(ctx, t.AccountId, -t.SignedAmount()); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	if err := s.Repository.Delete(ctx, transactionID); err != nil {
		// Put the reversal back so the balance still matches the record.
		if compErr := s.Accounts.Repository.UpdateBalance(ctx, t.AccountId, t.SignedAmount()); compErr != nil {
			logger.Warn().
				Err(compErr).
				Str("transaction_id", transactionID.String()).
				Str("account_id", t.AccountId.String()).
				Msg("no se pudo restaurar el saldo tras fallar la eliminación")
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// OpenAccount creates the account seeded at the opening balance and records
// the opening deposit as history. The opening row is inserted directly,
// bypassing PostTransaction, because the balance already carries the amount;
// routing it through reconciliation would count it twice.
func (s *Service) OpenAccount(ctx context.Context, req *account.CreateAccountRequest) (*account.Account, error) {
	if req.OpeningBalance < 0 {
		return nil, appErrors.NewValidationError("balance", "El saldo inicial no puede ser negativo")
	}

	acc, err := s.Accounts.CreateAccount(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.OpeningBalance > 0 {
		now := time.Now()
		opening := &Transaction{
			Id:        pkg.NewULID(),
			OwnerId:   acc.OwnerId,
			AccountId: acc.Id,
			Label:     fmt.Sprintf("Apertura: %s", acc.Name),
			Amount:    req.OpeningBalance,
			Type:      Income,
			Date:      now,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Repository.Create(ctx, opening); err != nil {
			logger.Warn().
				Err(err).
				Str("account_id", acc.Id.String()).
				Msg("cuenta creada sin transacción de apertura")
			return acc, appErrors.NewDatabaseError(err)
		}
	}

	return acc, nil
}

// ManualDeposit posts a synthetic income transaction topping up the account.
func (s *Service) ManualDeposit(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID, amount float64) (*Transaction, error) {
	t := &Transaction{
		OwnerId:   ownerID,
		AccountId: accountID,
		Label:     "Depósito/Suma manual",
		Amount:    amount,
		Type:      Income,
		Date:      time.Now(),
	}

	if err := s.PostTransaction(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *Service) GetTransactionByID(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) (*Transaction, error) {
	t, err := s.Repository.GetByIDAndOwner(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

func (s *Service) GetAllTransactions(ctx context.Context, ownerID uuid.UUID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error) {
	transactions, total, err := s.Repository.GetAll(ctx, ownerID, accountID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return transactions, total, nil
}

func (s *Service) validateCandidate(t *Transaction) error {
	if t.Amount <= 0 {
		return appErrors.NewValidationError("amount", "El monto debe ser mayor que cero")
	}

	if !t.Type.IsPostable() {
		return appErrors.NewValidationError("type", "El tipo debe ser income o expense")
	}

	return nil
}

func (s *Service) resolveCategory(ctx context.Context, categoryID *ulid.ULID, ownerID uuid.UUID) error {
	if categoryID == nil || s.Categories == nil {
		return nil
	}
	return s.Categories.Exists(ctx, *categoryID, ownerID)
}

// merge builds the revised record from the stored one plus the partial
// changes, validating the pieces that change.
func (s *Service) merge(ctx context.Context, old *Transaction, ownerID uuid.UUID, changes *Changes) (*Transaction, error) {
	revised := *old

	if changes.Amount != nil {
		if *changes.Amount <= 0 {
			return nil, appErrors.NewValidationError("amount", "El monto debe ser mayor que cero")
		}
		revised.Amount = *changes.Amount
	}

	if changes.Type != nil {
		if !changes.Type.IsPostable() {
			return nil, appErrors.NewValidationError("type", "El tipo debe ser income o expense")
		}
		revised.Type = *changes.Type
	}

	if changes.AccountId != nil {
		if _, err := s.Accounts.GetAccountByID(ctx, *changes.AccountId, ownerID); err != nil {
			return nil, err
		}
		revised.AccountId = *changes.AccountId
	}

	if changes.CategoryId != nil {
		if err := s.resolveCategory(ctx, changes.CategoryId, ownerID); err != nil {
			return nil, err
		}
		revised.CategoryId = changes.CategoryId
	}

	if changes.Label != nil {
		revised.Label = *changes.Label
	}

	if changes.Notes != nil {
		revised.Notes = *changes.Notes
	}

	if changes.Date != nil {
		revised.Date = *changes.Date
	}

	revised.UpdatedAt = time.Now()

	return &revised, nil
}
