package account

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) error
	GetById(ctx context.Context, accountID ulid.ULID, ownerID uuid.UUID) (*Account, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*Account, int64, error)
	GetTotalBalance(ctx context.Context, ownerID uuid.UUID) (float64, error)

	// UpdateBalance applies a signed delta with a store-native atomic
	// increment; concurrent callers never lose updates.
	UpdateBalance(ctx context.Context, accountID ulid.ULID, delta float64) error
	UpdateBalanceWithTx(ctx context.Context, tx interface{}, accountID ulid.ULID, delta float64) error
	BeginTx(ctx context.Context) (interface{}, error)
	CommitTx(tx interface{}) error
	RollbackTx(tx interface{}) error
}
