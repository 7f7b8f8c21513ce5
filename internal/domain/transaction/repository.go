package transaction

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	CreateWithTx(ctx context.Context, tx interface{}, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	UpdateWithTx(ctx context.Context, tx interface{}, transaction *Transaction) error
	Delete(ctx context.Context, transactionID ulid.ULID) error
	GetByIDAndOwner(ctx context.Context, transactionID ulid.ULID, ownerID uuid.UUID) (*Transaction, error)
	GetAll(ctx context.Context, ownerID uuid.UUID, accountID *ulid.ULID, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)

	// ClearCategory nulls out category_id on every transaction referencing
	// the category; the UI falls back to "Sin categoría".
	ClearCategory(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error
}
