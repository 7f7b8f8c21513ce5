package category

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error
	GetById(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) (*Category, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*Category, int64, error)
}

// TransactionDetacher removes dangling category references after a category
// is deleted. Implemented by the transaction repository.
type TransactionDetacher interface {
	ClearCategory(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error
}
