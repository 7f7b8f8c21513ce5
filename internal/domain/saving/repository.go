package saving

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, goal *SavingGoal) error
	Update(ctx context.Context, goal *SavingGoal) error
	Delete(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID) error
	GetById(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID) (*SavingGoal, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*SavingGoal, int64, error)

	// IncrementCurrent adds to current_amount atomically in the store.
	IncrementCurrent(ctx context.Context, goalID ulid.ULID, delta float64) error
}
