package subscription

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, subscription *Subscription) error
	Update(ctx context.Context, subscription *Subscription) error
	Delete(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) error
	GetById(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) (*Subscription, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*Subscription, int64, error)
}
