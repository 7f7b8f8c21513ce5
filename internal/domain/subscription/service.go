package subscription

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

func (s *Service) CreateSubscription(ctx context.Context, sub *Subscription) error {
	if err := validate(sub); err != nil {
		return err
	}

	sub.Id = pkg.NewULID()
	now := time.Now()
	sub.CreatedAt = now
	sub.UpdatedAt = now

	if err := s.Repository.Create(ctx, sub); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateSubscription(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID, req *UpdateSubscriptionRequest) error {
	existing, err := s.GetSubscriptionByID(ctx, subscriptionID, ownerID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Category != nil {
		existing.Category = *req.Category
	}
	if req.Amount != nil {
		existing.Amount = *req.Amount
	}
	if req.BillingDay != nil {
		existing.BillingDay = *req.BillingDay
	}
	if req.Type != nil {
		existing.Type = *req.Type
	}
	if req.IconName != nil {
		existing.IconName = *req.IconName
	}
	if req.EndDate != nil {
		if *req.EndDate == "" {
			existing.EndDate = nil
		} else {
			existing.EndDate = req.EndDate
		}
	}

	if err := validate(existing); err != nil {
		return err
	}

	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteSubscription(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) error {
	if _, err := s.GetSubscriptionByID(ctx, subscriptionID, ownerID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, subscriptionID, ownerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetSubscriptionByID(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) (*Subscription, error) {
	sub, err := s.Repository.GetById(ctx, subscriptionID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return nil, appErrors.ErrServiceNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return sub, nil
}

func (s *Service) ListSubscriptions(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*Subscription, int64, error) {
	subs, total, err := s.Repository.GetByOwner(ctx, ownerID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return subs, total, nil
}

func validate(sub *Subscription) error {
	sub.Name = strings.TrimSpace(sub.Name)
	if sub.Name == "" {
		return appErrors.NewValidationError("name", "El nombre es obligatorio")
	}

	if sub.Amount <= 0 {
		return appErrors.NewValidationError("amount", "El monto debe ser mayor que cero")
	}

	if sub.BillingDay < 1 || sub.BillingDay > 31 {
		return appErrors.NewValidationError("billingDay", "El día de cobro debe estar entre 1 y 31")
	}

	if !sub.Type.IsValid() {
		return appErrors.NewValidationError("type", "El tipo debe ser recurring o fixed")
	}

	if sub.EndDate != nil && *sub.EndDate != "" {
		if _, err := time.Parse("2006-01", *sub.EndDate); err != nil {
			return appErrors.NewValidationError("endDate", "La fecha de fin debe tener formato AAAA-MM")
		}
	}

	return nil
}

type UpdateSubscriptionRequest struct {
	Name       *string
	Category   *string
	Amount     *float64
	BillingDay *int
	Type       *Types
	IconName   *string
	EndDate    *string
}
