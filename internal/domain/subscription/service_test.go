package subscription_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type fakeSubscriptionRepository struct {
	createFn  func(ctx context.Context, s *subscription.Subscription) error
	updateFn  func(ctx context.Context, s *subscription.Subscription) error
	getByIDFn func(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) (*subscription.Subscription, error)
}

func (f *fakeSubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeSubscriptionRepository) Delete(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) error {
	return nil
}

func (f *fakeSubscriptionRepository) GetById(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) (*subscription.Subscription, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, subscriptionID, ownerID)
	}
	return nil, appErrors.ErrRecordNotFound
}

func (f *fakeSubscriptionRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*subscription.Subscription, int64, error) {
	return nil, 0, nil
}

func TestCreateSubscriptionValidations(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	badEndDate := "marzo"

	tests := []struct {
		name    string
		sub     *subscription.Subscription
		wantErr bool
	}{
		{
			name: "valid",
			sub: &subscription.Subscription{
				OwnerId:    ownerID,
				Name:       "Netflix",
				Amount:     12.99,
				BillingDay: 5,
				Type:       subscription.TypeRecurring,
			},
		},
		{
			name: "billing day out of range",
			sub: &subscription.Subscription{
				OwnerId:    ownerID,
				Name:       "Netflix",
				Amount:     12.99,
				BillingDay: 32,
				Type:       subscription.TypeRecurring,
			},
			wantErr: true,
		},
		{
			name: "non-positive amount",
			sub: &subscription.Subscription{
				OwnerId:    ownerID,
				Name:       "Netflix",
				Amount:     0,
				BillingDay: 5,
				Type:       subscription.TypeFixed,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			sub: &subscription.Subscription{
				OwnerId:    ownerID,
				Name:       "Netflix",
				Amount:     12.99,
				BillingDay: 5,
				Type:       subscription.Types("weekly"),
			},
			wantErr: true,
		},
		{
			name: "malformed end date",
			sub: &subscription.Subscription{
				OwnerId:    ownerID,
				Name:       "Netflix",
				Amount:     12.99,
				BillingDay: 5,
				Type:       subscription.TypeRecurring,
				EndDate:    &badEndDate,
			},
			wantErr: true,
		},
	}

	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := subscription.NewService(&fakeSubscriptionRepository{})

			err := svc.CreateSubscription(ctx, tt.sub)
			if tt.wantErr {
				appErr, ok := appErrors.AsAppError(err)
				require.True(t, ok, "expected AppError, got %v", err)
				require.Equal(t, "VALIDATION_ERROR", appErr.Code)
				return
			}
			require.NoError(t, err)
			require.False(t, pkg.IsEmptyULID(tt.sub.Id))
		})
	}
}

func TestUpdateSubscriptionClearsEndDate(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	endDate := "2026-03"

	var saved *subscription.Subscription
	repo := &fakeSubscriptionRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, owner uuid.UUID) (*subscription.Subscription, error) {
			return &subscription.Subscription{
				Id:         id,
				OwnerId:    ownerID,
				Name:       "Spotify",
				Amount:     9.99,
				BillingDay: 12,
				Type:       subscription.TypeRecurring,
				EndDate:    &endDate,
			}, nil
		},
		updateFn: func(ctx context.Context, s *subscription.Subscription) error {
			saved = s
			return nil
		},
	}
	svc := subscription.NewService(repo)

	empty := ""
	err := svc.UpdateSubscription(context.Background(), pkg.NewULID(), ownerID, &subscription.UpdateSubscriptionRequest{
		EndDate: &empty,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Nil(t, saved.EndDate)
}

func TestGetSubscriptionByIDUnknown(t *testing.T) {
	t.Parallel()

	svc := subscription.NewService(&fakeSubscriptionRepository{})

	_, err := svc.GetSubscriptionByID(context.Background(), pkg.NewULID(), uuid.New())
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	require.Equal(t, appErrors.ErrServiceNotFound.Code, appErr.Code)
}

func TestGetSubscriptionByIDSurfacesLookupFailure(t *testing.T) {
	t.Parallel()

	repo := &fakeSubscriptionRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID, owner uuid.UUID) (*subscription.Subscription, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := subscription.NewService(repo)

	_, err := svc.GetSubscriptionByID(context.Background(), pkg.NewULID(), uuid.New())
	appErr, ok := appErrors.AsAppError(err)
	require.True(t, ok)
	require.Equal(t, "STORE_WRITE_FAILURE", appErr.Code)
}
