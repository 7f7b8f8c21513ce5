package saving

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

func (s *Service) CreateGoal(ctx context.Context, goal *SavingGoal) error {
	goal.Name = strings.TrimSpace(goal.Name)
	if goal.Name == "" {
		return appErrors.NewValidationError("name", "El nombre es obligatorio")
	}

	if goal.TargetAmount < 0 {
		return appErrors.NewValidationError("targetAmount", "El monto objetivo no puede ser negativo")
	}

	if goal.CurrentAmount < 0 {
		return appErrors.NewValidationError("currentAmount", "El monto actual no puede ser negativo")
	}

	goal.Id = pkg.NewULID()
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	if err := s.Repository.Create(ctx, goal); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateGoal(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID, req *UpdateGoalRequest) error {
	existing, err := s.GetGoalByID(ctx, goalID, ownerID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "El nombre es obligatorio")
		}
		existing.Name = name
	}

	if req.TargetAmount != nil {
		if *req.TargetAmount < 0 {
			return appErrors.NewValidationError("targetAmount", "El monto objetivo no puede ser negativo")
		}
		existing.TargetAmount = *req.TargetAmount
	}

	// Explicit owner edits are the one allowed way to lower CurrentAmount.
	if req.CurrentAmount != nil {
		if *req.CurrentAmount < 0 {
			return appErrors.NewValidationError("currentAmount", "El monto actual no puede ser negativo")
		}
		existing.CurrentAmount = *req.CurrentAmount
	}

	if req.Deadline != nil {
		existing.Deadline = *req.Deadline
	}

	if req.Category != nil {
		existing.Category = *req.Category
	}

	if req.Icon != nil {
		existing.Icon = *req.Icon
	}

	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) DeleteGoal(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID) error {
	if _, err := s.GetGoalByID(ctx, goalID, ownerID); err != nil {
		return err
	}

	if err := s.Repository.Delete(ctx, goalID, ownerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// Deposit atomically increments the goal's saved amount.
func (s *Service) Deposit(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return appErrors.NewValidationError("amount", "El monto debe ser mayor que cero")
	}

	if _, err := s.GetGoalByID(ctx, goalID, ownerID); err != nil {
		return err
	}

	if err := s.Repository.IncrementCurrent(ctx, goalID, amount); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetGoalByID(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID) (*SavingGoal, error) {
	goal, err := s.Repository.GetById(ctx, goalID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return nil, appErrors.ErrGoalNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return goal, nil
}

func (s *Service) ListGoals(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*SavingGoal, int64, error) {
	goals, total, err := s.Repository.GetByOwner(ctx, ownerID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return goals, total, nil
}

type UpdateGoalRequest struct {
	Name          *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
	Category      *string
	Icon          *string
}
