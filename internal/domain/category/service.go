package category

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
	Repository   Repository
	Transactions TransactionDetacher
}

func NewService(repo Repository, transactions TransactionDetacher) *Service {
	return &Service{
		Repository:   repo,
		Transactions: transactions,
	}
}

func (s *Service) CreateCategory(ctx context.Context, category *Category) error {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		return appErrors.NewValidationError("name", "El nombre es obligatorio")
	}

	if category.Subcategories == nil {
		category.Subcategories = []string{}
	}

	category.Id = pkg.NewULID()
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	if err := s.Repository.Create(ctx, category); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) UpdateCategory(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID, req *UpdateCategoryRequest) error {
	existing, err := s.GetCategoryByID(ctx, categoryID, ownerID)
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

	if req.Color != nil {
		existing.Color = *req.Color
	}

	if req.Subcategories != nil {
		existing.Subcategories = req.Subcategories
	}

	if req.IsIncome != nil {
		existing.IsIncome = *req.IsIncome
	}

	existing.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, existing); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// DeleteCategory removes the category and nulls out references on any
// transaction still pointing at it.
func (s *Service) DeleteCategory(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error {
	if _, err := s.GetCategoryByID(ctx, categoryID, ownerID); err != nil {
		return err
	}

	if s.Transactions != nil {
		if err := s.Transactions.ClearCategory(ctx, categoryID, ownerID); err != nil {
			return appErrors.NewDatabaseError(err)
		}
	}

	if err := s.Repository.Delete(ctx, categoryID, ownerID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetCategoryByID(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) (*Category, error) {
	category, err := s.Repository.GetById(ctx, categoryID, ownerID)
	if err != nil {
		if errors.Is(err, appErrors.ErrRecordNotFound) {
			return nil, appErrors.ErrCategoryNotFound.WithError(err)
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return category, nil
}

func (s *Service) ListCategories(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*Category, int64, error) {
	categories, total, err := s.Repository.GetByOwner(ctx, ownerID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return categories, total, nil
}

// Exists satisfies the ledger's CategoryResolver.
func (s *Service) Exists(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error {
	_, err := s.GetCategoryByID(ctx, categoryID, ownerID)
	return err
}

type UpdateCategoryRequest struct {
	Name          *string
	Color         *string
	Subcategories []string
	IsIncome      *bool
}
