package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type CategoryRepository struct {
	DB *gorm.DB
}

type categoryDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId       string    `gorm:"column:owner_id;type:uuid;index;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Color         string    `gorm:"type:varchar(7)"`
	Subcategories []byte    `gorm:"type:jsonb"`
	IsIncome      bool      `gorm:"column:is_income;not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(cdb.OwnerId)
	if err != nil {
		return nil, err
	}

	var subcategories []string
	if len(cdb.Subcategories) > 0 {
		if err := json.Unmarshal(cdb.Subcategories, &subcategories); err != nil {
			return nil, err
		}
	}

	return &category.Category{
		Id:            id,
		OwnerId:       ownerID,
		Name:          cdb.Name,
		Color:         cdb.Color,
		Subcategories: subcategories,
		IsIncome:      cdb.IsIncome,
		CreatedAt:     cdb.CreatedAt,
		UpdatedAt:     cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) (*categoryDB, error) {
	subcategories := c.Subcategories
	if subcategories == nil {
		subcategories = []string{}
	}
	raw, err := json.Marshal(subcategories)
	if err != nil {
		return nil, err
	}

	return &categoryDB{
		Id:            c.Id.String(),
		OwnerId:       c.OwnerId.String(),
		Name:          c.Name,
		Color:         c.Color,
		Subcategories: raw,
		IsIncome:      c.IsIncome,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	cdb, err := toDBCategory(c)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Table("categories").Create(cdb).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb, err := toDBCategory(c)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Model(&categoryDB{}).
		Where("id = ? AND owner_id = ?", cdb.Id, cdb.OwnerId).
		Select("Name", "Color", "Subcategories", "IsIncome", "UpdatedAt").
		Updates(cdb).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", categoryID.String(), ownerID.String()).
		Delete(&categoryDB{}).Error
}

func (r *CategoryRepository) GetById(ctx context.Context, categoryID ulid.ULID, ownerID uuid.UUID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", categoryID.String(), ownerID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*category.Category, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("categories").Where("owner_id = ?", ownerID.String())
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainCategory)
}
