package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type SavingRepository struct {
	DB *gorm.DB
}

type savingGoalDB struct {
	Id            string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId       string    `gorm:"column:owner_id;type:uuid;index;not null"`
	Name          string    `gorm:"type:varchar(100);not null"`
	TargetAmount  float64   `gorm:"column:target_amount;type:decimal(15,2);not null"`
	CurrentAmount float64   `gorm:"column:current_amount;type:decimal(15,2);not null;default:0"`
	Deadline      time.Time `gorm:"type:date;not null"`
	Category      string    `gorm:"type:varchar(100)"`
	Icon          string    `gorm:"type:varchar(50)"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (savingGoalDB) TableName() string {
	return "savings"
}

func toDomainSavingGoal(gdb *savingGoalDB) (*saving.SavingGoal, error) {
	id, err := pkg.ParseULID(gdb.Id)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(gdb.OwnerId)
	if err != nil {
		return nil, err
	}

	return &saving.SavingGoal{
		Id:            id,
		OwnerId:       ownerID,
		Name:          gdb.Name,
		TargetAmount:  gdb.TargetAmount,
		CurrentAmount: gdb.CurrentAmount,
		Deadline:      gdb.Deadline,
		Category:      gdb.Category,
		Icon:          gdb.Icon,
		CreatedAt:     gdb.CreatedAt,
		UpdatedAt:     gdb.UpdatedAt,
	}, nil
}

func toDBSavingGoal(g *saving.SavingGoal) *savingGoalDB {
	return &savingGoalDB{
		Id:            g.Id.String(),
		OwnerId:       g.OwnerId.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Category:      g.Category,
		Icon:          g.Icon,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

func (r *SavingRepository) Create(ctx context.Context, g *saving.SavingGoal) error {
	gdb := toDBSavingGoal(g)
	return r.DB.WithContext(ctx).Table("savings").Create(gdb).Error
}

func (r *SavingRepository) Update(ctx context.Context, g *saving.SavingGoal) error {
	gdb := toDBSavingGoal(g)
	return r.DB.WithContext(ctx).Model(&savingGoalDB{}).
		Where("id = ? AND owner_id = ?", gdb.Id, gdb.OwnerId).
		Select("Name", "TargetAmount", "CurrentAmount", "Deadline", "Category", "Icon", "UpdatedAt").
		Updates(gdb).Error
}

func (r *SavingRepository) Delete(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", goalID.String(), ownerID.String()).
		Delete(&savingGoalDB{}).Error
}

func (r *SavingRepository) GetById(ctx context.Context, goalID ulid.ULID, ownerID uuid.UUID) (*saving.SavingGoal, error) {
	var gdb savingGoalDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", goalID.String(), ownerID.String()).
		First(&gdb).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDomainSavingGoal(&gdb)
}

func (r *SavingRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*saving.SavingGoal, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("savings").Where("owner_id = ?", ownerID.String())
	return pkg.Paginate(baseQuery, pagination, "deadline ASC", toDomainSavingGoal)
}

func (r *SavingRepository) IncrementCurrent(ctx context.Context, goalID ulid.ULID, delta float64) error {
	return r.DB.WithContext(ctx).Model(&savingGoalDB{}).Where("id = ?", goalID.String()).
		UpdateColumn("current_amount", gorm.Expr("current_amount + ?", delta)).
		UpdateColumn("updated_at", time.Now()).Error
}
