package infrastructure

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type SubscriptionRepository struct {
	DB *gorm.DB
}

type subscriptionDB struct {
	Id         string    `gorm:"type:varchar(26);primaryKey"`
	OwnerId    string    `gorm:"column:owner_id;type:uuid;index;not null"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Category   string    `gorm:"type:varchar(100)"`
	Amount     float64   `gorm:"type:decimal(15,2);not null"`
	BillingDay int       `gorm:"column:billing_day;not null"`
	Type       string    `gorm:"type:varchar(15);not null"`
	IconName   string    `gorm:"column:icon_name;type:varchar(50)"`
	EndDate    *string   `gorm:"column:end_date;type:varchar(7)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (subscriptionDB) TableName() string {
	return "services"
}

func toDomainSubscription(sdb *subscriptionDB) (*subscription.Subscription, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}

	ownerID, err := uuid.Parse(sdb.OwnerId)
	if err != nil {
		return nil, err
	}

	return &subscription.Subscription{
		Id:         id,
		OwnerId:    ownerID,
		Name:       sdb.Name,
		Category:   sdb.Category,
		Amount:     sdb.Amount,
		BillingDay: sdb.BillingDay,
		Type:       subscription.Types(sdb.Type),
		IconName:   sdb.IconName,
		EndDate:    sdb.EndDate,
		CreatedAt:  sdb.CreatedAt,
		UpdatedAt:  sdb.UpdatedAt,
	}, nil
}

func toDBSubscription(s *subscription.Subscription) *subscriptionDB {
	return &subscriptionDB{
		Id:         s.Id.String(),
		OwnerId:    s.OwnerId.String(),
		Name:       s.Name,
		Category:   s.Category,
		Amount:     s.Amount,
		BillingDay: s.BillingDay,
		Type:       string(s.Type),
		IconName:   s.IconName,
		EndDate:    s.EndDate,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *subscription.Subscription) error {
	sdb := toDBSubscription(s)
	return r.DB.WithContext(ctx).Table("services").Create(sdb).Error
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *subscription.Subscription) error {
	sdb := toDBSubscription(s)
	return r.DB.WithContext(ctx).Model(&subscriptionDB{}).
		Where("id = ? AND owner_id = ?", sdb.Id, sdb.OwnerId).
		Select("Name", "Category", "Amount", "BillingDay", "Type", "IconName", "EndDate", "UpdatedAt").
		Updates(sdb).Error
}

func (r *SubscriptionRepository) Delete(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) error {
	return r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", subscriptionID.String(), ownerID.String()).
		Delete(&subscriptionDB{}).Error
}

func (r *SubscriptionRepository) GetById(ctx context.Context, subscriptionID ulid.ULID, ownerID uuid.UUID) (*subscription.Subscription, error) {
	var sdb subscriptionDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND owner_id = ?", subscriptionID.String(), ownerID.String()).
		First(&sdb).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return toDomainSubscription(&sdb)
}

func (r *SubscriptionRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, pagination *pkg.PaginationParams) ([]*subscription.Subscription, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("services").Where("owner_id = ?", ownerID.String())
	return pkg.Paginate(baseQuery, pagination, "billing_day ASC, name ASC", toDomainSubscription)
}
