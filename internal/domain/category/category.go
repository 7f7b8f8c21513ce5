package category

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Category tags transactions. A category is exclusively income-tagged or
// expense-tagged; matching transaction types to the flag is a UI convention,
// not enforced here.
type Category struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId       uuid.UUID `gorm:"type:uuid;index:idx_categories_owner_id;not null" json:"ownerId"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	Color         string    `gorm:"type:varchar(7)" json:"color"`
	Subcategories []string  `gorm:"type:jsonb;serializer:json" json:"subcategories"`
	IsIncome      bool      `gorm:"column:is_income;not null;default:false" json:"isIncome"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Category) TableName() string {
	return "categories"
}
