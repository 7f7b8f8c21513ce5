package account

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Account is an owner's money bucket. Balance is an incrementally maintained
// cache: seeded at the opening balance and adjusted by every subsequent
// transaction, never recomputed from the transaction history.
type Account struct {
	Id        ulid.ULID   `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId   uuid.UUID   `gorm:"type:uuid;index:idx_accounts_owner_id;not null" json:"ownerId"`
	Name      string      `gorm:"type:varchar(100);not null" json:"name"`
	Type      AccountType `gorm:"type:varchar(30);not null" json:"type"`
	Balance   float64     `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	IsCredit  bool        `gorm:"column:is_credit;not null;default:false" json:"is_credit"`
	CreatedAt time.Time   `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time   `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}
