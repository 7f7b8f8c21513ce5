package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Types string

const (
	Income  Types = "income"
	Expense Types = "expense"
	// Transfer is reserved; the ledger does not post it yet.
	Transfer Types = "transfer"
)

func (t Types) IsPostable() bool {
	return t == Income || t == Expense
}

type Transaction struct {
	Id         ulid.ULID  `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId    uuid.UUID  `gorm:"type:uuid;index:idx_transactions_owner_id;not null" json:"ownerId"`
	AccountId  ulid.ULID  `gorm:"column:account_id;type:varchar(26);index:idx_transactions_account_id;not null" json:"account_id"`
	CategoryId *ulid.ULID `gorm:"column:category_id;type:varchar(26);index:idx_transactions_category_id" json:"category_id,omitempty"`
	Date       time.Time  `gorm:"type:timestamp;not null" json:"date"`
	Label      string     `gorm:"type:varchar(255);not null" json:"label"`
	Notes      string     `gorm:"type:text" json:"notes,omitempty"`
	Amount     float64    `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type       Types      `gorm:"type:varchar(15);not null" json:"type"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// SignedAmount carries the direction: positive for income, negative for
// expense. Amount itself is always positive.
func (t *Transaction) SignedAmount() float64 {
	if t.Type == Expense {
		return -t.Amount
	}
	return t.Amount
}
