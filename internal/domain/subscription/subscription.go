package subscription

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

type Types string

const (
	TypeRecurring Types = "recurring"
	TypeFixed     Types = "fixed"
)

func (t Types) IsValid() bool {
	return t == TypeRecurring || t == TypeFixed
}

// Subscription is a recurring or fixed scheduled expense ("service" to the
// user). Purely informational: it never posts transactions.
type Subscription struct {
	Id         ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId    uuid.UUID `gorm:"type:uuid;index:idx_services_owner_id;not null" json:"ownerId"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Category   string    `gorm:"type:varchar(100)" json:"category"`
	Amount     float64   `gorm:"type:decimal(15,2);not null" json:"amount"`
	BillingDay int       `gorm:"column:billing_day;not null" json:"billingDay"`
	Type       Types     `gorm:"type:varchar(15);not null" json:"type"`
	IconName   string    `gorm:"column:icon_name;type:varchar(50)" json:"iconName"`
	// EndDate is year-month granularity, "2006-01". Nil means open-ended.
	EndDate   *string   `gorm:"column:end_date;type:varchar(7)" json:"endDate,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "services"
}

// ActiveInMonth reports whether the subscription still bills in the given
// calendar month. A subscription with an end date is inactive for any month
// strictly after its end year-month.
func (s *Subscription) ActiveInMonth(year int, month time.Month) bool {
	if s.EndDate == nil || *s.EndDate == "" {
		return true
	}

	end, err := time.Parse("2006-01", *s.EndDate)
	if err != nil {
		return true
	}

	if year != end.Year() {
		return year < end.Year()
	}
	return month <= end.Month()
}
