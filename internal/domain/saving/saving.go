package saving

import (
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// SavingGoal tracks progress toward a target amount. Goals are not accounts:
// deposits increment CurrentAmount directly and leave no transaction trail.
type SavingGoal struct {
	Id            ulid.ULID `gorm:"type:varchar(26);primaryKey" json:"id"`
	OwnerId       uuid.UUID `gorm:"type:uuid;index:idx_savings_owner_id;not null" json:"ownerId"`
	Name          string    `gorm:"type:varchar(100);not null" json:"name"`
	TargetAmount  float64   `gorm:"column:target_amount;type:decimal(15,2);not null" json:"targetAmount"`
	CurrentAmount float64   `gorm:"column:current_amount;type:decimal(15,2);not null;default:0" json:"currentAmount"`
	Deadline      time.Time `gorm:"type:date;not null" json:"deadline"`
	Category      string    `gorm:"type:varchar(100)" json:"category"`
	Icon          string    `gorm:"type:varchar(50)" json:"icon"`
	CreatedAt     time.Time `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (SavingGoal) TableName() string {
	return "savings"
}

// Progress is the completed fraction, 0 when no target is set.
func (g *SavingGoal) Progress() float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	return g.CurrentAmount / g.TargetAmount
}
