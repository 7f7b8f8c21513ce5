package contracts

import (
	"time"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
)

type SavingGoalCreateRequest struct {
	Name          string    `json:"name" binding:"required,max=100"`
	TargetAmount  float64   `json:"target_amount" binding:"omitempty,gte=0"`
	CurrentAmount float64   `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      time.Time `json:"deadline" binding:"required"`
	Category      string    `json:"category" binding:"omitempty,max=100"`
	Icon          string    `json:"icon" binding:"omitempty,max=50"`
}

type SavingGoalUpdateRequest struct {
	Name          *string    `json:"name" binding:"omitempty,max=100"`
	TargetAmount  *float64   `json:"target_amount" binding:"omitempty,gte=0"`
	CurrentAmount *float64   `json:"current_amount" binding:"omitempty,gte=0"`
	Deadline      *time.Time `json:"deadline" binding:"omitempty"`
	Category      *string    `json:"category" binding:"omitempty,max=100"`
	Icon          *string    `json:"icon" binding:"omitempty,max=50"`
}

type SavingGoalDepositRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type SavingGoalCreateResponse struct {
	Message string            `json:"message"`
	Goal    *saving.SavingGoal `json:"goal"`
}

type SavingGoalSingleResponse struct {
	Goal     *saving.SavingGoal `json:"goal"`
	Progress float64            `json:"progress"`
}
