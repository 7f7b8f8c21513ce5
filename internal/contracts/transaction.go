package contracts

import (
	"time"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	AccountId  string    `json:"account_id" binding:"required"`
	CategoryId string    `json:"category_id" binding:"omitempty"`
	Type       string    `json:"type" binding:"required,oneof=income expense"`
	Amount     float64   `json:"amount" binding:"required,gt=0"`
	Label      string    `json:"label" binding:"required,max=255"`
	Notes      string    `json:"notes" binding:"omitempty"`
	Date       time.Time `json:"date" binding:"required"`
}

type TransactionUpdateRequest struct {
	AccountId  *string    `json:"account_id" binding:"omitempty"`
	CategoryId *string    `json:"category_id" binding:"omitempty"`
	Type       *string    `json:"type" binding:"omitempty,oneof=income expense"`
	Amount     *float64   `json:"amount" binding:"omitempty,gt=0"`
	Label      *string    `json:"label" binding:"omitempty,max=255"`
	Notes      *string    `json:"notes" binding:"omitempty"`
	Date       *time.Time `json:"date" binding:"omitempty"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}
