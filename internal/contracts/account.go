package contracts

import "github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"

// Account types carry spaces ("Billetera Digital"), so the oneof binding
// cannot express them; the service validates the type instead.
type AccountCreateRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Type           string  `json:"type" binding:"required,max=30"`
	InitialBalance float64 `json:"initial_balance" binding:"omitempty,gte=0"`
	IsCredit       bool    `json:"is_credit" binding:"omitempty"`
}

type AccountUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Type     *string `json:"type" binding:"omitempty,max=30"`
	IsCredit *bool   `json:"is_credit" binding:"omitempty"`
}

type AccountDepositRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=255"`
}

type AccountCreateResponse struct {
	Message string           `json:"message"`
	Account *account.Account `json:"account"`
}

type AccountSingleResponse struct {
	Account *account.Account `json:"account"`
}

type AccountBalanceResponse struct {
	TotalBalance float64 `json:"totalBalance"`
}
