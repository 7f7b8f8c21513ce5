package contracts

import "github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"

type SubscriptionCreateRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Category   string  `json:"category" binding:"omitempty,max=100"`
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	BillingDay int     `json:"billing_day" binding:"required,min=1,max=31"`
	Type       string  `json:"type" binding:"required,oneof=recurring fixed"`
	IconName   string  `json:"icon_name" binding:"omitempty,max=50"`
	EndDate    *string `json:"end_date" binding:"omitempty,max=7"`
}

type SubscriptionUpdateRequest struct {
	Name       *string  `json:"name" binding:"omitempty,max=100"`
	Category   *string  `json:"category" binding:"omitempty,max=100"`
	Amount     *float64 `json:"amount" binding:"omitempty,gt=0"`
	BillingDay *int     `json:"billing_day" binding:"omitempty,min=1,max=31"`
	Type       *string  `json:"type" binding:"omitempty,oneof=recurring fixed"`
	IconName   *string  `json:"icon_name" binding:"omitempty,max=50"`
	// EndDate set to "" clears the end date.
	EndDate *string `json:"end_date" binding:"omitempty,max=7"`
}

type SubscriptionCreateResponse struct {
	Message      string                     `json:"message"`
	Subscription *subscription.Subscription `json:"service"`
}

type SubscriptionSingleResponse struct {
	Subscription *subscription.Subscription `json:"service"`
}
