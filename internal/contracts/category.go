package contracts

import "github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"

type CategoryCreateRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Color         string   `json:"color" binding:"omitempty,max=7"`
	Subcategories []string `json:"subcategories" binding:"omitempty,dive,max=100"`
	IsIncome      bool     `json:"is_income" binding:"omitempty"`
}

type CategoryUpdateRequest struct {
	Name          *string   `json:"name" binding:"omitempty,max=100"`
	Color         *string   `json:"color" binding:"omitempty,max=7"`
	Subcategories *[]string `json:"subcategories" binding:"omitempty,dive,max=100"`
	IsIncome      *bool     `json:"is_income" binding:"omitempty"`
}

type CategoryCreateResponse struct {
	Message  string             `json:"message"`
	Category *category.Category `json:"category"`
}

type CategorySingleResponse struct {
	Category *category.Category `json:"category"`
}
