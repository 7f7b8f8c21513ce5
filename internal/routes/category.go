package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/contracts"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

func (h *Handler) CreateCategory(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CategoryCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	cat := &category.Category{
		OwnerId:       ownerID,
		Name:          body.Name,
		Color:         body.Color,
		Subcategories: body.Subcategories,
		IsIncome:      body.IsIncome,
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.CreateCategory(ctx, cat); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.CategoryCreateResponse{
		Message:  "Categoría creada con éxito",
		Category: cat,
	})
}

func (h *Handler) ListCategories(c *gin.Context) {
	pagination := h.parsePagination(c)

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse([]*category.Category{}, pagination.Page, pagination.Limit, 0))
		return
	}

	ctx := c.Request.Context()
	categories, total, err := h.CategoryService.ListCategories(ctx, ownerID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(categories, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	cat, err := h.CategoryService.GetCategoryByID(ctx, categoryID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.CategorySingleResponse{Category: cat})
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &category.UpdateCategoryRequest{
		Name:     body.Name,
		Color:    body.Color,
		IsIncome: body.IsIncome,
	}

	if body.Subcategories != nil {
		req.Subcategories = *body.Subcategories
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.UpdateCategory(ctx, categoryID, ownerID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoría actualizada con éxito"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.CategoryService.DeleteCategory(ctx, categoryID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Categoría eliminada con éxito"})
}
