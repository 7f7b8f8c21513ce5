package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/contracts"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

func (h *Handler) CreateSavingGoal(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.SavingGoalCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	goal := &saving.SavingGoal{
		OwnerId:       ownerID,
		Name:          body.Name,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      body.Deadline,
		Category:      body.Category,
		Icon:          body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.SavingService.CreateGoal(ctx, goal); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SavingGoalCreateResponse{
		Message: "Meta de ahorro creada con éxito",
		Goal:    goal,
	})
}

func (h *Handler) ListSavingGoals(c *gin.Context) {
	pagination := h.parsePagination(c)

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse([]*saving.SavingGoal{}, pagination.Page, pagination.Limit, 0))
		return
	}

	ctx := c.Request.Context()
	goals, total, err := h.SavingService.ListGoals(ctx, ownerID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(goals, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetSavingGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	goal, err := h.SavingService.GetGoalByID(ctx, goalID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SavingGoalSingleResponse{
		Goal:     goal,
		Progress: goal.Progress(),
	})
}

func (h *Handler) UpdateSavingGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.SavingGoalUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &saving.UpdateGoalRequest{
		Name:          body.Name,
		TargetAmount:  body.TargetAmount,
		CurrentAmount: body.CurrentAmount,
		Deadline:      body.Deadline,
		Category:      body.Category,
		Icon:          body.Icon,
	}

	ctx := c.Request.Context()
	if err := h.SavingService.UpdateGoal(ctx, goalID, ownerID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta de ahorro actualizada con éxito"})
}

func (h *Handler) DeleteSavingGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.SavingService.DeleteGoal(ctx, goalID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Meta de ahorro eliminada con éxito"})
}

// DepositToSavingGoal adds funds to the goal without touching any account.
func (h *Handler) DepositToSavingGoal(c *gin.Context) {
	goalID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.SavingGoalDepositRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	if err := h.SavingService.Deposit(ctx, goalID, ownerID, body.Amount); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Aporte registrado con éxito"})
}
