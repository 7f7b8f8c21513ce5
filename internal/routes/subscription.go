package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/contracts"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

func (h *Handler) CreateSubscription(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.SubscriptionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	sub := &subscription.Subscription{
		OwnerId:    ownerID,
		Name:       body.Name,
		Category:   body.Category,
		Amount:     body.Amount,
		BillingDay: body.BillingDay,
		Type:       subscription.Types(body.Type),
		IconName:   body.IconName,
		EndDate:    body.EndDate,
	}

	ctx := c.Request.Context()
	if err := h.SubscriptionService.CreateSubscription(ctx, sub); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.SubscriptionCreateResponse{
		Message:      "Servicio creado con éxito",
		Subscription: sub,
	})
}

func (h *Handler) ListSubscriptions(c *gin.Context) {
	pagination := h.parsePagination(c)

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse([]*subscription.Subscription{}, pagination.Page, pagination.Limit, 0))
		return
	}

	ctx := c.Request.Context()
	subscriptions, total, err := h.SubscriptionService.ListSubscriptions(ctx, ownerID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(subscriptions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetSubscription(c *gin.Context) {
	subscriptionID, err := pkg.ParseULID(c.Param("id"))
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
	sub, err := h.SubscriptionService.GetSubscriptionByID(ctx, subscriptionID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.SubscriptionSingleResponse{Subscription: sub})
}

func (h *Handler) UpdateSubscription(c *gin.Context) {
	subscriptionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.SubscriptionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &subscription.UpdateSubscriptionRequest{
		Name:       body.Name,
		Category:   body.Category,
		Amount:     body.Amount,
		BillingDay: body.BillingDay,
		IconName:   body.IconName,
		EndDate:    body.EndDate,
	}

	if body.Type != nil {
		t := subscription.Types(*body.Type)
		req.Type = &t
	}

	ctx := c.Request.Context()
	if err := h.SubscriptionService.UpdateSubscription(ctx, subscriptionID, ownerID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Servicio actualizado con éxito"})
}

func (h *Handler) DeleteSubscription(c *gin.Context) {
	subscriptionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.SubscriptionService.DeleteSubscription(ctx, subscriptionID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Servicio eliminado con éxito"})
}
