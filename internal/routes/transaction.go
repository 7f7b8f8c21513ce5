package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/contracts"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

func (h *Handler) CreateTransaction(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	accountID, err := pkg.ParseULID(body.AccountId)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
		return
	}

	var categoryID *string
	if body.CategoryId != "" {
		categoryID = &body.CategoryId
	}
	parsedCategoryID, err := pkg.ParseULIDPtr(categoryID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
		return
	}

	t := &transaction.Transaction{
		OwnerId:    ownerID,
		AccountId:  accountID,
		CategoryId: parsedCategoryID,
		Type:       transaction.Types(body.Type),
		Amount:     body.Amount,
		Label:      body.Label,
		Notes:      body.Notes,
		Date:       body.Date,
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.PostTransaction(ctx, t); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transacción registrada con éxito",
		Transaction: t,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	pagination := h.parsePagination(c)

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse([]*transaction.Transaction{}, pagination.Page, pagination.Limit, 0))
		return
	}

	var accountFilter *string
	if v := c.Query("account_id"); v != "" {
		accountFilter = &v
	}
	parsedAccountID, err := pkg.ParseULIDPtr(accountFilter)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
		return
	}

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAllTransactions(ctx, ownerID, parsedAccountID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	t, err := h.TransactionService.GetTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: t})
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	changes := &transaction.Changes{
		Label:  body.Label,
		Notes:  body.Notes,
		Amount: body.Amount,
		Date:   body.Date,
	}

	if body.Type != nil {
		t := transaction.Types(*body.Type)
		changes.Type = &t
	}

	if body.AccountId != nil {
		accountID, err := pkg.ParseULID(*body.AccountId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("account_id", "formato inválido"))
			return
		}
		changes.AccountId = &accountID
	}

	if body.CategoryId != nil {
		categoryID, err := pkg.ParseULIDPtr(body.CategoryId)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("category_id", "formato inválido"))
			return
		}
		changes.CategoryId = categoryID
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.ReviseTransaction(ctx, transactionID, ownerID, changes); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transacción actualizada con éxito"})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.TransactionService.RetractTransaction(ctx, transactionID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transacción eliminada con éxito"})
}
