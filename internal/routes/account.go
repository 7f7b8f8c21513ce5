package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/contracts"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

func (h *Handler) CreateAccount(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.AccountCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &account.CreateAccountRequest{
		OwnerId:        ownerID,
		Name:           body.Name,
		Type:           account.AccountType(body.Type),
		OpeningBalance: body.InitialBalance,
		IsCredit:       body.IsCredit,
	}

	ctx := c.Request.Context()
	acc, err := h.TransactionService.OpenAccount(ctx, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.AccountCreateResponse{
		Message: "Cuenta creada con éxito",
		Account: acc,
	})
}

func (h *Handler) ListAccounts(c *gin.Context) {
	pagination := h.parsePagination(c)

	// Reads without a session answer an empty page instead of failing.
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, pkg.NewPaginatedResponse([]*account.Account{}, pagination.Page, pagination.Limit, 0))
		return
	}

	ctx := c.Request.Context()
	accounts, total, err := h.AccountService.ListAccounts(ctx, ownerID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(accounts, pagination.Page, pagination.Limit, total))
}

func (h *Handler) GetAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
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
	acc, err := h.AccountService.GetAccountByID(ctx, accountID, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountSingleResponse{Account: acc})
}

func (h *Handler) UpdateAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.AccountUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &account.UpdateAccountRequest{
		Name:     body.Name,
		IsCredit: body.IsCredit,
	}

	if body.Type != nil {
		t := account.AccountType(*body.Type)
		req.Type = &t
	}

	ctx := c.Request.Context()
	if err := h.AccountService.UpdateAccount(ctx, accountID, ownerID, req); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cuenta actualizada con éxito"})
}

func (h *Handler) DeleteAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.AccountService.DeleteAccount(ctx, accountID, ownerID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Cuenta eliminada con éxito"})
}

// DepositToAccount posts a manual income transaction against the account.
func (h *Handler) DepositToAccount(c *gin.Context) {
	accountID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.AccountDepositRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	ctx := c.Request.Context()
	t, err := h.TransactionService.ManualDeposit(ctx, accountID, ownerID, body.Amount)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Depósito registrado con éxito",
		Transaction: t,
	})
}

func (h *Handler) GetTotalBalance(c *gin.Context) {
	ownerID, err := h.GetOwnerIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusOK, contracts.AccountBalanceResponse{TotalBalance: 0})
		return
	}

	ctx := c.Request.Context()
	total, err := h.AccountService.GetTotalBalance(ctx, ownerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.AccountBalanceResponse{TotalBalance: total})
}
