package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/account"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/category"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/saving"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/subscription"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/domain/transaction"
	appErrors "github.com/sergioleandroramirez97/contaduria-familiar/internal/errors"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/logger"
	"github.com/sergioleandroramirez97/contaduria-familiar/internal/pkg"
)

type Handler struct {
	AccountService      *account.Service
	TransactionService  *transaction.Service
	CategoryService     *category.Service
	SubscriptionService *subscription.Service
	SavingService       *saving.Service
}

// GetOwnerIDFromContext reads the identity the auth middleware attached.
// Requests without a verified token carry no owner id and fail here with
// NO_ACTIVE_SESSION.
func (h *Handler) GetOwnerIDFromContext(c *gin.Context) (uuid.UUID, error) {
	ownerIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.UUID{}, appErrors.ErrNoActiveSession
	}

	ownerID, err := pkg.ParseOwnerID(ownerIDStr.(string))
	if err != nil {
		return uuid.UUID{}, appErrors.ErrNoActiveSession.WithError(err)
	}

	return ownerID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
