package handler

import (
	"tipbot/internal/adapter/http/dto"
	"tipbot/internal/adapter/http/middleware"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"
	"tipbot/pkg/response"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles account-linking and consent endpoints.
type AccountHandler struct {
	onboardingSvc ports.OnboardingService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(onboardingSvc ports.OnboardingService) *AccountHandler {
	return &AccountHandler{onboardingSvc: onboardingSvc}
}

// LinkAccount handles POST /api/v1/accounts/link.
func (h *AccountHandler) LinkAccount(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.Unauthenticated())
		return
	}

	edge, err := h.onboardingSvc.LinkPlatformAccount(c.Request.Context(), userID.(string))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.LinkedAccountResponse{
		AccountID:       edge.AccountID,
		Primary:         edge.Primary,
		BalanceUnlocked: edge.BalanceUnlocked,
	})
}

// AgreeDisclaimer handles POST /api/v1/users/consent.
func (h *AccountHandler) AgreeDisclaimer(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.Unauthenticated())
		return
	}

	if err := h.onboardingSvc.AgreeDisclaimer(c.Request.Context(), userID.(string)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"disclaimer_accepted": true})
}
