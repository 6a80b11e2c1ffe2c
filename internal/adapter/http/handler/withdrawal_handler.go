package handler

import (
	"tipbot/internal/adapter/http/dto"
	"tipbot/internal/adapter/http/middleware"
	"tipbot/internal/core/ports"
	"tipbot/pkg/apperror"
	"tipbot/pkg/response"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles the two-step withdrawal endpoints.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

// Prepare handles POST /api/v1/withdrawals/prepare.
func (h *WithdrawalHandler) Prepare(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.Unauthenticated())
		return
	}

	var req dto.PrepareWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidArgument(err.Error()))
		return
	}

	prepared, err := h.withdrawalSvc.Prepare(c.Request.Context(), userID.(string), req.Amount, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PrepareWithdrawalResponse{
		PreparedID: prepared.ID,
		Amount:     prepared.Amount,
		Fee:        prepared.Fee,
		Address:    prepared.Address,
	})
}

// Execute handles POST /api/v1/withdrawals/execute.
func (h *WithdrawalHandler) Execute(c *gin.Context) {
	userID, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.Unauthenticated())
		return
	}

	var req dto.ExecuteWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.InvalidArgument(err.Error()))
		return
	}

	w, err := h.withdrawalSvc.Execute(c.Request.Context(), userID.(string), req.PreparedID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.WithdrawalResponse{
		ID:      w.ID,
		Amount:  w.Amount,
		Fee:     w.Fee,
		Address: w.Address,
		Status:  w.Status,
	})
}
