package handlers

import (
	"errors"
	"net/http"
	"time"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"
	"hotel_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// LedgerHandler holds the ledger service.
type LedgerHandler struct {
	ledgerService services.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ls services.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ls}
}

// CreateTransactionRequest is used for recording a cash movement.
// OccurredAt defaults to now when omitted.
type CreateTransactionRequest struct {
	Kind        string          `json:"kind" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" binding:"required"`
	OccurredAt  *time.Time      `json:"occurred_at"`
}

// SetCashRequest carries the manual cash-on-hand override.
type SetCashRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreateTransaction handles recording an income or expense entry.
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	occurredAt := time.Now().UTC()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	tx, err := h.ledgerService.Record(req.Kind, req.Amount, req.Description, occurredAt)
	if err != nil {
		respondLedgerError(c, err, "CreateTransaction")
		return
	}
	c.JSON(http.StatusCreated, tx)
}

// GetTransactions handles listing the log, optionally filtered by kind.
func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	var filters models.TransactionFilters
	if kind := c.Query("kind"); kind != "" {
		filters.Kind = &kind
	}
	c.JSON(http.StatusOK, gin.H{"data": h.ledgerService.List(filters)})
}

// DeleteTransaction handles removing an entry and reversing its cash
// effect. Deleting an unknown id succeeds without changing anything.
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledgerService.Delete(c.Param("id")); err != nil {
		respondLedgerError(c, err, "DeleteTransaction")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// GetCash handles fetching the current cash-on-hand scalar.
func (h *LedgerHandler) GetCash(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cash_on_hand": h.ledgerService.Current().StringFixed(2)})
}

// SetCash handles the manual reconciliation override.
func (h *LedgerHandler) SetCash(c *gin.Context) {
	var req SetCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	if err := h.ledgerService.SetCashOnHand(req.Amount); err != nil {
		respondLedgerError(c, err, "SetCash")
		return
	}
	c.JSON(http.StatusOK, gin.H{"cash_on_hand": h.ledgerService.Current().StringFixed(2)})
}

// GetLedgerTotals handles fetching income/expense rollups from the log.
func (h *LedgerHandler) GetLedgerTotals(c *gin.Context) {
	c.JSON(http.StatusOK, ledgerTotalsResponse(h.ledgerService.Totals()))
}

func respondLedgerError(c *gin.Context, err error, op string) {
	utils.LogError(err, op+": ledger service error")
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid amount.", err.Error()))
	case errors.Is(err, services.ErrValidation):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid transaction data.", err.Error()))
	case errors.Is(err, repositories.ErrPersistence):
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to persist ledger state.", err.Error()))
	default:
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Ledger operation failed.", "Internal error"))
	}
}
