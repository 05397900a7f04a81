package handlers

import (
	"hotel_pos_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Monetary values stay exact decimals inside the services; rounding to
// two places happens here, at display time only.

func cartTotalsResponse(totals models.CartTotals) gin.H {
	return gin.H{
		"subtotal": totals.Subtotal.StringFixed(2),
		"tax":      totals.Tax.StringFixed(2),
		"total":    totals.Total.StringFixed(2),
	}
}

func ledgerTotalsResponse(totals models.LedgerTotals) gin.H {
	return gin.H{
		"total_income":   totals.TotalIncome.StringFixed(2),
		"total_expenses": totals.TotalExpenses.StringFixed(2),
	}
}

func dashboardResponse(snapshot models.DashboardSnapshot) gin.H {
	return gin.H{
		"item_count":        snapshot.ItemCount,
		"total_revenue":     snapshot.TotalRevenue.StringFixed(2),
		"cash_on_hand":      snapshot.CashOnHand.StringFixed(2),
		"transaction_count": snapshot.TransactionCount,
	}
}
