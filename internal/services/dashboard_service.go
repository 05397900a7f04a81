package services

import "hotel_pos_backend/internal/models"

// DashboardService is a read-only projection over catalog and ledger
// state, recomputed on every call. It holds no state of its own.
type DashboardService interface {
	Snapshot() models.DashboardSnapshot
}

type dashboardService struct {
	catalog CatalogService
	ledger  LedgerService
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(catalog CatalogService, ledger LedgerService) DashboardService {
	return &dashboardService{catalog: catalog, ledger: ledger}
}

func (s *dashboardService) Snapshot() models.DashboardSnapshot {
	totals := s.ledger.Totals()
	return models.DashboardSnapshot{
		ItemCount:        len(s.catalog.List(models.MenuItemFilters{})),
		TotalRevenue:     totals.TotalIncome,
		CashOnHand:       s.ledger.Current(),
		TransactionCount: len(s.ledger.List(models.TransactionFilters{})),
	}
}
