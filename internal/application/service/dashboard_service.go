package service

import (
	"context"

	"github.com/alsyedgraphics/printshop-api/internal/domain/billing"
	"github.com/alsyedgraphics/printshop-api/internal/domain/repository"
)

// DashboardService derives dashboard summaries from the client and invoice
// collections. Nothing here is persisted; every call recomputes from the
// current state.
type DashboardService struct {
	clientRepo  repository.ClientRepository
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(clientRepo repository.ClientRepository, invoiceRepo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{
		clientRepo:  clientRepo,
		invoiceRepo: invoiceRepo,
	}
}

// GetSummary returns the dashboard totals
func (s *DashboardService) GetSummary(ctx context.Context) (*billing.Summary, error) {
	clientCount, err := s.clientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := billing.Summarize(clientCount, invoices)
	return &summary, nil
}

// GetClientRevenue returns invoice totals aggregated per customer, highest
// revenue first. Feeds the report chart.
func (s *DashboardService) GetClientRevenue(ctx context.Context) ([]billing.ClientRevenue, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return billing.RevenueByClient(invoices), nil
}
