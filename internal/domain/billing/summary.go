package billing

import (
	"sort"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
)

// Summary holds the dashboard-level figures derived from the client and
// invoice collections. It is a pure projection, recomputed on demand.
type Summary struct {
	TotalClients      int64   `json:"total_clients"`
	TotalInvoices     int64   `json:"total_invoices"`
	TotalPaidAmount   float64 `json:"total_paid_amount"`
	TotalUnpaidAmount float64 `json:"total_unpaid_amount"`
}

// Summarize projects the invoice collection into dashboard totals. Paid is
// the amount actually collected so far; unpaid ignores negative balances
// from invoices overpaid at creation.
func Summarize(clientCount int64, invoices []entity.Invoice) Summary {
	summary := Summary{
		TotalClients:  clientCount,
		TotalInvoices: int64(len(invoices)),
	}

	for _, inv := range invoices {
		summary.TotalPaidAmount += inv.TotalAmount - inv.RemainingBalance
		if inv.RemainingBalance > 0 {
			summary.TotalUnpaidAmount += inv.RemainingBalance
		}
	}

	return summary
}

// ClientRevenue is one bar of the per-client revenue report
type ClientRevenue struct {
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
}

// RevenueByClient aggregates invoice totals per customer name, sorted by
// revenue descending (ties broken by name for deterministic output)
func RevenueByClient(invoices []entity.Invoice) []ClientRevenue {
	totals := make(map[string]float64)
	for _, inv := range invoices {
		totals[inv.CustomerName] += inv.TotalAmount
	}

	result := make([]ClientRevenue, 0, len(totals))
	for name, total := range totals {
		result = append(result, ClientRevenue{CustomerName: name, TotalAmount: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalAmount != result[j].TotalAmount {
			return result[i].TotalAmount > result[j].TotalAmount
		}
		return result[i].CustomerName < result[j].CustomerName
	})
	return result
}
