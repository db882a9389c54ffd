package enum

import "encoding/json"

// InvoiceStatus is derived from the remaining balance, never stored:
// an invoice is Open while balance > 0 and Settled once it reaches zero
// (or below, for invoices overpaid at creation).
type InvoiceStatus int

const (
	InvoiceStatusOpen    InvoiceStatus = 0
	InvoiceStatusSettled InvoiceStatus = 1
)

func (s InvoiceStatus) String() string {
	if s == InvoiceStatusSettled {
		return "Settled"
	}
	return "Open"
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// StatusForBalance maps a remaining balance to its invoice status
func StatusForBalance(remaining float64) InvoiceStatus {
	if remaining > 0 {
		return InvoiceStatusOpen
	}
	return InvoiceStatusSettled
}
