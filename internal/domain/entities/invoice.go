package entities

import "time"

// InvoiceStatus is the billing lifecycle of an invoice.
//
// Revenue recognition: "paid" and "pending" both count as recognized revenue
// (pending is treated as forecastable income); "overdue" is excluded.

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice belongs to exactly one client. ClientName is a snapshot taken at
// creation time and is deliberately not refreshed when the client is renamed.
//
// Invariant: AmountTTC == AmountHT + TVA after creation and after any update
// touching either input field.
type Invoice struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"clientId"`
	ClientName  string        `json:"clientName"`
	Number      string        `json:"number"`
	AmountHT    float64       `json:"amountHT"`
	TVA         float64       `json:"tva"`
	AmountTTC   float64       `json:"amountTTC"`
	Status      InvoiceStatus `json:"status"`
	IssueDate   time.Time     `json:"issueDate"`
	DueDate     time.Time     `json:"dueDate"`
	Description string        `json:"description"`
	PDFURL      string        `json:"pdfUrl,omitempty"`
}

// CountsAsRevenue reports whether the invoice contributes to revenue rollups.
func (i Invoice) CountsAsRevenue() bool {
	return i.Status == InvoiceStatusPaid || i.Status == InvoiceStatusPending
}
