package entities

import "time"

// Client is a billed customer.
//
// The three total* fields are rollups cached at creation time. They are not
// kept consistent with later invoice/cost mutations; the analytics package
// recomputes correct values from the invoices and costs collections.
type Client struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	TotalInvoices float64   `json:"totalInvoices"`
	TotalCosts    float64   `json:"totalCosts"`
	TotalProfit   float64   `json:"totalProfit"`
}

// OfficeClientID is the reserved pseudo-client id under which overhead
// (office) costs are recorded. It never appears in the clients collection.
const OfficeClientID = "office"
