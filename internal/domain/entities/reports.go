package entities

// MonthlyData is one point of a dense monthly series. Month is the formatted
// "Jan 2006" label used as the grouping key.
type MonthlyData struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
}

// MonthlyClientData is the per-client variant of MonthlyData.
type MonthlyClientData struct {
	Month         string  `json:"month"`
	Year          int     `json:"year"`
	Revenue       float64 `json:"revenue"`
	Costs         float64 `json:"costs"`
	Profit        float64 `json:"profit"`
	Margin        float64 `json:"margin"`
	InvoicesCount int     `json:"invoicesCount"`
}

// ClientAnnualData is one client row of an annual report. RevenueShare is the
// client's share of the year's total revenue, in percent.
type ClientAnnualData struct {
	ClientID      string  `json:"clientId"`
	ClientName    string  `json:"clientName"`
	Revenue       float64 `json:"revenue"`
	Costs         float64 `json:"costs"`
	Profit        float64 `json:"profit"`
	Margin        float64 `json:"margin"`
	RevenueShare  float64 `json:"revenueShare"`
	InvoicesCount int     `json:"invoicesCount"`
}

// AnnualReport is the calendar-year rollup. ClientsData may end with a
// synthetic office row aggregating overhead costs (revenue 0, negative
// profit) when any office cost exists for the year.
type AnnualReport struct {
	Year             int                `json:"year"`
	TotalRevenue     float64            `json:"totalRevenue"`
	TotalCosts       float64            `json:"totalCosts"`
	TotalProfit      float64            `json:"totalProfit"`
	AverageMargin    float64            `json:"averageMargin"`
	ClientsData      []ClientAnnualData `json:"clientsData"`
	MonthlyBreakdown []MonthlyData      `json:"monthlyBreakdown"`
}

// MonthlyReport is a single-month rollup plus the literal contributing
// records for drill-down display.
type MonthlyReport struct {
	Month     string    `json:"month"`
	Revenue   float64   `json:"revenue"`
	Costs     float64   `json:"costs"`
	Profit    float64   `json:"profit"`
	Margin    float64   `json:"margin"`
	Invoices  []Invoice `json:"invoices"`
	CostsList []Cost    `json:"costsList"`
}
