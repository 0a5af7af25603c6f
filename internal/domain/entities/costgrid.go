package entities

// CostGridClient is one per-client rate entry in a pricing grid.
type CostGridClient struct {
	ClientID   string  `json:"clientId"`
	ClientName string  `json:"clientName"`
	Rate       float64 `json:"rate"`
	Notes      string  `json:"notes,omitempty"`
}

// CostGrid is a named reference table of per-client billing rates. It is not
// transactional data and has no cascade relationship with other collections.
type CostGrid struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Category string           `json:"category,omitempty"`
	Clients  []CostGridClient `json:"clients"`
}
