package entities

// Collection names as they appear in URLs and in the persisted document.
const (
	CollectionClients   = "clients"
	CollectionInvoices  = "invoices"
	CollectionCosts     = "costs"
	CollectionCostGrids = "costGrids"
)

// Collections lists every collection name, in document order.
var Collections = []string{
	CollectionClients,
	CollectionInvoices,
	CollectionCosts,
	CollectionCostGrids,
}

// RawDocument is the persisted state: four array-valued collections of raw
// JSON objects in a single document. The API performs no schema checks, so
// the store must carry records verbatim: fields outside the known shapes and
// wrongly typed values are kept as sent, and a bulk sync followed by a GET
// returns the same data.
type RawDocument struct {
	Clients   []map[string]any `json:"clients"`
	Invoices  []map[string]any `json:"invoices"`
	Costs     []map[string]any `json:"costs"`
	CostGrids []map[string]any `json:"costGrids"`
}

// Normalize replaces nil collections with empty slices so the document always
// marshals as four arrays, never null.
func (d *RawDocument) Normalize() {
	if d.Clients == nil {
		d.Clients = []map[string]any{}
	}
	if d.Invoices == nil {
		d.Invoices = []map[string]any{}
	}
	if d.Costs == nil {
		d.Costs = []map[string]any{}
	}
	if d.CostGrids == nil {
		d.CostGrids = []map[string]any{}
	}
}

// Collection returns the named collection, reporting false for names outside
// the routed four.
func (d *RawDocument) Collection(name string) ([]map[string]any, bool) {
	switch name {
	case CollectionClients:
		return d.Clients, true
	case CollectionInvoices:
		return d.Invoices, true
	case CollectionCosts:
		return d.Costs, true
	case CollectionCostGrids:
		return d.CostGrids, true
	default:
		return nil, false
	}
}

// SetCollection replaces the named collection, reporting false for unknown
// names.
func (d *RawDocument) SetCollection(name string, items []map[string]any) bool {
	switch name {
	case CollectionClients:
		d.Clients = items
	case CollectionInvoices:
		d.Invoices = items
	case CollectionCosts:
		d.Costs = items
	case CollectionCostGrids:
		d.CostGrids = items
	default:
		return false
	}
	return true
}

// EmptyRawDocument returns a normalized document with no records.
func EmptyRawDocument() RawDocument {
	d := RawDocument{}
	d.Normalize()
	return d
}

// Document is the typed view of the same four collections, used by the
// offline client and the analytics functions. It models the fields the
// application reads; the server stores RawDocument and never projects
// through this type.
type Document struct {
	Clients   []Client   `json:"clients"`
	Invoices  []Invoice  `json:"invoices"`
	Costs     []Cost     `json:"costs"`
	CostGrids []CostGrid `json:"costGrids"`
}

// Normalize replaces nil collections with empty slices, same as on
// RawDocument.
func (d *Document) Normalize() {
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
	}
	if d.Costs == nil {
		d.Costs = []Cost{}
	}
	if d.CostGrids == nil {
		d.CostGrids = []CostGrid{}
	}
}

// EmptyDocument returns a normalized typed document with no records.
func EmptyDocument() Document {
	d := Document{}
	d.Normalize()
	return d
}
