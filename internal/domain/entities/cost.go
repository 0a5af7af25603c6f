package entities

import "time"

type CostCategory string

const (
	CostCategoryOffice         CostCategory = "office"
	CostCategorySalaries       CostCategory = "salaries"
	CostCategoryCharges        CostCategory = "charges"
	CostCategorySubcontracting CostCategory = "subcontracting"
	CostCategoryMaterials      CostCategory = "materials"
	CostCategoryTransport      CostCategory = "transport"
	CostCategoryHousing        CostCategory = "housing"
	CostCategoryOther          CostCategory = "other"
)

// OfficeType discriminates overhead costs. Only meaningful when the cost
// category is "office".

type OfficeType string

const (
	OfficeTypeFixed    OfficeType = "fixed"
	OfficeTypeVariable OfficeType = "variable"
	OfficeTypePayroll  OfficeType = "payroll"
)

// Cost is an expense attributed to a client (or to the office pseudo-client
// for overhead) and optionally linked to one invoice. ClientName is a
// creation-time snapshot, same as on Invoice.
type Cost struct {
	ID             string       `json:"id"`
	ClientID       string       `json:"clientId"`
	ClientName     string       `json:"clientName"`
	InvoiceID      string       `json:"invoiceId,omitempty"`
	Description    string       `json:"description"`
	Amount         float64      `json:"amount"`
	Category       CostCategory `json:"category"`
	OfficeType     OfficeType   `json:"officeType,omitempty"`
	OfficeCategory string       `json:"officeCategory,omitempty"`
	Date           time.Time    `json:"date"`
}

// IsOffice reports whether the cost is an overhead expense.
func (c Cost) IsOffice() bool { return c.Category == CostCategoryOffice }

// OfficeCategoryCatalogue lists the sub-label catalogue per office type, used
// by entry forms and the overhead report.
func OfficeCategoryCatalogue(t OfficeType) []string {
	switch t {
	case OfficeTypeFixed:
		return []string{
			"google", "expert comptable", "chat gpt", "logiciel", "téléphone",
			"kandbazz", "bureau", "assurance maladie", "frais bancaire",
			"linkedin", "voiture", "assurance voiture", "assurance société",
			"mutuelle", "retraite", "autre",
		}
	case OfficeTypeVariable:
		return []string{"essence", "péage", "formation", "outils", "hotel", "vêtements", "autre"}
	case OfficeTypePayroll:
		return []string{"salaire", "charge", "autre"}
	default:
		return nil
	}
}
