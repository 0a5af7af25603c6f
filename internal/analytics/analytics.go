// Package analytics computes reporting views from the in-memory collections.
// Everything here is a pure function: no state, no caching, recomputed on
// every call.
//
// Revenue recognition: an invoice counts when its status is paid or pending
// (overdue excluded), and revenue always aggregates amountHT, never the
// tax-inclusive total.
package analytics

import (
	"time"

	"maintup/internal/domain/entities"
)

// ReferenceYear anchors the dashboard's fixed 12-month window.
const ReferenceYear = 2025

// monthLabel is the grouping key. Records group by formatted label equality,
// so "Mar 2025" and "Mar 2026" never collide across year boundaries.
func monthLabel(t time.Time) string {
	return t.Format("Jan 2006")
}

// MonthlyData computes the dense 12-month series for a calendar year. Months
// without records report zeroes; the series never omits a month.
func MonthlyData(invoices []entities.Invoice, costs []entities.Cost, year int) []entities.MonthlyData {
	series := make([]entities.MonthlyData, 0, 12)
	for m := time.January; m <= time.December; m++ {
		label := monthLabel(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC))

		var revenue float64
		for _, inv := range invoices {
			if inv.CountsAsRevenue() && monthLabel(inv.IssueDate) == label {
				revenue += inv.AmountHT
			}
		}
		var monthCosts float64
		for _, c := range costs {
			if monthLabel(c.Date) == label {
				monthCosts += c.Amount
			}
		}

		profit := revenue - monthCosts
		series = append(series, entities.MonthlyData{
			Month:   label,
			Revenue: revenue,
			Costs:   monthCosts,
			Profit:  profit,
			Margin:  margin(profit, revenue),
		})
	}
	return series
}

// TotalRevenue sums amountHT over all qualifying invoices.
func TotalRevenue(invoices []entities.Invoice) float64 {
	var total float64
	for _, inv := range invoices {
		if inv.CountsAsRevenue() {
			total += inv.AmountHT
		}
	}
	return total
}

// TotalCosts sums every cost regardless of category or client.
func TotalCosts(costs []entities.Cost) float64 {
	var total float64
	for _, c := range costs {
		total += c.Amount
	}
	return total
}

func TotalProfit(invoices []entities.Invoice, costs []entities.Cost) float64 {
	return TotalRevenue(invoices) - TotalCosts(costs)
}

// ClientRevenue sums qualifying invoice amountHT for one client.
func ClientRevenue(invoices []entities.Invoice, clientID string) float64 {
	var total float64
	for _, inv := range invoices {
		if inv.ClientID == clientID && inv.CountsAsRevenue() {
			total += inv.AmountHT
		}
	}
	return total
}

// ClientProfit is the client's qualifying revenue minus every cost attributed
// to the client.
func ClientProfit(invoices []entities.Invoice, costs []entities.Cost, clientID string) float64 {
	revenue := ClientRevenue(invoices, clientID)
	var total float64
	for _, c := range costs {
		if c.ClientID == clientID {
			total += c.Amount
		}
	}
	return revenue - total
}

// ClientMonthlyData is the per-client dense monthly series for a calendar
// year, including the number of contributing invoices per month.
func ClientMonthlyData(invoices []entities.Invoice, costs []entities.Cost, clientID string, year int) []entities.MonthlyClientData {
	series := make([]entities.MonthlyClientData, 0, 12)
	for m := time.January; m <= time.December; m++ {
		label := monthLabel(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC))

		var revenue float64
		var count int
		for _, inv := range invoices {
			if inv.ClientID == clientID && inv.CountsAsRevenue() && monthLabel(inv.IssueDate) == label {
				revenue += inv.AmountHT
				count++
			}
		}
		var monthCosts float64
		for _, c := range costs {
			if c.ClientID == clientID && monthLabel(c.Date) == label {
				monthCosts += c.Amount
			}
		}

		profit := revenue - monthCosts
		series = append(series, entities.MonthlyClientData{
			Month:         label,
			Year:          year,
			Revenue:       revenue,
			Costs:         monthCosts,
			Profit:        profit,
			Margin:        margin(profit, revenue),
			InvoicesCount: count,
		})
	}
	return series
}

func margin(profit, revenue float64) float64 {
	if revenue > 0 {
		return profit / revenue * 100
	}
	return 0
}
