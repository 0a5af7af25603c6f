package analytics

import (
	"time"

	"maintup/internal/domain/entities"
)

// BuildAnnualReport rolls a calendar year up into totals, per-client rows and
// a dense monthly breakdown. When the year carries office costs, a synthetic
// overhead row is appended after the real clients: revenue 0, profit equal to
// the negated office total, excluded from revenueShare.
func BuildAnnualReport(clients []entities.Client, invoices []entities.Invoice, costs []entities.Cost, year int) entities.AnnualReport {
	yearInvoices := make([]entities.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.CountsAsRevenue() && inv.IssueDate.Year() == year {
			yearInvoices = append(yearInvoices, inv)
		}
	}
	yearCosts := make([]entities.Cost, 0, len(costs))
	for _, c := range costs {
		if c.Date.Year() == year {
			yearCosts = append(yearCosts, c)
		}
	}

	var totalRevenue, totalCosts float64
	for _, inv := range yearInvoices {
		totalRevenue += inv.AmountHT
	}
	for _, c := range yearCosts {
		totalCosts += c.Amount
	}
	totalProfit := totalRevenue - totalCosts

	clientsData := make([]entities.ClientAnnualData, 0, len(clients)+1)
	for _, client := range clients {
		var revenue, clientCosts float64
		var count int
		for _, inv := range yearInvoices {
			if inv.ClientID == client.ID {
				revenue += inv.AmountHT
				count++
			}
		}
		for _, c := range yearCosts {
			if c.ClientID == client.ID {
				clientCosts += c.Amount
			}
		}
		profit := revenue - clientCosts
		share := float64(0)
		if totalRevenue > 0 {
			share = revenue / totalRevenue * 100
		}
		clientsData = append(clientsData, entities.ClientAnnualData{
			ClientID:      client.ID,
			ClientName:    client.Name,
			Revenue:       revenue,
			Costs:         clientCosts,
			Profit:        profit,
			Margin:        margin(profit, revenue),
			RevenueShare:  share,
			InvoicesCount: count,
		})
	}

	var officeTotal float64
	officeSeen := false
	for _, c := range yearCosts {
		if c.IsOffice() {
			officeTotal += c.Amount
			officeSeen = true
		}
	}
	if officeSeen {
		clientsData = append(clientsData, entities.ClientAnnualData{
			ClientID:   entities.OfficeClientID,
			ClientName: "Charges Bureau",
			Costs:      officeTotal,
			Profit:     -officeTotal,
		})
	}

	return entities.AnnualReport{
		Year:             year,
		TotalRevenue:     totalRevenue,
		TotalCosts:       totalCosts,
		TotalProfit:      totalProfit,
		AverageMargin:    margin(totalProfit, totalRevenue),
		ClientsData:      clientsData,
		MonthlyBreakdown: MonthlyData(yearInvoices, yearCosts, year),
	}
}

// BuildMonthlyReport rolls one month up and keeps the literal contributing
// invoices and costs for drill-down display.
func BuildMonthlyReport(invoices []entities.Invoice, costs []entities.Cost, month time.Month, year int) entities.MonthlyReport {
	label := monthLabel(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))

	monthInvoices := make([]entities.Invoice, 0)
	var revenue float64
	for _, inv := range invoices {
		if inv.CountsAsRevenue() && monthLabel(inv.IssueDate) == label {
			monthInvoices = append(monthInvoices, inv)
			revenue += inv.AmountHT
		}
	}
	monthCosts := make([]entities.Cost, 0)
	var costsTotal float64
	for _, c := range costs {
		if monthLabel(c.Date) == label {
			monthCosts = append(monthCosts, c)
			costsTotal += c.Amount
		}
	}

	profit := revenue - costsTotal
	return entities.MonthlyReport{
		Month:     label,
		Revenue:   revenue,
		Costs:     costsTotal,
		Profit:    profit,
		Margin:    margin(profit, revenue),
		Invoices:  monthInvoices,
		CostsList: monthCosts,
	}
}
