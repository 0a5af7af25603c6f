package client

import (
	"time"

	"maintup/internal/analytics"
	"maintup/internal/domain/entities"
)

// Read accessors return copies so callers can't mutate the working copy
// behind the store's back.

func (s *Store) Clients() []entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Client, len(s.doc.Clients))
	copy(out, s.doc.Clients)
	return out
}

func (s *Store) Invoices() []entities.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Invoice, len(s.doc.Invoices))
	copy(out, s.doc.Invoices)
	return out
}

func (s *Store) Costs() []entities.Cost {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.Cost, len(s.doc.Costs))
	copy(out, s.doc.Costs)
	return out
}

func (s *Store) CostGrids() []entities.CostGrid {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entities.CostGrid, len(s.doc.CostGrids))
	copy(out, s.doc.CostGrids)
	return out
}

// Document returns a normalized copy of the whole working copy.
func (s *Store) Document() entities.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.doc
	doc.Clients = append([]entities.Client(nil), s.doc.Clients...)
	doc.Invoices = append([]entities.Invoice(nil), s.doc.Invoices...)
	doc.Costs = append([]entities.Cost(nil), s.doc.Costs...)
	doc.CostGrids = append([]entities.CostGrid(nil), s.doc.CostGrids...)
	doc.Normalize()
	return doc
}

// Unsynced reports whether the working copy may differ from the server.
func (s *Store) Unsynced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unsynced
}

// APIAvailable reports the outcome of the last API probe.
func (s *Store) APIAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apiAvailable
}

// Analytics views, recomputed from the working copy on every call.

func (s *Store) MonthlyData() []entities.MonthlyData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.MonthlyData(s.doc.Invoices, s.doc.Costs, analytics.ReferenceYear)
}

func (s *Store) TotalRevenue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.TotalRevenue(s.doc.Invoices)
}

func (s *Store) TotalCosts() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.TotalCosts(s.doc.Costs)
}

func (s *Store) TotalProfit() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.TotalProfit(s.doc.Invoices, s.doc.Costs)
}

func (s *Store) ClientRevenue(clientID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.ClientRevenue(s.doc.Invoices, clientID)
}

func (s *Store) ClientProfit(clientID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.ClientProfit(s.doc.Invoices, s.doc.Costs, clientID)
}

func (s *Store) ClientMonthlyData(clientID string, year int) []entities.MonthlyClientData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.ClientMonthlyData(s.doc.Invoices, s.doc.Costs, clientID, year)
}

func (s *Store) AnnualReport(year int) entities.AnnualReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.BuildAnnualReport(s.doc.Clients, s.doc.Invoices, s.doc.Costs, year)
}

func (s *Store) MonthlyReport(month time.Month, year int) entities.MonthlyReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return analytics.BuildMonthlyReport(s.doc.Invoices, s.doc.Costs, month, year)
}

// Session actor. The role gate is a UI affordance, not a security boundary;
// the backend trusts its bearer token only.

func (s *Store) CurrentUser() entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser
}

func (s *Store) SetCurrentUser(u entities.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser = u
}

// ElevateRole grants admin when the shared secret matches. Returns whether
// the elevation took effect.
func (s *Store) ElevateRole(secret string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if secret != adminSecret {
		return false
	}
	s.currentUser.Role = entities.UserRoleAdmin
	return true
}

// DemoteRole drops back to viewer.
func (s *Store) DemoteRole() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentUser.Role = entities.UserRoleViewer
}
