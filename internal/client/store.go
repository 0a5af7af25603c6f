// Package client is the offline-first working copy of the accounting
// document. Every mutation tries the REST API first and falls back to a
// local-only write marked by a single document-level "unsynced" flag; a bulk
// /sync push later reconciles by overwriting the server wholesale.
//
// Known limitation, inherited by design: there is no per-operation log and no
// merge. Two divergent copies syncing one after the other resolve as last
// writer wins, whole document.
package client

import (
	"context"
	"log"
	"sync"
	"time"

	"maintup/internal/domain/entities"
)

const (
	defaultRetryInterval = 30 * time.Second
	adminSecret          = "THABARY"
)

// Store holds the believed-current state of all four collections.
type Store struct {
	mu           sync.Mutex
	api          *API
	snapshotPath string
	retryEvery   time.Duration

	doc          entities.Document
	unsynced     bool
	apiAvailable bool
	currentUser  entities.User

	online chan struct{}
}

func NewStore(api *API, snapshotPath string) *Store {
	if snapshotPath == "" {
		snapshotPath = defaultSnapshotFile
	}
	return &Store{
		api:          api,
		snapshotPath: snapshotPath,
		retryEvery:   defaultRetryInterval,
		doc:          entities.EmptyDocument(),
		apiAvailable: true,
		currentUser: entities.User{
			ID:    "1",
			Name:  "Admin User",
			Email: "admin@maintup.fr",
			Role:  entities.UserRoleViewer,
		},
		online: make(chan struct{}, 1),
	}
}

// Load runs the startup protocol: read the last snapshot, then try the API.
//   - API unreachable: the snapshot becomes the working copy (offline mode).
//   - API reachable, snapshot dirty: the snapshot wins and is pushed via a
//     bulk sync (an offline editing session just ended).
//   - API reachable, snapshot clean: the server response wins.
//
// Offline startup is not an error; Load only fails on a broken snapshot
// write.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, snapErr := readSnapshot(s.snapshotPath)
	if snapErr == nil {
		s.unsynced = snap.Unsynced
	}

	doc, err := s.api.FetchAll(ctx)
	if err != nil {
		s.apiAvailable = false
		if snapErr == nil {
			s.doc = snap.Document
		}
		return nil
	}

	s.apiAvailable = true
	if snapErr == nil && snap.Unsynced {
		s.doc = snap.Document
		// A failed push is not a startup failure: syncLocked already flagged
		// the API down and kept the dirty snapshot, so the retry loop picks
		// it up.
		if err := s.syncLocked(ctx); err != nil {
			log.Printf("startup sync failed: %v", err)
		}
		return nil
	}

	s.doc = doc
	s.unsynced = false
	return s.persistLocked()
}

// Sync pushes the whole working copy to the server. Success clears the dirty
// flag and marks the API available again; failure flags the API down so the
// retry loop keeps trying.
func (s *Store) Sync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked(ctx)
}

func (s *Store) syncLocked(ctx context.Context) error {
	if err := s.api.Sync(ctx, s.doc); err != nil {
		s.apiAvailable = false
		s.unsynced = true
		if perr := s.persistLocked(); perr != nil {
			log.Printf("snapshot persist failed: %v", perr)
		}
		return err
	}
	s.apiAvailable = true
	s.unsynced = false
	return s.persistLocked()
}

// Run drives the recovery loop: an immediate sync on every NotifyOnline
// event, plus a fixed-interval retry while the API is marked unavailable.
// It blocks until ctx is cancelled.
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.retryEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.online:
			if err := s.Sync(ctx); err != nil {
				log.Printf("sync after online event failed: %v", err)
			}
		case <-ticker.C:
			if s.APIAvailable() {
				continue
			}
			if err := s.Sync(ctx); err != nil {
				log.Printf("periodic sync failed: %v", err)
			}
		}
	}
}

// NotifyOnline signals connectivity regained. Non-blocking; coalesces with a
// pending notification.
func (s *Store) NotifyOnline() {
	select {
	case s.online <- struct{}{}:
	default:
	}
}

// AddClient creates a client, letting the server assign id and rollup
// defaults. Offline, the fallback copy gets a time-based id, the current
// timestamp and zeroed rollups.
func (s *Store) AddClient(ctx context.Context, c entities.Client) entities.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := toAttrs(c, "id", "createdAt", "totalInvoices", "totalCosts", "totalProfit")
	var created entities.Client
	if err := s.api.Create(ctx, entities.CollectionClients, attrs, &created); err != nil {
		created = c
		created.ID = localID()
		created.CreatedAt = time.Now().UTC()
		created.TotalInvoices, created.TotalCosts, created.TotalProfit = 0, 0, 0
		s.unsynced = true
	}
	s.doc.Clients = append(s.doc.Clients, created)
	s.persistOrLog()
	return created
}

func (s *Store) UpdateClient(ctx context.Context, id string, patch map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated entities.Client
	if err := s.api.Update(ctx, entities.CollectionClients, id, patch, &updated); err == nil {
		for i := range s.doc.Clients {
			if s.doc.Clients[i].ID == id {
				s.doc.Clients[i] = updated
			}
		}
	} else {
		for i := range s.doc.Clients {
			if s.doc.Clients[i].ID == id {
				mergeEntity(&s.doc.Clients[i], patch)
			}
		}
		s.unsynced = true
	}
	s.persistOrLog()
}

// DeleteClient removes the client and cascades to its invoices and costs.
// The cascade only happens locally, so the snapshot is always marked dirty:
// the next bulk sync propagates the cascade to the server.
func (s *Store) DeleteClient(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.Delete(ctx, entities.CollectionClients, id); err != nil {
		log.Printf("delete client %s: %v", id, err)
	}

	clients := s.doc.Clients[:0]
	for _, c := range s.doc.Clients {
		if c.ID != id {
			clients = append(clients, c)
		}
	}
	s.doc.Clients = clients

	invoices := s.doc.Invoices[:0]
	for _, inv := range s.doc.Invoices {
		if inv.ClientID != id {
			invoices = append(invoices, inv)
		}
	}
	s.doc.Invoices = invoices

	costs := s.doc.Costs[:0]
	for _, c := range s.doc.Costs {
		if c.ClientID != id {
			costs = append(costs, c)
		}
	}
	s.doc.Costs = costs

	s.unsynced = true
	s.persistOrLog()
}

// AddInvoice creates an invoice. The offline fallback computes amountTTC
// itself so the HT+TVA invariant holds on both paths.
func (s *Store) AddInvoice(ctx context.Context, inv entities.Invoice) entities.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := toAttrs(inv, "id", "amountTTC")
	var created entities.Invoice
	if err := s.api.Create(ctx, entities.CollectionInvoices, attrs, &created); err != nil {
		created = inv
		created.ID = localID()
		created.AmountTTC = inv.AmountHT + inv.TVA
		s.unsynced = true
	}
	s.doc.Invoices = append(s.doc.Invoices, created)
	s.persistOrLog()
	return created
}

func (s *Store) UpdateInvoice(ctx context.Context, id string, patch map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated entities.Invoice
	if err := s.api.Update(ctx, entities.CollectionInvoices, id, patch, &updated); err == nil {
		for i := range s.doc.Invoices {
			if s.doc.Invoices[i].ID == id {
				s.doc.Invoices[i] = updated
			}
		}
	} else {
		for i := range s.doc.Invoices {
			if s.doc.Invoices[i].ID == id {
				mergeEntity(&s.doc.Invoices[i], patch)
				if patchHasAny(patch, "amountHT", "tva") {
					s.doc.Invoices[i].AmountTTC = s.doc.Invoices[i].AmountHT + s.doc.Invoices[i].TVA
				}
			}
		}
		s.unsynced = true
	}
	s.persistOrLog()
}

// DeleteInvoice removes the invoice and cascades to the costs referencing
// it. Like DeleteClient, the cascade is local-only, so the snapshot is
// always marked dirty.
func (s *Store) DeleteInvoice(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.Delete(ctx, entities.CollectionInvoices, id); err != nil {
		log.Printf("delete invoice %s: %v", id, err)
	}

	invoices := s.doc.Invoices[:0]
	for _, inv := range s.doc.Invoices {
		if inv.ID != id {
			invoices = append(invoices, inv)
		}
	}
	s.doc.Invoices = invoices

	costs := s.doc.Costs[:0]
	for _, c := range s.doc.Costs {
		if c.InvoiceID != id {
			costs = append(costs, c)
		}
	}
	s.doc.Costs = costs

	s.unsynced = true
	s.persistOrLog()
}

func (s *Store) AddCost(ctx context.Context, cost entities.Cost) entities.Cost {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := toAttrs(cost, "id")
	var created entities.Cost
	if err := s.api.Create(ctx, entities.CollectionCosts, attrs, &created); err != nil {
		created = cost
		created.ID = localID()
		s.unsynced = true
	}
	s.doc.Costs = append(s.doc.Costs, created)
	s.persistOrLog()
	return created
}

func (s *Store) UpdateCost(ctx context.Context, id string, patch map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated entities.Cost
	if err := s.api.Update(ctx, entities.CollectionCosts, id, patch, &updated); err == nil {
		for i := range s.doc.Costs {
			if s.doc.Costs[i].ID == id {
				s.doc.Costs[i] = updated
			}
		}
	} else {
		for i := range s.doc.Costs {
			if s.doc.Costs[i].ID == id {
				mergeEntity(&s.doc.Costs[i], patch)
			}
		}
		s.unsynced = true
	}
	s.persistOrLog()
}

// DeleteCost applies locally whatever the network outcome; only a failed
// REST delete marks the snapshot dirty (no cascade to propagate).
func (s *Store) DeleteCost(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.Delete(ctx, entities.CollectionCosts, id); err != nil {
		s.unsynced = true
	}
	costs := s.doc.Costs[:0]
	for _, c := range s.doc.Costs {
		if c.ID != id {
			costs = append(costs, c)
		}
	}
	s.doc.Costs = costs
	s.persistOrLog()
}

func (s *Store) AddCostGrid(ctx context.Context, grid entities.CostGrid) entities.CostGrid {
	s.mu.Lock()
	defer s.mu.Unlock()

	attrs := toAttrs(grid, "id")
	var created entities.CostGrid
	if err := s.api.Create(ctx, entities.CollectionCostGrids, attrs, &created); err != nil {
		created = grid
		created.ID = localID()
		s.unsynced = true
	}
	s.doc.CostGrids = append(s.doc.CostGrids, created)
	s.persistOrLog()
	return created
}

func (s *Store) UpdateCostGrid(ctx context.Context, id string, patch map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var updated entities.CostGrid
	if err := s.api.Update(ctx, entities.CollectionCostGrids, id, patch, &updated); err == nil {
		for i := range s.doc.CostGrids {
			if s.doc.CostGrids[i].ID == id {
				s.doc.CostGrids[i] = updated
			}
		}
	} else {
		for i := range s.doc.CostGrids {
			if s.doc.CostGrids[i].ID == id {
				mergeEntity(&s.doc.CostGrids[i], patch)
			}
		}
		s.unsynced = true
	}
	s.persistOrLog()
}

func (s *Store) DeleteCostGrid(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.api.Delete(ctx, entities.CollectionCostGrids, id); err != nil {
		s.unsynced = true
	}
	grids := s.doc.CostGrids[:0]
	for _, g := range s.doc.CostGrids {
		if g.ID != id {
			grids = append(grids, g)
		}
	}
	s.doc.CostGrids = grids
	s.persistOrLog()
}

func (s *Store) persistOrLog() {
	if err := s.persistLocked(); err != nil {
		log.Printf("snapshot persist failed: %v", err)
	}
}

func (s *Store) persistLocked() error {
	return writeSnapshot(s.snapshotPath, snapshot{Document: s.doc, Unsynced: s.unsynced})
}
