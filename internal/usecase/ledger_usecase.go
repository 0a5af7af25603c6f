package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"maintup/internal/domain/entities"
	"maintup/internal/usecase/interfaces"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidItemID     = errors.New("invalid item id")
)

// ILedgerUseCase exposes the uniform CRUD operations applied to the four
// collections, plus the whole-document bulk replace behind POST /sync.
//
// The API contract is schemaless: records are raw JSON objects end to end.
// Absent or wrongly typed fields are stored exactly as sent, so the created
// or updated item in a response is byte-equivalent to what a later GET
// returns.

type ILedgerUseCase interface {
	List(ctx context.Context, collection string) ([]map[string]any, error)
	Create(ctx context.Context, collection string, attrs map[string]any) (map[string]any, error)
	Update(ctx context.Context, collection, id string, attrs map[string]any) (map[string]any, error)
	Delete(ctx context.Context, collection, id string) error
	ReplaceAll(ctx context.Context, doc entities.RawDocument) error
}

type LedgerUseCase struct {
	repo interfaces.IDocumentRepository

	// Seams for deterministic tests; production uses the defaults.
	now   func() time.Time
	newID func() string
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.IDocumentRepository) *LedgerUseCase {
	return &LedgerUseCase{
		repo:  repo,
		now:   time.Now,
		newID: func() string { return strconv.FormatInt(time.Now().UnixMilli(), 10) },
	}
}

func (u *LedgerUseCase) List(ctx context.Context, collection string) ([]map[string]any, error) {
	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := doc.Collection(collection)
	if !ok {
		return nil, ErrUnknownCollection
	}
	return items, nil
}

// Create inserts a new entity built from attrs. The server assigns a
// time-based id and, for clients, injects the creation-time rollup defaults
// underneath the body: attrs win on conflict, mirroring the original wire
// behavior. Invoices always get amountTTC recomputed from amountHT + tva.
func (u *LedgerUseCase) Create(ctx context.Context, collection string, attrs map[string]any) (map[string]any, error) {
	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := doc.Collection(collection)
	if !ok {
		return nil, ErrUnknownCollection
	}

	item := map[string]any{"id": u.newID()}
	if collection == entities.CollectionClients {
		item["createdAt"] = u.now().UTC().Format(time.RFC3339Nano)
		item["totalInvoices"] = float64(0)
		item["totalCosts"] = float64(0)
		item["totalProfit"] = float64(0)
	}
	for k, v := range attrs {
		item[k] = v
	}
	if collection == entities.CollectionInvoices {
		recomputeAmountTTC(item)
	}

	doc.SetCollection(collection, append(items, item))
	if err := u.repo.Save(ctx, doc); err != nil {
		return nil, err
	}
	return item, nil
}

// Update shallow-merges attrs into the entity matching id. Unknown ids map to
// ErrItemNotFound. An invoice update touching amountHT or tva recomputes
// amountTTC so the invariant holds on every server-side path.
func (u *LedgerUseCase) Update(ctx context.Context, collection, id string, attrs map[string]any) (map[string]any, error) {
	if id == "" {
		return nil, ErrInvalidItemID
	}
	doc, err := u.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	items, ok := doc.Collection(collection)
	if !ok {
		return nil, ErrUnknownCollection
	}

	for _, item := range items {
		if itemID(item) != id {
			continue
		}
		for k, v := range attrs {
			item[k] = v
		}
		if collection == entities.CollectionInvoices {
			if _, ht := attrs["amountHT"]; ht {
				recomputeAmountTTC(item)
			} else if _, tva := attrs["tva"]; tva {
				recomputeAmountTTC(item)
			}
		}
		if err := u.repo.Save(ctx, doc); err != nil {
			return nil, err
		}
		return item, nil
	}
	return nil, ErrItemNotFound
}

// Delete removes the entity with the given id. Deleting an unknown id is not
// an error, matching the original 204-regardless contract. No cascade happens
// server-side; the client pushes cascades through a later bulk sync.
func (u *LedgerUseCase) Delete(ctx context.Context, collection, id string) error {
	doc, err := u.repo.Load(ctx)
	if err != nil {
		return err
	}
	items, ok := doc.Collection(collection)
	if !ok {
		return ErrUnknownCollection
	}
	kept := items[:0]
	for _, item := range items {
		if itemID(item) != id {
			kept = append(kept, item)
		}
	}
	doc.SetCollection(collection, kept)
	return u.repo.Save(ctx, doc)
}

// ReplaceAll overwrites the whole document verbatim (last writer wins).
func (u *LedgerUseCase) ReplaceAll(ctx context.Context, doc entities.RawDocument) error {
	doc.Normalize()
	return u.repo.Save(ctx, doc)
}

func itemID(item map[string]any) string {
	id, _ := item["id"].(string)
	return id
}

func recomputeAmountTTC(item map[string]any) {
	item["amountTTC"] = numberField(item, "amountHT") + numberField(item, "tva")
}

// numberField tolerates the schemaless store: non-numeric values contribute
// zero to the recomputed total but stay stored as sent.
func numberField(item map[string]any, key string) float64 {
	switch v := item[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	default:
		return 0
	}
}
