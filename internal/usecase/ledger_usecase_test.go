package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"maintup/internal/domain/entities"
	mock_interfaces "maintup/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fixedLedgerUseCase(repo *mock_interfaces.MockIDocumentRepository) *LedgerUseCase {
	uc := NewLedgerUseCase(repo)
	uc.now = func() time.Time { return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "1741608000000" }
	return uc
}

func seedInvoiceDoc() entities.RawDocument {
	doc := entities.EmptyRawDocument()
	doc.Invoices = []map[string]any{{
		"id":        "inv-1",
		"clientId":  "c1",
		"amountHT":  100.0,
		"tva":       20.0,
		"amountTTC": 120.0,
		"status":    "pending",
	}}
	return doc
}

func TestLedgerUseCase_Create(t *testing.T) {
	t.Run("client gets id and rollup defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		var saved entities.RawDocument
		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc entities.RawDocument) error {
			saved = doc
			return nil
		})

		item, err := uc.Create(context.Background(), entities.CollectionClients, map[string]any{
			"name":    "Acme",
			"email":   "a@x.com",
			"phone":   "0102030405",
			"address": "1 Rue X",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["id"] != "1741608000000" {
			t.Fatalf("expected generated id, got %v", item["id"])
		}
		if item["createdAt"] == nil || item["createdAt"] == "" {
			t.Fatalf("expected createdAt to be set, got %v", item["createdAt"])
		}
		for _, key := range []string{"totalInvoices", "totalCosts", "totalProfit"} {
			v, ok := item[key].(float64)
			if !ok || v != 0 {
				t.Fatalf("expected %s=0, got %v", key, item[key])
			}
		}
		if len(saved.Clients) != 1 || saved.Clients[0]["name"] != "Acme" {
			t.Fatalf("expected persisted client, got %+v", saved.Clients)
		}
	})

	t.Run("body wins over injected defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		item, err := uc.Create(context.Background(), entities.CollectionClients, map[string]any{
			"name":          "Acme",
			"totalInvoices": 7.0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["totalInvoices"] != 7.0 {
			t.Fatalf("expected body override kept, got %v", item["totalInvoices"])
		}
	})

	t.Run("fields outside the known shape are stored as sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		var saved entities.RawDocument
		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc entities.RawDocument) error {
			saved = doc
			return nil
		})

		item, err := uc.Create(context.Background(), entities.CollectionClients, map[string]any{
			"name":     "Acme",
			"nickname": "ace",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["nickname"] != "ace" {
			t.Fatalf("expected unknown field in response, got %v", item["nickname"])
		}
		if saved.Clients[0]["nickname"] != "ace" {
			t.Fatalf("expected unknown field persisted, got %+v", saved.Clients[0])
		}

		repo.EXPECT().Load(gomock.Any()).Return(saved, nil)
		listed, err := uc.List(context.Background(), entities.CollectionClients)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(listed) != 1 || listed[0]["nickname"] != "ace" {
			t.Fatalf("expected unknown field to survive a list, got %+v", listed)
		}
	})

	t.Run("wrongly typed values are stored as sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		item, err := uc.Create(context.Background(), entities.CollectionInvoices, map[string]any{
			"clientId": "c1",
			"amountHT": "cent", // not a number; kept verbatim
			"tva":      20.0,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["amountHT"] != "cent" {
			t.Fatalf("expected string amountHT kept, got %v", item["amountHT"])
		}
		if item["amountTTC"] != 20.0 {
			t.Fatalf("expected non-numeric amountHT to contribute zero, got %v", item["amountTTC"])
		}
	})

	t.Run("invoice amountTTC is recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		item, err := uc.Create(context.Background(), entities.CollectionInvoices, map[string]any{
			"clientId": "c1",
			"amountHT": 100.0,
			"tva":      20.0,
			"status":   "pending",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["amountTTC"] != 120.0 {
			t.Fatalf("expected amountTTC=120, got %v", item["amountTTC"])
		}
	})

	t.Run("unknown collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)

		_, err := uc.Create(context.Background(), "payments", map[string]any{})
		if !errors.Is(err, ErrUnknownCollection) {
			t.Fatalf("expected ErrUnknownCollection, got %v", err)
		}
	})

	t.Run("repo load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(entities.RawDocument{}, errors.New("disk"))

		_, err := uc.Create(context.Background(), entities.CollectionClients, map[string]any{})
		if err == nil || err.Error() != "disk" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}

func TestLedgerUseCase_Update(t *testing.T) {
	t.Run("touching amountHT recomputes amountTTC", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		var saved entities.RawDocument
		repo.EXPECT().Load(gomock.Any()).Return(seedInvoiceDoc(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, doc entities.RawDocument) error {
			saved = doc
			return nil
		})

		item, err := uc.Update(context.Background(), entities.CollectionInvoices, "inv-1", map[string]any{"amountHT": 200.0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["amountTTC"] != 220.0 {
			t.Fatalf("expected amountTTC=220, got %v", item["amountTTC"])
		}
		if saved.Invoices[0]["amountTTC"] != 220.0 {
			t.Fatalf("expected persisted amountTTC=220, got %v", saved.Invoices[0]["amountTTC"])
		}
	})

	t.Run("touching tva recomputes amountTTC", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(seedInvoiceDoc(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		item, err := uc.Update(context.Background(), entities.CollectionInvoices, "inv-1", map[string]any{"tva": 5.5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["amountTTC"] != 105.5 {
			t.Fatalf("expected amountTTC=105.5, got %v", item["amountTTC"])
		}
	})

	t.Run("merge is shallow and keeps unknown fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		doc := seedInvoiceDoc()
		doc.Invoices[0]["internalRef"] = "Q-7"
		repo.EXPECT().Load(gomock.Any()).Return(doc, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		item, err := uc.Update(context.Background(), entities.CollectionInvoices, "inv-1", map[string]any{"description": "rework"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item["amountHT"] != 100.0 || item["amountTTC"] != 120.0 {
			t.Fatalf("expected untouched amounts, got %v / %v", item["amountHT"], item["amountTTC"])
		}
		if item["internalRef"] != "Q-7" {
			t.Fatalf("expected unknown field kept through merge, got %+v", item)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(seedInvoiceDoc(), nil)

		_, err := uc.Update(context.Background(), entities.CollectionInvoices, "nope", map[string]any{"tva": 1.0})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("empty id", func(t *testing.T) {
		uc := fixedLedgerUseCase(nil)
		_, err := uc.Update(context.Background(), entities.CollectionInvoices, "", map[string]any{})
		if !errors.Is(err, ErrInvalidItemID) {
			t.Fatalf("expected ErrInvalidItemID, got %v", err)
		}
	})
}

func TestLedgerUseCase_Delete(t *testing.T) {
	t.Run("removes matching id only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		doc := entities.EmptyRawDocument()
		doc.Costs = []map[string]any{{"id": "co-1"}, {"id": "co-2"}}

		var saved entities.RawDocument
		repo.EXPECT().Load(gomock.Any()).Return(doc, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.RawDocument) error {
			saved = d
			return nil
		})

		if err := uc.Delete(context.Background(), entities.CollectionCosts, "co-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(saved.Costs) != 1 || saved.Costs[0]["id"] != "co-2" {
			t.Fatalf("expected only co-2 left, got %+v", saved.Costs)
		}
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := fixedLedgerUseCase(repo)

		repo.EXPECT().Load(gomock.Any()).Return(entities.EmptyRawDocument(), nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		if err := uc.Delete(context.Background(), entities.CollectionClients, "ghost"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLedgerUseCase_ReplaceAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
	uc := fixedLedgerUseCase(repo)

	var saved entities.RawDocument
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, d entities.RawDocument) error {
		saved = d
		return nil
	})

	// Missing collections must default to empty arrays, never nil, and
	// records replace verbatim.
	doc := entities.RawDocument{Clients: []map[string]any{{"id": "c1", "name": "Acme", "nickname": "ace"}}}
	if err := uc.ReplaceAll(context.Background(), doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Invoices == nil || saved.Costs == nil || saved.CostGrids == nil {
		t.Fatalf("expected normalized document, got %+v", saved)
	}
	if len(saved.Clients) != 1 || saved.Clients[0]["nickname"] != "ace" {
		t.Fatalf("expected posted clients kept verbatim, got %+v", saved.Clients)
	}
}
