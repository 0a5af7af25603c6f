package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"maintup/internal/domain/entities"
)

const defaultAPIURL = "http://localhost:3000"

// API is the thin REST client used by the Store. Any transport error or
// non-2xx status surfaces as an error so the Store can fall back to its
// local copy.
type API struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewAPI(baseURL, token string) *API {
	if baseURL == "" {
		baseURL = defaultAPIURL
	}
	return &API{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchAll loads the four collections concurrently, like the original
// startup fetch. One failing collection fails the whole load.
func (a *API) FetchAll(ctx context.Context) (entities.Document, error) {
	var doc entities.Document
	targets := map[string]any{
		entities.CollectionClients:   &doc.Clients,
		entities.CollectionInvoices:  &doc.Invoices,
		entities.CollectionCosts:     &doc.Costs,
		entities.CollectionCostGrids: &doc.CostGrids,
	}

	var wg sync.WaitGroup
	errs := make([]error, len(entities.Collections))
	for i, name := range entities.Collections {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			errs[i] = a.get(ctx, "/"+name, targets[name])
		}(i, name)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return entities.Document{}, err
		}
	}
	doc.Normalize()
	return doc, nil
}

// Create posts attrs to the collection and decodes the stored entity into out.
func (a *API) Create(ctx context.Context, collection string, attrs, out any) error {
	return a.do(ctx, http.MethodPost, "/"+collection, attrs, out)
}

// Update merges attrs into the identified entity and decodes the result.
func (a *API) Update(ctx context.Context, collection, id string, attrs, out any) error {
	return a.do(ctx, http.MethodPut, "/"+collection+"/"+id, attrs, out)
}

func (a *API) Delete(ctx context.Context, collection, id string) error {
	return a.do(ctx, http.MethodDelete, "/"+collection+"/"+id, nil, nil)
}

// Sync bulk-replaces the server document with the given one.
func (a *API) Sync(ctx context.Context, doc entities.Document) error {
	doc.Normalize()
	return a.do(ctx, http.MethodPost, "/sync", doc, nil)
}

func (a *API) get(ctx context.Context, path string, out any) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	res, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, res.StatusCode)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
