package layouts

import (
	"bytes"
	"errors"
	"fmt"

	"layout-catalog/feature/layouts/models"

	"github.com/goccy/go-json"
)

// wireCatalog mirrors models.Catalog with pointers so absent top-level
// arrays can be told apart from empty ones.
type wireCatalog struct {
	Categories *[]models.CatalogCategory `json:"categories"`
	Layouts    *[]models.CatalogLayout   `json:"layouts"`
}

// Decode turns a raw response into a catalog. It returns nil if the payload
// cannot be re-serialized or does not match the catalog schema; a partial
// catalog is never returned.
func Decode(raw any) *models.Catalog {
	catalog, err := decode(raw)
	if err != nil {
		return nil
	}
	return catalog
}

func decode(raw any) (*models.Catalog, error) {
	data, err := canonicalBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("re-serialize response: %w", err)
	}

	var wire wireCatalog
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if wire.Categories == nil {
		return nil, errors.New("decode catalog: missing categories")
	}
	if wire.Layouts == nil {
		return nil, errors.New("decode catalog: missing layouts")
	}
	if err := requireLayoutCategories(data); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	catalog := &models.Catalog{
		Categories: *wire.Categories,
		Layouts:    *wire.Layouts,
	}
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return catalog, nil
}

// requireLayoutCategories checks that every layout carries a categories array.
// An empty array is allowed; an absent or null one is not.
func requireLayoutCategories(data []byte) error {
	var shape struct {
		Layouts []map[string]json.RawMessage `json:"layouts"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}
	for i, layout := range shape.Layouts {
		raw, ok := layout["categories"]
		if !ok || !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
			return fmt.Errorf("layouts[%d]: missing categories", i)
		}
	}
	return nil
}

// canonicalBytes returns the JSON encoding of raw. Byte slices are taken as
// already encoded JSON.
func canonicalBytes(raw any) ([]byte, error) {
	switch v := raw.(type) {
	case nil:
		return nil, errors.New("empty response")
	case []byte:
		if !json.Valid(v) {
			return nil, errors.New("invalid JSON")
		}
		return v, nil
	default:
		return json.Marshal(v)
	}
}
