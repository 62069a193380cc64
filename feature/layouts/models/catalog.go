package models

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Catalog is the decoded remote payload of one sync: every category and layout
// the service currently offers, in server order.
type Catalog struct {
	Categories []CatalogCategory `json:"categories"`
	Layouts    []CatalogLayout   `json:"layouts"`
}

// CatalogCategory is a category as sent by the remote API.
type CatalogCategory struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji,omitempty"`
}

// CatalogLayout is a layout as sent by the remote API. Categories are the
// declared category slugs, not yet resolved against the store.
type CatalogLayout struct {
	Slug          string        `json:"slug"`
	Title         string        `json:"title"`
	Preview       string        `json:"preview,omitempty"`
	PreviewTablet string        `json:"preview_tablet,omitempty"`
	PreviewMobile string        `json:"preview_mobile,omitempty"`
	DemoURL       string        `json:"demo_url,omitempty"`
	Content       string        `json:"content,omitempty"`
	Categories    []CategoryRef `json:"categories"`
}

// CategorySlugs returns the declared category slugs in payload order.
func (l CatalogLayout) CategorySlugs() []string {
	slugs := make([]string, 0, len(l.Categories))
	for _, ref := range l.Categories {
		slugs = append(slugs, ref.Slug)
	}
	return slugs
}

// CategoryRef references a category by slug. The API sends either a bare slug
// string or a full category object; both decode to the slug.
type CategoryRef struct {
	Slug string
}

// UnmarshalJSON accepts "slug" or {"slug": "...", ...}.
func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &r.Slug)
	case '{':
		var obj struct {
			Slug string `json:"slug"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		r.Slug = obj.Slug
		return nil
	default:
		return fmt.Errorf("category reference must be a string or an object, got %s", data)
	}
}

// MarshalJSON writes the reference as a bare slug.
func (r CategoryRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Slug)
}

var errMissingSlug = errors.New("missing slug")

// Validate checks the fields every later stage relies on.
func (c *Catalog) Validate() error {
	for i, cat := range c.Categories {
		if cat.Slug == "" {
			return fmt.Errorf("categories[%d]: %w", i, errMissingSlug)
		}
	}
	for i, layout := range c.Layouts {
		if layout.Slug == "" {
			return fmt.Errorf("layouts[%d]: %w", i, errMissingSlug)
		}
		for j, ref := range layout.Categories {
			if ref.Slug == "" {
				return fmt.Errorf("layouts[%d].categories[%d]: %w", i, j, errMissingSlug)
			}
		}
	}
	return nil
}
