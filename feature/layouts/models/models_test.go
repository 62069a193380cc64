package models

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRef_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"Bare slug", `"about"`, "about", false},
		{"Object", `{"slug":"contact","title":"Contact","emoji":"📫"}`, "contact", false},
		{"Null", `null`, "", false},
		{"Number", `12`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ref CategoryRef
			err := json.Unmarshal([]byte(tt.input), &ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ref.Slug)
		})
	}
}

func TestCategoryRef_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(CatalogLayout{Slug: "l1", Categories: []CategoryRef{{Slug: "about"}}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"slug":"l1","title":"","categories":["about"]}`, string(data))
}

func TestCatalog_Validate(t *testing.T) {
	valid := Catalog{
		Categories: []CatalogCategory{{Slug: "about"}},
		Layouts:    []CatalogLayout{{Slug: "l1", Categories: []CategoryRef{{Slug: "about"}}}},
	}
	assert.NoError(t, valid.Validate())

	missingCategorySlug := Catalog{Categories: []CatalogCategory{{Title: "About"}}}
	assert.ErrorContains(t, missingCategorySlug.Validate(), "categories[0]")

	missingLayoutSlug := Catalog{Layouts: []CatalogLayout{{Title: "Home"}}}
	assert.ErrorContains(t, missingLayoutSlug.Validate(), "layouts[0]")

	emptyRef := Catalog{Layouts: []CatalogLayout{{Slug: "l1", Categories: []CategoryRef{{}}}}}
	assert.ErrorContains(t, emptyRef.Validate(), "layouts[0].categories[0]")
}

func TestLayout_Apply(t *testing.T) {
	l := NewLayout(CatalogLayout{Slug: "l1", Title: "One", Preview: "https://cdn.test/l1.png"}, 0)
	assert.Equal(t, "l1", l.Slug)
	assert.Equal(t, "https://cdn.test/l1.png", l.Preview)

	l.Apply(CatalogLayout{Slug: "l1", Title: "Uno"}, 3)
	assert.Equal(t, "Uno", l.Title)
	assert.Empty(t, l.Preview)
	assert.Equal(t, 3, l.Ordinal)
}
