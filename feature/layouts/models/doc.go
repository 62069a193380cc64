// Package models defines the layout catalog data types.
//
// Catalog and its Catalog* members are the transient, decoded form of the
// remote payload. Category and Layout are the gorm models of the local store;
// layouts and categories are linked many-to-many through
// page_template_layout_categories.
package models
