package models

import "time"

// Category is a persisted layout category.
type Category struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"-"`
	Slug        string    `gorm:"column:slug;size:191;uniqueIndex;not null" json:"slug"`
	Title       string    `gorm:"column:title;size:255" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description,omitempty"`
	Emoji       string    `gorm:"column:emoji;size:32" json:"emoji,omitempty"`
	Ordinal     int       `gorm:"column:ordinal" json:"ordinal"`
	Layouts     []*Layout `gorm:"many2many:page_template_layout_categories;" json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName overrides the table name for categories.
func (Category) TableName() string {
	return "page_template_categories"
}

// NewCategory builds a category from its remote form.
func NewCategory(from CatalogCategory, ordinal int) *Category {
	c := &Category{}
	c.Apply(from, ordinal)
	return c
}

// Apply copies the mutable fields of the remote category.
func (c *Category) Apply(from CatalogCategory, ordinal int) {
	c.Slug = from.Slug
	c.Title = from.Title
	c.Description = from.Description
	c.Emoji = from.Emoji
	c.Ordinal = ordinal
}

// Layout is a persisted page layout.
type Layout struct {
	ID            uint        `gorm:"column:id;primaryKey" json:"-"`
	Slug          string      `gorm:"column:slug;size:191;uniqueIndex;not null" json:"slug"`
	Title         string      `gorm:"column:title;size:255" json:"title"`
	Preview       string      `gorm:"column:preview;type:text" json:"preview"`
	PreviewTablet string      `gorm:"column:preview_tablet;type:text" json:"preview_tablet,omitempty"`
	PreviewMobile string      `gorm:"column:preview_mobile;type:text" json:"preview_mobile,omitempty"`
	DemoURL       string      `gorm:"column:demo_url;type:text" json:"demo_url,omitempty"`
	Content       string      `gorm:"column:content;type:text" json:"content,omitempty"`
	Ordinal       int         `gorm:"column:ordinal" json:"ordinal"`
	Categories    []*Category `gorm:"many2many:page_template_layout_categories;" json:"-"`
	CreatedAt     time.Time   `json:"-"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// TableName overrides the table name for layouts.
func (Layout) TableName() string {
	return "page_template_layouts"
}

// NewLayout builds a layout from its remote form. Associations are set separately.
func NewLayout(from CatalogLayout, ordinal int) *Layout {
	l := &Layout{}
	l.Apply(from, ordinal)
	return l
}

// Apply copies the mutable fields of the remote layout.
func (l *Layout) Apply(from CatalogLayout, ordinal int) {
	l.Slug = from.Slug
	l.Title = from.Title
	l.Preview = from.Preview
	l.PreviewTablet = from.PreviewTablet
	l.PreviewMobile = from.PreviewMobile
	l.DemoURL = from.DemoURL
	l.Content = from.Content
	l.Ordinal = ordinal
}

// CategorySlugs returns the slugs of the loaded category association.
func (l *Layout) CategorySlugs() []string {
	slugs := make([]string, 0, len(l.Categories))
	for _, c := range l.Categories {
		slugs = append(slugs, c.Slug)
	}
	return slugs
}

const (
	TableCategories       = "page_template_categories"
	TableLayouts          = "page_template_layouts"
	TableLayoutCategories = "page_template_layout_categories"
)
