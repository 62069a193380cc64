package layouts

import (
	"context"
	"fmt"

	"layout-catalog/core/reconcile"
	"layout-catalog/feature/layouts/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Summary reports what one reconciliation changed per entity type.
type Summary struct {
	Categories reconcile.Summary `json:"categories"`
	Layouts    reconcile.Summary `json:"layouts"`
}

// Total sums the category and layout counts.
func (s Summary) Total() reconcile.Summary {
	return s.Categories.Add(s.Layouts)
}

// Reconciler applies a catalog to the store so the persisted categories and
// layouts equal it exactly.
type Reconciler struct {
	store  *Store
	logger *zap.Logger
}

// NewReconciler creates a reconciler writing through store.
func NewReconciler(store *Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{store: store, logger: logger}
}

// Reconcile replaces the persisted catalog with catalog in one transaction.
// Categories are processed before layouts so associations resolve against the
// new category set. On failure nothing is committed and the error wraps
// ErrPersistence.
func (r *Reconciler) Reconcile(ctx context.Context, catalog *models.Catalog) (Summary, error) {
	var summary Summary

	err := r.store.Write(ctx, func(tx *gorm.DB) error {
		categories, err := r.reconcileCategories(tx, catalog.Categories)
		if err != nil {
			return err
		}

		layouts, err := r.reconcileLayouts(tx, catalog.Layouts)
		if err != nil {
			return err
		}

		summary = Summary{Categories: categories, Layouts: layouts}
		return nil
	})
	if err != nil {
		r.logger.Error("Layout reconciliation failed", zap.Error(err))
		return Summary{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	r.logger.Info("Layout catalog reconciled",
		zap.Bool("changed", summary.Total().Changed()),
		zap.Int("categories_created", summary.Categories.Created),
		zap.Int("categories_updated", summary.Categories.Updated),
		zap.Int("categories_deleted", summary.Categories.Deleted),
		zap.Int("layouts_created", summary.Layouts.Created),
		zap.Int("layouts_updated", summary.Layouts.Updated),
		zap.Int("layouts_deleted", summary.Layouts.Deleted))

	return summary, nil
}

func (r *Reconciler) reconcileCategories(tx *gorm.DB, remote []models.CatalogCategory) (reconcile.Summary, error) {
	var existing []*models.Category
	if err := tx.Find(&existing).Error; err != nil {
		return reconcile.Summary{}, fmt.Errorf("failed to load categories: %w", err)
	}

	plan := reconcile.Compute(existing,
		func(c *models.Category) string { return c.Slug },
		remote,
		func(c models.CatalogCategory) string { return c.Slug })
	r.logger.Debug("Planned category changes", zap.Any("actions", plan.Actions()))

	for i, up := range plan.Upserts {
		if up.Found {
			up.Local.Apply(up.Remote, i)
			if err := tx.Omit(clause.Associations).Save(up.Local).Error; err != nil {
				return reconcile.Summary{}, fmt.Errorf("failed to update category %s: %w", up.Key, err)
			}
			continue
		}
		if err := tx.Omit(clause.Associations).Create(models.NewCategory(up.Remote, i)).Error; err != nil {
			return reconcile.Summary{}, fmt.Errorf("failed to create category %s: %w", up.Key, err)
		}
	}

	for _, d := range plan.Deletes {
		// Selecting the association removes the join rows with the category.
		if err := tx.Select("Layouts").Delete(d.Local).Error; err != nil {
			return reconcile.Summary{}, fmt.Errorf("failed to delete category %s: %w", d.Key, err)
		}
	}

	return plan.Summary(), nil
}

func (r *Reconciler) reconcileLayouts(tx *gorm.DB, remote []models.CatalogLayout) (reconcile.Summary, error) {
	var existing []*models.Layout
	if err := tx.Find(&existing).Error; err != nil {
		return reconcile.Summary{}, fmt.Errorf("failed to load layouts: %w", err)
	}

	plan := reconcile.Compute(existing,
		func(l *models.Layout) string { return l.Slug },
		remote,
		func(l models.CatalogLayout) string { return l.Slug })
	r.logger.Debug("Planned layout changes", zap.Any("actions", plan.Actions()))

	for i, up := range plan.Upserts {
		layout := up.Local
		if up.Found {
			layout.Apply(up.Remote, i)
			if err := tx.Omit(clause.Associations).Save(layout).Error; err != nil {
				return reconcile.Summary{}, fmt.Errorf("failed to update layout %s: %w", up.Key, err)
			}
		} else {
			layout = models.NewLayout(up.Remote, i)
			if err := tx.Omit(clause.Associations).Create(layout).Error; err != nil {
				return reconcile.Summary{}, fmt.Errorf("failed to create layout %s: %w", up.Key, err)
			}
		}

		if err := r.associate(tx, layout, up.Remote.CategorySlugs()); err != nil {
			return reconcile.Summary{}, err
		}
	}

	for _, d := range plan.Deletes {
		if err := tx.Select("Categories").Delete(d.Local).Error; err != nil {
			return reconcile.Summary{}, fmt.Errorf("failed to delete layout %s: %w", d.Key, err)
		}
	}

	return plan.Summary(), nil
}

// associate replaces the categories of layout with the persisted categories
// among slugs. Slugs without a persisted category are dropped.
func (r *Reconciler) associate(tx *gorm.DB, layout *models.Layout, slugs []string) error {
	var categories []*models.Category
	if len(slugs) > 0 {
		if err := tx.Where("slug IN ?", slugs).Find(&categories).Error; err != nil {
			return fmt.Errorf("failed to resolve categories of layout %s: %w", layout.Slug, err)
		}
	}

	if dropped := unresolved(slugs, categories); len(dropped) > 0 {
		r.logger.Debug("Dropping unknown categories from layout",
			zap.String("layout", layout.Slug),
			zap.Strings("slugs", dropped))
	}

	assoc := tx.Model(layout).Association("Categories")
	var err error
	if len(categories) == 0 {
		err = assoc.Clear()
	} else {
		err = assoc.Replace(categories)
	}
	if err != nil {
		return fmt.Errorf("failed to associate categories of layout %s: %w", layout.Slug, err)
	}
	return nil
}

func unresolved(slugs []string, found []*models.Category) []string {
	known := make(map[string]struct{}, len(found))
	for _, c := range found {
		known[c.Slug] = struct{}{}
	}

	var missing []string
	for _, slug := range slugs {
		if _, ok := known[slug]; !ok {
			missing = append(missing, slug)
		}
	}
	return missing
}
