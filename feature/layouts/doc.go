// Package layouts implements the page layout catalog feature.
//
// A sync fetches the layout catalog from the remote API, decodes it and
// replaces the local catalog with it in a single transaction:
//  1. Fetcher: picks the per-site endpoint for remote accounts or the shared
//     endpoint otherwise, and requests thumbnails sized by ParamBuilder.
//  2. Decode: turns the generic response into a validated models.Catalog.
//  3. Reconciler: diffs the catalog against the store by slug using the
//     `core/reconcile` engine. Categories go first, then layouts with their
//     category associations.
//
// # Components
//
//   - Store: Serializes writes through one writer goroutine. Readers never see
//     a partial sync.
//   - Feed: Live, title sorted view of the persisted categories. Subscribers
//     receive a new snapshot after every commit.
//   - Archive: Optional snapshot of the last catalog per scope in object
//     storage, used by Service.Restore.
//   - Service: Runs the pipeline. RequestLayouts reports through a completion
//     invoked exactly once.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /layouts/sync : Sync the catalog for an account.
//   - GET /layouts/categories : Persisted categories sorted by title.
//   - GET /layouts?category=slug : Persisted layouts, optionally filtered.
package layouts
