// Package integrity provides system health checks for the layout catalog.
//
// Unlike the 'layouts' package, which owns the catalog content, this package
// validates the infrastructure the catalog depends on.
//
// # Checks Provided
//
//   - Schema: Validates that the layout tables match the gorm models (columns, types).
//   - Archive: Checks that the snapshot bucket exists when archiving is enabled.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check (supports ?fix=true).
package integrity
