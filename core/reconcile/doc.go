// Package reconcile diffs a local entity set against a freshly fetched remote
// snapshot keyed by a natural identifier.
//
// The diff is a pure, in-memory computation: callers load the local set, call
// Compute, and then apply the resulting Plan inside their own transaction.
// Keeping the diff free of I/O lets the same engine serve every entity type.
//
// # Semantics
//
//   - Every local entity starts as a deletion candidate.
//   - A remote entity matching a candidate's key removes it from the candidates
//     and becomes an update.
//   - A remote entity without a local match becomes a create.
//   - Candidates left after all remote entities are processed become deletes.
//
// Upserts keep the remote order so log output is deterministic; deletes are
// sorted by key.
//
// # Usage Example
//
//	plan := reconcile.Compute(local, func(c *Category) string { return c.Slug },
//	    remote, func(c CatalogCategory) string { return c.Slug })
//	for _, up := range plan.Upserts {
//	    if up.Found {
//	        // update up.Local from up.Remote
//	    } else {
//	        // create from up.Remote
//	    }
//	}
//	for _, d := range plan.Deletes {
//	    // delete d.Local
//	}
package reconcile
