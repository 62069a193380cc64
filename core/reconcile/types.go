package reconcile

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionCreate creates a local entity for a remote key seen for the first time.
	ActionCreate ActionType = "create"
	// ActionUpdate updates a local entity in place from its remote counterpart.
	ActionUpdate ActionType = "update"
	// ActionDelete deletes a local entity whose key is absent from the remote snapshot.
	ActionDelete ActionType = "delete"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the entity identifier.
	Key string `json:"key"`
}

// Upsert pairs a remote entity with its local counterpart, if any.
type Upsert[L, R any] struct {
	// Key is the natural key shared by both sides.
	Key string

	// Local is the persisted entity. Only meaningful when Found is true.
	Local L

	// Found reports whether a local entity exists for Key.
	Found bool

	// Remote is the freshly fetched entity.
	Remote R
}

// Removal is a local entity scheduled for deletion.
type Removal[L any] struct {
	Key   string
	Local L
}

// Plan is the diff of a local set against a remote snapshot.
type Plan[L, R any] struct {
	// Upserts follow the order of the remote snapshot, one per distinct key.
	Upserts []Upsert[L, R]

	// Deletes are the deletion candidates left after matching, sorted by key.
	Deletes []Removal[L]
}

// Summary provides aggregate counts for a plan.
type Summary struct {
	// Created counts entities created from the remote snapshot.
	Created int `json:"created"`

	// Updated counts entities updated in place.
	Updated int `json:"updated"`

	// Deleted counts entities removed because the snapshot no longer names them.
	Deleted int `json:"deleted"`
}

// Add returns the element-wise sum of two summaries.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		Created: s.Created + o.Created,
		Updated: s.Updated + o.Updated,
		Deleted: s.Deleted + o.Deleted,
	}
}

// Changed reports whether any entity was created or deleted.
func (s Summary) Changed() bool {
	return s.Created > 0 || s.Deleted > 0
}
