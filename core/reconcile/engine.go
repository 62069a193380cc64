package reconcile

import (
	"sort"
)

// Compute diffs local entities against a remote snapshot by natural key.
//
// Every local entity starts as a deletion candidate. A remote entity whose key
// matches a candidate turns it into an update; an unmatched remote entity
// becomes a create. Candidates left over are deletes. A key repeated in the
// remote snapshot collapses onto its first position and the last value wins.
// A key repeated locally keeps the first entity and schedules the rest for
// deletion so the key stays unique.
func Compute[L, R any](local []L, localKey func(L) string, remote []R, remoteKey func(R) string) *Plan[L, R] {
	index, duplicates := buildIndex(local, localKey)

	plan := &Plan[L, R]{
		Upserts: make([]Upsert[L, R], 0, len(remote)),
	}

	positions := make(map[string]int, len(remote))
	for _, r := range remote {
		key := remoteKey(r)

		if pos, seen := positions[key]; seen {
			plan.Upserts[pos].Remote = r
			continue
		}

		up := Upsert[L, R]{Key: key, Remote: r}
		if l, ok := index[key]; ok {
			up.Local = l
			up.Found = true
			delete(index, key)
		}

		positions[key] = len(plan.Upserts)
		plan.Upserts = append(plan.Upserts, up)
	}

	plan.Deletes = make([]Removal[L], 0, len(index)+len(duplicates))
	for key, l := range index {
		plan.Deletes = append(plan.Deletes, Removal[L]{Key: key, Local: l})
	}
	plan.Deletes = append(plan.Deletes, duplicates...)

	// Sort deletes by key for deterministic output
	sort.SliceStable(plan.Deletes, func(i, j int) bool {
		return plan.Deletes[i].Key < plan.Deletes[j].Key
	})

	return plan
}

// buildIndex indexes local entities by key. Entities sharing a key with an
// earlier one are returned separately.
func buildIndex[L any](local []L, localKey func(L) string) (map[string]L, []Removal[L]) {
	index := make(map[string]L, len(local))
	var duplicates []Removal[L]

	for _, l := range local {
		key := localKey(l)
		if _, exists := index[key]; exists {
			duplicates = append(duplicates, Removal[L]{Key: key, Local: l})
			continue
		}
		index[key] = l
	}

	return index, duplicates
}

// Summary returns aggregate counts for the plan.
func (p *Plan[L, R]) Summary() Summary {
	var s Summary
	for _, up := range p.Upserts {
		if up.Found {
			s.Updated++
		} else {
			s.Created++
		}
	}
	s.Deleted = len(p.Deletes)
	return s
}

// Actions flattens the plan into an ordered list of actions: upserts in remote
// order followed by deletes.
func (p *Plan[L, R]) Actions() []Action {
	actions := make([]Action, 0, len(p.Upserts)+len(p.Deletes))
	for _, up := range p.Upserts {
		t := ActionCreate
		if up.Found {
			t = ActionUpdate
		}
		actions = append(actions, Action{Type: t, Key: up.Key})
	}
	for _, d := range p.Deletes {
		actions = append(actions, Action{Type: ActionDelete, Key: d.Key})
	}
	return actions
}
