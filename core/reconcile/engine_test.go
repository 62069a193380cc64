package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type localItem struct {
	key   string
	value string
}

type remoteItem struct {
	key   string
	value string
}

func localKey(l *localItem) string  { return l.key }
func remoteKey(r remoteItem) string { return r.key }

func TestCompute_CreateUpdateDelete(t *testing.T) {
	local := []*localItem{
		{key: "a", value: "old-a"},
		{key: "b", value: "old-b"},
		{key: "c", value: "old-c"},
	}
	remote := []remoteItem{
		{key: "d", value: "new-d"},
		{key: "b", value: "new-b"},
	}

	plan := Compute(local, localKey, remote, remoteKey)

	assert.Len(t, plan.Upserts, 2)
	assert.Equal(t, "d", plan.Upserts[0].Key)
	assert.False(t, plan.Upserts[0].Found)
	assert.Equal(t, "b", plan.Upserts[1].Key)
	assert.True(t, plan.Upserts[1].Found)
	assert.Same(t, local[1], plan.Upserts[1].Local)

	var deleted []string
	for _, d := range plan.Deletes {
		deleted = append(deleted, d.Key)
	}
	assert.Equal(t, []string{"a", "c"}, deleted)

	assert.Equal(t, Summary{Created: 1, Updated: 1, Deleted: 2}, plan.Summary())
}

func TestCompute_EmptyRemoteDeletesEverything(t *testing.T) {
	local := []*localItem{{key: "a"}, {key: "b"}}

	plan := Compute(local, localKey, nil, remoteKey)

	assert.Empty(t, plan.Upserts)
	assert.Len(t, plan.Deletes, 2)
	assert.Equal(t, Summary{Deleted: 2}, plan.Summary())
}

func TestCompute_EmptyLocalCreatesEverything(t *testing.T) {
	remote := []remoteItem{{key: "x"}, {key: "y"}}

	plan := Compute[*localItem](nil, localKey, remote, remoteKey)

	assert.Len(t, plan.Upserts, 2)
	assert.Empty(t, plan.Deletes)
	assert.Equal(t, Summary{Created: 2}, plan.Summary())
}

func TestCompute_DuplicateRemoteKeysCollapse(t *testing.T) {
	remote := []remoteItem{
		{key: "x", value: "first"},
		{key: "y", value: "only"},
		{key: "x", value: "second"},
	}

	plan := Compute[*localItem](nil, localKey, remote, remoteKey)

	assert.Len(t, plan.Upserts, 2)
	assert.Equal(t, "x", plan.Upserts[0].Key)
	assert.Equal(t, "second", plan.Upserts[0].Remote.value)
	assert.Equal(t, "y", plan.Upserts[1].Key)
}

func TestCompute_DuplicateLocalKeysAreDeleted(t *testing.T) {
	first := &localItem{key: "x", value: "first"}
	second := &localItem{key: "x", value: "second"}

	plan := Compute([]*localItem{first, second}, localKey, []remoteItem{{key: "x"}}, remoteKey)

	assert.Len(t, plan.Upserts, 1)
	assert.Same(t, first, plan.Upserts[0].Local)
	assert.Len(t, plan.Deletes, 1)
	assert.Same(t, second, plan.Deletes[0].Local)
}

func TestPlan_Actions(t *testing.T) {
	local := []*localItem{{key: "keep"}, {key: "gone"}}
	remote := []remoteItem{{key: "new"}, {key: "keep"}}

	actions := Compute(local, localKey, remote, remoteKey).Actions()

	assert.Equal(t, []Action{
		{Type: ActionCreate, Key: "new"},
		{Type: ActionUpdate, Key: "keep"},
		{Type: ActionDelete, Key: "gone"},
	}, actions)
}

func TestSummary_Add(t *testing.T) {
	s := Summary{Created: 1, Updated: 2, Deleted: 3}.Add(Summary{Created: 4, Deleted: 1})
	assert.Equal(t, Summary{Created: 5, Updated: 2, Deleted: 4}, s)
	assert.True(t, s.Changed())
	assert.False(t, Summary{Updated: 3}.Changed())
}
