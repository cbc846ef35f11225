package differ

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMappings_Partition tests the canonical four-bucket partition.
func TestMappings_Partition(t *testing.T) {
	current := map[string]int{"i": 1, "c": 2, "d": 3}
	desired := map[string]int{"i": 1, "c": 20, "a": 30}

	result := Mappings(current, desired, nil)

	assert.Equal(t, map[string]int{"a": 30}, result.Add)
	assert.Equal(t, map[string]int{"d": 3}, result.Delete)
	assert.Equal(t, map[string]Pair[int, int]{"c": {Current: 2, Desired: 20}}, result.Change)
	assert.Equal(t, map[string]Pair[int, int]{"i": {Current: 1, Desired: 1}}, result.Identical)
}

// TestMappings_DisjointKeys tests that disjoint inputs land entirely in Add and Delete.
func TestMappings_DisjointKeys(t *testing.T) {
	current := map[string]string{"x": "old", "y": "older"}
	desired := map[string]string{"a": "new", "b": "newer"}

	result := Mappings(current, desired, nil)

	assert.Equal(t, desired, result.Add)
	assert.Equal(t, current, result.Delete)
	assert.Empty(t, result.Change)
	assert.Empty(t, result.Identical)
}

// TestMappings_Idempotence tests that diffing a map against itself yields only Identical.
func TestMappings_Idempotence(t *testing.T) {
	state := map[int][]string{1: {"a"}, 2: {"b", "c"}, 3: nil}

	result := Mappings(state, state, nil)

	assert.Empty(t, result.Add)
	assert.Empty(t, result.Delete)
	assert.Empty(t, result.Change)
	assert.Len(t, result.Identical, 3)
	assert.True(t, result.IsEmpty())
}

// TestMappings_Empty tests all combinations of empty inputs.
func TestMappings_Empty(t *testing.T) {
	tests := []struct {
		name    string
		current map[string]int
		desired map[string]int
	}{
		{name: "both empty", current: map[string]int{}, desired: map[string]int{}},
		{name: "both nil", current: nil, desired: nil},
		{name: "empty current", current: nil, desired: map[string]int{"a": 1}},
		{name: "empty desired", current: map[string]int{"a": 1}, desired: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Mappings(tt.current, tt.desired, nil)
			assert.Len(t, result.Add, len(tt.desired))
			assert.Len(t, result.Delete, len(tt.current))
			assert.Empty(t, result.Change)
			assert.Empty(t, result.Identical)
		})
	}
}

// TestMappings_PartitionInvariant tests that every key lands in exactly one bucket.
func TestMappings_PartitionInvariant(t *testing.T) {
	current := map[string]int{"a": 1, "b": 2, "c": 3, "d": 4}
	desired := map[string]int{"c": 3, "d": 40, "e": 5, "f": 6}

	result := Mappings(current, desired, nil)

	seen := map[string]int{}
	for k := range result.Add {
		seen[k]++
	}
	for k := range result.Delete {
		seen[k]++
	}
	for k := range result.Change {
		seen[k]++
	}
	for k := range result.Identical {
		seen[k]++
	}

	// Every key in the union appears exactly once.
	union := map[string]bool{}
	for k := range current {
		union[k] = true
	}
	for k := range desired {
		union[k] = true
	}
	assert.Len(t, seen, len(union))
	for k, count := range seen {
		assert.Equal(t, 1, count, "key %s assigned to %d buckets", k, count)
	}

	// Delete+Change+Identical covers current; Add+Change+Identical covers desired.
	assert.Equal(t, len(current), len(result.Delete)+len(result.Change)+len(result.Identical))
	assert.Equal(t, len(desired), len(result.Add)+len(result.Change)+len(result.Identical))
}

// TestMappings_CustomEquality tests that a custom predicate decides Change vs Identical.
func TestMappings_CustomEquality(t *testing.T) {
	type usergroup struct {
		ID      string
		Handle  string
		Members []string
	}

	// Provider assigns IDs; equality must ignore them.
	ignoreID := func(c, d usergroup) bool {
		c.ID, d.ID = "", ""
		return assert.ObjectsAreEqual(c, d)
	}

	current := map[string]usergroup{
		"oncall": {ID: "S123", Handle: "oncall", Members: []string{"alice"}},
	}
	desired := map[string]usergroup{
		"oncall": {Handle: "oncall", Members: []string{"alice"}},
	}

	// Deep equality puts the pair in Change because of the ID.
	strict := Mappings(current, desired, nil)
	assert.Len(t, strict.Change, 1)
	assert.Empty(t, strict.Identical)

	// The ID-blind predicate puts it in Identical.
	relaxed := Mappings(current, desired, ignoreID)
	assert.Empty(t, relaxed.Change)
	assert.Len(t, relaxed.Identical, 1)
}

// TestIterables_CaseInsensitive tests key and equality functions that canonicalize case.
func TestIterables_CaseInsensitive(t *testing.T) {
	current := []string{"hello", "world"}
	desired := []string{"HELLO", "WORLD"}

	result := Iterables(current, desired,
		strings.ToLower,
		strings.EqualFold,
	)

	assert.Empty(t, result.Add)
	assert.Empty(t, result.Delete)
	assert.Empty(t, result.Change)
	assert.Len(t, result.Identical, 2)
	assert.Equal(t, Pair[string, string]{Current: "hello", Desired: "HELLO"}, result.Identical["hello"])
}

// TestIterables_DuplicateKeysLastWins pins the last-write-wins reduction rule.
func TestIterables_DuplicateKeysLastWins(t *testing.T) {
	type item struct {
		K string
		V int
	}

	current := []item{{K: "a", V: 1}, {K: "a", V: 2}}
	desired := []item{}

	result := Iterables(current, desired,
		func(i item) string { return i.K },
		nil,
	)

	assert.Len(t, result.Delete, 1)
	assert.Equal(t, item{K: "a", V: 2}, result.Delete["a"])
}

// TestIterables_OrderIndependence tests that slice order does not affect the partition.
func TestIterables_OrderIndependence(t *testing.T) {
	key := func(s string) string { return s }

	forward := Iterables([]string{"a", "b", "c"}, []string{"b", "c", "d"}, key, nil)
	backward := Iterables([]string{"c", "b", "a"}, []string{"d", "c", "b"}, key, nil)

	assert.Equal(t, forward, backward)
}

// TestAnyIterables_Heterogeneous tests diffing across two different value types.
func TestAnyIterables_Heterogeneous(t *testing.T) {
	type liveObject struct {
		Key  string
		ETag string
	}
	type declaredArtifact struct {
		StorageKey string
		Checksum   string
	}

	current := []liveObject{
		{Key: "bundles/a.tar", ETag: "111"},
		{Key: "bundles/b.tar", ETag: "222"},
		{Key: "bundles/orphan.tar", ETag: "999"},
	}
	desired := []declaredArtifact{
		{StorageKey: "bundles/a.tar", Checksum: "111"},
		{StorageKey: "bundles/b.tar", Checksum: "changed"},
		{StorageKey: "bundles/new.tar", Checksum: "333"},
	}

	result := AnyIterables(current, desired,
		func(o liveObject) string { return o.Key },
		func(a declaredArtifact) string { return a.StorageKey },
		func(o liveObject, a declaredArtifact) bool { return o.ETag == a.Checksum },
	)

	assert.Len(t, result.Add, 1)
	assert.Contains(t, result.Add, "bundles/new.tar")

	assert.Len(t, result.Delete, 1)
	assert.Contains(t, result.Delete, "bundles/orphan.tar")

	assert.Len(t, result.Change, 1)
	assert.Equal(t, "222", result.Change["bundles/b.tar"].Current.ETag)
	assert.Equal(t, "changed", result.Change["bundles/b.tar"].Desired.Checksum)

	assert.Len(t, result.Identical, 1)
	assert.Contains(t, result.Identical, "bundles/a.tar")

	assert.False(t, result.IsEmpty())
}
