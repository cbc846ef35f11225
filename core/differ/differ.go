package differ

import "reflect"

// Pair holds the current and desired values for a key present on both sides.
type Pair[C, D any] struct {
	// Current is the value fetched from the live external system.
	Current C `json:"current"`

	// Desired is the value built from the configuration store.
	Desired D `json:"desired"`
}

// Result is the four-way partition of the union of current and desired keys.
//
// The four key sets are pairwise disjoint. Delete, Change and Identical
// together cover exactly the current keys; Add, Change and Identical
// together cover exactly the desired keys.
type Result[C, D any, K comparable] struct {
	// Add contains keys present only in desired.
	Add map[K]D

	// Delete contains keys present only in current.
	Delete map[K]C

	// Change contains keys present on both sides whose values are not equal.
	Change map[K]Pair[C, D]

	// Identical contains keys present on both sides whose values are equal.
	Identical map[K]Pair[C, D]
}

// IsEmpty returns true if no action-bearing bucket has entries.
// Identical entries are ignored; they require no action.
func (r Result[C, D, K]) IsEmpty() bool {
	return len(r.Add) == 0 && len(r.Delete) == 0 && len(r.Change) == 0
}

// Mappings diffs two key-indexed maps of the same value type.
//
// A nil equal predicate means deep structural equality. Callers supply a
// custom predicate to compare case-insensitively, ignore server-assigned
// fields, or compare a subset of fields.
func Mappings[K comparable, V any](current, desired map[K]V, equal func(current, desired V) bool) Result[V, V, K] {
	return diff(current, desired, equal)
}

// Iterables diffs two slices of the same type, reducing each side to a map
// via the key function first.
//
// If one side contains duplicate keys, the last item with that key wins;
// earlier ones are silently dropped. Aside from that rule, the order of the
// input slices does not affect the result.
func Iterables[K comparable, V any](current, desired []V, key func(V) K, equal func(current, desired V) bool) Result[V, V, K] {
	return diff(index(current, key), index(desired, key), equal)
}

// AnyIterables diffs two slices of different types, each with its own key
// function and a cross-type equality predicate. This is the shape used when
// the provider API model and the configuration row do not share a type.
//
// Duplicate keys within one side follow the same last-wins rule as
// Iterables.
func AnyIterables[K comparable, C, D any](current []C, desired []D, currentKey func(C) K, desiredKey func(D) K, equal func(current C, desired D) bool) Result[C, D, K] {
	return diffAny(index(current, currentKey), index(desired, desiredKey), equal)
}

// index reduces a slice to a key-indexed map. Last duplicate key wins.
func index[K comparable, V any](items []V, key func(V) K) map[K]V {
	m := make(map[K]V, len(items))
	for _, item := range items {
		m[key(item)] = item
	}
	return m
}

// diff is the homogeneous core: both sides share one value type, so a nil
// equal predicate can fall back to deep structural equality.
func diff[K comparable, V any](current, desired map[K]V, equal func(V, V) bool) Result[V, V, K] {
	if equal == nil {
		equal = func(c, d V) bool { return reflect.DeepEqual(c, d) }
	}
	return diffAny(current, desired, equal)
}

// diffAny walks the union of keys and assigns each to exactly one bucket.
func diffAny[K comparable, C, D any](current map[K]C, desired map[K]D, equal func(C, D) bool) Result[C, D, K] {
	result := Result[C, D, K]{
		Add:       make(map[K]D),
		Delete:    make(map[K]C),
		Change:    make(map[K]Pair[C, D]),
		Identical: make(map[K]Pair[C, D]),
	}

	for key, currentValue := range current {
		desiredValue, ok := desired[key]
		if !ok {
			result.Delete[key] = currentValue
			continue
		}
		pair := Pair[C, D]{Current: currentValue, Desired: desiredValue}
		if equal(currentValue, desiredValue) {
			result.Identical[key] = pair
		} else {
			result.Change[key] = pair
		}
	}

	for key, desiredValue := range desired {
		if _, ok := current[key]; !ok {
			result.Add[key] = desiredValue
		}
	}

	return result
}
