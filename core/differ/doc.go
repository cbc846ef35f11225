// Package differ provides the keyed set-diffing engine used by every
// reconciliation integration.
//
// Given a "current" collection (fetched from a live external system) and a
// "desired" collection (built from the declarative configuration store), the
// differ partitions the union of their keys into four buckets:
//
//   - Add: keys present only in desired (the system is missing them)
//   - Delete: keys present only in current (the system has orphans)
//   - Change: keys present on both sides with unequal values
//   - Identical: keys present on both sides with equal values
//
// The caller turns Add/Change/Delete entries into create/update/delete
// actions against the external system; Identical entries require no action.
//
// # Entry Points
//
// Three entry points cover the common shapes of input data:
//
//   - Mappings: both sides are already key-indexed maps of the same type.
//   - Iterables: both sides are slices of the same type sharing one key
//     function.
//   - AnyIterables: current and desired are different types (e.g. a provider
//     API model vs. a configuration row), each with its own key function and
//     a cross-type equality predicate.
//
// # Properties
//
// All functions are pure: no I/O, no side effects, deterministic output for
// a given input, and safe to call concurrently. They never return an error;
// a key or equality function that panics propagates unmodified.
package differ
