// Package output provides deterministic sorting and encoding for MixMaster
// responses.
//
// Identical queries against the same dataset must produce byte-identical
// JSON, which enables golden-file testing and makes results diffable.
//
// # Ordering Contract
//
// All arrays are deterministically sorted:
//
//   - matches: score DESC → name ASC
//   - recipe names, spirits, tags: ASC
//   - notes: severity priority → text ASC
//   - ingredients: dataset order preserved (never re-sorted)
//
// # JSON Encoding Rules
//
// The DeterministicEncode function produces byte-identical outputs by:
//
//  1. Stable key ordering: Object keys are sorted alphabetically
//  2. Float formatting: Rounded to max 6 decimal places, no trailing zeros
//  3. Null handling: Nil/undefined fields are omitted entirely
//  4. Timestamps: Only in the meta block, excluded from snapshot tests
//
// # Snapshot Testing
//
// CompareSnapshots compares responses while excluding time-varying fields
// (meta.generatedAt, meta.elapsedMs), so two runs of the same query compare
// equal even though their timestamps differ.
package output
