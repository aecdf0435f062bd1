package output

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SnapshotExcludeFields lists fields to exclude when comparing responses for tests
var SnapshotExcludeFields = []string{
	"meta.generatedAt",
	"meta.elapsedMs",
}

// NormalizeForSnapshot removes time-varying fields for comparison
func NormalizeForSnapshot(data []byte) ([]byte, error) {
	var parsed map[string]interface{}
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	for _, field := range SnapshotExcludeFields {
		removeNestedField(parsed, field)
	}

	// Re-encode deterministically
	return DeterministicEncode(parsed)
}

// CompareSnapshots returns true if two responses are identical
// (ignoring time-varying fields)
func CompareSnapshots(a, b []byte) (bool, string) {
	normalizedA, err := NormalizeForSnapshot(a)
	if err != nil {
		return false, "failed to normalize snapshot A: " + err.Error()
	}

	normalizedB, err := NormalizeForSnapshot(b)
	if err != nil {
		return false, "failed to normalize snapshot B: " + err.Error()
	}

	if !bytes.Equal(normalizedA, normalizedB) {
		return false, "snapshots differ"
	}

	return true, ""
}

// removeNestedField removes a nested field from a map using dot notation
// e.g., "meta.generatedAt" removes the "generatedAt" field from the "meta" object
func removeNestedField(data map[string]interface{}, path string) {
	parts := strings.Split(path, ".")
	if len(parts) == 0 {
		return
	}

	// Navigate to the parent object
	current := data
	for i := 0; i < len(parts)-1; i++ {
		next, ok := current[parts[i]]
		if !ok {
			return
		}

		nextMap, ok := next.(map[string]interface{})
		if !ok {
			return
		}

		current = nextMap
	}

	delete(current, parts[len(parts)-1])
}

// SnapshotEqual compares two values for equality, ignoring time-varying fields
func SnapshotEqual(a, b interface{}) bool {
	aJSON, err := json.Marshal(a)
	if err != nil {
		return false
	}

	bJSON, err := json.Marshal(b)
	if err != nil {
		return false
	}

	equal, _ := CompareSnapshots(aJSON, bJSON)
	return equal
}
