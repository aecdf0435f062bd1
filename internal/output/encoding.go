package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"sort"
	"strings"
)

// DeterministicEncode marshals v into byte-stable JSON: object keys
// sorted, floats capped at 6 decimal places, nil and empty values
// dropped. Two encodes of equal values produce identical bytes, which
// is what golden tests and the json output format rely on.
func DeterministicEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(canonicalize(v)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DeterministicEncodeIndented is DeterministicEncode with indentation,
// for output meant to be read by people.
func DeterministicEncodeIndented(v interface{}, indent string) ([]byte, error) {
	return json.MarshalIndent(canonicalize(v), "", indent)
}

// canonicalize rewrites v into the value tree that encodes
// deterministically: structs and maps become map[string]interface{}
// (encoding/json sorts map keys), floats are rounded, empties become
// nil so they disappear from the output.
func canonicalize(v interface{}) interface{} {
	if v == nil {
		return nil
	}

	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Float32, reflect.Float64:
		return RoundFloat(val.Float())

	case reflect.Slice, reflect.Array:
		if val.Len() == 0 {
			return nil
		}
		items := make([]interface{}, val.Len())
		for i := range items {
			items[i] = canonicalize(val.Index(i).Interface())
		}
		return items

	case reflect.Map:
		fields := make(map[string]interface{}, val.Len())
		iter := val.MapRange()
		for iter.Next() {
			if item := canonicalize(iter.Value().Interface()); item != nil {
				fields[iter.Key().String()] = item
			}
		}
		return dropIfEmpty(fields)

	case reflect.Struct:
		return canonicalizeStruct(val)

	default:
		return val.Interface()
	}
}

func canonicalizeStruct(val reflect.Value) interface{} {
	typ := val.Type()
	fields := make(map[string]interface{}, typ.NumField())

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, omitEmpty := parseJSONTag(tag)
		if name == "" {
			name = f.Name
		}

		item := canonicalize(val.Field(i).Interface())
		if item == nil || (omitEmpty && isEmpty(item)) {
			continue
		}
		fields[name] = item
	}

	return dropIfEmpty(fields)
}

func dropIfEmpty(fields map[string]interface{}) interface{} {
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func parseJSONTag(tag string) (name string, omitEmpty bool) {
	name, rest, _ := strings.Cut(tag, ",")
	return name, strings.Contains(rest, "omitempty")
}

// isEmpty reports whether an already-canonicalized value is the zero
// of its kind, matching encoding/json's omitempty notion.
func isEmpty(v interface{}) bool {
	switch val := v.(type) {
	case bool:
		return !val
	case string:
		return val == ""
	case int, int8, int16, int32, int64:
		return reflect.ValueOf(val).Int() == 0
	case uint, uint8, uint16, uint32, uint64:
		return reflect.ValueOf(val).Uint() == 0
	case float32, float64:
		return reflect.ValueOf(val).Float() == 0
	case []interface{}:
		return len(val) == 0
	case map[string]interface{}:
		return len(val) == 0
	default:
		return false
	}
}

// DeterministicMap marshals with sorted keys and without nil entries,
// for ad-hoc response fragments that bypass the struct types.
type DeterministicMap map[string]interface{}

func (m DeterministicMap) MarshalJSON() ([]byte, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if m[k] != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(canonicalize(m[k]))
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
