package output

import (
	"fmt"
	"reflect"
	"sort"
)

// SortCriteria names a struct field to order by. Criteria are applied
// in sequence; later ones only break ties left by earlier ones.
type SortCriteria struct {
	Field      string
	Descending bool
}

// MultiFieldSort stably sorts *slice (a pointer to a slice of structs)
// by the given criteria. It backs user-selected orderings such as
// browse sorting and the TUI table columns, where the field set is not
// known at compile time.
func MultiFieldSort(slice interface{}, criteria []SortCriteria) error {
	ptr := reflect.ValueOf(slice)
	if ptr.Kind() != reflect.Ptr || ptr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("expected pointer to slice, got %T", slice)
	}
	if len(criteria) == 0 {
		return fmt.Errorf("no sort criteria given")
	}
	rows := ptr.Elem()

	sort.SliceStable(rows.Interface(), func(i, j int) bool {
		for _, c := range criteria {
			cmp := compareField(rows.Index(i), rows.Index(j), c.Field)
			if cmp == 0 {
				continue
			}
			if c.Descending {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
	return nil
}

// compareField orders two rows by the named field, returning the usual
// negative/zero/positive. Missing fields and nil rows compare equal so
// a bad criterion degrades to no-op rather than panicking mid-sort.
func compareField(a, b reflect.Value, field string) int {
	av, aok := structField(a, field)
	bv, bok := structField(b, field)
	if !aok || !bok {
		return 0
	}

	switch av.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return orderOf(av.Int(), bv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return orderOf(av.Uint(), bv.Uint())
	case reflect.Float32, reflect.Float64:
		return orderOf(av.Float(), bv.Float())
	case reflect.String:
		return orderOf(av.String(), bv.String())
	case reflect.Bool:
		return orderOf(boolRank(av.Bool()), boolRank(bv.Bool()))
	default:
		return orderOf(fmt.Sprint(av.Interface()), fmt.Sprint(bv.Interface()))
	}
}

func structField(v reflect.Value, name string) (reflect.Value, bool) {
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	f := v.FieldByName(name)
	return f, f.IsValid()
}

func orderOf[T int64 | uint64 | float64 | string | int](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
