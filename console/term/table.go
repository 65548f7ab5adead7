package term

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table renders each argument as a bordered table. Slices of structs
// and slices of maps become one row per element; flat slices and maps
// become index/value and key/value tables. Values with no tabular
// shape are printed as plain lines.
func (c *Console) Table(args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range args {
		c.writeLine(renderTable(a))
	}
}

func renderTable(data any) string {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return renderRows(v)
	case reflect.Map:
		return renderKV("(key)", sortedMapPairs(v))
	case reflect.Struct:
		return renderKV("(field)", structPairs(v))
	default:
		return fmt.Sprint(data)
	}
}

func newTable(headers []string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func renderRows(v reflect.Value) string {
	if v.Len() == 0 {
		return "(empty table)"
	}

	elem := v.Index(0)
	for elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface {
		if elem.IsNil() {
			break
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		return renderStructRows(v)
	case reflect.Map:
		return renderMapRows(v)
	default:
		t := newTable([]string{"(index)", "(value)"})
		for i := 0; i < v.Len(); i++ {
			t.Row(fmt.Sprint(i), fmt.Sprint(v.Index(i).Interface()))
		}
		return t.Render()
	}
}

func renderStructRows(v reflect.Value) string {
	first := deref(v.Index(0))
	st := first.Type()
	var headers []string
	var idx []int
	for i := 0; i < st.NumField(); i++ {
		if st.Field(i).IsExported() {
			headers = append(headers, st.Field(i).Name)
			idx = append(idx, i)
		}
	}

	t := newTable(append([]string{"(index)"}, headers...))
	for i := 0; i < v.Len(); i++ {
		row := []string{fmt.Sprint(i)}
		e := deref(v.Index(i))
		if e.Kind() == reflect.Struct && e.Type() == st {
			for _, j := range idx {
				row = append(row, fmt.Sprint(e.Field(j).Interface()))
			}
		} else {
			// Heterogeneous slice: dump the odd element whole.
			row = append(row, fmt.Sprint(v.Index(i).Interface()))
		}
		t.Row(row...)
	}
	return t.Render()
}

func renderMapRows(v reflect.Value) string {
	// Header is the sorted union of keys across all rows.
	keySet := make(map[string]bool)
	for i := 0; i < v.Len(); i++ {
		m := deref(v.Index(i))
		if m.Kind() != reflect.Map {
			continue
		}
		for _, k := range m.MapKeys() {
			keySet[fmt.Sprint(k.Interface())] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := newTable(append([]string{"(index)"}, keys...))
	for i := 0; i < v.Len(); i++ {
		row := []string{fmt.Sprint(i)}
		m := deref(v.Index(i))
		if m.Kind() != reflect.Map {
			t.Row(append(row, fmt.Sprint(v.Index(i).Interface()))...)
			continue
		}
		for _, k := range keys {
			cell := ""
			for _, mk := range m.MapKeys() {
				if fmt.Sprint(mk.Interface()) == k {
					cell = fmt.Sprint(m.MapIndex(mk).Interface())
					break
				}
			}
			row = append(row, cell)
		}
		t.Row(row...)
	}
	return t.Render()
}

type kv struct{ k, v string }

func renderKV(keyHeader string, pairs []kv) string {
	t := newTable([]string{keyHeader, "(value)"})
	for _, p := range pairs {
		t.Row(p.k, p.v)
	}
	return t.Render()
}

func sortedMapPairs(v reflect.Value) []kv {
	pairs := make([]kv, 0, v.Len())
	for _, k := range v.MapKeys() {
		pairs = append(pairs, kv{fmt.Sprint(k.Interface()), fmt.Sprint(v.MapIndex(k).Interface())})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].k < pairs[j].k })
	return pairs
}

func structPairs(v reflect.Value) []kv {
	st := v.Type()
	var pairs []kv
	for i := 0; i < st.NumField(); i++ {
		if st.Field(i).IsExported() {
			pairs = append(pairs, kv{st.Field(i).Name, fmt.Sprint(v.Field(i).Interface())})
		}
	}
	return pairs
}

func deref(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		v = v.Elem()
	}
	return v
}
