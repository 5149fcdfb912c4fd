package template

import "strings"

// VariablesTable is the shared, case-insensitive name->value mapping
// threaded through a compiled tree. Keys are always lower-cased; reads
// of an unset key yield the empty string rather than erroring.
type VariablesTable struct {
	values map[string]string
}

// NewVariablesTable returns an empty table.
func NewVariablesTable() *VariablesTable {
	return &VariablesTable{values: map[string]string{}}
}

// Get returns the current value of name, or "" if unset.
func (v *VariablesTable) Get(name string) string {
	return v.values[strings.ToLower(name)]
}

// Lookup is like Get but also reports whether the key was set.
func (v *VariablesTable) Lookup(name string) (string, bool) {
	val, ok := v.values[strings.ToLower(name)]
	return val, ok
}

// Set writes value under the lower-cased name. Writes by any segment are
// visible to subsequent reads in the same generation.
func (v *VariablesTable) Set(name, value string) {
	v.values[strings.ToLower(name)] = value
}

// SetAll merges a batch of key=value pairs, e.g. from a bulk Variable
// `source=` load or a CLI `vars=` override. Later calls override earlier
// values.
func (v *VariablesTable) SetAll(kv map[string]string) {
	for k, val := range kv {
		v.Set(k, val)
	}
}

// Clone returns a shallow copy of the table. Each concurrent generation
// needs to own its own table; a shallow copy at generate start is
// sufficient for templates that treat most variables as read-only.
func (v *VariablesTable) Clone() *VariablesTable {
	cp := make(map[string]string, len(v.values))
	for k, val := range v.values {
		cp[k] = val
	}
	return &VariablesTable{values: cp}
}
