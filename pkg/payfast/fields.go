// payfast-gateway/pkg/payfast/fields.go
package payfast

import (
	"net/url"
	"sort"
)

// FieldSet maps PayFast parameter names to values. Keys are unique (last Set
// wins) and iteration for signing is always in ascending byte order of the
// key, regardless of insertion order.
type FieldSet struct {
	m map[string]string
}

func NewFieldSet() FieldSet {
	return FieldSet{m: make(map[string]string)}
}

// FromValues flattens form data into a FieldSet. Multi-valued keys keep the
// first value only; the gateway never sends duplicates.
func FromValues(v url.Values) FieldSet {
	fs := NewFieldSet()
	for k, vals := range v {
		if len(vals) > 0 {
			fs.Set(k, vals[0])
		}
	}
	return fs
}

func (f FieldSet) Set(key, value string) {
	f.m[key] = value
}

func (f FieldSet) Get(key string) (string, bool) {
	v, ok := f.m[key]
	return v, ok
}

func (f FieldSet) Delete(key string) {
	delete(f.m, key)
}

func (f FieldSet) Len() int {
	return len(f.m)
}

// Clone returns an independent copy so validation can strip fields without
// touching the caller's data.
func (f FieldSet) Clone() FieldSet {
	c := FieldSet{m: make(map[string]string, len(f.m))}
	for k, v := range f.m {
		c.m[k] = v
	}
	return c
}

// SortedKeys returns the keys in ascending byte order. sort.Strings compares
// bytewise, which is exactly the ordinal ordering the signature needs.
func (f FieldSet) SortedKeys() []string {
	keys := make([]string, 0, len(f.m))
	for k := range f.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
