package comps

import (
	"iter"
	"sort"
)

// StrDict maps language codes to text. The empty key holds the
// unlocalized value. Keys keep insertion order for iteration, but
// equality ignores order.
//
// The zero value is an empty dictionary ready to use.
type StrDict struct {
	keys   []string
	values map[string]string
}

// StrDictOf builds a dictionary from m. Keys are inserted in sorted order.
func StrDictOf(m map[string]string) StrDict {
	var d StrDict
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		d.Set(k, m[k])
	}
	return d
}

// Set assigns value to key, overwriting any previous value.
func (d *StrDict) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value for key or ErrNotFound.
func (d *StrDict) Get(key string) (string, error) {
	if d == nil {
		return "", notFoundError("key", key)
	}
	v, ok := d.values[key]
	if !ok {
		return "", notFoundError("key", key)
	}
	return v, nil
}

// Lookup returns the value for key and whether it was present.
func (d *StrDict) Lookup(key string) (string, bool) {
	if d == nil {
		return "", false
	}
	v, ok := d.values[key]
	return v, ok
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (d *StrDict) Delete(key string) error {
	if d == nil {
		return notFoundError("key", key)
	}
	if _, ok := d.values[key]; !ok {
		return notFoundError("key", key)
	}
	delete(d.values, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether key is present.
func (d *StrDict) Contains(key string) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Len returns the number of entries.
func (d *StrDict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *StrDict) Keys() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.keys...)
}

// SortedKeys returns the keys in lexical order.
func (d *StrDict) SortedKeys() []string {
	keys := d.Keys()
	sort.Strings(keys)
	return keys
}

// Values returns the values in key insertion order.
func (d *StrDict) Values() []string {
	if d == nil {
		return nil
	}
	out := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, d.values[k])
	}
	return out
}

// Pair is a single dictionary entry.
type Pair struct {
	Key   string
	Value string
}

// Items returns the entries in insertion order.
func (d *StrDict) Items() []Pair {
	if d == nil {
		return nil
	}
	out := make([]Pair, 0, len(d.keys))
	for _, k := range d.keys {
		out = append(out, Pair{Key: k, Value: d.values[k]})
	}
	return out
}

// All iterates over the entries in insertion order. The iterator reads a
// snapshot of the keys taken when iteration starts.
func (d *StrDict) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, p := range d.Items() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Equal reports whether both dictionaries hold the same set of pairs.
func (d *StrDict) Equal(other *StrDict) bool {
	if d.Len() != other.Len() {
		return false
	}
	for _, k := range d.Keys() {
		v, ok := other.Lookup(k)
		if !ok || v != d.values[k] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (d *StrDict) Clone() StrDict {
	var out StrDict
	for _, p := range d.Items() {
		out.Set(p.Key, p.Value)
	}
	return out
}

// Merge returns a copy of d with every entry of other written over it.
// Neither input is modified.
func (d *StrDict) Merge(other *StrDict) StrDict {
	out := d.Clone()
	for _, p := range other.Items() {
		out.Set(p.Key, p.Value)
	}
	return out
}
