package comps

import (
	"iter"
	"sort"
)

// overrideMap maps a key, such as a package name, to an ordered list of
// values. Keys keep insertion order.
type overrideMap struct {
	keys   []string
	values map[string]*StrSeq
}

// Set replaces the entry for key with values.
func (m *overrideMap) Set(key string, values ...string) {
	seq := NewStrSeq(values...)
	m.put(key, &seq)
}

// SetSeq replaces the entry for key with a copy of seq.
func (m *overrideMap) SetSeq(key string, seq StrSeq) {
	c := seq.Clone()
	m.put(key, &c)
}

func (m *overrideMap) put(key string, seq *StrSeq) {
	if m.values == nil {
		m.values = make(map[string]*StrSeq)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = seq
}

// Get returns the live value sequence for key; appending to it updates the
// map. A missing key returns ErrNotFound.
func (m *overrideMap) Get(key string) (*StrSeq, error) {
	seq, ok := m.values[key]
	if !ok {
		return nil, notFoundError("key", key)
	}
	return seq, nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (m *overrideMap) Delete(key string) error {
	if _, ok := m.values[key]; !ok {
		return notFoundError("key", key)
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return nil
}

// Contains reports whether key is present.
func (m *overrideMap) Contains(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *overrideMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *overrideMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// SortedKeys returns the keys in lexical order.
func (m *overrideMap) SortedKeys() []string {
	keys := m.Keys()
	sort.Strings(keys)
	return keys
}

// All iterates over keys in insertion order with a copy of each value list.
func (m *overrideMap) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.values[k].Values()) {
				return
			}
		}
	}
}

func (m *overrideMap) equal(other *overrideMap) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, seq := range m.values {
		o, ok := other.values[k]
		if !ok || !seq.Equal(o) {
			return false
		}
	}
	return true
}

func (m *overrideMap) clone() overrideMap {
	var out overrideMap
	for _, k := range m.keys {
		out.SetSeq(k, *m.values[k])
	}
	return out
}

// merge copies m and replaces or adds every entry of other wholesale.
func (m *overrideMap) merge(other *overrideMap) overrideMap {
	out := m.clone()
	for _, k := range other.keys {
		out.SetSeq(k, *other.values[k])
	}
	return out
}

// Blacklist lists packages to suppress, keyed by package name; the values
// are the affected architectures.
//
// The zero value is an empty blacklist ready to use.
type Blacklist struct {
	overrideMap
}

func (b *Blacklist) Equal(other *Blacklist) bool {
	return b.overrideMap.equal(&other.overrideMap)
}

func (b *Blacklist) Clone() Blacklist {
	return Blacklist{b.overrideMap.clone()}
}

// Merge returns b with every entry of other replacing or adding to it.
func (b *Blacklist) Merge(other *Blacklist) Blacklist {
	return Blacklist{b.overrideMap.merge(&other.overrideMap)}
}

// Whiteout lists dependencies to ignore, keyed by package name; the values
// are the required packages whose dependency is whited out.
//
// The zero value is an empty whiteout ready to use.
type Whiteout struct {
	overrideMap
}

func (w *Whiteout) Equal(other *Whiteout) bool {
	return w.overrideMap.equal(&other.overrideMap)
}

func (w *Whiteout) Clone() Whiteout {
	return Whiteout{w.overrideMap.clone()}
}

// Merge returns w with every entry of other replacing or adding to it.
func (w *Whiteout) Merge(other *Whiteout) Whiteout {
	return Whiteout{w.overrideMap.merge(&other.overrideMap)}
}
