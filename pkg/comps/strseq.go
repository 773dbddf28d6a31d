package comps

import "iter"

// StrSeq is an ordered sequence of strings. It holds plain id lists and the
// values of Blacklist and Whiteout entries.
//
// The zero value is an empty sequence ready to use.
type StrSeq struct {
	items []string
}

// NewStrSeq returns a sequence holding values.
func NewStrSeq(values ...string) StrSeq {
	return StrSeq{items: append([]string(nil), values...)}
}

func (s *StrSeq) slice() []string {
	if s == nil {
		return nil
	}
	return s.items
}

// Append adds values at the end.
func (s *StrSeq) Append(values ...string) {
	s.items = append(s.items, values...)
}

// Len returns the number of values.
func (s *StrSeq) Len() int {
	return len(s.slice())
}

// Get returns the value at index i.
func (s *StrSeq) Get(i int) (string, error) {
	items := s.slice()
	if i < 0 || i >= len(items) {
		return "", indexError(i, len(items))
	}
	return items[i], nil
}

// Set replaces the value at index i.
func (s *StrSeq) Set(i int, value string) error {
	if i < 0 || i >= s.Len() {
		return indexError(i, s.Len())
	}
	s.items[i] = value
	return nil
}

// Delete removes the value at index i.
func (s *StrSeq) Delete(i int) error {
	if i < 0 || i >= s.Len() {
		return indexError(i, s.Len())
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	return nil
}

// Clear removes all values.
func (s *StrSeq) Clear() {
	s.items = nil
}

// Slice returns the values in [start, stop). Bounds follow Python slice rules.
func (s *StrSeq) Slice(start, stop int) StrSeq {
	return s.SliceStep(start, stop, 1)
}

// SliceStep returns every step-th value between start and stop.
func (s *StrSeq) SliceStep(start, stop, step int) StrSeq {
	items := s.slice()
	var out StrSeq
	for _, i := range sliceIndices(len(items), start, stop, step) {
		out.items = append(out.items, items[i])
	}
	return out
}

// Index returns the position of the first occurrence of value, or -1.
func (s *StrSeq) Index(value string) int {
	for i, v := range s.slice() {
		if v == value {
			return i
		}
	}
	return -1
}

// GetByID returns id when the sequence holds it, otherwise ErrNotFound.
func (s *StrSeq) GetByID(id string) (string, error) {
	if s.Index(id) < 0 {
		return "", notFoundError("id", id)
	}
	return id, nil
}

// Contains reports whether value occurs in the sequence.
func (s *StrSeq) Contains(value string) bool {
	return s.Index(value) >= 0
}

// Values returns a copy of the values.
func (s *StrSeq) Values() []string {
	return append([]string(nil), s.slice()...)
}

// All iterates over index/value pairs.
func (s *StrSeq) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, v := range s.Values() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal compares element-wise; order matters.
func (s *StrSeq) Equal(other *StrSeq) bool {
	a, b := s.slice(), other.slice()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (s *StrSeq) Clone() StrSeq {
	return NewStrSeq(s.slice()...)
}

// Concat returns a new sequence with the values of s followed by other.
func (s *StrSeq) Concat(other *StrSeq) StrSeq {
	out := s.Clone()
	out.Append(other.slice()...)
	return out
}

// Union treats both sequences as id lists: the result holds each distinct
// value once, values of s first, then new values of other in their order.
func (s *StrSeq) Union(other *StrSeq) StrSeq {
	var out StrSeq
	seen := make(map[string]struct{}, s.Len()+other.Len())
	for _, src := range [][]string{s.slice(), other.slice()} {
		for _, v := range src {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out.items = append(out.items, v)
		}
	}
	return out
}
