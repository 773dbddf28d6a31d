package comps

import "iter"

// Item is an element of an id-keyed List.
type Item[T any] interface {
	// ItemID returns the identity used for lookup and merge.
	ItemID() string
	Equal(other T) bool
	Clone() T
	// Merge combines two items sharing an id without modifying either.
	Merge(other T) T
}

// List is an ordered sequence of items addressed by index or id.
// Plain appends keep duplicate ids; Merge folds them.
//
// The zero value is an empty list ready to use.
type List[T Item[T]] struct {
	items []T
}

// The list kinds used by the document model.
type (
	PackageList     = List[Package]
	GroupIDList     = List[GroupID]
	GroupList       = List[*Group]
	CategoryList    = List[*Category]
	EnvironmentList = List[*Environment]
)

// NewList returns a list holding items. Nil entity pointers are dropped.
func NewList[T Item[T]](items ...T) List[T] {
	var l List[T]
	l.Append(items...)
	return l
}

// isNil reports whether item is a nil entity pointer.
func isNil[T any](item T) bool {
	switch p := any(item).(type) {
	case *Group:
		return p == nil
	case *Category:
		return p == nil
	case *Environment:
		return p == nil
	}
	return false
}

func (l *List[T]) slice() []T {
	if l == nil {
		return nil
	}
	return l.items
}

// Append adds items at the end. Nil entity pointers are ignored.
func (l *List[T]) Append(items ...T) {
	for _, item := range items {
		if !isNil(item) {
			l.items = append(l.items, item)
		}
	}
}

// Len returns the number of items.
func (l *List[T]) Len() int {
	return len(l.slice())
}

// Get returns the item at index i.
func (l *List[T]) Get(i int) (T, error) {
	items := l.slice()
	if i < 0 || i >= len(items) {
		var zero T
		return zero, indexError(i, len(items))
	}
	return items[i], nil
}

// Set replaces the item at index i. A nil entity pointer is rejected.
func (l *List[T]) Set(i int, item T) error {
	if i < 0 || i >= l.Len() {
		return indexError(i, l.Len())
	}
	if isNil(item) {
		return ErrNilItem
	}
	l.items[i] = item
	return nil
}

// Delete removes the item at index i.
func (l *List[T]) Delete(i int) error {
	if i < 0 || i >= l.Len() {
		return indexError(i, l.Len())
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	return nil
}

// Clear removes all items.
func (l *List[T]) Clear() {
	l.items = nil
}

// Slice returns the items in [start, stop). Bounds follow Python slice rules.
// The returned list shares items with l.
func (l *List[T]) Slice(start, stop int) List[T] {
	return l.SliceStep(start, stop, 1)
}

// SliceStep returns every step-th item between start and stop.
func (l *List[T]) SliceStep(start, stop, step int) List[T] {
	items := l.slice()
	var out List[T]
	for _, i := range sliceIndices(len(items), start, stop, step) {
		out.items = append(out.items, items[i])
	}
	return out
}

// IndexOf returns the position of the first item with id, or -1.
func (l *List[T]) IndexOf(id string) int {
	for i, item := range l.slice() {
		if item.ItemID() == id {
			return i
		}
	}
	return -1
}

// GetByID returns the first item with id or ErrNotFound.
func (l *List[T]) GetByID(id string) (T, error) {
	i := l.IndexOf(id)
	if i < 0 {
		var zero T
		return zero, notFoundError("id", id)
	}
	return l.items[i], nil
}

// Items returns a copy of the item slice. Pointer items are shared.
func (l *List[T]) Items() []T {
	return append([]T(nil), l.slice()...)
}

// IDs returns the item ids in order.
func (l *List[T]) IDs() []string {
	out := make([]string, 0, l.Len())
	for _, item := range l.slice() {
		out = append(out, item.ItemID())
	}
	return out
}

// All iterates over index/item pairs.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range l.Items() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Equal compares element-wise; order matters.
func (l *List[T]) Equal(other *List[T]) bool {
	a, b := l.slice(), other.slice()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (l *List[T]) Clone() List[T] {
	out := List[T]{items: make([]T, 0, l.Len())}
	for _, item := range l.slice() {
		out.items = append(out.items, item.Clone())
	}
	return out
}

// Concat returns a new list with copies of the items of l followed by
// copies of the items of other. No deduplication takes place.
func (l *List[T]) Concat(other *List[T]) List[T] {
	out := l.Clone()
	for _, item := range other.slice() {
		out.items = append(out.items, item.Clone())
	}
	return out
}

// Merge returns the id-aware union of l and other. Items are visited in
// order, l first; an item whose id is already present is merged into the
// earlier entry, otherwise a copy is appended. The result holds one item
// per id. Neither input is modified.
func (l *List[T]) Merge(other *List[T]) List[T] {
	out := List[T]{items: make([]T, 0, l.Len()+other.Len())}
	index := make(map[string]int, l.Len()+other.Len())
	for _, src := range [][]T{l.slice(), other.slice()} {
		for _, item := range src {
			id := item.ItemID()
			if pos, ok := index[id]; ok {
				out.items[pos] = out.items[pos].Merge(item)
				continue
			}
			index[id] = len(out.items)
			out.items = append(out.items, item.Clone())
		}
	}
	return out
}
