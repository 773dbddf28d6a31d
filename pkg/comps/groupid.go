package comps

import "fmt"

// GroupID references a group from a Category or Environment. Default marks
// the group as selected by default within its referrer.
//
// GroupIDs have no natural order.
type GroupID struct {
	ID      string
	Default bool
}

// NewGroupID returns a GroupID.
func NewGroupID(id string, isDefault bool) GroupID {
	return GroupID{ID: id, Default: isDefault}
}

// GroupIDs wraps plain ids into non-default GroupIDs.
func GroupIDs(ids ...string) []GroupID {
	out := make([]GroupID, 0, len(ids))
	for _, id := range ids {
		out = append(out, GroupID{ID: id})
	}
	return out
}

// ItemID returns the referenced group id.
func (g GroupID) ItemID() string { return g.ID }

// Equal reports structural equality on id and default flag.
func (g GroupID) Equal(other GroupID) bool {
	return g.ID == other.ID && g.Default == other.Default
}

// EqualTo compares g with an arbitrary value. GroupID and *GroupID compare
// structurally, a string compares as a non-default GroupID, nil is never
// equal. Any other type yields ErrTypeCompare.
func (g GroupID) EqualTo(other any) (bool, error) {
	switch v := other.(type) {
	case nil:
		return false, nil
	case GroupID:
		return g.Equal(v), nil
	case *GroupID:
		if v == nil {
			return false, nil
		}
		return g.Equal(*v), nil
	case string:
		return g.Equal(GroupID{ID: v}), nil
	default:
		return false, fmt.Errorf("%w: GroupID and %T", ErrTypeCompare, other)
	}
}

// Less always fails with ErrUnorderable.
func (g GroupID) Less(other any) (bool, error) {
	return false, fmt.Errorf("%w: GroupID", ErrUnorderable)
}

// Clone returns g; GroupID holds no references.
func (g GroupID) Clone() GroupID { return g }

// Merge keeps the id and ORs the default flags.
func (g GroupID) Merge(other GroupID) GroupID {
	return GroupID{ID: g.ID, Default: g.Default || other.Default}
}

func (g GroupID) String() string {
	if g.Default {
		return g.ID + " (default)"
	}
	return g.ID
}
