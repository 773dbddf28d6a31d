package comps

// Comps is a complete comps document.
//
// A Comps value exclusively owns its lists and override maps. It carries no
// internal locking; callers sharing one document across goroutines must
// serialize access. Merge and Clone never share state with their inputs.
type Comps struct {
	Groups       GroupList
	Categories   CategoryList
	Environments EnvironmentList
	Blacklist    Blacklist
	Whiteout     Whiteout
}

// New returns an empty document.
func New() *Comps {
	return &Comps{}
}

// IsEmpty reports whether the document holds no entities and no overrides.
func (c *Comps) IsEmpty() bool {
	return c.Groups.Len() == 0 &&
		c.Categories.Len() == 0 &&
		c.Environments.Len() == 0 &&
		c.Blacklist.Len() == 0 &&
		c.Whiteout.Len() == 0
}

// Equal compares the lists element-wise and the override maps by content.
func (c *Comps) Equal(other *Comps) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Groups.Equal(&other.Groups) &&
		c.Categories.Equal(&other.Categories) &&
		c.Environments.Equal(&other.Environments) &&
		c.Blacklist.Equal(&other.Blacklist) &&
		c.Whiteout.Equal(&other.Whiteout)
}

// Clone returns a deep copy.
func (c *Comps) Clone() *Comps {
	return &Comps{
		Groups:       c.Groups.Clone(),
		Categories:   c.Categories.Clone(),
		Environments: c.Environments.Clone(),
		Blacklist:    c.Blacklist.Clone(),
		Whiteout:     c.Whiteout.Clone(),
	}
}

// Merge returns the union of c and other.
//
// Entity lists are united by id: entries of c come first, then entries of
// other with new ids. Entries sharing an id are merged field by field, with
// scalars taken from c, translations and override values taken from other,
// nested id lists united, and GroupID default flags ORed.
// Merge never fails and never modifies its inputs.
func (c *Comps) Merge(other *Comps) *Comps {
	if other == nil {
		return c.Clone()
	}
	return &Comps{
		Groups:       c.Groups.Merge(&other.Groups),
		Categories:   c.Categories.Merge(&other.Categories),
		Environments: c.Environments.Merge(&other.Environments),
		Blacklist:    c.Blacklist.Merge(&other.Blacklist),
		Whiteout:     c.Whiteout.Merge(&other.Whiteout),
	}
}

// Merge folds docs left to right into one document. Nil entries are skipped.
func Merge(docs ...*Comps) *Comps {
	out := New()
	for _, d := range docs {
		if d == nil {
			continue
		}
		out = out.Merge(d)
	}
	return out
}
