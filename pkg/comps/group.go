package comps

// Group is a named bundle of packages.
type Group struct {
	ID           string
	Name         string
	Desc         string
	NameByLang   StrDict
	DescByLang   StrDict
	Default      bool
	UserVisible  bool
	DisplayOrder int
	LangOnly     string
	Packages     PackageList
}

// NewGroup returns a user-visible, non-default group.
func NewGroup(id, name, desc string) *Group {
	return &Group{ID: id, Name: name, Desc: desc, UserVisible: true}
}

// ItemID returns the group id.
func (g *Group) ItemID() string { return g.ID }

// Equal compares every field, including translations and packages.
func (g *Group) Equal(other *Group) bool {
	if g == nil || other == nil {
		return g == other
	}
	return g.ID == other.ID &&
		g.Name == other.Name &&
		g.Desc == other.Desc &&
		g.Default == other.Default &&
		g.UserVisible == other.UserVisible &&
		g.DisplayOrder == other.DisplayOrder &&
		g.LangOnly == other.LangOnly &&
		g.NameByLang.Equal(&other.NameByLang) &&
		g.DescByLang.Equal(&other.DescByLang) &&
		g.Packages.Equal(&other.Packages)
}

// Clone returns a deep copy.
func (g *Group) Clone() *Group {
	out := *g
	out.NameByLang = g.NameByLang.Clone()
	out.DescByLang = g.DescByLang.Clone()
	out.Packages = g.Packages.Clone()
	return &out
}

// Merge combines two definitions of the same group. Scalars come from g,
// translations are overwritten by other, packages are united by name.
func (g *Group) Merge(other *Group) *Group {
	out := g.Clone()
	out.NameByLang = g.NameByLang.Merge(&other.NameByLang)
	out.DescByLang = g.DescByLang.Merge(&other.DescByLang)
	out.Packages = g.Packages.Merge(&other.Packages)
	return out
}

// PackagesOfType returns the packages with type t, in order.
func (g *Group) PackagesOfType(t PackageType) []Package {
	var out []Package
	for _, p := range g.Packages.slice() {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}
