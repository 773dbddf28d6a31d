package comps

// Environment is an installable system profile. GroupIDs are installed as a
// whole; OptionIDs are offered as optional extras.
type Environment struct {
	ID           string
	Name         string
	Desc         string
	NameByLang   StrDict
	DescByLang   StrDict
	DisplayOrder int
	GroupIDs     GroupIDList
	OptionIDs    GroupIDList
}

// NewEnvironment returns an environment.
func NewEnvironment(id, name, desc string, displayOrder int) *Environment {
	return &Environment{ID: id, Name: name, Desc: desc, DisplayOrder: displayOrder}
}

func (e *Environment) ItemID() string { return e.ID }

func (e *Environment) Equal(other *Environment) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.ID == other.ID &&
		e.Name == other.Name &&
		e.Desc == other.Desc &&
		e.DisplayOrder == other.DisplayOrder &&
		e.NameByLang.Equal(&other.NameByLang) &&
		e.DescByLang.Equal(&other.DescByLang) &&
		e.GroupIDs.Equal(&other.GroupIDs) &&
		e.OptionIDs.Equal(&other.OptionIDs)
}

func (e *Environment) Clone() *Environment {
	out := *e
	out.NameByLang = e.NameByLang.Clone()
	out.DescByLang = e.DescByLang.Clone()
	out.GroupIDs = e.GroupIDs.Clone()
	out.OptionIDs = e.OptionIDs.Clone()
	return &out
}

func (e *Environment) Merge(other *Environment) *Environment {
	out := e.Clone()
	out.NameByLang = e.NameByLang.Merge(&other.NameByLang)
	out.DescByLang = e.DescByLang.Merge(&other.DescByLang)
	out.GroupIDs = e.GroupIDs.Merge(&other.GroupIDs)
	out.OptionIDs = e.OptionIDs.Merge(&other.OptionIDs)
	return out
}
