package comps

// Category collects groups for display.
type Category struct {
	ID           string
	Name         string
	Desc         string
	NameByLang   StrDict
	DescByLang   StrDict
	DisplayOrder int
	GroupIDs     GroupIDList
}

// NewCategory returns a category.
func NewCategory(id, name, desc string, displayOrder int) *Category {
	return &Category{ID: id, Name: name, Desc: desc, DisplayOrder: displayOrder}
}

func (c *Category) ItemID() string { return c.ID }

func (c *Category) Equal(other *Category) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.ID == other.ID &&
		c.Name == other.Name &&
		c.Desc == other.Desc &&
		c.DisplayOrder == other.DisplayOrder &&
		c.NameByLang.Equal(&other.NameByLang) &&
		c.DescByLang.Equal(&other.DescByLang) &&
		c.GroupIDs.Equal(&other.GroupIDs)
}

func (c *Category) Clone() *Category {
	out := *c
	out.NameByLang = c.NameByLang.Clone()
	out.DescByLang = c.DescByLang.Clone()
	out.GroupIDs = c.GroupIDs.Clone()
	return &out
}

func (c *Category) Merge(other *Category) *Category {
	out := c.Clone()
	out.NameByLang = c.NameByLang.Merge(&other.NameByLang)
	out.DescByLang = c.DescByLang.Merge(&other.DescByLang)
	out.GroupIDs = c.GroupIDs.Merge(&other.GroupIDs)
	return out
}
