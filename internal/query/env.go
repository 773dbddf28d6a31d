package query

import (
	"fmt"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// prototype returns an environment with the field types of kind.
func prototype(kind Kind) (map[string]any, error) {
	switch kind {
	case KindGroup:
		return GroupEnv(comps.NewGroup("", "", "")), nil
	case KindCategory:
		return CategoryEnv(comps.NewCategory("", "", "", 0)), nil
	case KindEnvironment:
		return EnvironmentEnv(comps.NewEnvironment("", "", "", 0)), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidQuery, kind)
	}
}

// GroupEnv exposes g to expressions.
func GroupEnv(g *comps.Group) map[string]any {
	packages := make([]string, 0, g.Packages.Len())
	types := make(map[string]string, g.Packages.Len())
	for _, p := range g.Packages.Items() {
		packages = append(packages, p.Name)
		types[p.Name] = p.Type.String()
	}

	return map[string]any{
		"id":            g.ID,
		"name":          g.Name,
		"desc":          g.Desc,
		"name_by_lang":  dict(&g.NameByLang),
		"desc_by_lang":  dict(&g.DescByLang),
		"default":       g.Default,
		"uservisible":   g.UserVisible,
		"display_order": g.DisplayOrder,
		"langonly":      g.LangOnly,
		"packages":      packages,
		"package_types": types,
	}
}

// CategoryEnv exposes c to expressions.
func CategoryEnv(c *comps.Category) map[string]any {
	return map[string]any{
		"id":            c.ID,
		"name":          c.Name,
		"desc":          c.Desc,
		"name_by_lang":  dict(&c.NameByLang),
		"desc_by_lang":  dict(&c.DescByLang),
		"display_order": c.DisplayOrder,
		"group_ids":     c.GroupIDs.IDs(),
	}
}

// EnvironmentEnv exposes e to expressions.
func EnvironmentEnv(e *comps.Environment) map[string]any {
	return map[string]any{
		"id":            e.ID,
		"name":          e.Name,
		"desc":          e.Desc,
		"name_by_lang":  dict(&e.NameByLang),
		"desc_by_lang":  dict(&e.DescByLang),
		"display_order": e.DisplayOrder,
		"group_ids":     e.GroupIDs.IDs(),
		"option_ids":    e.OptionIDs.IDs(),
	}
}

func dict(d *comps.StrDict) map[string]string {
	out := make(map[string]string, d.Len())
	for k, v := range d.All() {
		out[k] = v
	}
	return out
}

