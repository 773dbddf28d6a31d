// Package query filters document entities with boolean expressions.
//
// Expressions use the github.com/expr-lang/expr language and are type
// checked at compile time against the fields of the entity kind:
//
//	groups:       id, name, desc, name_by_lang, desc_by_lang, default,
//	              uservisible, display_order, langonly, packages, package_types
//	categories:   id, name, desc, name_by_lang, desc_by_lang, display_order, group_ids
//	environments: as categories, plus option_ids
//
// Example:
//
//	f, err := query.Compile(query.KindGroup, `uservisible && "bash" in packages`)
//	groups, err := f.Groups(&doc.Groups)
package query
