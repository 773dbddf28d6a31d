// Package comps models comps documents: installable Groups, Categories and
// Environments with multilingual labels, plus Blacklist and Whiteout
// override maps.
//
// # Document Model
//
// A Comps document owns three id-keyed lists and two override maps:
//
//	doc := comps.New()
//	g := comps.NewGroup("core", "Core", "Smallest possible installation")
//	g.NameByLang.Set("cs", "Jádro")
//	g.Packages.Append(comps.NewPackage("bash", comps.PackageMandatory))
//	doc.Groups.Append(g)
//
// Lists support indexed access (ErrIndexOutOfRange on bad indexes),
// Python-style slicing that never fails, and lookup by id (ErrNotFound).
//
// # Merge
//
// Documents from several repositories are combined with Merge:
//
//	combined := comps.Merge(base, updates, local)
//
// The union is id-aware and total:
//   - entries of the left document keep their position; new ids from the
//     right are appended in their order
//   - two entries sharing an id are merged: scalars from the left,
//     translations and override values from the right, nested lists united
//   - GroupID default flags are ORed
//
// Merge is a pure function. Concurrent merges reading the same inputs are
// safe; mutating a single document from several goroutines is not.
//
// The XML mapping lives in package compsxml.
package comps
