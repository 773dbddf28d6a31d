package compsxml

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// SerializeToString returns the canonical XML form of doc.
func SerializeToString(doc *comps.Comps, opts ...Option) (string, error) {
	var b strings.Builder
	if err := Serialize(&b, doc, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Serialize writes the canonical XML form of doc to w.
//
// Text values are trimmed, and entries that cannot be read back (packages
// and group references without a name, blank override values) are omitted,
// so parsing the output and serializing again yields the same bytes.
func Serialize(w io.Writer, doc *comps.Comps, opts ...Option) error {
	o := buildOptions(opts)
	if doc == nil {
		doc = comps.New()
	}

	bw := bufio.NewWriter(w)
	if _, err := io.WriteString(bw, xml.Header+doctype+"\n"); err != nil {
		return fmt.Errorf("failed to write document header: %w", err)
	}

	xe := xml.NewEncoder(bw)
	xe.Indent("", o.indent)
	e := &encoder{xe: xe}
	e.document(doc)
	if e.err == nil {
		e.err = xe.Flush()
	}
	if e.err == nil {
		_, e.err = bw.WriteString("\n")
	}
	if e.err == nil {
		e.err = bw.Flush()
	}
	if e.err != nil {
		return fmt.Errorf("failed to serialize comps document: %w", e.err)
	}

	o.logger.Verbose("Serialized %d groups, %d categories, %d environments",
		doc.Groups.Len(), doc.Categories.Len(), doc.Environments.Len())
	return nil
}

// encoder wraps xml.Encoder with a sticky error.
type encoder struct {
	xe  *xml.Encoder
	err error
}

func (e *encoder) token(t xml.Token) {
	if e.err != nil {
		return
	}
	e.err = e.xe.EncodeToken(t)
}

func (e *encoder) start(name string, attrs ...xml.Attr) {
	e.token(xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

func (e *encoder) end(name string) {
	e.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (e *encoder) element(name, value string, attrs ...xml.Attr) {
	e.start(name, attrs...)
	if value = strings.TrimSpace(value); value != "" {
		e.token(xml.CharData(value))
	}
	e.end(name)
}

func (e *encoder) empty(name string, attrs ...xml.Attr) {
	e.start(name, attrs...)
	e.end(name)
}

func attribute(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func langAttr(lang string) xml.Attr {
	return xml.Attr{Name: xml.Name{Space: xmlNamespace, Local: attrLang}, Value: lang}
}

func (e *encoder) document(doc *comps.Comps) {
	e.start(elComps)
	for _, g := range doc.Groups.Items() {
		e.group(g)
	}
	for _, c := range doc.Categories.Items() {
		e.category(c)
	}
	for _, env := range doc.Environments.Items() {
		e.environment(env)
	}
	e.overrides(elBlacklist, elPackage, attrName, attrArch, doc.Blacklist.SortedKeys(), doc.Blacklist.Get)
	e.overrides(elWhiteout, elIgnoreDep, attrPackage, attrRequires, doc.Whiteout.SortedKeys(), doc.Whiteout.Get)
	e.end(elComps)
}

// header writes id, names and descriptions in canonical order.
func (e *encoder) header(id, name, desc string, nameByLang, descByLang *comps.StrDict) {
	e.element(elID, id)
	e.localized(elName, name, nameByLang)
	e.localized(elDescription, desc, descByLang)
}

func (e *encoder) localized(element, value string, byLang *comps.StrDict) {
	e.element(element, value)
	for _, lang := range byLang.SortedKeys() {
		if lang == "" {
			continue
		}
		v, _ := byLang.Lookup(lang)
		e.element(element, v, langAttr(lang))
	}
}

func (e *encoder) displayOrder(n int) {
	if n != 0 {
		e.element(elDisplayOrder, strconv.Itoa(n))
	}
}

func (e *encoder) group(g *comps.Group) {
	e.start(elGroup)
	e.header(g.ID, g.Name, g.Desc, &g.NameByLang, &g.DescByLang)
	e.element(elDefault, strconv.FormatBool(g.Default))
	e.element(elUserVisible, strconv.FormatBool(g.UserVisible))
	e.displayOrder(g.DisplayOrder)
	if strings.TrimSpace(g.LangOnly) != "" {
		e.element(elLangOnly, g.LangOnly)
	}

	var packages []comps.Package
	for _, p := range g.Packages.Items() {
		if strings.TrimSpace(p.Name) != "" {
			packages = append(packages, p)
		}
	}
	if len(packages) > 0 {
		e.start(elPackageList)
		for _, p := range packages {
			var attrs []xml.Attr
			if p.Type != comps.PackageUnknown {
				attrs = append(attrs, attribute(attrType, p.Type.String()))
			}
			if p.Requires != "" {
				attrs = append(attrs, attribute(attrRequires, p.Requires))
			}
			e.element(elPackageReq, p.Name, attrs...)
		}
		e.end(elPackageList)
	}
	e.end(elGroup)
}

func (e *encoder) category(c *comps.Category) {
	e.start(elCategory)
	e.header(c.ID, c.Name, c.Desc, &c.NameByLang, &c.DescByLang)
	e.displayOrder(c.DisplayOrder)
	e.groupIDs(elGroupList, &c.GroupIDs)
	e.end(elCategory)
}

func (e *encoder) environment(env *comps.Environment) {
	e.start(elEnvironment)
	e.header(env.ID, env.Name, env.Desc, &env.NameByLang, &env.DescByLang)
	e.displayOrder(env.DisplayOrder)
	e.groupIDs(elGroupList, &env.GroupIDs)
	e.groupIDs(elOptionList, &env.OptionIDs)
	e.end(elEnvironment)
}

func (e *encoder) groupIDs(list string, ids *comps.GroupIDList) {
	var written []comps.GroupID
	for _, gid := range ids.Items() {
		if strings.TrimSpace(gid.ID) != "" {
			written = append(written, gid)
		}
	}
	if len(written) == 0 {
		return
	}
	e.start(list)
	for _, gid := range written {
		if gid.Default {
			e.element(elGroupID, gid.ID, attribute(attrDefault, "true"))
		} else {
			e.element(elGroupID, gid.ID)
		}
	}
	e.end(list)
}

// overrides writes one element per value, or a key-only element for a key
// without values. The section is omitted when no key can be written.
func (e *encoder) overrides(section, entry, keyAttr, valueAttr string, keys []string, get func(string) (*comps.StrSeq, error)) {
	keys = slices.DeleteFunc(slices.Clone(keys), func(key string) bool { return key == "" })
	if len(keys) == 0 {
		return
	}
	e.start(section)
	for _, key := range keys {
		seq, err := get(key)
		if err != nil {
			continue
		}
		written := false
		for _, v := range seq.Values() {
			if v == "" {
				continue
			}
			e.empty(entry, attribute(keyAttr, key), attribute(valueAttr, v))
			written = true
		}
		if !written {
			e.empty(entry, attribute(keyAttr, key))
		}
	}
	e.end(section)
}
