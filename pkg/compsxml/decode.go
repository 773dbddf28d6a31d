package compsxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// ParseString parses a comps document held in s.
func ParseString(s string, opts ...Option) (*comps.Comps, Diagnostics, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseBytes parses a comps document held in b.
func ParseBytes(b []byte, opts ...Option) (*comps.Comps, Diagnostics, error) {
	return Parse(bytes.NewReader(b), opts...)
}

// Parse reads one comps document from r.
//
// The returned Diagnostics belong to this call only. On a *ParseError the
// document is nil; diagnostics gathered before the failure are still
// returned.
func Parse(r io.Reader, opts ...Option) (*comps.Comps, Diagnostics, error) {
	o := buildOptions(opts)
	xd := xml.NewDecoder(r)
	// documents declaring a legacy encoding such as ISO-8859-1 are decoded to UTF-8
	xd.CharsetReader = charset.NewReaderLabel
	d := &decoder{xd: xd, opts: o}

	o.logger.Verbose("Parsing comps document %s", d.sourceName())
	doc, err := d.document()
	if err != nil {
		return nil, d.diags, err
	}

	o.logger.Verbose("Parsed %s: %d groups, %d categories, %d environments, %d diagnostics",
		d.sourceName(), doc.Groups.Len(), doc.Categories.Len(), doc.Environments.Len(), len(d.diags))
	return doc, d.diags, nil
}

// Load parses r and stores the result in *dst. When parsing fails *dst is
// left untouched.
func Load(dst *comps.Comps, r io.Reader, opts ...Option) (Diagnostics, error) {
	doc, diags, err := Parse(r, opts...)
	if err != nil {
		return diags, err
	}
	*dst = *doc
	return diags, nil
}

type position struct {
	line, col int
}

// overrides is the mutable surface shared by Blacklist and Whiteout.
type overrides interface {
	Get(key string) (*comps.StrSeq, error)
	Set(key string, values ...string)
}

type decoder struct {
	xd    *xml.Decoder
	opts  options
	diags Diagnostics
}

func (d *decoder) sourceName() string {
	if d.opts.source == "" {
		return "<input>"
	}
	return d.opts.source
}

func (d *decoder) here() position {
	line, col := d.xd.InputPos()
	return position{line: line, col: col}
}

func (d *decoder) report(at position, isError bool, format string, args ...any) {
	diag := Diagnostic{
		Message: fmt.Sprintf(format, args...),
		IsError: isError,
		Line:    at.line,
		Column:  at.col,
	}
	d.diags = append(d.diags, diag)
	if isError {
		d.opts.logger.Error("%s:%s", d.sourceName(), diag)
	} else {
		d.opts.logger.Warn("%s:%s", d.sourceName(), diag)
	}
}

func (d *decoder) warn(at position, format string, args ...any) {
	d.report(at, false, format, args...)
}

func (d *decoder) fail(at position, format string, args ...any) {
	d.report(at, true, format, args...)
}

func (d *decoder) parseError(message, hint string) error {
	at := d.here()
	return &ParseError{
		Source:  d.opts.source,
		Line:    at.line,
		Column:  at.col,
		Message: message,
		Hint:    hint,
	}
}

// token returns the next token. io.EOF is passed through unchanged so the
// callers outside the root element can tell a clean end from a failure.
func (d *decoder) token() (xml.Token, error) {
	tok, err := d.xd.Token()
	if err == io.EOF {
		return nil, err
	}
	if err != nil {
		at := d.here()
		return nil, wrapXMLError(err, d.opts.source, at.line, at.col)
	}
	return tok, nil
}

// next returns the next token inside an open element, where end of input
// always means truncation.
func (d *decoder) next() (xml.Token, error) {
	tok, err := d.token()
	if err == io.EOF {
		at := d.here()
		return nil, wrapXMLError(err, d.opts.source, at.line, at.col)
	}
	return tok, err
}

func (d *decoder) skip() error {
	if err := d.xd.Skip(); err != nil {
		at := d.here()
		return wrapXMLError(err, d.opts.source, at.line, at.col)
	}
	return nil
}

func (d *decoder) document() (*comps.Comps, error) {
	if err := d.root(); err != nil {
		return nil, err
	}

	doc := comps.New()
	err := d.children(func(t xml.StartElement, at position) error {
		switch t.Name.Local {
		case elGroup:
			g, err := d.group(at)
			if err != nil {
				return err
			}
			doc.Groups.Append(g)
		case elCategory:
			c, err := d.category(at)
			if err != nil {
				return err
			}
			doc.Categories.Append(c)
		case elEnvironment:
			e, err := d.environment(at)
			if err != nil {
				return err
			}
			doc.Environments.Append(e)
		case elBlacklist:
			return d.overrideList(&doc.Blacklist, elBlacklist, elPackage, attrName, attrArch)
		case elWhiteout:
			return d.overrideList(&doc.Whiteout, elWhiteout, elIgnoreDep, attrPackage, attrRequires)
		default:
			return d.unknown(t, at, elComps)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := d.trailer(); err != nil {
		return nil, err
	}
	return doc, nil
}

// root consumes the prolog and the <comps> start tag.
func (d *decoder) root() error {
	for {
		tok, err := d.token()
		if errors.Is(err, io.EOF) {
			return d.parseError("missing root element <comps>",
				"The input is empty or holds no elements.")
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != elComps {
				return d.parseError(fmt.Sprintf("root element is <%s>, expected <comps>", t.Name.Local),
					"A comps document must start with a <comps> element.")
			}
			return nil
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return d.parseError("text before root element", "Remove any content preceding <comps>.")
			}
		}
	}
}

// trailer checks that nothing but whitespace, comments and processing
// instructions follows the root element.
func (d *decoder) trailer() error {
	for {
		tok, err := d.token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			return d.parseError(fmt.Sprintf("element <%s> after root element", t.Name.Local),
				"A document holds exactly one <comps> element.")
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return d.parseError("text after root element", "Remove any content following </comps>.")
			}
		}
	}
}

// children calls fn for every child element of the open element and returns
// after its end tag. fn must consume the child completely. Text between
// children is ignored.
func (d *decoder) children(fn func(t xml.StartElement, at position) error) error {
	for {
		tok, err := d.next()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t, d.here()); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// text returns the trimmed character data of the open element and consumes
// its end tag.
func (d *decoder) text() (string, error) {
	var b strings.Builder
	for {
		tok, err := d.next()
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			d.warn(d.here(), "unexpected element <%s> inside text", t.Name.Local)
			if err := d.skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return strings.TrimSpace(b.String()), nil
		}
	}
}

func (d *decoder) unknown(t xml.StartElement, at position, parent string) error {
	d.warn(at, "unknown element <%s> in <%s> ignored", t.Name.Local, parent)
	return d.skip()
}

func attr(t xml.StartElement, local string) (string, bool) {
	for _, a := range t.Attr {
		if a.Name.Local == local && a.Name.Space == "" {
			return a.Value, true
		}
	}
	return "", false
}

func langOf(t xml.StartElement) string {
	for _, a := range t.Attr {
		if a.Name.Local == attrLang && (a.Name.Space == xmlNamespace || a.Name.Space == "xml") {
			return a.Value
		}
	}
	return ""
}

// entity carries the fields shared by groups, categories and environments.
type entity struct {
	kind         string
	id           *string
	name         *string
	desc         *string
	nameByLang   *comps.StrDict
	descByLang   *comps.StrDict
	displayOrder *int
	seen         map[string]bool
}

func newEntity(kind string, id, name, desc *string, nameByLang, descByLang *comps.StrDict, displayOrder *int) *entity {
	return &entity{
		kind:         kind,
		id:           id,
		name:         name,
		desc:         desc,
		nameByLang:   nameByLang,
		descByLang:   descByLang,
		displayOrder: displayOrder,
		seen:         make(map[string]bool),
	}
}

func (e *entity) label() string {
	if *e.id == "" {
		return e.kind
	}
	return fmt.Sprintf("%s %q", e.kind, *e.id)
}

// first reports whether element is seen for the first time in e and warns
// about repeats, whose values are dropped.
func (d *decoder) first(e *entity, element string, at position) bool {
	if e.seen[element] {
		d.warn(at, "duplicate <%s> in %s ignored", element, e.label())
		return false
	}
	e.seen[element] = true
	return true
}

// common handles id, name, description and display_order.
func (d *decoder) common(e *entity, t xml.StartElement, at position) error {
	element := t.Name.Local
	value, err := d.text()
	if err != nil {
		return err
	}

	switch element {
	case elID:
		if d.first(e, element, at) {
			*e.id = value
		}
	case elName, elDescription:
		scalar, byLang := e.name, e.nameByLang
		if element == elDescription {
			scalar, byLang = e.desc, e.descByLang
		}
		if lang := langOf(t); lang != "" {
			if byLang.Contains(lang) {
				d.warn(at, "duplicate <%s xml:lang=%q> in %s replaces earlier value", element, lang, e.label())
			}
			byLang.Set(lang, value)
			return nil
		}
		if d.first(e, element, at) {
			*scalar = value
		}
	case elDisplayOrder:
		if !d.first(e, element, at) {
			return nil
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			d.fail(at, "invalid integer %q in <%s> of %s", value, element, e.label())
			return nil
		}
		*e.displayOrder = n
	}
	return nil
}

func (d *decoder) boolField(e *entity, t xml.StartElement, at position, dst *bool) error {
	value, err := d.text()
	if err != nil {
		return err
	}
	if !d.first(e, t.Name.Local, at) {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		d.fail(at, "invalid boolean %q in <%s> of %s", value, t.Name.Local, e.label())
		return nil
	}
	*dst = b
	return nil
}

func (d *decoder) stringField(e *entity, t xml.StartElement, at position, dst *string) error {
	value, err := d.text()
	if err != nil {
		return err
	}
	if d.first(e, t.Name.Local, at) {
		*dst = value
	}
	return nil
}

func (d *decoder) finish(e *entity, at position) {
	if *e.id == "" {
		d.warn(at, "%s without <id>", e.kind)
	}
}

func (d *decoder) group(at position) (*comps.Group, error) {
	g := comps.NewGroup("", "", "")
	e := newEntity(elGroup, &g.ID, &g.Name, &g.Desc, &g.NameByLang, &g.DescByLang, &g.DisplayOrder)

	err := d.children(func(t xml.StartElement, here position) error {
		switch t.Name.Local {
		case elID, elName, elDescription, elDisplayOrder:
			return d.common(e, t, here)
		case elDefault:
			return d.boolField(e, t, here, &g.Default)
		case elUserVisible:
			return d.boolField(e, t, here, &g.UserVisible)
		case elLangOnly:
			return d.stringField(e, t, here, &g.LangOnly)
		case elPackageList:
			return d.packageList(e, &g.Packages)
		default:
			return d.unknown(t, here, elGroup)
		}
	})
	if err != nil {
		return nil, err
	}

	d.finish(e, at)
	return g, nil
}

func (d *decoder) category(at position) (*comps.Category, error) {
	c := comps.NewCategory("", "", "", 0)
	e := newEntity(elCategory, &c.ID, &c.Name, &c.Desc, &c.NameByLang, &c.DescByLang, &c.DisplayOrder)

	err := d.children(func(t xml.StartElement, here position) error {
		switch t.Name.Local {
		case elID, elName, elDescription, elDisplayOrder:
			return d.common(e, t, here)
		case elGroupList:
			return d.groupIDList(e, elGroupList, &c.GroupIDs)
		default:
			return d.unknown(t, here, elCategory)
		}
	})
	if err != nil {
		return nil, err
	}

	d.finish(e, at)
	return c, nil
}

func (d *decoder) environment(at position) (*comps.Environment, error) {
	env := comps.NewEnvironment("", "", "", 0)
	e := newEntity(elEnvironment, &env.ID, &env.Name, &env.Desc, &env.NameByLang, &env.DescByLang, &env.DisplayOrder)

	err := d.children(func(t xml.StartElement, here position) error {
		switch t.Name.Local {
		case elID, elName, elDescription, elDisplayOrder:
			return d.common(e, t, here)
		case elGroupList:
			return d.groupIDList(e, elGroupList, &env.GroupIDs)
		case elOptionList:
			return d.groupIDList(e, elOptionList, &env.OptionIDs)
		default:
			return d.unknown(t, here, elEnvironment)
		}
	})
	if err != nil {
		return nil, err
	}

	d.finish(e, at)
	return env, nil
}

func (d *decoder) packageList(e *entity, dst *comps.PackageList) error {
	return d.children(func(t xml.StartElement, at position) error {
		if t.Name.Local != elPackageReq {
			return d.unknown(t, at, elPackageList)
		}

		name, err := d.text()
		if err != nil {
			return err
		}
		if name == "" {
			d.warn(at, "empty <packagereq> in %s ignored", e.label())
			return nil
		}

		p := comps.Package{Name: name}
		if typ, ok := attr(t, attrType); ok {
			pt, known := comps.ParsePackageType(typ)
			if !known {
				d.warn(at, "unknown package type %q for %q in %s", typ, name, e.label())
			}
			p.Type = pt
		} else {
			d.warn(at, "package %q in %s has no type", name, e.label())
		}
		p.Requires, _ = attr(t, attrRequires)

		dst.Append(p)
		return nil
	})
}

func (d *decoder) groupIDList(e *entity, list string, dst *comps.GroupIDList) error {
	return d.children(func(t xml.StartElement, at position) error {
		if t.Name.Local != elGroupID {
			return d.unknown(t, at, list)
		}

		id, err := d.text()
		if err != nil {
			return err
		}
		if id == "" {
			d.warn(at, "empty <groupid> in %s ignored", e.label())
			return nil
		}

		gid := comps.GroupID{ID: id}
		if v, ok := attr(t, attrDefault); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				d.fail(at, "invalid boolean %q in default attribute of <groupid> %q", v, id)
			} else {
				gid.Default = b
			}
		}

		dst.Append(gid)
		return nil
	})
}

// overrideList reads a blacklist or whiteout section. Entries sharing a key
// accumulate their values in document order.
func (d *decoder) overrideList(dst overrides, section, entry, keyAttr, valueAttr string) error {
	return d.children(func(t xml.StartElement, at position) error {
		if t.Name.Local != entry {
			return d.unknown(t, at, section)
		}
		if err := d.skip(); err != nil {
			return err
		}

		key, _ := attr(t, keyAttr)
		if key == "" {
			d.warn(at, "<%s> in <%s> without %s attribute ignored", entry, section, keyAttr)
			return nil
		}

		value, _ := attr(t, valueAttr)
		if seq, err := dst.Get(key); err == nil {
			if value != "" {
				seq.Append(value)
			}
			return nil
		}
		if value != "" {
			dst.Set(key, value)
		} else {
			dst.Set(key)
		}
		return nil
	})
}
