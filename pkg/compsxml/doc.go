// Package compsxml reads and writes comps documents in the yum comps XML
// format.
//
// Parsing is tolerant: unknown elements, unrecognised package types and
// similar recoverable problems are reported as Diagnostics and the document
// is still produced. Only malformed or truncated XML, and a missing or wrong
// root element, fail with a *ParseError.
//
//	doc, diags, err := compsxml.ParseFile(ctx, "comps.xml")
//	if err != nil {
//	    return err
//	}
//	for _, d := range diags.Warnings() {
//	    log.Println(d)
//	}
//
// Serialization is canonical: fields are written in a fixed order, language
// entries and override keys are sorted, and serializing a parsed canonical
// document reproduces it byte for byte.
package compsxml
