package compsxml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-mracek/libcomps/pkg/comps"
	"github.com/j-mracek/libcomps/pkg/compsxml"
)

func sampleDoc() *comps.Comps {
	doc := comps.New()

	core := comps.NewGroup("core", "Core", "Smallest")
	core.Default = true
	core.UserVisible = false
	core.DisplayOrder = 1
	core.NameByLang.Set("cs", "Jádro")
	core.Packages.Append(
		comps.NewPackage("pepper", comps.PackageMandatory),
		comps.NewPackage("bash", comps.PackageDefault),
		comps.NewConditionalPackage("foo", "bar"),
	)
	doc.Groups.Append(core)

	apps := comps.NewCategory("apps", "Apps", "", 10)
	apps.GroupIDs.Append(comps.GroupIDs("core")...)
	doc.Categories.Append(apps)

	env := comps.NewEnvironment("minimal", "Minimal", "", 0)
	env.GroupIDs.Append(comps.NewGroupID("core", true))
	env.OptionIDs.Append(comps.GroupIDs("games")...)
	doc.Environments.Append(env)

	doc.Blacklist.Set("kernel-debug", "x86_64", "i686")
	doc.Whiteout.Set("libfoo")
	return doc
}

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE comps PUBLIC "-//Red Hat, Inc.//DTD Comps info//EN" "comps.dtd">
<comps>
  <group>
    <id>core</id>
    <name>Core</name>
    <name xml:lang="cs">Jádro</name>
    <description>Smallest</description>
    <default>true</default>
    <uservisible>false</uservisible>
    <display_order>1</display_order>
    <packagelist>
      <packagereq type="mandatory">pepper</packagereq>
      <packagereq type="default">bash</packagereq>
      <packagereq type="conditional" requires="bar">foo</packagereq>
    </packagelist>
  </group>
  <category>
    <id>apps</id>
    <name>Apps</name>
    <description></description>
    <display_order>10</display_order>
    <grouplist>
      <groupid>core</groupid>
    </grouplist>
  </category>
  <environment>
    <id>minimal</id>
    <name>Minimal</name>
    <description></description>
    <grouplist>
      <groupid default="true">core</groupid>
    </grouplist>
    <optionlist>
      <groupid>games</groupid>
    </optionlist>
  </environment>
  <blacklist>
    <package name="kernel-debug" arch="x86_64"></package>
    <package name="kernel-debug" arch="i686"></package>
  </blacklist>
  <whiteout>
    <ignoredep package="libfoo"></ignoredep>
  </whiteout>
</comps>
`

func TestSerialize_CanonicalForm(t *testing.T) {
	out, err := compsxml.SerializeToString(sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, sampleXML, out)
}

func TestSerialize_RoundTripIsIdempotent(t *testing.T) {
	first, err := compsxml.SerializeToString(sampleDoc())
	require.NoError(t, err)

	parsed, diags, err := compsxml.ParseString(first)
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.True(t, parsed.Equal(sampleDoc()))

	second, err := compsxml.SerializeToString(parsed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSerialize_NormalizesUnreadableEntries(t *testing.T) {
	doc := comps.New()
	g := comps.NewGroup("  spaced  ", "Name", "")
	g.NameByLang.Set("", "dropped")
	g.Packages.Append(comps.NewPackage(" ", comps.PackageDefault), comps.NewPackage("kept", comps.PackageUnknown))
	doc.Groups.Append(g)
	bare := comps.NewGroup("bare", "Bare", "")
	bare.Packages.Append(comps.NewPackage("", comps.PackageMandatory))
	doc.Groups.Append(bare)
	c := comps.NewCategory("blank-ids", "Blank", "", 0)
	c.GroupIDs.Append(comps.NewGroupID(" ", true))
	doc.Categories.Append(c)
	env := comps.NewEnvironment("blank-options", "Blank", "", 0)
	env.OptionIDs.Append(comps.NewGroupID("", false))
	doc.Environments.Append(env)
	doc.Blacklist.Set("pkg", "", "")
	doc.Blacklist.Set("", "x86_64")
	doc.Whiteout.Set("", "glibc")

	first, err := compsxml.SerializeToString(doc)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(first, "<packagelist>"), "only the group with a named package gets a list")
	assert.NotContains(t, first, "<grouplist>")
	assert.NotContains(t, first, "<optionlist>")
	assert.NotContains(t, first, "<whiteout>")
	assert.NotContains(t, first, "x86_64")
	assert.Contains(t, first, "<id>spaced</id>")
	assert.Contains(t, first, "<packagereq>kept</packagereq>")
	assert.Contains(t, first, `<package name="pkg"></package>`)
	assert.NotContains(t, first, "dropped")

	parsed, _, err := compsxml.ParseString(first)
	require.NoError(t, err)
	second, err := compsxml.SerializeToString(parsed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSerialize_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, compsxml.Serialize(&buf, comps.New()))
	assert.Contains(t, buf.String(), "<comps></comps>\n")

	parsed, diags, err := compsxml.ParseBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.True(t, parsed.IsEmpty())
}

func TestSerialize_Indent(t *testing.T) {
	out, err := compsxml.SerializeToString(sampleDoc(), compsxml.WithIndent("\t"))
	require.NoError(t, err)
	assert.Contains(t, out, "\n\t<group>\n\t\t<id>core</id>")
}

func TestSerialize_SortsLanguagesAndKeys(t *testing.T) {
	doc := comps.New()
	g := comps.NewGroup("g", "G", "")
	g.NameByLang.Set("zh", "z")
	g.NameByLang.Set("ar", "a")
	doc.Groups.Append(g)
	doc.Blacklist.Set("zlib", "x86_64")
	doc.Blacklist.Set("acl", "x86_64")

	out, err := compsxml.SerializeToString(doc)
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte(`xml:lang="ar"`)), bytes.Index([]byte(out), []byte(`xml:lang="zh"`)))
	assert.Less(t, bytes.Index([]byte(out), []byte(`name="acl"`)), bytes.Index([]byte(out), []byte(`name="zlib"`)))
}
