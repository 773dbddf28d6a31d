package comps_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-mracek/libcomps/pkg/comps"
)

func TestGroupID_Equality(t *testing.T) {
	gid1 := comps.GroupID{ID: "gid1"}
	gid2 := comps.NewGroupID("gid2", false)
	gid3 := comps.NewGroupID("gid3", true)

	assert.True(t, gid1.Equal(gid1))
	assert.False(t, gid1.Equal(gid2))
	assert.False(t, gid1.Equal(gid3))
	assert.False(t, comps.NewGroupID("a", false).Equal(comps.NewGroupID("a", true)))
}

func TestGroupID_EqualTo(t *testing.T) {
	gid := comps.GroupID{ID: "gid1"}

	tests := []struct {
		name    string
		other   any
		want    bool
		wantErr error
	}{
		{"same value", comps.GroupID{ID: "gid1"}, true, nil},
		{"pointer", &comps.GroupID{ID: "gid1"}, true, nil},
		{"nil pointer", (*comps.GroupID)(nil), false, nil},
		{"nil", nil, false, nil},
		{"matching string", "gid1", true, nil},
		{"other string", "gid2", false, nil},
		{"int", 1, false, comps.ErrTypeCompare},
		{"package", comps.NewPackage("gid1", comps.PackageDefault), false, comps.ErrTypeCompare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gid.EqualTo(tt.other)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGroupID_Unorderable(t *testing.T) {
	_, err := comps.GroupID{ID: "a"}.Less(comps.GroupID{ID: "b"})
	assert.True(t, errors.Is(err, comps.ErrUnorderable), "got %v", err)
}

func TestGroupIDs_WrapsPlainStrings(t *testing.T) {
	e := comps.NewEnvironment("e1", "environment1", "env desc", 0)
	e.GroupIDs.Append(comps.GroupIDs("groupid1", "groupid2")...)
	e.GroupIDs.Append(comps.NewGroupID("groupid3", true))
	e.GroupIDs.Append(comps.GroupID{ID: "groupid4"})
	e.GroupIDs.Append(comps.NewGroupID("groupid4", false))

	want := []bool{false, false, true, false, false}
	for i, w := range want {
		g, err := e.GroupIDs.Get(i)
		require.NoError(t, err)
		assert.Equal(t, w, g.Default, "index %d", i)
	}
}

func TestPackage_Equality(t *testing.T) {
	a := comps.NewPackage("kernel-3.2", comps.PackageMandatory)
	assert.Equal(t, "kernel-3.2", a.Name)
	assert.Equal(t, comps.PackageMandatory, a.Type)

	assert.True(t, a.Equal(comps.Package{Name: "kernel-3.2", Type: comps.PackageMandatory, Requires: "ignored"}))
	assert.False(t, a.Equal(comps.NewPackage("kernel-3.2", comps.PackageOptional)))

	c1 := comps.NewConditionalPackage("foo-langpack", "foo")
	c2 := comps.NewConditionalPackage("foo-langpack", "bar")
	assert.False(t, c1.Equal(c2))
}

func TestParsePackageType(t *testing.T) {
	for _, typ := range []comps.PackageType{
		comps.PackageConditional, comps.PackageDefault, comps.PackageMandatory,
		comps.PackageOptional, comps.PackageUnknown,
	} {
		got, ok := comps.ParsePackageType(typ.String())
		assert.True(t, ok)
		assert.Equal(t, typ, got)
	}

	got, ok := comps.ParsePackageType("bogus")
	assert.False(t, ok)
	assert.Equal(t, comps.PackageUnknown, got)
}
