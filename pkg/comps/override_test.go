package comps_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-mracek/libcomps/pkg/comps"
)

// overrides abstracts over Blacklist and Whiteout so both run the same checks.
type overrides interface {
	Set(key string, values ...string)
	Get(key string) (*comps.StrSeq, error)
	Delete(key string) error
	Contains(key string) bool
	Len() int
}

type overrideCase struct {
	name  string
	a, b  overrides
	equal func() bool
}

func blacklistCase() overrideCase {
	var a, b comps.Blacklist
	return overrideCase{"blacklist", &a, &b, func() bool { return a.Equal(&b) }}
}

func whiteoutCase() overrideCase {
	var a, b comps.Whiteout
	return overrideCase{"whiteout", &a, &b, func() bool { return a.Equal(&b) }}
}

func TestOverrideMaps_Scoping(t *testing.T) {
	tests := []overrideCase{blacklistCase(), whiteoutCase()}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.a.Set("key")
			seq, err := tt.a.Get("key")
			require.NoError(t, err)
			empty := comps.StrSeq{}
			assert.True(t, seq.Equal(&empty))

			seq.Append("val1")
			seq.Append("val2")
			tt.b.Set("key", "val1", "val2")

			got, _ := tt.a.Get("key")
			want, _ := tt.b.Get("key")
			assert.True(t, got.Equal(want))
			assert.True(t, tt.equal())

			require.NoError(t, tt.a.Delete("key"))
			assert.False(t, tt.a.Contains("key"))
			_, err = tt.a.Get("key")
			assert.True(t, errors.Is(err, comps.ErrNotFound), "got %v", err)
			assert.False(t, tt.equal())

			err = tt.a.Delete("key")
			assert.True(t, errors.Is(err, comps.ErrNotFound))
		})
	}
}

func TestBlacklist_SetReplacesWholesale(t *testing.T) {
	var bl comps.Blacklist
	bl.Set("k", "v1", "v2")
	bl.Set("k", "v3")

	seq, err := bl.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []string{"v3"}, seq.Values())
	assert.Equal(t, 1, bl.Len())
}

func TestBlacklist_EqualIsOrderSensitivePerKey(t *testing.T) {
	var a, b comps.Blacklist
	a.Set("k", "v1", "v2")
	b.Set("k", "v2", "v1")
	assert.False(t, a.Equal(&b))

	var c, d comps.Blacklist
	c.Set("x", "1")
	c.Set("y", "2")
	d.Set("y", "2")
	d.Set("x", "1")
	assert.True(t, c.Equal(&d))
}

func TestBlacklist_MergeRightWinsPerKey(t *testing.T) {
	var a, b comps.Blacklist
	a.Set("kernel", "i686", "x86_64")
	a.Set("only-a", "noarch")
	b.Set("kernel", "ppc64")
	b.Set("only-b")

	m := a.Merge(&b)

	assert.Equal(t, []string{"kernel", "only-a", "only-b"}, m.Keys())
	seq, _ := m.Get("kernel")
	assert.Equal(t, []string{"ppc64"}, seq.Values())

	// merge result does not alias its inputs
	seq.Append("s390x")
	orig, _ := b.Get("kernel")
	assert.Equal(t, []string{"ppc64"}, orig.Values())
}

func TestWhiteout_MergeIdentity(t *testing.T) {
	var w, empty comps.Whiteout
	w.Set("pkg-a", "pkg-b")

	left := w.Merge(&empty)
	right := empty.Merge(&w)
	assert.True(t, left.Equal(&w))
	assert.True(t, right.Equal(&w))
}

func TestBlacklist_AllSnapshots(t *testing.T) {
	var bl comps.Blacklist
	bl.Set("a", "1")
	bl.Set("b", "2", "3")

	got := map[string][]string{}
	for k, v := range bl.All() {
		got[k] = v
	}
	assert.Equal(t, map[string][]string{"a": {"1"}, "b": {"2", "3"}}, got)
}
