package xenon_test

import (
	"testing"

	"github.com/lestrrat-go/xenon"
	"github.com/stretchr/testify/require"
)

func samePathTree(t *testing.T) *xenon.Element {
	t.Helper()
	// <root xmlns="ns1"><item/><item/><other/><item/></root>
	return buildTree(t, []xenon.Token{
		xenon.StartElementToken{
			Name:       xenon.QName{Local: "root"},
			Namespaces: []xenon.NSBinding{{URI: "ns1"}},
		},
		xenon.StartElementToken{Name: xenon.QName{Local: "item"}},
		xenon.EndElementToken{Name: xenon.QName{Local: "item"}},
		xenon.StartElementToken{Name: xenon.QName{Local: "item"}},
		xenon.EndElementToken{Name: xenon.QName{Local: "item"}},
		xenon.StartElementToken{Name: xenon.QName{Local: "other"}},
		xenon.EndElementToken{Name: xenon.QName{Local: "other"}},
		xenon.StartElementToken{Name: xenon.QName{Local: "item"}},
		xenon.EndElementToken{Name: xenon.QName{Local: "item"}},
		xenon.EndElementToken{Name: xenon.QName{Local: "root"}},
	})
}

func TestLocate(t *testing.T) {
	root := samePathTree(t)
	item := xenon.EName{URI: "ns1", Local: "item"}

	t.Run("EmptyPathIsRoot", func(t *testing.T) {
		got, err := xenon.Locate(root, xenon.Path{})
		require.NoError(t, err)
		require.Same(t, root, got)
	})

	t.Run("SameNameSiblingIndex", func(t *testing.T) {
		children := root.Children()
		for i, want := range []int{0, 1, 3} {
			got, err := xenon.Locate(root, xenon.Path{{Name: item, Index: i}})
			require.NoError(t, err)
			require.Same(t, children[want], got,
				"index %d counts same-resolved-name siblings only", i)
		}
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		_, err := xenon.Locate(root, xenon.Path{{Name: item, Index: 3}})
		var e xenon.ErrPathNotFound
		require.ErrorAs(t, err, &e)
		require.Equal(t, 0, e.Entry)
	})

	t.Run("NoSuchName", func(t *testing.T) {
		_, err := xenon.Locate(root, xenon.Path{
			{Name: xenon.EName{URI: "ns1", Local: "absent"}, Index: 0},
		})
		var e xenon.ErrPathNotFound
		require.ErrorAs(t, err, &e)
	})
}

func TestPathTo(t *testing.T) {
	root := samePathTree(t)

	t.Run("Root", func(t *testing.T) {
		p, ok := xenon.PathTo(root, root)
		require.True(t, ok)
		require.Empty(t, p)
	})

	t.Run("RoundTripIdentity", func(t *testing.T) {
		var walk func(el *xenon.Element)
		walk = func(el *xenon.Element) {
			p, ok := xenon.PathTo(root, el)
			require.True(t, ok)
			got, err := xenon.Locate(root, p)
			require.NoError(t, err)
			require.Same(t, el, got, "locate(root, pathTo(root, n)) == n")
			for _, child := range el.Children() {
				if sub, ok := child.(*xenon.Element); ok {
					walk(sub)
				}
			}
		}
		walk(root)
	})

	t.Run("ForeignNode", func(t *testing.T) {
		stranger, err := xenon.NewElement(xenon.QName{Local: "x"}, nil, xenon.Scope{})
		require.NoError(t, err)
		_, ok := xenon.PathTo(root, stranger)
		require.False(t, ok, "identity is scoped to one tree snapshot")
	})
}

func TestPathText(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		p := xenon.Path{
			{Name: xenon.EName{URI: "ns1", Local: "a"}, Index: 0},
			{Name: xenon.EName{Local: "b"}, Index: 2},
		}
		require.Equal(t, "/{ns1}a[0]/b[2]", p.String())
		require.Equal(t, "/", xenon.Path{}.String())
	})

	t.Run("ParseRoundTrip", func(t *testing.T) {
		inputs := []string{
			"/",
			"/{ns1}a[0]",
			"/{ns1}a[0]/b[2]",
			"/a[10]",
			"/{http://example.com/ns}envelope[0]/{urn:x}item[12]",
		}
		for _, s := range inputs {
			p, err := xenon.ParsePath(s)
			require.NoError(t, err, "ParsePath(%q)", s)
			require.Equal(t, s, p.String())
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "a[0]", "/a", "/a[", "/a[x]", "/{ns1a[0]", "/a[-1]"} {
			_, err := xenon.ParsePath(s)
			require.Error(t, err, "ParsePath(%q) should fail", s)
		}
	})
}
