package xenon_test

import (
	"testing"

	"github.com/lestrrat-go/xenon"
	"github.com/stretchr/testify/require"
)

func TestScopeResolve(t *testing.T) {
	t.Run("DeclaredEntriesOverride", func(t *testing.T) {
		parent := xenon.NewScope(
			xenon.NSBinding{URI: "ns1"},
			xenon.NSBinding{Prefix: "p", URI: "ns2"},
		)
		decls, err := xenon.NewDeclarations([]xenon.NSBinding{
			{Prefix: "p", URI: "ns3"},
			{Prefix: "q", URI: "ns4"},
		})
		require.NoError(t, err)

		child := parent.Resolve(decls)

		uri, ok := child.LookupPrefix("p")
		require.True(t, ok)
		require.Equal(t, "ns3", uri, "declared entry overrides inherited binding")

		uri, ok = child.LookupPrefix("q")
		require.True(t, ok)
		require.Equal(t, "ns4", uri)

		def, ok := child.DefaultNamespace()
		require.True(t, ok)
		require.Equal(t, "ns1", def, "untouched entries are inherited")
	})

	t.Run("DefaultUndeclaration", func(t *testing.T) {
		parent := xenon.NewScope(xenon.NSBinding{URI: "ns1"})
		decls, err := xenon.NewDeclarations([]xenon.NSBinding{{}})
		require.NoError(t, err)

		child := parent.Resolve(decls)
		_, ok := child.DefaultNamespace()
		require.False(t, ok, "xmlns=\"\" removes the default namespace")
	})

	t.Run("ParentUnchanged", func(t *testing.T) {
		parent := xenon.NewScope(xenon.NSBinding{Prefix: "p", URI: "ns1"})
		decls, err := xenon.NewDeclarations([]xenon.NSBinding{{Prefix: "p", URI: "ns2"}})
		require.NoError(t, err)

		_ = parent.Resolve(decls)
		uri, ok := parent.LookupPrefix("p")
		require.True(t, ok)
		require.Equal(t, "ns1", uri, "Resolve must not mutate the receiver")
	})
}

func TestScopeRelativize(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		pairs := map[string]struct {
			parent xenon.Scope
			child  xenon.Scope
		}{
			"add prefix": {
				parent: xenon.NewScope(xenon.NSBinding{URI: "ns1"}),
				child: xenon.NewScope(
					xenon.NSBinding{URI: "ns1"},
					xenon.NSBinding{Prefix: "q", URI: "ns2"},
				),
			},
			"change default": {
				parent: xenon.NewScope(xenon.NSBinding{URI: "ns1"}),
				child:  xenon.NewScope(xenon.NSBinding{URI: "ns2"}),
			},
			"drop default": {
				parent: xenon.NewScope(xenon.NSBinding{URI: "ns1"}),
				child:  xenon.Scope{},
			},
			"drop prefix": {
				parent: xenon.NewScope(
					xenon.NSBinding{Prefix: "p", URI: "ns1"},
					xenon.NSBinding{Prefix: "q", URI: "ns2"},
				),
				child: xenon.NewScope(xenon.NSBinding{Prefix: "q", URI: "ns2"}),
			},
			"disjoint": {
				parent: xenon.NewScope(xenon.NSBinding{Prefix: "a", URI: "ns1"}),
				child:  xenon.NewScope(xenon.NSBinding{Prefix: "b", URI: "ns2"}),
			},
			"both empty": {
				parent: xenon.Scope{},
				child:  xenon.Scope{},
			},
		}
		for name, pair := range pairs {
			t.Run(name, func(t *testing.T) {
				decls := pair.parent.Relativize(pair.child)
				got := pair.parent.Resolve(decls)
				require.True(t, got.Equal(pair.child),
					"resolve(parent, relativize(parent, child)) should equal child")
			})
		}
	})

	t.Run("Minimality", func(t *testing.T) {
		s := xenon.NewScope(
			xenon.NSBinding{URI: "ns1"},
			xenon.NSBinding{Prefix: "p", URI: "ns2"},
		)
		require.True(t, s.Relativize(s).IsEmpty(),
			"relativizing a scope against itself declares nothing")
	})

	t.Run("OnlyChangedEntries", func(t *testing.T) {
		parent := xenon.NewScope(xenon.NSBinding{URI: "ns1"})
		child := xenon.NewScope(
			xenon.NSBinding{URI: "ns1"},
			xenon.NSBinding{Prefix: "q", URI: "ns2"},
		)
		decls := parent.Relativize(child)
		require.Equal(t,
			[]xenon.NSBinding{{Prefix: "q", URI: "ns2"}},
			decls.Bindings(),
			"only the added binding appears in the delta")
		require.True(t, parent.Resolve(decls).Equal(child))
	})
}

func TestScopeNameResolution(t *testing.T) {
	scope := xenon.NewScope(
		xenon.NSBinding{URI: "ns-default"},
		xenon.NSBinding{Prefix: "p", URI: "ns-p"},
	)

	t.Run("UnprefixedElementTakesDefault", func(t *testing.T) {
		name, ok := scope.ResolveName(xenon.QName{Local: "a"})
		require.True(t, ok)
		require.Equal(t, xenon.EName{URI: "ns-default", Local: "a"}, name)
	})

	t.Run("UnprefixedAttributeIgnoresDefault", func(t *testing.T) {
		name, ok := scope.ResolveAttributeName(xenon.QName{Local: "a"})
		require.True(t, ok)
		require.Equal(t, xenon.EName{Local: "a"}, name,
			"the default namespace never applies to unprefixed attributes")
	})

	t.Run("UnknownPrefix", func(t *testing.T) {
		_, ok := scope.ResolveName(xenon.QName{Prefix: "nope", Local: "a"})
		require.False(t, ok)
	})

	t.Run("ImplicitXMLPrefix", func(t *testing.T) {
		name, ok := xenon.Scope{}.ResolveName(xenon.QName{Prefix: "xml", Local: "lang"})
		require.True(t, ok)
		require.Equal(t, xenon.XMLNamespace, name.URI)
	})

	t.Run("WithoutDefault", func(t *testing.T) {
		as := scope.WithoutDefault()
		_, ok := as.DefaultNamespace()
		require.False(t, ok)
		uri, ok := as.LookupPrefix("p")
		require.True(t, ok)
		require.Equal(t, "ns-p", uri, "prefix bindings survive")
	})
}

func TestNewDeclarations(t *testing.T) {
	t.Run("PrefixUndeclarationRejected", func(t *testing.T) {
		_, err := xenon.NewDeclarations([]xenon.NSBinding{{Prefix: "p", URI: ""}})
		require.Error(t, err)
		var e xenon.ErrInvalidDeclaration
		require.ErrorAs(t, err, &e)
		require.Equal(t, "p", e.Prefix)
	})

	t.Run("DefaultUndeclarationAccepted", func(t *testing.T) {
		decls, err := xenon.NewDeclarations([]xenon.NSBinding{{}})
		require.NoError(t, err)
		require.False(t, decls.IsEmpty())
	})

	t.Run("Empty", func(t *testing.T) {
		decls, err := xenon.NewDeclarations(nil)
		require.NoError(t, err)
		require.True(t, decls.IsEmpty())
	})
}
