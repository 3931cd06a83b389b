package core_test

import (
	"strings"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/toejough/mockfn"
	"pgregory.net/rapid"
)

// TestCanonicalIdentity_JoinsNamespaceAndName verifies the basic shape of a
// canonical identity: namespace, separator, name, case-folded.
func TestCanonicalIdentity_JoinsNamespaceAndName(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(mockfn.CanonicalIdentity(`ns`, "Foo")).To(Equal(`ns\foo`))
	g.Expect(mockfn.CanonicalIdentity(`ns\sub`, "Bar")).To(Equal(`ns\sub\bar`))
}

// TestCanonicalIdentity_TrimsOuterSeparators verifies that leading and
// trailing separators on the namespace do not change the identity.
func TestCanonicalIdentity_TrimsOuterSeparators(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(mockfn.CanonicalIdentity(`\ns\sub\`, "Foo")).To(Equal(`ns\sub\foo`))
	g.Expect(mockfn.CanonicalIdentity(`\\ns`, "foo")).To(Equal(`ns\foo`))
}

// TestCanonicalIdentity_SameIdentityDifferentCasing verifies that two mocks
// for differently-cased spellings of one function share an identity.
func TestCanonicalIdentity_SameIdentityDifferentCasing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(mockfn.CanonicalIdentity(`NS\Sub`, "FOO")).
		To(Equal(mockfn.CanonicalIdentity(`ns\sub`, "foo")))
}

// TestCanonicalIdentity_CaseFolding_Rapid verifies as a property that
// identities are case-insensitive for any namespace/name pair.
func TestCanonicalIdentity_CaseFolding_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		namespace := rapid.StringMatching(`[A-Za-z0-9_]+(\\[A-Za-z0-9_]+)*`).Draw(rt, "namespace")
		name := rapid.StringMatching(`[A-Za-z0-9_]+`).Draw(rt, "name")

		identity := mockfn.CanonicalIdentity(namespace, name)
		folded := mockfn.CanonicalIdentity(strings.ToUpper(namespace), strings.ToUpper(name))

		if identity != folded {
			rt.Fatalf("case-folding changed identity: %q vs %q", identity, folded)
		}
	})
}

// TestCanonicalIdentity_SeparatorPadding_Rapid verifies as a property that
// any amount of separator padding around the namespace is irrelevant.
func TestCanonicalIdentity_SeparatorPadding_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		namespace := rapid.StringMatching(`[a-z0-9_]+(\\[a-z0-9_]+)*`).Draw(rt, "namespace")
		name := rapid.StringMatching(`[a-z0-9_]+`).Draw(rt, "name")
		leading := rapid.IntRange(0, 3).Draw(rt, "leading")
		trailing := rapid.IntRange(0, 3).Draw(rt, "trailing")

		padded := strings.Repeat(`\`, leading) + namespace + strings.Repeat(`\`, trailing)

		if got, want := mockfn.CanonicalIdentity(padded, name), mockfn.CanonicalIdentity(namespace, name); got != want {
			rt.Fatalf("padding changed identity: %q vs %q", got, want)
		}
	})
}
