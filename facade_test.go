package selgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryFunctionsStartFreshBuilders(t *testing.T) {
	a := Element("p")
	b := Element("div")

	require.NotSame(t, a, b)

	// chains stay independent
	a.ID("left")
	b.ID("right")
	assert.Equal(t, "p#left", a.String())
	assert.Equal(t, "div#right", b.String())
}

func TestFactoryMatchesExplicitBuilder(t *testing.T) {
	viaFactory, err := Element("a").Class("nav").PseudoClass("hover").Build()
	require.NoError(t, err)

	explicit, err := new(Builder).Element("a").Class("nav").PseudoClass("hover").Build()
	require.NoError(t, err)

	assert.Equal(t, explicit, viaFactory)
}

func TestFactoryStateDoesNotLeakAcrossCalls(t *testing.T) {
	// a violation in one chain must not poison later chains
	_, err := Element("div").Element("p").Build()
	require.ErrorIs(t, err, ErrDuplicateFragment)

	got, err := Element("div").Build()
	require.NoError(t, err)
	assert.Equal(t, "div", got)

	// same for singleton flags
	_, err = ID("one").Build()
	require.NoError(t, err)
	got, err = ID("two").Build()
	require.NoError(t, err)
	assert.Equal(t, "#two", got)
}

func TestCombineFactoryStartsFresh(t *testing.T) {
	left := Element("div").ID("main")
	right := Element("table").ID("data")

	c := Combine(left, "+", right)
	require.NotSame(t, left, c)
	require.NotSame(t, right, c)

	// the operands stay usable on their own
	assert.Equal(t, "div#main", left.String())
	assert.Equal(t, "table#data", right.String())
	assert.Equal(t, "div#main + table#data", c.String())
}
