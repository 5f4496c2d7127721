package combine_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvldiff/combine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lowerFold treats strings as combinable when they match
// case-insensitively and fuses them to the lowercase form. It is a
// small non-trivial equivalence used to exercise composite combiners.
type lowerFold struct{}

func (lowerFold) AreCombinable(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (lowerFold) Combine(a, b string) string {
	if !strings.EqualFold(a, b) {
		panic("lowerFold: incombinable")
	}

	return strings.ToLower(a)
}

// TestEquality_Laws checks reflexivity, the equality⇒combinable law,
// and commutativity/associativity on the equality combiner.
func TestEquality_Laws(t *testing.T) {
	c := combine.NewEquality[int]()
	values := []int{-3, 0, 1, 42}

	for _, v := range values {
		assert.True(t, c.AreCombinable(v, v), "AreCombinable must be reflexive")
		assert.Equal(t, v, c.Combine(v, v))
	}
	assert.False(t, c.AreCombinable(1, 2))
	assert.Panics(t, func() { c.Combine(1, 2) }, "Combine on incombinable values must panic")
}

// TestFixed_AlwaysCombinable checks the fixed-value combiner.
func TestFixed_AlwaysCombinable(t *testing.T) {
	c := combine.NewFixed("•")
	assert.True(t, c.AreCombinable("a", "b"))
	assert.Equal(t, "•", c.Combine("a", "b"))
	assert.Equal(t, "•", c.Combine("•", "zzz"))
}

// TestOptional_PresenceResolution covers the four presence cases and the
// always-combinable contract.
func TestOptional_PresenceResolution(t *testing.T) {
	c := combine.NewOptional[string](lowerFold{})

	none := combine.None[string]()
	assert.True(t, c.AreCombinable(none, none), "optionals are always combinable")
	assert.False(t, c.Combine(none, none).Present(), "absent+absent is absent")

	got := c.Combine(combine.Some("Ping"), none)
	v, ok := got.Value()
	require.True(t, ok, "present side must win")
	assert.Equal(t, "Ping", v)

	got = c.Combine(none, combine.Some("Pong"))
	assert.Equal(t, "Pong", got.MustValue())

	got = c.Combine(combine.Some("Hello"), combine.Some("HELLO"))
	assert.Equal(t, "hello", got.MustValue(), "two present values fuse via the inner combiner")

	assert.Panics(t, func() { c.Combine(combine.Some("a"), combine.Some("b")) },
		"inner-incombinable present pair is a contract violation")
}

// TestOptional_Commutative verifies commutativity across presence cases.
func TestOptional_Commutative(t *testing.T) {
	c := combine.NewOptional[string](lowerFold{})
	cases := []combine.Optional[string]{
		combine.None[string](),
		combine.Some("x"),
		combine.Some("X"),
	}
	for _, a := range cases {
		for _, b := range cases {
			assert.Equal(t, c.Combine(a, b), c.Combine(b, a))
		}
	}
}

// TestPair_Componentwise verifies componentwise combinability and fusion.
func TestPair_Componentwise(t *testing.T) {
	c := combine.NewPairCombiner[int, string](combine.NewEquality[int](), lowerFold{})

	a := combine.NewPair(7, "On")
	b := combine.NewPair(7, "ON")
	require.True(t, c.AreCombinable(a, b))
	assert.Equal(t, combine.NewPair(7, "on"), c.Combine(a, b))

	assert.False(t, c.AreCombinable(a, combine.NewPair(8, "on")), "first component blocks")
	assert.False(t, c.AreCombinable(a, combine.NewPair(7, "off")), "second component blocks")
	assert.Panics(t, func() { c.Combine(a, combine.NewPair(8, "on")) })
}

// TestAdapted_RoundTrip adapts an equality combiner over int through a
// wrapper type and checks the laws survive the conversion.
func TestAdapted_RoundTrip(t *testing.T) {
	type rank struct{ level int }
	c := combine.NewAdapted[rank, int](
		combine.NewEquality[int](),
		func(r rank) int { return r.level },
		func(v int) rank { return rank{level: v} },
	)

	assert.True(t, c.AreCombinable(rank{2}, rank{2}))
	assert.Equal(t, rank{2}, c.Combine(rank{2}, rank{2}))
	assert.False(t, c.AreCombinable(rank{1}, rank{2}))
	assert.Panics(t, func() { combine.NewAdapted[rank, int](combine.NewEquality[int](), nil, nil) })
}

// TestAnnotated_IndependentFusion fuses payload and annotations
// independently.
func TestAnnotated_IndependentFusion(t *testing.T) {
	c := combine.NewAnnotatedCombiner[string, string](lowerFold{}, lowerFold{})

	a := combine.NewAnnotated("Run", "Fast", "safe")
	b := combine.NewAnnotated("RUN", "FAST", "short")

	require.True(t, c.AreCombinable(a, b))
	got := c.Combine(a, b)
	assert.Equal(t, "run", got.Value)
	assert.Equal(t, []string{"fast", "safe", "short"}, got.Annotations,
		"annotation classes collapse, incombinable annotations stay distinct")

	assert.False(t, c.AreCombinable(a, combine.NewAnnotated[string, string]("walk")), "payload decides combinability")
}
