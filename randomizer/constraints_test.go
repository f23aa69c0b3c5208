package randomizer

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRules(t *testing.T) {
	r := parseRules("required,min=2,max=5,dive,len=9")
	require.True(t, r.hasLo && r.hasHi)
	require.Equal(t, 2.0, r.lo)
	require.Equal(t, 5.0, r.hi, "rules after dive belong to elements")

	r = parseRules("omitempty,oneof=a b  c")
	require.Equal(t, []string{"a", "b", "c"}, r.oneof)

	require.True(t, parseRules("required,contains=x").empty())
	require.True(t, parseRules("min=1|max=3").empty())
	require.True(t, parseRules("gt=0").exLo)
}

func TestIntRange(t *testing.T) {
	lo, hi, ok := intRange(parseRules("max=300"), reflect.TypeFor[uint8]())
	require.True(t, ok)
	require.Equal(t, int64(0), lo)
	require.Equal(t, int64(255), hi)

	lo, hi, ok = intRange(parseRules("gt=5,lt=7"), reflect.TypeFor[int]())
	require.True(t, ok)
	require.Equal(t, int64(6), lo)
	require.Equal(t, int64(6), hi)

	lo, hi, ok = intRange(parseRules("min=10"), reflect.TypeFor[int16]())
	require.True(t, ok)
	require.Equal(t, int64(10), lo)
	require.Equal(t, int64(10+openSpan), hi)

	_, _, ok = intRange(parseRules("gt=3,lt=4"), reflect.TypeFor[int]())
	require.False(t, ok)

	lo, _, ok = intRange(parseRules("min=-5,max=5"), reflect.TypeFor[int8]())
	require.True(t, ok)
	require.Equal(t, int64(-5), lo)
}

func TestSizeRange(t *testing.T) {
	lo, hi := sizeRange(parseRules("min=20"), 4, 12)
	require.Equal(t, 20, lo)
	require.Equal(t, 28, hi)

	lo, hi = sizeRange(parseRules("max=2"), 4, 12)
	require.Equal(t, 0, lo)
	require.Equal(t, 2, hi)

	lo, hi = sizeRange(parseRules("len=3"), 4, 12)
	require.Equal(t, 3, lo)
	require.Equal(t, 3, hi)
}

func TestFloatRange(t *testing.T) {
	lo, hi := floatRange(parseRules("gt=0,lt=1"))
	require.Greater(t, lo, 0.0)
	require.Less(t, hi, 1.0)

	lo, hi = floatRange(parseRules("min=2.5"))
	require.Equal(t, 2.5, lo)
	require.Equal(t, 2.5+openSpan, hi)
	require.False(t, math.IsInf(hi, 0))
}

func TestConstrained_Kinds(t *testing.T) {
	ch := newChainer(New(WithSeed(9)))

	v, ok, err := constrained(reflect.TypeFor[int](), "oneof=3 5 8", ch)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, []int{3, 5, 8}, v.Interface())

	v, ok, err = constrained(reflect.TypeFor[map[string]int](), "len=2", ch)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, v.Len())

	_, ok, err = constrained(reflect.TypeFor[bool](), "min=1", ch)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, _ = constrained(reflect.TypeFor[int](), "oneof=x y", ch)
	require.False(t, ok, "unparsable members fall back to plain generation")

	_, ok, _ = constrained(reflect.TypeFor[string](), "", ch)
	require.False(t, ok)
}
