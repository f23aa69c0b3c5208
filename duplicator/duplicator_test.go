package duplicator_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/createfake/duplicator"
)

type address struct {
	City  string
	Lines []string
}

type person struct {
	Name     string
	Tags     map[string][]int
	Home     *address
	Work     *address
	Any      any
	Born     time.Time
	Scores   [3]float64
	password string
}

type ring struct {
	ID   int
	Next *ring
}

type token struct{ raw []byte }

func (t token) DeepClone() any { return token{raw: append([]byte(nil), t.raw...)} }

func TestCopy_Deep(t *testing.T) {
	home := &address{City: "Lviv", Lines: []string{"1 Main St"}}
	orig := person{
		Name:     "ann",
		Tags:     map[string][]int{"a": {1, 2}},
		Home:     home,
		Work:     home,
		Any:      []string{"x"},
		Born:     time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Scores:   [3]float64{1, 2, 3},
		password: "secret",
	}

	d := duplicator.New()
	cp := duplicator.Copy(d, orig)

	if diff := cmp.Diff(orig, cp, cmp.AllowUnexported(person{})); diff != "" {
		t.Fatalf("copy differs (-orig +copy):\n%s", diff)
	}

	cp.Tags["a"][0] = 99
	cp.Home.Lines[0] = "changed"
	cp.Any.([]string)[0] = "y"
	require.Equal(t, 1, orig.Tags["a"][0])
	require.Equal(t, "1 Main St", orig.Home.Lines[0])
	require.Equal(t, "x", orig.Any.([]string)[0])

	require.NotSame(t, orig.Home, cp.Home)
	require.Same(t, cp.Home, cp.Work, "shared references stay shared")
}

func TestCopy_Cycles(t *testing.T) {
	a := &ring{ID: 1}
	b := &ring{ID: 2, Next: a}
	a.Next = b

	cp := duplicator.Copy(duplicator.New(), a)
	require.NotSame(t, a, cp)
	require.Equal(t, 1, cp.ID)
	require.Equal(t, 2, cp.Next.ID)
	require.Same(t, cp, cp.Next.Next)

	self := []any{nil}
	self[0] = self
	out := duplicator.New().Copy(self).([]any)
	require.Len(t, out, 1)
	inner := out[0].([]any)
	require.Equal(t, reflect.ValueOf(out).Pointer(), reflect.ValueOf(inner).Pointer())
}

func TestCopy_Capabilities(t *testing.T) {
	orig := token{raw: []byte("abc")}
	cp := duplicator.Copy(duplicator.New(), orig)
	cp.raw[0] = 'z'
	require.Equal(t, byte('a'), orig.raw[0], "DeepClone detached the unexported buffer")

	shared := &address{City: "Kyiv"}
	d := duplicator.New(duplicator.WithShallow(reflect.TypeFor[*address]()))
	p := duplicator.Copy(d, person{Home: shared})
	require.Same(t, shared, p.Home)

	require.Panics(t, func() { duplicator.WithShallow(nil) })
}

func TestCopy_Edges(t *testing.T) {
	d := duplicator.New()
	require.Nil(t, d.Copy(nil))
	require.Equal(t, 7, d.Copy(7))

	var nilMap map[string]int
	require.Nil(t, duplicator.Copy(d, nilMap))

	var e error
	require.Nil(t, duplicator.Copy(d, e))

	ch := make(chan int)
	require.Equal(t, ch, duplicator.Copy(d, ch))

	in := []*address{{City: "a"}, nil}
	out := duplicator.Copy(d, in)
	if diff := cmp.Diff(in, out, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("slice of pointers differs:\n%s", diff)
	}
	require.NotSame(t, in[0], out[0])
}
