package faker_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/createfake/duplicator"
	"github.com/katalvlaran/createfake/faker"
	"github.com/katalvlaran/createfake/randomizer"
	"github.com/katalvlaran/createfake/valuer"
)

type payload struct {
	ID    int
	Items []string
	Next  *payload
}

func matcher() *faker.Matcher { return faker.NewMatcher(valuer.New()) }

func match(t *testing.T, expected, actual *faker.Call) bool {
	t.Helper()
	ok, err := matcher().Matches(expected, actual)
	require.NoError(t, err)
	return ok
}

func TestMatches_AnyGeneric(t *testing.T) {
	expected := faker.NewCall("Foo", []faker.GenericArg{faker.AnyGeneric}, 1)
	actual := faker.NewCall("Foo", []faker.GenericArg{faker.TypeOf[int]()}, 1)
	require.True(t, match(t, expected, actual))

	require.False(t, match(t, faker.NewCall("Bar", []faker.GenericArg{faker.AnyGeneric}, 1), actual), "name")
	require.False(t, match(t, faker.NewCall("Foo", []faker.GenericArg{faker.TypeOf[string]()}, 1), actual), "generic")
	require.False(t, match(t, faker.NewCall("Foo", []faker.GenericArg{faker.AnyGeneric}, 2), actual), "argument")
	require.False(t, match(t, faker.NewCall("Foo", nil, 1), actual), "generic count")
	require.False(t, match(t, faker.NewCall("Foo", []faker.GenericArg{faker.AnyGeneric}), actual), "argument count")

	// The wildcard only widens expectations; a recorded wildcard is not a type.
	require.False(t, match(t, faker.NewCall("Foo", []faker.GenericArg{faker.TypeOf[int]()}, 1),
		faker.NewCall("Foo", []faker.GenericArg{faker.AnyGeneric}, 1)))
}

func TestMatches_DeepArguments(t *testing.T) {
	r := randomizer.New(randomizer.WithSeed(11))
	dup := duplicator.New()
	for i := 0; i < 20; i++ {
		arg := randomizer.MustCreate[payload](r)
		expected := faker.NewCall("Send", nil, arg)
		actual := faker.NewCall("Send", nil, duplicator.Copy(dup, arg))
		require.True(t, match(t, expected, actual))

		changed := duplicator.Copy(dup, arg)
		changed.ID++
		require.False(t, match(t, expected, faker.NewCall("Send", nil, changed)))
	}
}

func TestMatches_Errors(t *testing.T) {
	m := matcher()
	c := faker.NewCall("Foo", nil)

	_, err := m.Matches(nil, c)
	require.ErrorIs(t, err, faker.ErrNilCall)
	_, err = m.Matches(c, nil)
	require.ErrorIs(t, err, faker.ErrNilCall)

	strict := faker.NewMatcher(valuer.New(valuer.WithoutDefaults()))
	_, err = strict.Matches(faker.NewCall("Foo", nil, 1), faker.NewCall("Foo", nil, 1))
	require.ErrorIs(t, err, valuer.ErrUnsupportedType)

	require.Panics(t, func() { faker.NewMatcher(nil) })
	require.Panics(t, func() { faker.NewCall("", nil) })
	require.Panics(t, func() { faker.NewCall("Foo", []faker.GenericArg{{}}) })
	require.Panics(t, func() { faker.Of(nil) })
}

func TestMatches_ArgMatchers(t *testing.T) {
	actual := faker.NewCall("Save", nil, "alice", 42, nil)

	require.True(t, match(t, faker.NewCall("Save", nil, faker.Any[string](), faker.Any[int](), faker.Any[error]()), actual))
	require.False(t, match(t, faker.NewCall("Save", nil, faker.Any[int](), 42, nil), actual))

	adult := faker.Where(func(age int) bool { return age >= 18 })
	require.True(t, match(t, faker.NewCall("Save", nil, "alice", adult, nil), actual))
	minor := faker.Where(func(age int) bool { return age < 18 })
	require.False(t, match(t, faker.NewCall("Save", nil, "alice", minor, nil), actual))

	require.Panics(t, func() { faker.Where[int](nil) })
}

func TestExplain(t *testing.T) {
	m := matcher()
	reason, err := m.Explain(faker.NewCall("Foo", nil, 1), faker.NewCall("Foo", nil, 2))
	require.NoError(t, err)
	require.Equal(t, "arg[0] 1 != 2", reason)

	reason, err = m.Explain(faker.NewCall("Foo", nil, 1), faker.NewCall("Foo", nil, 1))
	require.NoError(t, err)
	require.Empty(t, reason)
}

func TestCall(t *testing.T) {
	items := []string{"a"}
	c := faker.NewCall("Put", []faker.GenericArg{faker.TypeOf[string](), faker.AnyGeneric}, items, 3)
	require.Equal(t, "Put", c.Name())
	require.Equal(t, "Put[string, AnyGeneric]([a], 3)", c.String())

	g := c.Generics()
	g[0] = faker.AnyGeneric
	require.False(t, c.Generics()[0].IsWildcard(), "Generics returns a copy")
	require.Nil(t, c.Generics()[1].Type())

	clone := c.Clone(duplicator.New())
	items[0] = "mutated"
	require.Equal(t, []string{"a"}, clone.Args()[0])
	require.Equal(t, []string{"mutated"}, c.Args()[0])

	empty := faker.NewCall("Ping", nil)
	require.NotNil(t, empty.Args())
	require.Empty(t, empty.Generics())
	require.Equal(t, "Ping()", empty.String())
}

func TestRecorder(t *testing.T) {
	rec := faker.NewRecorder(matcher(), faker.WithSnapshots(duplicator.New()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, rec.Record(faker.NewCall("Get", []faker.GenericArg{faker.TypeOf[int]()}, i%5)))
		}()
	}
	wg.Wait()
	require.Len(t, rec.Calls(), 50)

	anyGet := faker.NewCall("Get", []faker.GenericArg{faker.AnyGeneric}, faker.Any[int]())
	require.NoError(t, rec.Verify(anyGet, faker.Exactly(50)))
	require.NoError(t, rec.Verify(faker.NewCall("Get", []faker.GenericArg{faker.AnyGeneric}, 0), faker.Exactly(10)))
	require.NoError(t, rec.Verify(faker.NewCall("Del", nil), faker.Never()))

	err := rec.Verify(anyGet, faker.Once())
	require.ErrorIs(t, err, faker.ErrCallCountMismatch)
	require.ErrorContains(t, err, "want exactly 1, got 50")

	require.ErrorIs(t, rec.Record(nil), faker.ErrNilCall)
	_, err = rec.Count(nil)
	require.ErrorIs(t, err, faker.ErrNilCall)

	rec.Reset()
	require.Empty(t, rec.Calls())
	require.NoError(t, rec.Verify(anyGet, faker.Never()))
}

func TestRecorder_Snapshots(t *testing.T) {
	arg := &payload{ID: 1, Items: []string{"x"}}
	live := faker.NewRecorder(matcher())
	snap := faker.NewRecorder(matcher(), faker.WithSnapshots(duplicator.New()))
	require.NoError(t, live.Record(faker.NewCall("Send", nil, arg)))
	require.NoError(t, snap.Record(faker.NewCall("Send", nil, arg)))
	arg.ID = 2

	n, err := live.Count(faker.NewCall("Send", nil, &payload{ID: 1, Items: []string{"x"}}))
	require.NoError(t, err)
	require.Zero(t, n)

	n, err = snap.Count(faker.NewCall("Send", nil, &payload{ID: 1, Items: []string{"x"}}))
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestTimes(t *testing.T) {
	cases := []struct {
		times faker.Times
		n     int
		want  bool
	}{
		{faker.Once(), 1, true},
		{faker.Once(), 2, false},
		{faker.Never(), 0, true},
		{faker.AtLeast(2), 9, true},
		{faker.AtLeast(2), 1, false},
		{faker.Between(1, 3), 3, true},
		{faker.Between(1, 3), 0, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.times.Allows(tc.n), fmt.Sprintf("%s with %d", tc.times, tc.n))
	}
	require.Equal(t, "between 1 and 3", faker.Between(1, 3).String())
	require.Panics(t, func() { faker.Between(3, 1) })
	require.Panics(t, func() { faker.Exactly(-1) })
}
