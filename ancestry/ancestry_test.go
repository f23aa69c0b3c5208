package ancestry_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/createfake/ancestry"
	"github.com/stretchr/testify/require"
)

func TestPath_EnterRelease(t *testing.T) {
	p := ancestry.New[string]()
	outer := p.Enter("a")
	inner := p.Enter("a")
	require.Equal(t, 2, p.Count("a"))
	require.Equal(t, 2, p.Depth())
	require.Equal(t, []string{"a", "a"}, p.Trail())

	inner()
	inner() // idempotent
	require.Equal(t, 1, p.Count("a"))
	outer()
	require.False(t, p.Contains("a"))
	require.Zero(t, p.Depth())
}

func TestPath_ReleasedOnErrorPath(t *testing.T) {
	p := ancestry.New[int]()
	fail := func(depth int) error {
		var walk func(int) error
		walk = func(d int) error {
			defer p.Enter(d)()
			if d == depth {
				return errors.New("boom")
			}
			return walk(d + 1)
		}
		return walk(0)
	}
	require.Error(t, fail(5))
	require.Zero(t, p.Depth())
}

func TestPath_OutOfOrderPanics(t *testing.T) {
	p := ancestry.New[int]()
	first := p.Enter(1)
	_ = p.Enter(2)
	require.Panics(t, first)
}
