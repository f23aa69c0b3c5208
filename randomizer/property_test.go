package randomizer_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/createfake/randomizer"
)

func TestProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 60
	properties := gopter.NewProperties(params)

	properties.Property("self references stop at the limiter bound", prop.ForAll(
		func(seed int64, depth int) bool {
			r := randomizer.New(
				randomizer.WithSeed(seed),
				randomizer.WithLimiter(randomizer.Limiter{MaxDepth: depth}),
			)
			n, err := randomizer.Create[Node](r)
			return err == nil && n.Len() == depth
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.Property("tree height never exceeds the limiter bound", prop.ForAll(
		func(seed int64, depth int) bool {
			r := randomizer.New(
				randomizer.WithSeed(seed),
				randomizer.WithLimiter(randomizer.Limiter{MaxDepth: depth}),
				randomizer.WithCollectionSize(0, 2),
			)
			tr, err := randomizer.Create[Tree](r)
			return err == nil && tr.Height() <= depth
		},
		gen.Int64(),
		gen.IntRange(1, 5),
	))

	properties.Property("slice lengths respect collection bounds", prop.ForAll(
		func(seed int64, lo, extra int) bool {
			r := randomizer.New(randomizer.WithSeed(seed), randomizer.WithCollectionSize(lo, lo+extra))
			s, err := randomizer.Create[[]uint8](r)
			return err == nil && len(s) >= lo && len(s) <= lo+extra
		},
		gen.Int64(),
		gen.IntRange(0, 6),
		gen.IntRange(0, 6),
	))

	properties.Property("same seed yields the same value", prop.ForAll(
		func(seed int64) bool {
			a, errA := randomizer.Create[Tree](randomizer.New(randomizer.WithSeed(seed)))
			b, errB := randomizer.Create[Tree](randomizer.New(randomizer.WithSeed(seed)))
			return errA == nil && errB == nil && a.Height() == b.Height() && a.Label == b.Label
		},
		gen.Int64(),
	))

	properties.TestingRun(t)
}
