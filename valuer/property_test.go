package valuer_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/createfake/duplicator"
	"github.com/katalvlaran/createfake/randomizer"
	"github.com/katalvlaran/createfake/valuer"
)

func TestProperties(t *testing.T) {
	v := valuer.New()
	dup := duplicator.New()
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("a deep copy is equal, hashes alike and orders as zero", prop.ForAll(
		func(seed int64) bool {
			orig, err := randomizer.Create[Catalog](randomizer.New(randomizer.WithSeed(seed)))
			if err != nil {
				return false
			}
			cp := duplicator.Copy(dup, orig)

			eq, err := v.Equals(orig, cp)
			if err != nil || !eq {
				return false
			}
			ha, errA := v.Hash(orig)
			hb, errB := v.Hash(cp)
			n, errO := v.Order(orig, cp)
			return errA == nil && errB == nil && errO == nil && ha == hb && n == 0
		},
		gen.Int64(),
	))

	properties.Property("a mutated copy is reported at the mutated path", prop.ForAll(
		func(seed int64) bool {
			orig, err := randomizer.Create[Catalog](randomizer.New(randomizer.WithSeed(seed)))
			if err != nil {
				return false
			}
			cp := duplicator.Copy(dup, orig)
			cp.Name += "!"

			diffs, err := v.Compare(orig, cp)
			return err == nil && len(diffs) == 1 && diffs[0].Path == "Name"
		},
		gen.Int64(),
	))

	properties.Property("sequence equality matches slices.Equal", prop.ForAll(
		func(a, b []int8) bool {
			eq, err := v.Equals(a, b)
			if err != nil {
				return false
			}
			if (a == nil) != (b == nil) {
				return !eq
			}
			return eq == slices.Equal(a, b)
		},
		gen.SliceOf(gen.Int8Range(0, 2)),
		gen.SliceOf(gen.Int8Range(0, 2)),
	))

	properties.Property("order is antisymmetric", prop.ForAll(
		func(a, b []int) bool {
			ab, err1 := v.Order(a, b)
			ba, err2 := v.Order(b, a)
			return err1 == nil && err2 == nil && ab == -ba
		},
		gen.SliceOf(gen.Int()),
		gen.SliceOf(gen.Int()),
	))

	properties.Property("hash of several values is the hash of their sequence", prop.ForAll(
		func(x int, y string, z bool) bool {
			h1, err1 := v.Hash(x, y, z)
			h2, err2 := v.Hash([]any{x, y, z})
			return err1 == nil && err2 == nil && h1 == h2
		},
		gen.Int(),
		gen.AlphaString(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
