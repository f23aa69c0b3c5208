package faker_test

import (
	"fmt"

	"github.com/katalvlaran/createfake/faker"
	"github.com/katalvlaran/createfake/valuer"
)

func ExampleMatcher_Matches() {
	m := faker.NewMatcher(valuer.New())

	expected := faker.NewCall("Foo", []faker.GenericArg{faker.AnyGeneric}, 1)
	actual := faker.NewCall("Foo", []faker.GenericArg{faker.TypeOf[int]()}, 1)

	ok, _ := m.Matches(expected, actual)
	fmt.Println(expected, "matches", actual, "=", ok)
	// Output: Foo[AnyGeneric](1) matches Foo[int](1) = true
}

func ExampleRecorder_Verify() {
	rec := faker.NewRecorder(faker.NewMatcher(valuer.New()))
	_ = rec.Record(faker.NewCall("Charge", nil, "acct-1", 250))
	_ = rec.Record(faker.NewCall("Charge", nil, "acct-2", 990))

	big := faker.NewCall("Charge", nil, faker.Any[string](), faker.Where(func(cents int) bool { return cents > 500 }))
	fmt.Println(rec.Verify(big, faker.Once()))
	fmt.Println(rec.Verify(big, faker.Never()))
	// Output:
	// <nil>
	// Verify(Charge(Any[string], Where[int])): want exactly 0, got 1: faker: call count mismatch
}
