package valuer_test

import (
	"fmt"
	"reflect"
	"time"

	"github.com/katalvlaran/createfake/valuer"
)

type Money struct {
	Cents int
	Note  string
}

func (m Money) ValuesEqual(other any) bool { return m.Cents == other.(Money).Cents }

func (m Money) ValueHash() uint64 { return uint64(m.Cents) }

type Fragile struct{ N int }

func (Fragile) ValuesEqual(any) bool { panic("fragile compare") }

func (Fragile) ValueHash() uint64 { panic("fragile hash") }

type Ring struct {
	Value int
	Next  *Ring
}

func ring(values ...int) *Ring {
	nodes := make([]*Ring, len(values))
	for i, v := range values {
		nodes[i] = &Ring{Value: v}
	}
	for i, n := range nodes {
		n.Next = nodes[(i+1)%len(nodes)]
	}
	return nodes[0]
}

func list(n int) *Ring {
	var head *Ring
	for i := 0; i < n; i++ {
		head = &Ring{Value: i, Next: head}
	}
	return head
}

type Item struct {
	Name  string
	Price float64
}

type Owner struct {
	Email string
	Roles []string
}

type Catalog struct {
	Name    string
	Items   []Item
	Index   map[string]int
	Labels  map[string]struct{}
	Owner   *Owner
	Created time.Time
	Meta    any
	secret  int
}

type PtrKey struct {
	ID *int
}

type Mesh struct {
	ID    int
	Peers []*Mesh
}

// mesh links every node to every node, itself included.
func mesh(n int) *Mesh {
	nodes := make([]*Mesh, n)
	for i := range nodes {
		nodes[i] = &Mesh{ID: i}
	}
	for _, node := range nodes {
		node.Peers = nodes
	}
	return nodes[0]
}

// Token renders and hashes identically for every id.
type Token struct{ id int }

func (Token) String() string { return "token" }

// tokenHint reports the two ids in order, so the difference reads
// differently from each side.
type tokenHint struct{}

func (tokenHint) Supports(a, _ reflect.Value, _ *valuer.Chainer) bool {
	return a.Type() == reflect.TypeFor[Token]()
}

func (tokenHint) Compare(a, b reflect.Value, _ *valuer.Chainer) ([]valuer.Difference, error) {
	x, y := a.Field(0).Int(), b.Field(0).Int()
	if x == y {
		return nil, nil
	}
	return []valuer.Difference{{Message: fmt.Sprintf("id %d != %d", x, y)}}, nil
}

func (tokenHint) Hash(reflect.Value, *valuer.Chainer) (uint64, error) { return 7, nil }

// Badge is a ValueEquatable whose hash and rendering never differ.
type Badge struct{ id int }

func (b Badge) ValuesEqual(other any) bool { return b.id == other.(Badge).id }

func (Badge) ValueHash() uint64 { return 7 }

func (Badge) String() string { return "badge" }
