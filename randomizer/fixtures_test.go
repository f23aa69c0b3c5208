package randomizer_test

import (
	"errors"
	"math"
)

type Color int

const (
	Red Color = iota + 1
	Green
	Blue
)

type Suit string

func (Suit) EnumMembers() []any {
	return []any{Suit("hearts"), Suit("spades"), Suit("clubs"), Suit("diamonds")}
}

type Node struct {
	Value int
	Next  *Node
}

func (n *Node) Len() int {
	c := 0
	for p := n; p != nil; p = p.Next {
		c++
	}
	return c
}

type Tree struct {
	Label string
	Kids  []Tree
}

func (t Tree) Height() int {
	h := 0
	for _, k := range t.Kids {
		h = max(h, k.Height())
	}
	return h + 1
}

type Shape interface{ Area() float64 }

type Circle struct{ R float64 }

func (c Circle) Area() float64 { return math.Pi * c.R * c.R }

type Square struct{ Side float64 }

func (s Square) Area() float64 { return s.Side * s.Side }

type Account struct {
	ID    string
	Owner string
	via   string
}

func (a Account) Via() string { return a.via }

func NewAccount(id string) *Account { return &Account{ID: id, via: "short"} }

func NewAccountFull(id, owner string) (Account, error) {
	return Account{ID: id, Owner: owner, via: "full"}, nil
}

type Broken struct{ N int }

func NewBroken() (*Broken, error) { return nil, errors.New("boom") }

type Signup struct {
	Email string   `validate:"required,email"`
	Age   int      `validate:"gte=18,lte=65"`
	Plan  string   `validate:"oneof=free pro team"`
	Tags  []string `validate:"min=2,max=3,dive,required"`
	Code  string   `validate:"len=6"`
	Score float64  `validate:"gt=0,lt=1"`
	Ref   string   `validate:"uuid"`
	Level uint8    `validate:"max=9"`
}

type Unsatisfiable struct {
	Handle string `validate:"contains=@@"`
}

type Partial struct {
	Kept    string
	Skipped string `fake:"-"`
	hidden  int
}

func (p Partial) Hidden() int { return p.hidden }
