package lr

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/npillmayer/lr0/lr/iteratable"
)

// Item is an LR(0) item, i.e. a rule together with a position within the RHS,
// the "dot". For a rule
//
//    E ➞ E + T
//
// the items are
//
//    Dot | Symbol after dot | Item
//    ----+------------------+-------------
//    0   | E                | E ➞ • E + T
//    1   | +                | E ➞ E • + T
//    2   | T                | E ➞ E + • T
//    3   | <nil>            | E ➞ E + T •
//
// Items are values and are comparable with ==. As a grammar never records
// the same production twice, two items are equal iff their LHS, RHS and dot
// position are equal.
type Item struct {
	rule *Rule
	dot  int
}

// StartItem returns the item for a rule with the dot at position 0, together
// with the symbol after the dot.
func StartItem(r *Rule) (Item, *Symbol) {
	if r == nil {
		return Item{}, nil
	}
	i := Item{rule: r}
	return i, i.PeekSymbol()
}

// Rule returns the rule an item is derived from.
func (i Item) Rule() *Rule {
	return i.rule
}

// Dot returns the dot position of an item.
func (i Item) Dot() int {
	return i.dot
}

// PeekSymbol returns the symbol after the dot, or nil if the dot is at the end
// of the RHS.
func (i Item) PeekSymbol() *Symbol {
	if i.rule == nil || i.dot >= len(i.rule.rhs) {
		return nil
	}
	return i.rule.rhs[i.dot]
}

// Advance returns a new item, with the dot moved one symbol to the right.
// If the dot is already at the end of the RHS, i is returned unchanged.
func (i Item) Advance() Item {
	if i.PeekSymbol() == nil {
		return i
	}
	return Item{rule: i.rule, dot: i.dot + 1}
}

// Prefix returns the symbols of the RHS before the dot.
func (i Item) Prefix() []*Symbol {
	if i.rule == nil {
		return nil
	}
	return append([]*Symbol(nil), i.rule.rhs[:i.dot]...)
}

// Suffix returns the symbols of the RHS from the dot on.
func (i Item) Suffix() []*Symbol {
	if i.rule == nil {
		return nil
	}
	return append([]*Symbol(nil), i.rule.rhs[i.dot:]...)
}

// IsReduceItem is a predicate: is the dot at the end of the RHS?
func (i Item) IsReduceItem() bool {
	return i.rule != nil && i.dot == len(i.rule.rhs)
}

// String renders an item as "A -> α.β".
func (i Item) String() string {
	if i.rule == nil {
		return "<empty item>"
	}
	sep := i.rule.sep()
	before := symbolString(i.rule.rhs[:i.dot], sep)
	after := symbolString(i.rule.rhs[i.dot:], sep)
	if sep == "" {
		return fmt.Sprintf("%s -> %s.%s", i.rule.LHS, before, after)
	}
	return fmt.Sprintf("%s -> %s", i.rule.LHS, strings.TrimSpace(before+" . "+after))
}

// --- Item sets -------------------------------------------------------------

func newItemSet() *iteratable.Set {
	return iteratable.NewSet(8)
}

// NewItemSet creates a set of items.
func NewItemSet(items ...Item) *iteratable.Set {
	S := newItemSet()
	for _, i := range items {
		S.Add(i)
	}
	return S
}

func asItem(x interface{}) Item {
	return x.(Item)
}

// Items returns the items of an item set, in insertion order.
func Items(S *iteratable.Set) []Item {
	items := make([]Item, 0, S.Size())
	for _, x := range S.Values() {
		items = append(items, asItem(x))
	}
	return items
}

// Dump is a debugging helper, tracing the items of a set.
func Dump(S *iteratable.Set) {
	for n, x := range S.Values() {
		tracer().Debugf("[%2d] %s", n+1, asItem(x))
	}
}

func itemSetString(S *iteratable.Set) string {
	var b bytes.Buffer
	b.WriteString("{")
	for n, x := range S.Values() {
		if n == 0 {
			b.WriteString(" ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(asItem(x).String())
	}
	b.WriteString(" }")
	return b.String()
}
