// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tree234 implements an in-memory 2-3-4 tree.
//
// A 2-3-4 tree is a B-Tree of minimum degree 2: every node holds between one
// and three ordered keys and, when it is not a leaf, exactly one child more
// than it has keys. All leaves sit at the same depth, so membership tests,
// insertion, deletion and bracketing lookups are O(log n).
//
// Keys are the stored values. Unlike most ordered containers in the Go
// ecosystem the tree keeps equal keys side by side: inserting a value twice
// stores it twice, and each Delete removes one copy.
//
// Insertion splits every full node it meets on the way down, so it never has
// to walk back up. Deletion does the mirror image: before entering a child
// that holds a single key it borrows a key from a sibling (rotate), fuses the
// child with a sibling (merge) or, at the root, collapses the root and both
// its children into one node (shrink).
//
// Within this tree each node stores its keys and children in fixed-size
// arrays, so a node never allocates after it is created. Nodes detached by
// merge, shrink or Clear are recycled through a FreeList.
//
// There are three constructors; New works for any type supporting '<',
// NewItem for types implementing Item, and NewG for any type with an
// explicit LessFunc.
package tree234

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/tree234/tree234/internal/invariants"
)

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// ItemIterator allows callers of Ascend and Descend to iterate in-order over
// the tree. When this function returns false, iteration will stop and the
// associated Ascend or Descend call will immediately return.
type ItemIterator[T any] func(item T) bool

// Optional holds a key that may be absent.
type Optional[T any] struct {
	Item  T
	Valid bool
}

// Some returns a present Optional holding item.
func Some[T any](item T) Optional[T] {
	return Optional[T]{Item: item, Valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) String() string {
	if !o.Valid {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.Item)
}

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

type config struct {
	log zerolog.Logger
}

// Option configures a Tree234 at construction.
type Option func(*config)

// WithLogger sets the logger that receives a debug event for every split,
// rotate, merge and shrink. The default logger discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// Tree234 is a 2-3-4 tree holding keys of type T.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Tree234[T any] struct {
	length   int
	root     *node[T]
	freelist *FreeList[T]
	less     LessFunc[T]
	log      zerolog.Logger
}

// New creates an empty tree ordered by the '<' operator.
func New[T Ordered](opts ...Option) *Tree234[T] {
	return NewG[T](Less[T](), opts...)
}

// NewItem creates an empty tree of items that order themselves.
func NewItem[T Item[T]](opts ...Option) *Tree234[T] {
	return NewG[T](func(a, b T) bool { return a.Less(b) }, opts...)
}

// NewG creates an empty tree ordered by less.
func NewG[T any](less LessFunc[T], opts ...Option) *Tree234[T] {
	return NewWithFreeListG(less, NewFreeList[T](DefaultFreeListSize), opts...)
}

// NewWithFreeListG creates an empty tree that uses the given node free list.
func NewWithFreeListG[T any](less LessFunc[T], f *FreeList[T], opts ...Option) *Tree234[T] {
	if less == nil {
		panic("nil less func")
	}
	c := config{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&c)
	}
	return &Tree234[T]{
		freelist: f,
		less:     less,
		log:      c.log,
	}
}

// From creates a tree holding values, inserted in the order given.
func From[T Ordered](values []T, opts ...Option) *Tree234[T] {
	t := New[T](opts...)
	t.Append(values...)
	return t
}

func (t *Tree234[T]) newNode() (n *node[T]) {
	n = t.freelist.newNode()
	n.t = t
	return
}

func (t *Tree234[T]) freeNode(n *node[T]) {
	t.freelist.freeNode(n)
}

func (t *Tree234[T]) trace(op string, pos, size int) {
	t.log.Debug().Str("op", op).Int("pos", pos).Int("size", size).Msg("restructure")
}

func (t *Tree234[T]) traceDir(op, dir string, pos, size int) {
	t.log.Debug().Str("op", op).Str("dir", dir).Int("pos", pos).Int("size", size).Msg("restructure")
}

func (t *Tree234[T]) check() {
	if err := t.Verify(); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "tree234 invariant violated"))
	}
}

// Insert adds the given item to the tree. Items equal to one already stored
// are kept alongside it.
func (t *Tree234[T]) Insert(item T) {
	if t.root == nil {
		t.root = t.newNode()
	} else if t.root.full() {
		item2, second := t.root.split()
		oldroot := t.root
		t.root = t.newNode()
		t.root.keys[0] = item2
		t.root.children[0], t.root.children[1] = oldroot, second
		t.root.size = 1
		t.trace("split", 0, 1)
	}
	t.root.insert(item)
	t.length++
	if invariants.Enabled {
		t.check()
	}
}

// Append inserts each of values in order.
func (t *Tree234[T]) Append(values ...T) {
	for _, v := range values {
		t.Insert(v)
	}
}

// Delete removes one item equal to the passed in item from the tree. It
// returns false, leaving the tree untouched, if no such item exists.
func (t *Tree234[T]) Delete(item T) bool {
	// remove rebalances on its way down, so rule out a miss before starting.
	if !t.Find(item) {
		return false
	}
	if !t.root.remove(item) {
		panic(errors.AssertionFailedf("item found but not removed"))
	}
	t.length--
	if invariants.Enabled {
		t.check()
	}
	return true
}

// Find reports whether an item equal to the given one is in the tree.
func (t *Tree234[T]) Find(item T) bool {
	_, ok := t.Get(item)
	return ok
}

// Has is an alias of Find.
func (t *Tree234[T]) Has(item T) bool {
	return t.Find(item)
}

// Get looks for the key item in the tree, returning it.  It returns
// (zeroValue, false) if unable to find that item.
func (t *Tree234[T]) Get(key T) (_ T, _ bool) {
	if t.root == nil {
		return
	}
	return t.root.get(key)
}

// Bracket returns the greatest item less than or equal to the given one and
// the least item greater than or equal to it. Either is absent when no such
// item exists; both hold the item itself when it is in the tree.
func (t *Tree234[T]) Bracket(item T) (lower, upper Optional[T]) {
	if t.root == nil {
		return
	}
	return t.root.bracket(item)
}

// Min returns the smallest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree234[T]) Min() (_ T, _ bool) {
	return min(t.root)
}

// Max returns the largest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree234[T]) Max() (_ T, _ bool) {
	return max(t.root)
}

// Ascend calls the iterator for every value in the tree in ascending order,
// until iterator returns false.
func (t *Tree234[T]) Ascend(iterator ItemIterator[T]) {
	if t.root == nil {
		return
	}
	t.root.ascend(iterator)
}

// Descend calls the iterator for every value in the tree in descending order,
// until iterator returns false.
func (t *Tree234[T]) Descend(iterator ItemIterator[T]) {
	if t.root == nil {
		return
	}
	t.root.descend(iterator)
}

// Len returns the number of items currently in the tree.
func (t *Tree234[T]) Len() int {
	return t.length
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree234[T]) IsEmpty() bool {
	return t.root == nil || t.root.size == 0
}

// Clear removes all items from the tree. Its nodes are added to the free list
// until the list is full; the rest are left to the garbage collector.
func (t *Tree234[T]) Clear() {
	if t.root != nil {
		t.root.reset(t.freelist)
	}
	t.root, t.length = nil, 0
}

// Equal reports whether the two trees have the same layout: the same keys in
// the same slots of the same nodes. Trees holding the same items but built by
// different sequences of operations may compare unequal.
func (t *Tree234[T]) Equal(o *Tree234[T]) bool {
	if t.IsEmpty() || o.IsEmpty() {
		return t.IsEmpty() == o.IsEmpty()
	}
	return t.root.equal(o.root)
}

// String returns the tree in a parenthesized form: each internal node prints
// as its children in parentheses separated by its keys.
func (t *Tree234[T]) String() string {
	if t.IsEmpty() {
		return "()"
	}
	var b strings.Builder
	t.root.writeString(&b)
	return b.String()
}

// Print writes one line per node, indented by depth.
func (t *Tree234[T]) Print(w io.Writer) {
	if t.root == nil {
		return
	}
	t.root.print(w, 0)
}
