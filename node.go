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

package tree234

import "github.com/cockroachdb/errors"

// node is an internal node in a tree.
//
// It must at all times maintain the invariant that either
//   - children[0] == nil, and no child slot is occupied
//   - children[0:size+1] are all occupied
type node[T any] struct {
	keys     keys[T]
	children children[T]
	size     int
	t        *Tree234[T]
}

func (n *node[T]) leaf() bool {
	return n.children[0] == nil
}

func (n *node[T]) full() bool {
	return n.size == maxKeys
}

// find returns the index of the first key that is not less than item, or
// n.size if there is none. It is both the slot item would be inserted at and
// the child to descend into when item is not held by n.
func (n *node[T]) find(item T) int {
	for i := 0; i < n.size; i++ {
		if !n.t.less(n.keys[i], item) {
			return i
		}
	}
	return n.size
}

// has reports whether keys[i] exists and equals item, where i came from find.
func (n *node[T]) has(i int, item T) bool {
	return i < n.size && !n.t.less(item, n.keys[i])
}

// get finds the given key in the subtree and returns it.
func (n *node[T]) get(key T) (_ T, _ bool) {
	for {
		i := n.find(key)
		if n.has(i, key) {
			return n.keys[i], true
		}
		if n.leaf() {
			return
		}
		n = n.children[i]
	}
}

// split splits a full node around its middle key. n keeps the first key and
// the first two children; the returned node takes the last key and the last
// two children.
func (n *node[T]) split() (T, *node[T]) {
	item := n.keys[1]
	next := n.t.newNode()
	next.keys[0] = n.keys[2]
	next.size = 1
	if !n.leaf() {
		next.children[0], next.children[1] = n.children[2], n.children[3]
		n.children.truncate(2)
	}
	n.keys.truncate(1)
	n.size = 1
	return item, next
}

// maybeSplitChild checks if a child is full, and if so splits it.
// Returns whether or not a split occurred.
func (n *node[T]) maybeSplitChild(i int) bool {
	if !n.children[i].full() {
		return false
	}
	item, second := n.children[i].split()
	n.keys.insertAt(i, item)
	n.children.insertAt(i+1, second)
	n.size++
	n.t.trace("split", i, n.size)
	return true
}

// insert inserts an item into the subtree rooted at this node. The node must
// not be full; every child is split before it is entered, so no node in the
// subtree ends up with more than maxKeys keys.
func (n *node[T]) insert(item T) {
	i := n.find(item)
	if n.leaf() {
		n.keys.insertAt(i, item)
		n.size++
		return
	}
	if n.maybeSplitChild(i) {
		i = n.find(item)
	}
	n.children[i].insert(item)
}

// remove removes one key equal to item from the subtree rooted at this node.
// The node must hold at least two keys unless it is the root.
func (n *node[T]) remove(item T) bool {
	for {
		i := n.find(item)
		found := n.has(i, item)
		if n.leaf() {
			if !found {
				return false
			}
			n.keys.removeAt(i)
			n.size--
			return true
		}
		if n.children[i].size == 1 {
			// The child cannot give up a key yet. Borrow or merge so that it
			// can, then look again: the layout of n may have changed.
			n.rebalance(i)
			continue
		}
		if !found {
			n = n.children[i]
			continue
		}
		// Replace the key with its predecessor, the rightmost key of the left
		// subtree.
		n.keys[i] = n.children[i].removeMax()
		return true
	}
}

// removeMax removes and returns the largest key in the subtree, rebalancing
// each node on the right spine before entering it.
func (n *node[T]) removeMax() T {
	for !n.leaf() {
		if last := n.children[n.size]; last.size > 1 {
			n = last
			continue
		}
		n.rebalance(n.size)
	}
	n.size--
	return n.keys.removeAt(n.size)
}

// rebalance grows children[i] from one key to at least two, so that a key can
// be removed below it. Exactly one of rotate, merge or shrink is applied, in
// that order of preference.
func (n *node[T]) rebalance(i int) {
	if n.children[i].size != 1 {
		panic(errors.AssertionFailedf("rebalance of child %d with %d keys", i, n.children[i].size))
	}
	switch {
	case i > 0 && n.children[i-1].size > 1:
		n.rotateRight(i)
	case i < n.size && n.children[i+1].size > 1:
		n.rotateLeft(i)
	case n.size > 1:
		n.merge(i)
	default:
		n.shrink()
	}
}

// rotateRight moves the separator keys[i-1] down into children[i] and the
// largest key of children[i-1] up to replace it.
func (n *node[T]) rotateRight(i int) {
	child, stealFrom := n.children[i], n.children[i-1]
	child.keys.insertAt(0, n.keys[i-1])
	stealFrom.size--
	n.keys[i-1] = stealFrom.keys.removeAt(stealFrom.size)
	if !child.leaf() {
		child.children.insertAt(0, stealFrom.children.removeAt(stealFrom.size+1))
	}
	child.size++
	n.t.traceDir("rotate", "left", i, child.size)
}

// rotateLeft moves the separator keys[i] down into children[i] and the
// smallest key of children[i+1] up to replace it.
func (n *node[T]) rotateLeft(i int) {
	child, stealFrom := n.children[i], n.children[i+1]
	child.keys[child.size] = n.keys[i]
	n.keys[i] = stealFrom.keys.removeAt(0)
	if !child.leaf() {
		child.children[child.size+1] = stealFrom.children.removeAt(0)
	}
	stealFrom.size--
	child.size++
	n.t.traceDir("rotate", "right", i, child.size)
}

// merge fuses children[i], one adjacent sibling and the key separating them
// into a single three-key node. The right sibling is used unless children[i]
// is the last child.
func (n *node[T]) merge(i int) {
	dir := "right"
	if i == n.size {
		dir = "left"
		i--
	}
	child := n.children[i]
	mergeItem := n.keys.removeAt(i)
	mergeChild := n.children.removeAt(i + 1)
	n.size--
	child.keys[1] = mergeItem
	child.keys[2] = mergeChild.keys[0]
	child.children[2], child.children[3] = mergeChild.children[0], mergeChild.children[1]
	child.size = maxKeys
	n.t.freeNode(mergeChild)
	n.t.traceDir("merge", dir, i, child.size)
}

// shrink collapses a one-key node and its two one-key children into a single
// three-key node that adopts the grandchildren. It lowers the height of the
// subtree by one, so it is only sound at the root.
func (n *node[T]) shrink() {
	if n != n.t.root {
		panic(errors.AssertionFailedf("shrink below the root"))
	}
	if n.size != 1 || n.leaf() {
		panic(errors.AssertionFailedf("shrink of node with %d keys (leaf: %t)", n.size, n.leaf()))
	}
	left, right := n.children[0], n.children[1]
	if left.size != 1 || right.size != 1 || left.leaf() != right.leaf() {
		panic(errors.AssertionFailedf("shrink with children of %d and %d keys", left.size, right.size))
	}
	n.keys[2] = right.keys[0]
	n.keys[1] = n.keys[0]
	n.keys[0] = left.keys[0]
	n.children = children[T]{left.children[0], left.children[1], right.children[0], right.children[1]}
	n.size = maxKeys
	n.t.freeNode(left)
	n.t.freeNode(right)
	n.t.trace("shrink", 0, n.size)
}

// bracket returns the greatest key <= item and the least key >= item in the
// subtree.
func (n *node[T]) bracket(item T) (lower, upper Optional[T]) {
	if n.leaf() {
		for i := 0; i < n.size; i++ {
			k := n.keys[i]
			if !n.t.less(item, k) {
				lower = Some(k)
			}
			if !n.t.less(k, item) {
				upper = Some(k)
				break
			}
		}
		return
	}
	// i is the first key strictly greater than item.
	i := 0
	for i < n.size && !n.t.less(item, n.keys[i]) {
		i++
	}
	if i > 0 && !n.t.less(n.keys[i-1], item) {
		return Some(n.keys[i-1]), Some(n.keys[i-1])
	}
	lower, upper = n.children[i].bracket(item)
	if !upper.Valid && i < n.size {
		upper = Some(n.keys[i])
	}
	if !lower.Valid && i > 0 {
		lower = Some(n.keys[i-1])
	}
	return
}

// min returns the first item in the subtree.
func min[T any](n *node[T]) (_ T, found bool) {
	if n == nil {
		return
	}
	for !n.leaf() {
		n = n.children[0]
	}
	if n.size == 0 {
		return
	}
	return n.keys[0], true
}

// max returns the last item in the subtree.
func max[T any](n *node[T]) (_ T, found bool) {
	if n == nil {
		return
	}
	for !n.leaf() {
		n = n.children[n.size]
	}
	if n.size == 0 {
		return
	}
	return n.keys[n.size-1], true
}

// ascend calls iter for every key of the subtree in order. It returns false
// as soon as iter does.
func (n *node[T]) ascend(iter ItemIterator[T]) bool {
	for i := 0; i < n.size; i++ {
		if !n.leaf() && !n.children[i].ascend(iter) {
			return false
		}
		if !iter(n.keys[i]) {
			return false
		}
	}
	if !n.leaf() {
		return n.children[n.size].ascend(iter)
	}
	return true
}

// descend is ascend in reverse.
func (n *node[T]) descend(iter ItemIterator[T]) bool {
	if !n.leaf() && !n.children[n.size].descend(iter) {
		return false
	}
	for i := n.size - 1; i >= 0; i-- {
		if !iter(n.keys[i]) {
			return false
		}
		if !n.leaf() && !n.children[i].descend(iter) {
			return false
		}
	}
	return true
}

// equal compares the layout of two subtrees key by key and child by child.
func (n *node[T]) equal(o *node[T]) bool {
	if n.size != o.size || n.leaf() != o.leaf() {
		return false
	}
	for i := 0; i < n.size; i++ {
		if n.t.less(n.keys[i], o.keys[i]) || n.t.less(o.keys[i], n.keys[i]) {
			return false
		}
	}
	if n.leaf() {
		return true
	}
	for i := 0; i <= n.size; i++ {
		if !n.children[i].equal(o.children[i]) {
			return false
		}
	}
	return true
}

// reset returns the subtree's nodes to the free list, stopping once the list
// is full. It returns false if the list filled up.
func (n *node[T]) reset(f *FreeList[T]) bool {
	if !n.leaf() {
		for i := 0; i <= n.size; i++ {
			if !n.children[i].reset(f) {
				return false
			}
		}
	}
	return f.freeNode(n)
}
