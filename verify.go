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

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
)

// Verify checks the structural invariants of the tree and returns an error
// describing the first violation found:
//   - every node holds at most three keys, packed to the left and ascending,
//     and only the root may hold none
//   - an internal node has exactly one child more than it has keys
//   - every key of child i lies between keys i-1 and i of its parent
//   - all leaves are at the same depth
//   - Len matches the number of stored keys
func (t *Tree234[T]) Verify() error {
	if t.root == nil {
		if t.length != 0 {
			return errors.Newf("empty tree reports length %d", t.length)
		}
		return nil
	}
	if t.root.size == 0 && !t.root.leaf() {
		return errors.New("internal root holds no keys")
	}
	count, _, err := t.root.verify(t, None[T](), None[T]())
	if err != nil {
		return errors.Wrap(err, "root")
	}
	if count != t.length {
		return errors.Newf("tree holds %d keys, length is %d", count, t.length)
	}
	return nil
}

// verify checks the subtree rooted at n, whose keys must all lie within
// [lo, hi]. It returns the number of keys in the subtree and its height.
func (n *node[T]) verify(t *Tree234[T], lo, hi Optional[T]) (count, height int, err error) {
	if n.t != t {
		return 0, 0, errors.New("node not owned by tree")
	}
	if n.size < 0 || n.size > maxKeys {
		return 0, 0, errors.Newf("size %d out of range", n.size)
	}
	if n.size == 0 && n != t.root {
		return 0, 0, errors.New("non-root node holds no keys")
	}
	for i := 0; i < n.size; i++ {
		if i > 0 && t.less(n.keys[i], n.keys[i-1]) {
			return 0, 0, errors.Newf("key %d (%v) less than key %d (%v)", i, n.keys[i], i-1, n.keys[i-1])
		}
	}
	for i := n.size; i < maxKeys; i++ {
		if !reflect.ValueOf(&n.keys[i]).Elem().IsZero() {
			return 0, 0, errors.Newf("slot %d beyond size %d is occupied", i, n.size)
		}
	}
	if n.size > 0 {
		if lo.Valid && t.less(n.keys[0], lo.Item) {
			return 0, 0, errors.Newf("key %v below separator %v", n.keys[0], lo.Item)
		}
		if hi.Valid && t.less(hi.Item, n.keys[n.size-1]) {
			return 0, 0, errors.Newf("key %v above separator %v", n.keys[n.size-1], hi.Item)
		}
	}
	if n.leaf() {
		for i, c := range n.children {
			if c != nil {
				return 0, 0, errors.Newf("leaf has child in slot %d", i)
			}
		}
		return n.size, 1, nil
	}
	for i, c := range n.children {
		if (i <= n.size) != (c != nil) {
			return 0, 0, errors.Newf("%d keys but child slot %d occupied: %t", n.size, i, c != nil)
		}
	}
	count = n.size
	for i := 0; i <= n.size; i++ {
		clo, chi := lo, hi
		if i > 0 {
			clo = Some(n.keys[i-1])
		}
		if i < n.size {
			chi = Some(n.keys[i])
		}
		c, h, err := n.children[i].verify(t, clo, chi)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "child %d", i)
		}
		if i > 0 && h != height {
			return 0, 0, errors.Newf("child %d has height %d, child 0 has height %d", i, h, height)
		}
		height = h
		count += c
	}
	return count, height + 1, nil
}

func (n *node[T]) writeString(b *strings.Builder) {
	if n.leaf() {
		for i := 0; i < n.size; i++ {
			if i != 0 {
				b.WriteString(",")
			}
			fmt.Fprint(b, n.keys[i])
		}
		return
	}
	for i := 0; i <= n.size; i++ {
		b.WriteString("(")
		n.children[i].writeString(b)
		b.WriteString(")")
		if i < n.size {
			fmt.Fprint(b, n.keys[i])
		}
	}
}

// print is used for testing/debugging purposes.
func (n *node[T]) print(w io.Writer, level int) {
	fmt.Fprintf(w, "%sNODE:%v\n", strings.Repeat("  ", level), n.keys[:n.size])
	if n.leaf() {
		return
	}
	for _, c := range n.children[:n.size+1] {
		c.print(w, level+1)
	}
}
