// Copyright 2025 Naren Yellavula
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

// Package index keeps collision records in an AVL tree ordered by
// zip code, date and unique key.
package index

import (
	"errors"

	"github.com/cybrota/collisions/collision"
)

var (
	// ErrNilRecord is returned when a nil record is offered to the tree.
	ErrNilRecord = errors.New("nil collision record")
	// ErrInvalidZone is returned by Collect for zip codes that are not five digits.
	ErrInvalidZone = errors.New("invalid zip code")
)

type node struct {
	record *collision.Record
	left   *node
	right  *node
	height int // leaf = 0, see height()
}

// Tree is an AVL tree of collision records.
//
// Tree is not safe for concurrent use. Callers that share a tree between
// goroutines must serialize access themselves.
type Tree struct {
	root *node
	size int
}

func New() *Tree {
	return &Tree{}
}

// Len returns the number of records in the tree.
func (tree *Tree) Len() int {
	return tree.size
}

// Height returns the height of the tree, -1 when it is empty.
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Insert adds r to the tree. Records comparing equal to one already stored
// are rejected and leave the tree unchanged; Insert then reports false.
func (tree *Tree) Insert(r *collision.Record) (bool, error) {
	if r == nil {
		return false, ErrNilRecord
	}
	var added bool
	tree.root, added = tree.insertRecursive(tree.root, r)
	if added {
		tree.size++
	}
	return added, nil
}

func (tree *Tree) insertRecursive(n *node, r *collision.Record) (*node, bool) {
	if n == nil {
		return &node{record: r}, true
	}

	var added bool
	switch c := r.Compare(n.record); {
	case c < 0:
		n.left, added = tree.insertRecursive(n.left, r)
	case c > 0:
		n.right, added = tree.insertRecursive(n.right, r)
	default:
		return n, false
	}

	if !added {
		return n, false
	}
	updateHeight(n)
	return rebalance(n), true
}

// Remove deletes the record comparing equal to target and reports whether one was found.
func (tree *Tree) Remove(target *collision.Record) bool {
	if target == nil {
		return false
	}
	var found bool
	tree.root, found = tree.removeRecursive(tree.root, target)
	if found {
		tree.size--
	}
	return found
}

func (tree *Tree) removeRecursive(n *node, target *collision.Record) (*node, bool) {
	if n == nil {
		return nil, false
	}

	var found bool
	switch c := target.Compare(n.record); {
	case c < 0:
		n.left, found = tree.removeRecursive(n.left, target)
	case c > 0:
		n.right, found = tree.removeRecursive(n.right, target)
	default:
		n, found = tree.removeNode(n), true
	}

	if n == nil {
		return nil, found
	}
	updateHeight(n)
	return rebalance(n), found
}

// removeNode returns the subtree that replaces n once n's record is gone.
func (tree *Tree) removeNode(n *node) *node {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}

	// Two children: pull the predecessor up. It has no right child, so the
	// recursive removal below takes one of the splice branches above.
	pred := predecessor(n)
	n.record = pred
	n.left, _ = tree.removeRecursive(n.left, pred)
	return n
}

// predecessor returns the record in the rightmost node of n's left subtree.
func predecessor(n *node) *collision.Record {
	p := n.left
	for p.right != nil {
		p = p.right
	}
	return p.record
}

// Contains reports whether a record comparing equal to r is stored.
func (tree *Tree) Contains(r *collision.Record) bool {
	if r == nil {
		return false
	}
	n := tree.root
	for n != nil {
		switch c := r.Compare(n.record); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// InOrder returns all records in ascending order.
func (tree *Tree) InOrder() []*collision.Record {
	records := make([]*collision.Record, 0, tree.size)
	inOrderTraversal(tree.root, &records)
	return records
}

func inOrderTraversal(n *node, result *[]*collision.Record) {
	if n == nil {
		return
	}
	inOrderTraversal(n.left, result)
	*result = append(*result, n.record)
	inOrderTraversal(n.right, result)
}
