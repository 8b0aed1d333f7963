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

package index

// height of an empty subtree is -1 so that a leaf has height 0.
func height(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeight(n *node) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balanceFactor is height(right) - height(left).
func balanceFactor(n *node) int {
	if n == nil {
		return 0
	}
	return height(n.right) - height(n.left)
}

func rotateLeft(n *node) *node {
	if n == nil || n.right == nil {
		return n
	}

	pivot := n.right
	n.right = pivot.left
	pivot.left = n

	// n is now pivot's child, so its height goes first
	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func rotateRight(n *node) *node {
	if n == nil || n.left == nil {
		return n
	}

	pivot := n.left
	n.left = pivot.right
	pivot.right = n

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

// rebalance restores the AVL property at n, assuming both subtrees are
// balanced and n's height is current. It returns the new subtree root.
func rebalance(n *node) *node {
	bf := balanceFactor(n)

	// Left-heavy
	if bf < -1 {
		if balanceFactor(n.left) <= 0 {
			return rotateRight(n)
		}
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	}

	// Right-heavy
	if bf > 1 {
		if balanceFactor(n.right) >= 0 {
			return rotateLeft(n)
		}
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}

	return n
}
