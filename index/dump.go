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

import "strings"

// Dump returns a pre-order view of the tree, one node per line, indented by
// depth. Empty children are printed as "null", so the shape is unambiguous.
// Should not be used to print out large trees.
func (tree *Tree) Dump() string {
	var sb strings.Builder
	preOrderPrint(tree.root, 0, &sb)
	return sb.String()
}

func preOrderPrint(n *node, level int, sb *strings.Builder) {
	sb.WriteString("\n")
	if level > 0 {
		sb.WriteString(strings.Repeat("   ", level-1))
		sb.WriteString("|--")
	}

	if n == nil {
		sb.WriteString("null")
		return
	}
	sb.WriteString(n.record.String())
	preOrderPrint(n.left, level+1, sb)
	preOrderPrint(n.right, level+1, sb)
}
