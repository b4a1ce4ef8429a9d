// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the node holding a specific value
// the optional comparator overrides the one fixed at construction
// returns nil when the value is not present
func (tree *Tree) Search(value interface{}, cmp ...Comparator) *Node {
	compare := tree.cmp
	if len(cmp) > 0 && nil != cmp[0] {
		compare = cmp[0]
	}
	return tree.host.binarySearch(tree.root, value, compare)
}
