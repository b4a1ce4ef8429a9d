// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Delete - remove the node matching a value
//
// the optional comparator overrides the one fixed at construction
// returns the payload that was removed or nil if not present, a miss
// is not an error and leaves the tree untouched
func (tree *Tree) Delete(value interface{}, cmp ...Comparator) interface{} {
	compare := tree.cmp
	if len(cmp) > 0 && nil != cmp[0] {
		compare = cmp[0]
	}

	n := tree.host.binarySearch(tree.root, value, compare)
	if nil == n {
		return nil
	}

	detached, parent, fromLeft := tree.host.structuralDelete(tree, n)
	tree.count -= 1
	tree.propagateShrink(parent, fromLeft)

	payload := detached.payload
	freeNode(detached) // return deleted node to pool
	return payload
}

// DeleteNode - remove a node located by a three-way callback
//
// the callback receives each candidate node and reports where the
// target lies: +1 the candidate is greater, -1 the candidate is less,
// 0 found; returns nil if no node matches
//
// the detached node is handed back to the caller with its link and
// balance fields cleared, it is no longer part of any tree
func (tree *Tree) DeleteNode(locator func(*Node) int) *Node {
	p := tree.root
search_loop:
	for nil != p {
		switch c := locator(p); {
		case c > 0:
			p = p.left
		case c < 0:
			p = p.right
		default:
			break search_loop
		}
	}
	if nil == p {
		return nil
	}

	detached, parent, fromLeft := tree.host.structuralDelete(tree, p)
	tree.count -= 1
	tree.propagateShrink(parent, fromLeft)

	detached.balance = 0
	return detached
}
