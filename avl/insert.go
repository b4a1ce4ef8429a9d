// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a payload to the tree, returns the tree for chaining
//
// the optional id overrides the identifier resolved from the payload
// silently a no-op when the host placement rejects the payload as a
// duplicate
func (tree *Tree) Insert(payload interface{}, id ...string) *Tree {
	effectiveID := tree.idOf(payload)
	if len(id) > 0 && "" != id[0] {
		effectiveID = id[0]
	}

	n := newNode(payload, effectiveID)
	if nil == tree.host.structuralInsert(tree, n) {
		freeNode(n)
		return tree
	}
	tree.count += 1
	tree.propagateGrow(n)
	return tree
}
