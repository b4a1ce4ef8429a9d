// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Copy - rebuild a structurally independent tree with the same
// contents and the same ordering configuration
//
// every payload is re-inserted by breadth-first order so the copy
// maintains its own balance factors and shares no nodes with the
// source; mutating one tree never disturbs the other
func (tree *Tree) Copy() *Tree {
	nt := NewWith(tree.cmp, tree.idOf)
	tree.BreadthFirst(func(p *Node) bool {
		nt.Insert(p.payload, p.id)
		return true
	})
	return nt
}
