// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// structural - the raw ordered-tree mechanics the balanced layer
// composes: binary search, leaf placement and physical unlinking
// nothing here touches a balance factor
type structural interface {
	binarySearch(root *Node, value interface{}, cmp Comparator) *Node
	structuralInsert(tree *Tree, n *Node) *Node
	structuralDelete(tree *Tree, n *Node) (detached *Node, parent *Node, fromLeft bool)
}

// unbalanced binary search tree mechanics
// how balanced the branches are depends entirely on the edit order,
// the composing layer is responsible for any balancing strategy
type bst struct{}

// walk down from root comparing payloads
func (bst) binarySearch(root *Node, value interface{}, cmp Comparator) *Node {
	p := root
	for nil != p {
		switch c := cmp(p.payload, value); {
		case c > 0: // p.payload > value
			p = p.left
		case c < 0: // p.payload < value
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// attach a fresh node at the leaf position its payload orders to
// returns nil if an equal payload is already present (host policy:
// comparator equality is a duplicate and the placement is rejected)
func (bst) structuralInsert(tree *Tree, n *Node) *Node {
	if nil == tree.root {
		tree.root = n
		return n
	}
	p := tree.root
	for {
		switch c := tree.cmp(p.payload, n.payload); {
		case c > 0:
			if nil == p.left {
				p.left = n
				n.up = p
				return n
			}
			p = p.left
		case c < 0:
			if nil == p.right {
				p.right = n
				n.up = p
				return n
			}
			p = p.right
		default:
			return nil
		}
	}
}

// physically unlink a node from the structure
//
// a node with two children swaps payload and id with its in-order
// successor and the successor is unlinked in its place, so the node
// removed from the structure can differ from the one logically
// deleted; the returned parent and side locate the unlink point for
// balance propagation
func (bst) structuralDelete(tree *Tree, n *Node) (*Node, *Node, bool) {
	if nil != n.left && nil != n.right {
		s := n.right.first()
		n.payload, s.payload = s.payload, n.payload
		n.id, s.id = s.id, n.id
		n = s
	}

	// n now has at most one child
	child := n.left
	if nil == child {
		child = n.right
	}
	parent := n.up
	fromLeft := nil != parent && n == parent.left

	if nil != child {
		child.up = parent
	}
	if nil == parent {
		tree.root = child
	} else if fromLeft {
		parent.left = child
	} else {
		parent.right = child
	}

	n.left = nil
	n.right = nil
	n.up = nil
	return n, parent, fromLeft
}
