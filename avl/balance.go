// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/ordtree/ordtree/fault"
)

// post-insertion propagation
//
// walk the parent chain upward from a newly attached leaf adjusting
// each ancestor for the branch that has grown:
//   factor becomes  0 - the subtree height is unchanged, stop
//   factor becomes ±1 - the subtree grew by one, keep walking
//   factor becomes ±2 - rotate; a rotation restores the pre-insert
//                       height so nothing above is affected, stop
func (tree *Tree) propagateGrow(n *Node) {
	if nil == n {
		fault.Panic("avl: growth propagation from nil node")
	}
	child := n
	for p := n.up; nil != p; p = child.up {
		if child == p.left {
			p.balance -= 1 // left branch has grown
		} else {
			p.balance += 1 // right branch has grown
		}
		switch p.balance {
		case 0:
			return
		case -1, +1:
			child = p
		default:
			tree.rebalance(p)
			return
		}
	}
}

// post-deletion propagation
//
// walk upward from the parent of the physical unlink point adjusting
// each ancestor for the branch that has shrunk:
//   factor becomes ±1 - the subtree height is unchanged, stop
//   factor becomes  0 - the subtree shrank by one, keep walking
//   factor becomes ±2 - rotate and continue from the new subtree
//                       root, unless the rotation kept the height
// unlike insertion a deletion can rotate at several levels before the
// root is reached
//
// a nil parent means the physical unlink emptied the tree or replaced
// the root, nothing to do
func (tree *Tree) propagateShrink(p *Node, fromLeft bool) {
	for nil != p {
		if fromLeft {
			p.balance += 1 // left branch has shrunk
		} else {
			p.balance -= 1 // right branch has shrunk
		}

		sub := p
		switch p.balance {
		case -1, +1:
			return
		case 0:
			// subtree shrank, keep walking
		default:
			root, heightKept := tree.rebalance(p)
			if heightKept {
				return
			}
			sub = root
		}

		up := sub.up
		if nil == up {
			return
		}
		fromLeft = sub == up.left
		p = up
	}
}
