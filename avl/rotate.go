// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/ordtree/ordtree/fault"
)

// single rotations: pure link surgery, callers fix the balance factors
// the former parent (or the tree root) is rewired to the new subtree
// root, so the result is already spliced in on return

// rotate left: the right child becomes the new subtree root
func (tree *Tree) rotateLeft(p *Node) *Node {
	p1 := p.right
	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	p1.up = p.up
	if nil == p1.up {
		tree.root = p1
	} else if p == p1.up.left {
		p1.up.left = p1
	} else {
		p1.up.right = p1
	}
	p1.left = p
	p.up = p1
	return p1
}

// rotate right: the left child becomes the new subtree root
func (tree *Tree) rotateRight(p *Node) *Node {
	p1 := p.left
	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	p1.up = p.up
	if nil == p1.up {
		tree.root = p1
	} else if p == p1.up.left {
		p1.up.left = p1
	} else {
		p1.up.right = p1
	}
	p1.right = p
	p.up = p1
	return p1
}

// rebalance - restore the balance invariant at a node observed at ±2
//
// returns the new local subtree root and whether the subtree kept its
// pre-edit height; only a single rotation around a level child keeps
// the height (this arises during deletion only) and the caller must
// then stop propagating
//
// calling this on a node whose factor is not ±2 is a programming
// error in the balancing layer itself and fails loudly
func (tree *Tree) rebalance(p *Node) (*Node, bool) {
	switch p.balance {
	case +2:
		p1 := p.right
		if p1.balance >= 0 {
			// single RR rotation
			tree.rotateLeft(p)
			if 0 == p1.balance {
				p.balance = +1
				p1.balance = -1
				return p1, true
			}
			p.balance = 0
			p1.balance = 0
			return p1, false
		}
		// double RL rotation
		p2 := p1.left
		tree.rotateRight(p1)
		tree.rotateLeft(p)
		if +1 == p2.balance {
			p.balance = -1
		} else {
			p.balance = 0
		}
		if -1 == p2.balance {
			p1.balance = +1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return p2, false

	case -2:
		p1 := p.left
		if p1.balance <= 0 {
			// single LL rotation
			tree.rotateRight(p)
			if 0 == p1.balance {
				p.balance = -1
				p1.balance = +1
				return p1, true
			}
			p.balance = 0
			p1.balance = 0
			return p1, false
		}
		// double LR rotation
		p2 := p1.right
		tree.rotateLeft(p1)
		tree.rotateRight(p)
		if -1 == p2.balance {
			p.balance = +1
		} else {
			p.balance = 0
		}
		if +1 == p2.balance {
			p1.balance = -1
		} else {
			p1.balance = 0
		}
		p2.balance = 0
		return p2, false

	default:
		fault.Panicf("avl: rebalance on node with factor: %d", p.balance)
		return nil, false // not reached
	}
}
