// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckBalance - recompute every subtree height from scratch and
// verify that each stored balance factor matches the height
// difference and stays within {-1, 0, +1}
// returns the overall tree height, -1 for an empty tree
func (tree *Tree) CheckBalance() (int, bool) {
	return checkBalance(tree.root)
}

// internal: brute force height recomputation
func checkBalance(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	hl, okl := checkBalance(p.left)
	hr, okr := checkBalance(p.right)
	if !okl || !okr {
		return 0, false
	}
	if p.balance != hr-hl || p.balance < -1 || p.balance > 1 {
		return 0, false
	}
	h := hl
	if hr > h {
		h = hr
	}
	return h + 1, true
}
