// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Comparator - three-way ordering function
// returns -1, 0 or +1 as the candidate is less than, equal to or
// greater than the target; must stay consistent with a single total
// order for the lifetime of a tree
type Comparator func(candidate interface{}, target interface{}) int

// IDFunc - resolve the identifier carried by a payload
type IDFunc func(payload interface{}) string

// Item - payloads implementing this are ordered by their own Compare
type Item interface {
	Compare(interface{}) int // for left/right ordering of payloads
}

// Identified - payloads implementing this supply their own identifier
type Identified interface {
	ID() string
}

// Tree - type to hold the root node and ordering configuration
type Tree struct {
	root  *Node
	count int
	cmp   Comparator
	idOf  IDFunc
	host  structural
}

// New - create an initially empty tree with the default ordering
func New() *Tree {
	return NewWith(nil, nil)
}

// NewWith - create an initially empty tree
//
// a nil comparator selects the default: payloads must implement Item
// a nil id function selects the default: payloads implementing
// Identified supply their own identifier, all others have none
func NewWith(cmp Comparator, idOf IDFunc) *Tree {
	if nil == cmp {
		cmp = defaultCompare
	}
	if nil == idOf {
		idOf = defaultID
	}
	return &Tree{
		root:  nil,
		count: 0,
		cmp:   cmp,
		idOf:  idOf,
		host:  bst{},
	}
}

// default ordering, payloads must implement Item
func defaultCompare(candidate interface{}, target interface{}) int {
	return candidate.(Item).Compare(target)
}

// default identifier resolution
func defaultID(payload interface{}) string {
	if p, ok := payload.(Identified); ok {
		return p.ID()
	}
	return ""
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// SetRoot - graft a prebuilt node structure as the tree content
// the node count is recomputed by traversal; the grafted structure is
// trusted to already satisfy the ordering and balance invariants
func (tree *Tree) SetRoot(root *Node) {
	tree.root = root
	if nil != root {
		root.up = nil
	}
	n := 0
	tree.BreadthFirst(func(*Node) bool {
		n += 1
		return true
	})
	tree.count = n
}
