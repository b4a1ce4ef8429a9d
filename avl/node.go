// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"sync"

	"github.com/ordtree/ordtree/counter"
)

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node, lookup only
	payload interface{} // data part for ordering and storage
	id      string      // optional external identifier
	balance int         // -1, 0, +1 (±2 only while an edit is in progress)
}

// Payload - read the data part of a node
func (p *Node) Payload() interface{} {
	return p.payload
}

// ID - read the identifier of a node
func (p *Node) ID() string {
	return p.id
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Balance - read the current balance factor of a node
func (p *Node) Balance() int {
	return p.balance
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// global data for allocator
var m sync.Mutex               // to protect the pool links
var pool *Node                 // linked list of reclaimed nodes
var totalNodes counter.Counter // total nodes created
var freeNodes counter.Counter  // number of nodes in the pool

// allocate a new node, reuses reclaimed nodes if any are available
func newNode(payload interface{}, id string) *Node {
	m.Lock()
	if nil == pool {
		if !freeNodes.IsZero() {
			panic("pool corrupt")
		}
		m.Unlock()
		totalNodes.Increment()
		return &Node{
			payload: payload,
			id:      id,
			balance: 0,
		}
	}
	p := pool
	pool = p.up
	p.payload = payload
	p.id = id
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = nil // ensure freelist pointer is cleared
	freeNodes.Decrement()
	m.Unlock()
	return p
}

// reclaim a node and keep it in a pool
func freeNode(node *Node) {
	m.Lock()
	node.up = pool // use as free list pointer

	node.left = nil
	node.right = nil
	node.payload = nil
	node.id = ""
	node.balance = 0
	freeNodes.Increment()

	pool = node
	m.Unlock()
}

// AllocatorStats - nodes created so far and nodes parked for reuse
func AllocatorStats() (total uint64, free uint64) {
	return totalNodes.Uint64(), freeNodes.Uint64()
}
