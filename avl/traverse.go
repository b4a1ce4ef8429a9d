// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// BreadthFirst - visit every node level by level from the root
// the visitor returns false to stop the traversal early
func (tree *Tree) BreadthFirst(f func(*Node) bool) {
	if nil == tree.root {
		return
	}
	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !f(p) {
			return
		}
		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
}
