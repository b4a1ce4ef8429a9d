// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordtree/ordtree/avl"
)

// ascending inserts force exactly one single left rotation at the root
func TestInsertSingleLeftRotation(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(10)).Insert(intItem(20)).Insert(intItem(30))

	assertShape123(t, tree, 10, 20, 30)
}

// descending inserts force exactly one single right rotation at the root
func TestInsertSingleRightRotation(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(30)).Insert(intItem(20)).Insert(intItem(10))

	assertShape123(t, tree, 10, 20, 30)
}

// zig-zag insert order forces a right-left double rotation, the final
// shape matches the single rotation case
func TestInsertDoubleRightLeftRotation(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(10)).Insert(intItem(30)).Insert(intItem(20))

	assertShape123(t, tree, 10, 20, 30)
}

// mirrored zig-zag forces a left-right double rotation
func TestInsertDoubleLeftRightRotation(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(30)).Insert(intItem(10)).Insert(intItem(20))

	assertShape123(t, tree, 10, 20, 30)
}

// the canonical three node result: middle at the root, both children
// attached and every balance factor level
func assertShape123(t *testing.T, tree *avl.Tree, lo int, mid int, hi int) {
	t.Helper()

	root := tree.Root()
	assert.NotNil(t, root, "missing root")
	assert.Equal(t, intItem(mid), root.Payload(), "wrong root payload")
	assert.Equal(t, 0, root.Balance(), "root not level")
	assert.Nil(t, root.Parent(), "root has a parent")

	left := root.Left()
	right := root.Right()
	assert.NotNil(t, left, "missing left child")
	assert.NotNil(t, right, "missing right child")
	assert.Equal(t, intItem(lo), left.Payload(), "wrong left payload")
	assert.Equal(t, intItem(hi), right.Payload(), "wrong right payload")
	assert.Equal(t, 0, left.Balance(), "left child not level")
	assert.Equal(t, 0, right.Balance(), "right child not level")
	assert.Equal(t, root, left.Parent(), "left parent link broken")
	assert.Equal(t, root, right.Parent(), "right parent link broken")

	assert.Equal(t, 3, tree.Count(), "wrong node count")
	assert.True(t, tree.CheckUp(), "inconsistent parent links")
	height, ok := tree.CheckBalance()
	assert.True(t, ok, "balance factors corrupt")
	assert.Equal(t, 1, height, "wrong height")
}
