// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordtree/ordtree/avl"
)

// a copy holds the same contents under its own balanced structure and
// shares no nodes with the source
func TestCopyIndependence(t *testing.T) {
	tree := avl.New()
	for _, v := range []string{"delta", "alpha", "echo", "bravo", "charlie", "foxtrot", "golf"} {
		tree.Insert(stringItem{v}, "id-"+v)
	}

	copied := tree.Copy()

	assert.Equal(t, tree.Count(), copied.Count(), "copy count differs")
	assert.True(t, copied.CheckUp(), "copy parent links inconsistent")
	_, ok := copied.CheckBalance()
	assert.True(t, ok, "copy balance factors corrupt")
	assert.True(t, tree.Root() != copied.Root(), "copy shares the root node")

	// identical in-order contents including identifiers
	p := tree.First()
	q := copied.First()
	for nil != p {
		assert.NotNil(t, q, "copy traversal too short")
		assert.Equal(t, p.Payload(), q.Payload(), "payload mismatch")
		assert.Equal(t, p.ID(), q.ID(), "identifier mismatch")
		p = p.Next()
		q = q.Next()
	}
	assert.Nil(t, q, "copy traversal too long")

	// mutating the copy leaves the original untouched
	copied.Delete(stringItem{"alpha"})
	copied.Delete(stringItem{"echo"})
	assert.Equal(t, 5, copied.Count(), "copy delete failed")
	assert.Equal(t, 7, tree.Count(), "original count disturbed")
	assert.NotNil(t, tree.Search(stringItem{"alpha"}), "original lost a value")

	// and the other way round
	tree.Insert(stringItem{"hotel"})
	assert.Nil(t, copied.Search(stringItem{"hotel"}), "copy saw a later insert")

	checkInvariants(t, tree, "original")
	checkInvariants(t, copied, "copy")
}
