// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/ordtree/ordtree/avl"
)

// random insert torture: the balance and height invariants must hold
// after every single insertion, not just at the end
func TestRandomInsertInvariants(t *testing.T) {
	const n = 1000
	r := rand.New(rand.NewSource(20260829))

	tree := avl.New()
	for i, v := range r.Perm(n) {
		tree.Insert(intItem(v))
		verifyInvariants(t, tree, i+1)
	}
	if n != tree.Count() {
		t.Fatalf("tree count: actual: %d  expected: %d", tree.Count(), n)
	}

	// and random teardown with the same verification per deletion
	for i, v := range r.Perm(n) {
		if nil == tree.Delete(intItem(v)) {
			t.Fatalf("delete lost value: %d", v)
		}
		verifyInvariants(t, tree, n-i-1)
	}
	if !tree.IsEmpty() {
		t.Fatalf("remaining nodes: %d", tree.Count())
	}
}

// membership: an inserted value is findable, a deleted one is not
func TestMembership(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	tree := avl.New()
	values := r.Perm(500)
	for _, v := range values {
		tree.Insert(intItem(v))
		p := tree.Search(intItem(v))
		if nil == p {
			t.Fatalf("inserted value not found: %d", v)
		}
		if intItem(v) != p.Payload() {
			t.Fatalf("found wrong payload: %v  expected: %d", p.Payload(), v)
		}
	}

	for _, v := range values[:250] {
		if nil == tree.Delete(intItem(v)) {
			t.Fatalf("delete missed value: %d", v)
		}
		if nil != tree.Search(intItem(v)) {
			t.Fatalf("deleted value still present: %d", v)
		}
	}
	for _, v := range values[250:] {
		if nil == tree.Search(intItem(v)) {
			t.Fatalf("untouched value lost: %d", v)
		}
	}
}

// balance factors genuine, parent links intact and the height within
// the logarithmic bound
func verifyInvariants(t *testing.T, tree *avl.Tree, n int) {
	t.Helper()
	if !tree.CheckUp() {
		t.Fatalf("n=%d: inconsistent parent links", n)
	}
	height, ok := tree.CheckBalance()
	if !ok {
		t.Fatalf("n=%d: balance factors corrupt", n)
	}
	if n > 0 {
		limit := 1.44 * math.Log2(float64(n)+2)
		if float64(height) > limit {
			t.Fatalf("n=%d: height %d above bound %f", n, height, limit)
		}
	}
}
