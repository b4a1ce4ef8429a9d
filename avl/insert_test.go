// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordtree/ordtree/avl"
)

// payload carrying its own identifier
type record struct {
	name string
	tag  string
}

func (r record) Compare(x interface{}) int {
	return strings.Compare(r.name, x.(record).name)
}

func (r record) ID() string {
	return r.tag
}

// a duplicate payload is silently rejected by the host placement
func TestInsertDuplicateRejected(t *testing.T) {
	tree := avl.New()
	tree.Insert(intItem(7)).Insert(intItem(7)).Insert(intItem(7))

	assert.Equal(t, 1, tree.Count(), "duplicates were counted")
	assert.NotNil(t, tree.Search(intItem(7)), "value missing")
	checkInvariants(t, tree, "duplicates")
}

// identifiers come from the payload unless overridden per insert
func TestInsertIdentifierResolution(t *testing.T) {
	tree := avl.New()
	tree.Insert(record{name: "first", tag: "tag-1"})
	tree.Insert(record{name: "second", tag: "tag-2"}, "override-2")

	p := tree.Search(record{name: "first"}, compareNames)
	assert.NotNil(t, p, "first record missing")
	assert.Equal(t, "tag-1", p.ID(), "payload identifier not used")

	p = tree.Search(record{name: "second"}, compareNames)
	assert.NotNil(t, p, "second record missing")
	assert.Equal(t, "override-2", p.ID(), "explicit identifier not used")

	// a payload without any identifier gets none
	plain := avl.New()
	plain.Insert(intItem(3))
	assert.Equal(t, "", plain.Search(intItem(3)).ID(), "identifier appeared from nowhere")
}

// a tree built with an explicit configuration orders by it
func TestNewWithConfiguration(t *testing.T) {
	reverse := func(candidate interface{}, target interface{}) int {
		return -candidate.(avl.Item).Compare(target)
	}
	idOf := func(payload interface{}) string {
		return "k:" + string(payload.(textValue))
	}

	tree := avl.NewWith(reverse, idOf)
	for _, v := range []string{"bb", "aa", "dd", "cc"} {
		tree.Insert(textValue(v))
	}

	// reverse comparator puts the highest value first
	assert.Equal(t, textValue("dd"), tree.First().Payload(), "custom order ignored")
	assert.Equal(t, textValue("aa"), tree.Last().Payload(), "custom order ignored")
	assert.Equal(t, "k:cc", tree.Search(textValue("cc")).ID(), "custom identifier ignored")
	checkInvariants(t, tree, "custom configuration")
}

type textValue string

func (s textValue) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(textValue)))
}

// compare records by name only, used as a search override
func compareNames(candidate interface{}, target interface{}) int {
	return strings.Compare(candidate.(record).name, target.(record).name)
}
