// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/ordtree/ordtree/avl"
	"github.com/ordtree/ordtree/fault"
)

// build a tree from the arguments and render it once
func runShow(c *cli.Context) error {
	items, err := toItems(c.Args(), c.GlobalBool("numeric"))
	if nil != err {
		return err
	}
	if 0 == len(items) {
		return fault.ErrInvalidCount
	}

	tree := avl.New()
	for _, item := range items {
		tree.Insert(item)
	}

	depth := tree.Print(c.App.Writer, c.Bool("data"))
	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.Writer, "nodes: %d  levels: %d\n", tree.Count(), depth)
	}
	return nil
}

// render the tree after every single edit
func runTrace(c *cli.Context) error {
	numeric := c.GlobalBool("numeric")
	items, err := toItems(c.Args(), numeric)
	if nil != err {
		return err
	}
	deletes, err := toItems(c.StringSlice("delete"), numeric)
	if nil != err {
		return err
	}

	w := c.App.Writer
	tree := avl.New()
	for _, item := range items {
		tree.Insert(item)
		fmt.Fprintf(w, "after insert: %v\n", item)
		tree.Print(w, true)
		fmt.Fprintln(w)
	}
	for _, item := range deletes {
		removed := tree.Delete(item)
		if nil == removed {
			fmt.Fprintf(w, "not present: %v\n", item)
			continue
		}
		fmt.Fprintf(w, "after delete: %v\n", removed)
		tree.Print(w, true)
		fmt.Fprintln(w)
	}
	return nil
}

// random torture loop verifying the structural invariants throughout
func runStress(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fault.ErrInvalidCount
	}

	log := logger.New("stress")
	r := rand.New(rand.NewSource(c.Int64("seed")))

	values := r.Perm(count)
	tree := avl.New()
	for i, v := range values {
		tree.Insert(numberItem(v))
		if err := verify(tree, i+1); nil != err {
			return err
		}
	}
	log.Infof("inserted: %d nodes", tree.Count())

	for i, v := range r.Perm(count) {
		if nil == tree.Delete(numberItem(v)) {
			return fault.ErrInvalidValue
		}
		if err := verify(tree, count-i-1); nil != err {
			return err
		}
	}
	if !tree.IsEmpty() {
		return fault.ErrInvalidCount
	}

	total, free := avl.AllocatorStats()
	log.Infof("allocator: total: %d  free: %d", total, free)
	fmt.Fprintf(c.App.Writer, "ok: %d inserts and deletes verified\n", count)
	return nil
}

// check parent links, balance factors and the height bound
func verify(tree *avl.Tree, n int) error {
	if !tree.CheckUp() {
		return fault.ErrInvalidValue
	}
	height, ok := tree.CheckBalance()
	if !ok {
		return fault.ErrInvalidValue
	}
	if n > 0 && float64(height) > 1.44*math.Log2(float64(n)+2) {
		return fault.ErrInvalidCount
	}
	return nil
}
