// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// Branch - which side of its parent a rendered node hangs from
type Branch int

const (
	RootBranch  Branch = iota
	LeftBranch  Branch = iota
	RightBranch Branch = iota
)

// Row - one line of the diagnostic rendering, in display order
type Row struct {
	Depth  int
	Prefix string
	Branch Branch
	Node   *Node
}

// Rows - flatten the tree into display rows without producing any
// output, right subtree first so a rendering reads top-down
// rendering is left to a separate consumer such as Print
func (tree *Tree) Rows() []Row {
	rows := make([]Row, 0, tree.count)
	collectRows(tree.root, "", RootBranch, 0, &rows)
	return rows
}

// internal: row collector
func collectRows(p *Node, prefix string, br Branch, depth int, rows *[]Row) {
	if nil == p {
		return
	}
	if nil != p.right {
		t := "       "
		if LeftBranch == br {
			t = "|      "
		}
		collectRows(p.right, prefix+t, RightBranch, depth+1, rows)
	}
	*rows = append(*rows, Row{Depth: depth, Prefix: prefix, Branch: br, Node: p})
	if nil != p.left {
		t := "       "
		if RightBranch == br {
			t = "|      "
		}
		collectRows(p.left, prefix+t, LeftBranch, depth+1, rows)
	}
}

// Print - write an ASCII graphic representation of the tree
// each line shows the payload, the parent payload and, with printData
// set, the identifier and current balance factor
// returns the number of levels in the tree
func (tree *Tree) Print(w io.Writer, printData bool) int {
	levels := 0
	for _, row := range tree.Rows() {
		if row.Depth+1 > levels {
			levels = row.Depth + 1
		}
		switch row.Branch {
		case RootBranch:
			fmt.Fprintf(w, "%s|------+ ", row.Prefix)
		case LeftBranch:
			fmt.Fprintf(w, "%s\\------+ ", row.Prefix)
		case RightBranch:
			fmt.Fprintf(w, "%s/------+ ", row.Prefix)
		}
		p := row.Node
		up := interface{}(nil)
		if nil != p.up {
			up = p.up.payload
		}
		if printData {
			fmt.Fprintf(w, "%v → %q ^%v %+2d\n", p.payload, p.id, up, p.balance)
		} else {
			fmt.Fprintf(w, "%v ^%v\n", p.payload, up)
		}
	}
	return levels
}
