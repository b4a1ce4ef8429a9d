// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a self balancing binary search tree with parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The balancing algorithm keeps every node annotated with a balance
// factor, the height of its right subtree minus the height of its
// left subtree, held within {-1, 0, +1}.  After a structural edit the
// factors along the path back to the root are recomputed and a local
// rotation is applied wherever a factor reaches ±2.
//
// The raw search tree mechanics (binary search, leaf placement,
// physical unlinking) carry no balance knowledge of their own; the
// balanced layer composes them and runs the factor propagation after
// each edit.  Insertion needs at most one rotation, deletion may
// rotate at several levels on the way back to the root.
package avl
