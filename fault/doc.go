// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison, each
// error belongs to a class so related failures can be detected
// without enumerating every instance.
//
// Also provides the loud-failure path for invariant violations: a
// Panic here is routed through the logger when one is configured so
// the last messages survive in the log file.
package fault
