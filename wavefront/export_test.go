// SPDX-License-Identifier: MIT

package wavefront

// Test bridge: exposes unexported helpers to package wavefront_test only.

// Pending reports the mailboxes and collective rounds still held by g.
func (g *LocalGroup) Pending() (mailboxes, rounds int) { return g.pending() }

// Reconcile exposes reconcile.
var Reconcile = reconcile

// CheckHandoff exposes checkHandoff.
var CheckHandoff = checkHandoff
