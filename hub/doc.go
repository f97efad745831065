// SPDX-License-Identifier: MIT

// Package hub relays wavefront group traffic over HTTP so that workers can
// run as separate processes, possibly on separate machines.
//
// 🚀 What it is
//
//   - Server: a gin engine holding named groups. Each group is a
//     wavefront.LocalGroup, so pipeline mailboxes, collective rounds and
//     aborts behave exactly as they do in process.
//   - Client: context-aware JSON calls against a Server; Client.Member
//     returns a wavefront.Communicator for one rank of a group.
//
// 🔌 Routes (all JSON)
//
//	POST   /v1/groups                {size}           → {id}
//	PUT    /v1/groups/:id            {size}           ensure, idempotent
//	PUT    /v1/groups/:id/inputs     {a,b}            publish inputs once
//	GET    /v1/groups/:id/inputs                      long-poll → {a,b}
//	POST   /v1/groups/:id/send       {from,to,tag,value}
//	GET    /v1/groups/:id/recv?from=&to=&tag=         long-poll → {value}
//	POST   /v1/groups/:id/allgather  {rank,tag,chunk} long-poll → {chunks}
//	POST   /v1/groups/:id/abort      {reason}
//	PUT    /v1/groups/:id/result     Report           publish once
//	GET    /v1/groups/:id/result                      long-poll → Report
//	DELETE /v1/groups/:id
//	GET    /healthz, GET /metrics
//
// ⚠️ Failure model
//
// Errors carry a stable code in {"error": code, "message": text}. An aborted
// group answers every pending and later call with 409 "aborted", which the
// Client turns back into wavefront.ErrAborted. Long polls end when the
// caller's request is cancelled; the caller's step timeout bounds them.
package hub
