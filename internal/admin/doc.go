// Package admin is the policy layer of the forwarder: it turns raw client
// calls into idempotent administrative operations.
//
// Every public operation is a one-to-one forwarding call into the database
// client, with two pieces of policy layered on top:
//
//   - Existence-gated mutation: creates are skipped when the target already
//     exists, removals and password changes when it does not. No-ops log
//     informationally and return the falsy sentinel (false, nil), which is
//     indistinguishable from a failed operation by return value alone.
//   - Fail-open existence checks: a failed listing is treated as "does not
//     exist" rather than an error. This can mask connectivity or permission
//     problems behind a false absence; the underlying failure is logged.
//
// The existence check and the subsequent action are separate round trips on
// separately dialled handles, so a concurrent mutation can change the world
// in between. The design accepts that race: the action call's own error is
// returned as-is, with no locking or retries.
//
// Principal operations are scope-disambiguated by an optional database name:
// empty means cluster-admin semantics, non-empty means users of that
// database.
package admin
