// Package usergroups reconciles chat provider usergroups against the
// definitions declared in the database.
//
// The declared state lives in the usergroups, usergroup_members and
// usergroup_channels tables; the live state comes from a Provider client.
// The two sides are keyed by lowercased handle and compared ignoring the
// provider-assigned group ID, so a freshly created group is immediately
// considered converged.
//
// All provider mutations run through an invoker configured to retry rate
// limiting and outages (see TransientPolicy).
//
// # Endpoints
//
//   - GET  /usergroups/plan:  compute pending actions, never mutates
//   - POST /usergroups/apply: execute pending actions (confirm=true required)
package usergroups
