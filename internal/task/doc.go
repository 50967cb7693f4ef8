// Package task implements the task tracker's data model and lifecycle.
//
// # Lifecycle
//
// A task is created active and not waiting, and moves through a small
// state machine:
//
//	active (working) --Defer-->    active (waiting)
//	active (waiting) --Resume-->   active (working)
//	active (either)  --Complete--> completed
//	any              --Delete-->   gone (task and steps removed)
//
// Completed tasks stay queryable by id but never appear in the active
// listing. Defer and Resume on a completed task are rejected with
// InvalidTransitionError. Complete on a completed task, Defer on a
// waiting task and Resume on a working task are silent no-ops; the
// stored row (including updated_at) is left untouched.
//
// # Steps
//
// Each task owns an append-only ledger of progress steps. Sequence
// numbers are assigned at append time, start at 1 and never have gaps;
// no operation reorders or removes individual steps. Appending to a
// completed task is rejected.
//
// # Transactions
//
// Every mutating operation (create, update, the transitions, delete,
// step append) executes inside one store transaction, so a task and its
// steps are always mutated all-or-nothing. Cross-operation atomicity is
// not provided.
package task
