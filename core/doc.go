// Package core defines the domain contracts shared by the action framework
// and its callers: the execution context carried through a run, the tool
// capability map an action may invoke, the per-call trace records and the
// final ActionResult, plus the error taxonomy (unknown tool, unknown action).
//
// Higher level packages (action, workflow, engine) depend on core only; core
// depends on nothing but logging. Keeping contracts here prevents import
// cycles between the registry and concrete action implementations.
package core
