// Package workflow provides the built-in actions: multi-step assistant
// routines composed from the exchange capability map. Each action embeds
// action.Base and carries the full tracing/lifecycle semantics of the
// execution framework; Register wires them all into a Registry.
//
// The centerpiece is DailyBriefingAction, which compiles a printable
// meeting-intelligence document with scheduling-conflict detection and
// delegate suggestions.
package workflow
