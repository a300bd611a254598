// Package briefing holds the meeting-intelligence algorithms behind the
// daily briefing workflow: keyword extraction from free-text subject/body
// pairs, pairwise conflict detection over half-open meeting intervals,
// delegate suggestion from email activity, per-meeting brief assembly and
// the printable rendering.
//
// Everything in this package is pure and deterministic: identical inputs
// always produce identical ordered outputs. Tool access stays in the
// workflow package; briefing only consumes already-fetched records.
package briefing
