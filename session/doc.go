// Package session keeps the in-process interaction history: one record per
// chat turn or action run, with bounded retention. The log is volatile by
// design; nothing is written to disk.
package session
