// Package engine drives the assistant's chat loop: the model proposes tool
// calls against the exchange capability map, the engine executes them and
// feeds the results back until the model settles on a final answer, bounded
// by an iteration limit.
//
// Queries of the form "/run <action> [key=value ...]" bypass the model and
// dispatch directly through the action registry.
package engine
