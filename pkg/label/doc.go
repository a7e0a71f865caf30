// Package label names the arguments of a diagnostic call.
//
// A [Resolver] recovers the call site of the running diagnostic call with
// runtime.Caller, parses the calling file once (parsed files are kept in an
// LRU) and returns the source text of every argument. [Assign] then pairs
// each argument value with its display label:
//
//  1. an explicit name given with [Value]
//  2. the label of a graph view
//  3. a trailing string literal, which labels every preceding argument
//  4. the argument's source text
//  5. "arg<i>" when the source is not available
//
// The trailing override only applies when the last argument is a string
// literal at the call site. When the source cannot be read, a trailing
// string argument is still taken as the override.
package label
