// Package shape classifies values of unknown static type by structural
// capability.
//
// # Overview
//
// Every value handed to the diagnostic entry points is reduced to exactly one
// [Tag] together with the components a renderer needs to recurse into it:
// ordered elements for sequences, pairs and priority collections, and
// key-sorted entries for mappings.
//
// # Dispatch
//
// Classification probes a small, closed set of traits in a fixed priority
// order, most specific first:
//
//  1. exact-type adapters registered with [Classifier.Register]
//  2. [Graphed] values (graph views)
//  3. priority collections: [Prioritized], container/heap implementations,
//     gods binary heaps
//  4. [Paired] values, including [Pair]
//  5. mappings: [Keyed] containers and Go maps
//  6. sequences: [Valued] containers, slices, arrays, iter.Seq and iter.Seq2
//  7. scalars: basic kinds, nil, errors and fmt.Stringer implementations
//  8. structs, as a mapping of their fields in declaration order
//  9. everything else (channels, funcs) as an opaque scalar
//
// A mapping also iterates, so it is checked before a plain sequence. New
// container shapes register an adapter or implement a trait; the dispatch
// itself never grows a per-type branch.
//
// # Determinism
//
// Mapping entries are ordered with [Compare], so output never depends on Go
// map iteration order. Priority collections are ordered by sorting a copy with
// the collection's own ordering; the source is never popped or mutated.
//
// The probe chosen for each reflect.Type is cached in a bounded LRU.
package shape
