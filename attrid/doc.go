// Package attrid provides Identifier, an interned, cheaply-comparable
// handle for attribute names used throughout the resolver pipeline.
//
// What:
//
//   - Identifier: an interned text handle; equality and hashing cost a
//     pointer compare, not a string compare.
//   - Intern: looks up or creates the shared handle for a given text.
//
// Why:
//   - Attribute identifiers are read on every resolve, every cache lookup,
//     and every graph edge; interning removes repeated string hashing and
//     lets identifiers be used directly as map keys without re-copying text.
//
// Complexity:
//   - Intern: O(len(text)) first time, O(1) amortized thereafter.
package attrid
