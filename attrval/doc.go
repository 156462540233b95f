// Package attrval provides Value, the abstract scalar the resolver
// performs all arithmetic over, and the two concrete realizations a
// process may choose between.
//
// What:
//
//   - Value: add, sub, mul, div, min, max, clamp, and a lossy round-trip
//     to/from float64.
//   - Float64Value: a native float64 realization.
//   - FixedValue: a fixed-point realization, mantissa plus scale (0-18).
//   - Factory: constructs zero/one/int/real values and the sentinel
//     bounds the resolver's reducer uses to probe transforms for clamp
//     behavior.
//
// Why:
//   - A single process commits to one numeric realization (spec invariant);
//     Value lets the resolver, transforms, and sources stay agnostic to
//     which one, while still supporting exact fixed-point accounting for
//     callers that need it.
//
// Errors:
//   - Div by a zero-valued Value panics; callers that cannot guarantee a
//     nonzero divisor should check first.
package attrval
