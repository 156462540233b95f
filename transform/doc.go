// Package transform defines the Transform contract, the Phase and
// StackRule enums that govern how many contributors to one attribute
// combine, and a set of concrete built-in transforms.
//
// What:
//
//   - Transform: declares the identifiers it reads, a default phase, and
//     an Apply step from a running value plus those reads to a new value.
//   - Phase: Additive < Multiplicative < Final < Custom(n); the order
//     transforms targeting one attribute are grouped and applied in.
//   - StackRule: Override < Additive < Multiplicative < Diminishing{k} <
//     Min < Max < MinMax; the order multiple transforms sharing a phase
//     are grouped and reduced in, within that phase.
//   - Entry: a Transform bound to an effective Phase and StackRule, which
//     may differ from the transform's own DefaultPhase/inferred rule.
//
// Why:
//   - Letting many independently-registered transforms target the same
//     attribute requires an explicit, total order for combining them;
//     Phase and StackRule are that order, made data instead of code so new
//     combination strategies need no change to the resolver itself.
package transform
