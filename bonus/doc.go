// Package bonus provides a declarative front end over transform
// registration: builders describe a bonus's intent (add, multiply,
// override, clamp) and Compile turns that description into a concrete
// transform, phase, and stack rule without the caller ever constructing a
// transform.Transform by hand.
//
// What:
//
//   - Add(target).Flat(v) / .PercentOf(dep, v), Mul(target).Flat(v) / .Percent(v),
//     Override(target, v), ClampMin(target, v), ClampMax(target, v):
//     builder chains ending in InPhase(phase) to produce a Bonus.
//   - Compile: maps a Bonus's operation and value kind to a concrete
//     transform plus its inferred stack rule.
//   - Apply / ApplyAll: register a Compiled bonus (or a batch of them)
//     against a Resolver.
//
// Why:
//   - Most attribute bonuses in practice are one of a handful of shapes;
//     spelling out a transform.Transform by hand for each one is
//     boilerplate a declarative builder removes, while compiling still
//     happens entirely before any resolve runs.
package bonus
