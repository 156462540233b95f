// Package resolver implements the attribute resolution engine: source
// aggregation, the phased and stack-ruled transform reducer, copy-on-write
// forking, and per-resolver memoization.
//
// What:
//
//   - Resolver: holds registered sources and transforms (split across a
//     shared base and a private overlay), a memoization cache, and the
//     numeric Factory every value it produces is realized with.
//   - Resolve / ResolveAll / ResolveBatch: build the dependency graph from
//     current registrations, topologically order it, and sweep it once,
//     caching every attribute resolved along the way.
//   - Fork: returns a child Resolver sharing the parent's current
//     registrations by reference (copy-on-write); writes to either side
//     after a fork land in that side's private overlay only.
//
// Why:
//   - Character variants (base stats plus an equipped loadout, a
//     hypothetical "what if" buff) need independent registration sets that
//     mostly overlap; forking avoids re-registering the shared majority on
//     every variant while keeping each variant's writes isolated.
//
// Complexity:
//
//   - Resolve (single target): O(V+E) graph build/sort over the resolver's
//     entire registration set, then O(V) sweep (amortized via caching).
//   - ResolveBatch: O(V'+E') where V'/E' are the reverse-reachable
//     subgraph of the requested targets, not the whole graph.
//   - Fork: O(1); no registrations are copied.
//
// Errors:
//   - *attrerr.CycleError, *attrerr.MissingSourceError,
//     *attrerr.MissingReadError, *attrerr.InvalidTransformError. A failed
//     resolve leaves the cache and registrations exactly as they were.
package resolver
