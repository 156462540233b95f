// Package depgraph implements the directed dependency graph the resolver
// builds from transform-declared reads.
//
// What:
//
//   - Graph: directed node/edge set, edges point from a dependency to its
//     dependent.
//   - DetectCycle: three-color DFS cycle detection, returning the exact
//     identifier path that closes the loop.
//   - TopologicalSort: a deterministic linear order honoring every edge.
//   - SubgraphFor: the reverse-reachable subgraph feeding a set of targets,
//     used by batch resolves to avoid sorting the whole graph.
//
// Complexity:
//
//   - DetectCycle, TopologicalSort: Time O(V+E), Memory O(V).
//   - SubgraphFor: Time O(V+E) reverse DFS from the target set.
//
// Errors:
//   - TopologicalSort returns an *attrerr.CycleError if the graph is not
//     acyclic.
package depgraph
