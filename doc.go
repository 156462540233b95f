// Package attrflow is your deterministic attribute-resolution engine for
// simulations — character sheets, rule systems, anything where a handful
// of named numbers are built up from several contributors and must come
// out the same way every time.
//
// 🚀 What is attrflow?
//
//	A small, dependency-light toolkit that brings together:
//
//	  • Sources & transforms: contribute a base value, then modify it
//	    through phased, declared-dependency chains
//	  • A dependency DAG: built from transform reads, cycle-checked and
//	    topologically ordered before anything resolves
//	  • Copy-on-write forking: branch a resolver for "equipped" or
//	    "buffed" variants without mutating or copying the base
//	  • A declarative bonus compiler: describe "+5 strength" or "10% of
//	    power" and get back a correctly phased, correctly stacked transform
//
// ✨ Why choose attrflow?
//
//   - Deterministic — identical registrations and inputs always resolve
//     to identical values, including across forks
//   - Explainable    — every resolve returns a step-by-step breakdown,
//     not just a final number
//   - Composable     — attributes are built from small, declared-read
//     pieces rather than hard-coded formulas
//   - Pure Go         — no cgo, only a numeric-agnostic Value contract
//
// Under the hood, everything is organized under small, focused packages:
//
//	attrid/    — interned attribute identifiers
//	attrval/   — the abstract Value numeric contract (float64 and fixed-point)
//	attrctx/   — the opaque per-resolve context bag
//	source/    — base-value contributors
//	transform/ — phase- and stack-rule-aware modifiers
//	depgraph/  — the dependency DAG: cycle detection, topological sort
//	resolver/  — registration, copy-on-write forking, resolve, caching
//	bonus/     — a declarative builder compiling to transform entries
//
// Dive into SPEC_FULL.md and DESIGN.md for the full component design and
// the reasoning behind it.
package attrflow
