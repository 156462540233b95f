// Package attrctx provides Context, the opaque, caller-typed bag forwarded
// to every source and transform invocation during a resolve.
//
// The engine never inspects or interprets Context values; it exists purely
// so callers can pass request-scoped state (a character sheet, an equipped
// loadout, a difficulty setting) down to their own Source and Transform
// implementations without threading extra parameters through the resolver.
package attrctx
