package resolver

import (
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
)

// SourceContribution records one source's contribution to an attribute's
// base value, in registration order.
type SourceContribution struct {
	Description string
	Value       attrval.Value
}

// RuleApplication records one stack-rule group's effect on the running
// value, in phase-then-priority order.
type RuleApplication struct {
	Description string
	Value       attrval.Value
}

// ResolvedAttribute is the final value of one attribute plus the full
// breakdown of how it was reached.
type ResolvedAttribute struct {
	ID         attrid.Identifier
	Value      attrval.Value
	Sources    []SourceContribution
	Transforms []RuleApplication
}
