package transform

import (
	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
)

// Transform modifies the running value of one attribute. It must be
// deterministic: the same input, reads, and context always produce the
// same output.
type Transform interface {
	// DeclaredReads lists the identifiers this transform consults. Every
	// declared read becomes a dependency edge, so its value is resolved
	// (and available in Apply's reads map) before this transform runs.
	DeclaredReads() []attrid.Identifier

	// DefaultPhase is the phase this transform applies in when registered
	// without an explicit phase override.
	DefaultPhase() Phase

	// Apply computes a new value from the running value and the resolved
	// values of every declared read.
	Apply(input attrval.Value, reads map[attrid.Identifier]attrval.Value, ctx *attrctx.Context) (attrval.Value, error)

	// Describe returns a short, human-readable label recorded in the
	// resolved attribute's breakdown.
	Describe() string
}

// Entry binds a Transform to the effective Phase and StackRule it is
// registered under, which may differ from the transform's own
// DefaultPhase and the rule InferRule would have picked.
type Entry struct {
	Transform Transform
	Phase     Phase
	Rule      StackRule
}

// InferRule returns the stack rule a phase implies when the caller
// registers a transform without specifying one explicitly: Additive phase
// infers Additive, Multiplicative infers Multiplicative, Final infers
// MinMax, and any Custom phase infers Additive.
func InferRule(phase Phase) StackRule {
	switch phase.Rank() {
	case 0:
		return RuleAdditive()
	case 1:
		return RuleMultiplicative()
	case 2:
		return RuleMinMax()
	default:
		return RuleAdditive()
	}
}
