package transform

import (
	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
)

// Predicate decides whether a Conditional transform's inner transform
// should apply for a given resolve.
type Predicate func(ctx *attrctx.Context) bool

// conditionalTransform applies inner only when predicate holds, otherwise
// passing the running value through unchanged.
type conditionalTransform struct {
	predicate Predicate
	inner     Transform
	describe  string
}

// NewConditional wraps inner so it only applies when predicate returns
// true; otherwise the running value passes through unmodified. describe is
// used verbatim as the breakdown label regardless of which branch ran.
func NewConditional(predicate Predicate, inner Transform, describe string) Transform {
	return conditionalTransform{predicate: predicate, inner: inner, describe: describe}
}

func (t conditionalTransform) DeclaredReads() []attrid.Identifier { return t.inner.DeclaredReads() }
func (t conditionalTransform) DefaultPhase() Phase                { return t.inner.DefaultPhase() }

func (t conditionalTransform) Apply(input attrval.Value, reads map[attrid.Identifier]attrval.Value, ctx *attrctx.Context) (attrval.Value, error) {
	if !t.predicate(ctx) {
		return input, nil
	}
	return t.inner.Apply(input, reads, ctx)
}

func (t conditionalTransform) Describe() string { return t.describe }
