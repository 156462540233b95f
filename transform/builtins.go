package transform

import (
	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
)

// additiveTransform adds a fixed delta to the running value.
type additiveTransform struct {
	delta attrval.Value
}

// NewAdditive returns a transform that adds delta to the running value.
// Defaults to the Additive phase.
func NewAdditive(delta attrval.Value) Transform {
	return additiveTransform{delta: delta}
}

func (t additiveTransform) DeclaredReads() []attrid.Identifier { return nil }
func (t additiveTransform) DefaultPhase() Phase                { return PhaseAdditive() }
func (t additiveTransform) Apply(input attrval.Value, _ map[attrid.Identifier]attrval.Value, _ *attrctx.Context) (attrval.Value, error) {
	return input.Add(t.delta), nil
}
func (t additiveTransform) Describe() string { return "+" + t.delta.String() }

// multiplicativeTransform multiplies the running value by a fixed factor.
type multiplicativeTransform struct {
	factor attrval.Value
}

// NewMultiplicative returns a transform that multiplies the running value
// by factor. Defaults to the Multiplicative phase.
func NewMultiplicative(factor attrval.Value) Transform {
	return multiplicativeTransform{factor: factor}
}

func (t multiplicativeTransform) DeclaredReads() []attrid.Identifier { return nil }
func (t multiplicativeTransform) DefaultPhase() Phase                { return PhaseMultiplicative() }
func (t multiplicativeTransform) Apply(input attrval.Value, _ map[attrid.Identifier]attrval.Value, _ *attrctx.Context) (attrval.Value, error) {
	return input.Mul(t.factor), nil
}
func (t multiplicativeTransform) Describe() string { return "x" + t.factor.String() }

// clampTransform bounds the running value to [lo, hi]. Defaults to the
// Final phase.
type clampTransform struct {
	lo, hi attrval.Value
}

// NewClamp returns a transform clamping the running value to [lo, hi].
func NewClamp(lo, hi attrval.Value) Transform {
	return clampTransform{lo: lo, hi: hi}
}

func (t clampTransform) DeclaredReads() []attrid.Identifier { return nil }
func (t clampTransform) DefaultPhase() Phase                { return PhaseFinal() }
func (t clampTransform) Apply(input attrval.Value, _ map[attrid.Identifier]attrval.Value, _ *attrctx.Context) (attrval.Value, error) {
	return input.Clamp(t.lo, t.hi), nil
}
func (t clampTransform) Describe() string { return "clamp[" + t.lo.String() + "," + t.hi.String() + "]" }

// overrideTransform ignores the running value entirely, always producing
// a fixed absolute value. Defaults to the Final phase.
type overrideTransform struct {
	value attrval.Value
}

// NewOverride returns a transform that always replaces the running value
// with value, regardless of input.
func NewOverride(value attrval.Value) Transform {
	return overrideTransform{value: value}
}

func (t overrideTransform) DeclaredReads() []attrid.Identifier { return nil }
func (t overrideTransform) DefaultPhase() Phase                { return PhaseFinal() }
func (t overrideTransform) Apply(_ attrval.Value, _ map[attrid.Identifier]attrval.Value, _ *attrctx.Context) (attrval.Value, error) {
	return t.value, nil
}
func (t overrideTransform) Describe() string { return "= " + t.value.String() }

// scalingTransform adds dependency's resolved value, scaled by a fixed
// factor, to the running value.
type scalingTransform struct {
	dependency attrid.Identifier
	factor     attrval.Value
}

// NewScaling returns a transform that adds dependency's value times factor
// to the running value. Defaults to the Additive phase.
func NewScaling(dependency attrid.Identifier, factor attrval.Value) Transform {
	return scalingTransform{dependency: dependency, factor: factor}
}

func (t scalingTransform) DeclaredReads() []attrid.Identifier {
	return []attrid.Identifier{t.dependency}
}
func (t scalingTransform) DefaultPhase() Phase { return PhaseAdditive() }
func (t scalingTransform) Apply(input attrval.Value, reads map[attrid.Identifier]attrval.Value, _ *attrctx.Context) (attrval.Value, error) {
	dep := reads[t.dependency]
	return input.Add(dep.Mul(t.factor)), nil
}
func (t scalingTransform) Describe() string {
	return "+" + t.dependency.String() + "*" + t.factor.String()
}

// percentAdditiveTransform adds a percentage of dependency's resolved
// value to the running value, the building block the bonus compiler uses
// for "percent of <stat>" bonuses.
type percentAdditiveTransform struct {
	dependency attrid.Identifier
	percent    attrval.Value
}

// NewPercentAdditive returns a transform that adds percent*dependency's
// value to the running value. Defaults to the Additive phase.
func NewPercentAdditive(dependency attrid.Identifier, percent attrval.Value) Transform {
	return percentAdditiveTransform{dependency: dependency, percent: percent}
}

func (t percentAdditiveTransform) DeclaredReads() []attrid.Identifier {
	return []attrid.Identifier{t.dependency}
}
func (t percentAdditiveTransform) DefaultPhase() Phase { return PhaseAdditive() }
func (t percentAdditiveTransform) Apply(input attrval.Value, reads map[attrid.Identifier]attrval.Value, _ *attrctx.Context) (attrval.Value, error) {
	dep := reads[t.dependency]
	return input.Add(dep.Mul(t.percent)), nil
}
func (t percentAdditiveTransform) Describe() string {
	return "+" + t.dependency.String() + "*" + t.percent.String()
}
