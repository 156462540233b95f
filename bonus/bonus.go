package bonus

import (
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
	"github.com/bramblecore/attrflow/resolver"
	"github.com/bramblecore/attrflow/transform"
)

// kind tags which builder produced a Bonus, driving Compile's branching.
type kind int

const (
	kindAddFlat kind = iota
	kindAddPercentOf
	kindMulFlat
	kindMulPercent
	kindOverride
	kindClampMin
	kindClampMax
)

// Bonus is a declarative description of one attribute modification,
// produced by a builder chain and turned into a concrete transform by
// Compile.
type Bonus struct {
	target     attrid.Identifier
	kind       kind
	value      attrval.Value
	dependency attrid.Identifier // only set for kindAddPercentOf
	phase      transform.Phase
}

// addBuilder is returned by Add(target); it must be finished with Flat or
// PercentOf before InPhase.
type addBuilder struct {
	target attrid.Identifier
}

// Add starts a flat-or-percent-of-dependency addition against target.
func Add(target attrid.Identifier) addBuilder {
	return addBuilder{target: target}
}

// Flat finishes an Add builder: target += delta.
func (b addBuilder) Flat(delta attrval.Value) bonusWithValue {
	return bonusWithValue{target: b.target, kind: kindAddFlat, value: delta}
}

// PercentOf finishes an Add builder: target += percent*dependency's value.
// dependency is resolved independently of target, so it may not (directly
// or transitively) depend on target itself.
func (b addBuilder) PercentOf(dependency attrid.Identifier, percent attrval.Value) bonusWithValue {
	return bonusWithValue{target: b.target, kind: kindAddPercentOf, value: percent, dependency: dependency}
}

// mulBuilder is returned by Mul(target); finish with Flat or Percent.
type mulBuilder struct {
	target attrid.Identifier
}

// Mul starts a multiplicative bonus against target.
func Mul(target attrid.Identifier) mulBuilder {
	return mulBuilder{target: target}
}

// Flat finishes a Mul builder: target *= factor.
func (b mulBuilder) Flat(factor attrval.Value) bonusWithValue {
	return bonusWithValue{target: b.target, kind: kindMulFlat, value: factor}
}

// Percent finishes a Mul builder: target *= (1 + percent).
func (b mulBuilder) Percent(percent attrval.Value) bonusWithValue {
	return bonusWithValue{target: b.target, kind: kindMulPercent, value: percent}
}

// bonusWithValue is a builder step with its value already fixed, awaiting
// only a phase.
type bonusWithValue struct {
	target     attrid.Identifier
	kind       kind
	value      attrval.Value
	dependency attrid.Identifier
}

// InPhase finishes the builder chain, producing a compilable Bonus.
func (b bonusWithValue) InPhase(phase transform.Phase) Bonus {
	return Bonus{target: b.target, kind: b.kind, value: b.value, dependency: b.dependency, phase: phase}
}

// Override returns a Bonus that replaces target's value outright.
func Override(target attrid.Identifier, value attrval.Value) bonusWithValue {
	return bonusWithValue{target: target, kind: kindOverride, value: value}
}

// ClampMin returns a Bonus that floors target at value.
func ClampMin(target attrid.Identifier, value attrval.Value) bonusWithValue {
	return bonusWithValue{target: target, kind: kindClampMin, value: value}
}

// ClampMax returns a Bonus that ceilings target at value.
func ClampMax(target attrid.Identifier, value attrval.Value) bonusWithValue {
	return bonusWithValue{target: target, kind: kindClampMax, value: value}
}

// Compiled is a Bonus already reduced to a concrete transform, phase, and
// stack rule, ready for Apply.
type Compiled struct {
	Target    attrid.Identifier
	Phase     transform.Phase
	Rule      transform.StackRule
	Transform transform.Transform
}

// Compile maps a Bonus's operation and value to a concrete transform and
// its inferred stack rule.
func Compile(b Bonus, f attrval.Factory) Compiled {
	switch b.kind {
	case kindAddFlat:
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleAdditive(), Transform: transform.NewAdditive(b.value)}
	case kindAddPercentOf:
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleAdditive(), Transform: transform.NewPercentAdditive(b.dependency, b.value)}
	case kindMulFlat:
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleMultiplicative(), Transform: transform.NewMultiplicative(b.value)}
	case kindMulPercent:
		factor := f.One().Add(b.value)
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleMultiplicative(), Transform: transform.NewMultiplicative(factor)}
	case kindOverride:
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleOverride(), Transform: transform.NewOverride(b.value)}
	case kindClampMin:
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleMinMax(), Transform: transform.NewClamp(b.value, f.PosInfSentinel())}
	case kindClampMax:
		return Compiled{Target: b.target, Phase: b.phase, Rule: transform.RuleMinMax(), Transform: transform.NewClamp(f.NegInfSentinel(), b.value)}
	default:
		panic("bonus: unknown kind")
	}
}

// Apply registers a compiled bonus against r with its compiled phase and
// stack rule.
func Apply(r *resolver.Resolver, c Compiled) {
	r.RegisterTransformExplicit(c.Target, c.Phase, c.Rule, c.Transform)
}

// ApplyAll compiles and registers every bonus in bonuses against r, in
// order.
func ApplyAll(r *resolver.Resolver, f attrval.Factory, bonuses []Bonus) {
	for _, b := range bonuses {
		Apply(r, Compile(b, f))
	}
}
