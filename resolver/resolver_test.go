package resolver_test

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramblecore/attrflow/attrerr"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
	"github.com/bramblecore/attrflow/resolver"
	"github.com/bramblecore/attrflow/source"
	"github.com/bramblecore/attrflow/transform"
)

var f = attrval.Float64Factory{}

func TestResolveSingleSource(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ra.Value.ToReal())
	require.Len(t, ra.Sources, 1)
	assert.Equal(t, "Source #1", ra.Sources[0].Description)
}

func TestResolveMultipleSourcesSum(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterSource(str, source.NewConstant(f.FromReal(5)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 15.0, ra.Value.ToReal())
	assert.Len(t, ra.Sources, 2)
}

func TestResolveTransformOnlyTargetReadsRegisteredDependency(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	power := attrid.Intern("power")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransform(power, transform.NewScaling(str, f.FromReal(1)))

	// strength has a real registration; power depends on it and should
	// see strength's value, not a Default placeholder.
	ra, err := r.Resolve(power, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, ra.Value.ToReal())
}

func TestResolveDependencyOnlyIdentifierResolvesToZero(t *testing.T) {
	r := resolver.New()
	ghost := attrid.Intern("ghost")
	power := attrid.Intern("power")
	r.RegisterTransform(power, transform.NewScaling(ghost, f.FromReal(2)))

	ra, err := r.Resolve(power, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ra.Value.ToReal())
}

func TestResolveUnregisteredIdentifierIsMissingSource(t *testing.T) {
	r := resolver.New()
	_, err := r.Resolve(attrid.Intern("nowhere"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrerr.ErrMissingSource))
}

func TestResolveCyclicTransformsError(t *testing.T) {
	r := resolver.New()
	a, b := attrid.Intern("a"), attrid.Intern("b")
	r.RegisterTransform(a, transform.NewScaling(b, f.FromReal(1)))
	r.RegisterTransform(b, transform.NewScaling(a, f.FromReal(1)))

	_, err := r.Resolve(a, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, attrerr.ErrCycle))
}

func TestAdditivePhaseSumsDeltas(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransform(str, transform.NewAdditive(f.FromReal(3)))
	r.RegisterTransform(str, transform.NewAdditive(f.FromReal(2)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 15.0, ra.Value.ToReal())
}

func TestMultiplicativePhaseMultipliesFactors(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransform(str, transform.NewMultiplicative(f.FromReal(2)))
	r.RegisterTransform(str, transform.NewMultiplicative(f.FromReal(1.5)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 30.0, ra.Value.ToReal())
}

func TestAdditiveBeforeMultiplicativeBeforeFinal(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransform(str, transform.NewAdditive(f.FromReal(10))) // (10+10)=20
	r.RegisterTransform(str, transform.NewMultiplicative(f.FromReal(2))) // 20*2=40
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMinMax(), transform.NewClamp(f.FromReal(0), f.FromReal(35)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 35.0, ra.Value.ToReal())
}

func TestOverrideRuleLastWriterWins(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleOverride(), transform.NewOverride(f.FromReal(99)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleOverride(), transform.NewOverride(f.FromReal(42)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 42.0, ra.Value.ToReal())
}

func TestMinMaxRuleCombinesClampsIntoTightestBounds(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(100)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMinMax(), transform.NewClamp(f.FromReal(0), f.FromReal(50)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMinMax(), transform.NewClamp(f.FromReal(10), f.FromReal(80)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 50.0, ra.Value.ToReal())
}

func TestDistinctDiminishingKValuesFormSeparateGroups(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(0)))
	r.RegisterTransformExplicit(str, transform.PhaseAdditive(), transform.RuleDiminishing(0), transform.NewAdditive(f.FromReal(10)))
	r.RegisterTransformExplicit(str, transform.PhaseAdditive(), transform.RuleDiminishing(1), transform.NewAdditive(f.FromReal(10)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Len(t, ra.Transforms, 2)
}

func TestDiminishingRuleScalesByGroupSizeNotContributions(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(100)))
	r.RegisterTransformExplicit(str, transform.PhaseAdditive(), transform.RuleDiminishing(1), transform.NewAdditive(f.FromReal(10)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	// n=1, k=1: V = 100 * (1 - e^-1), independent of the +10 the entry
	// itself would have contributed under the Additive rule.
	assert.InDelta(t, 100*(1-math.Exp(-1)), ra.Value.ToReal(), 1e-9)
}

func TestDiminishingRuleWithTwoEntriesUsesGroupSize(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(100)))
	r.RegisterTransformExplicit(str, transform.PhaseAdditive(), transform.RuleDiminishing(0.5), transform.NewAdditive(f.FromReal(10)))
	r.RegisterTransformExplicit(str, transform.PhaseAdditive(), transform.RuleDiminishing(0.5), transform.NewAdditive(f.FromReal(999)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	// n=2, k=0.5: V = 100 * (1 - e^-1), same as the n=1,k=1 case above,
	// regardless of the (irrelevant, and deliberately mismatched) deltas
	// the two entries would have contributed under the Additive rule.
	assert.InDelta(t, 100*(1-math.Exp(-1)), ra.Value.ToReal(), 1e-9)
}

func TestMinRuleKeepsTightestLowerBound(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(50)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMin(), transform.NewClamp(f.FromReal(80), f.PosInfSentinel()))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMin(), transform.NewClamp(f.FromReal(60), f.PosInfSentinel()))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	// Both entries are floors; the tightest (largest) floor wins: 80, not
	// the loosest (60) a naive literal-min-of-results would pick.
	assert.Equal(t, 80.0, ra.Value.ToReal())
}

func TestMaxRuleKeepsTightestUpperBound(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(100)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMax(), transform.NewClamp(f.NegInfSentinel(), f.FromReal(80)))
	r.RegisterTransformExplicit(str, transform.PhaseFinal(), transform.RuleMax(), transform.NewClamp(f.NegInfSentinel(), f.FromReal(60)))

	ra, err := r.Resolve(str, nil)
	require.NoError(t, err)
	// Both entries are ceilings; the tightest (smallest) ceiling wins: 60.
	assert.Equal(t, 60.0, ra.Value.ToReal())
}

func TestInvalidationClearsCachedResult(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	lookup := source.NewLookup(f.Zero())
	lookup.Insert(str, f.FromReal(10))
	r.RegisterSource(str, lookup)

	first, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, first.Value.ToReal())

	lookup.Insert(str, f.FromReal(20))
	r.Invalidate(str)

	second, err := r.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 20.0, second.Value.ToReal())
}

func TestForkSharesBaseUntilOverlayWrite(t *testing.T) {
	base := resolver.New()
	str := attrid.Intern("strength")
	base.RegisterSource(str, source.NewConstant(f.FromReal(10)))

	child := base.Fork()

	childRA, err := child.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, childRA.Value.ToReal())

	child.RegisterTransform(str, transform.NewAdditive(f.FromReal(5)))
	childRA2, err := child.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 15.0, childRA2.Value.ToReal())

	// The parent's view is unaffected by the child's overlay write.
	parentRA, err := base.Resolve(str, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, parentRA.Value.ToReal())
}

func TestResolveAllProjectsOnlyRegisteredIdentifiers(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	ghost := attrid.Intern("ghost")
	power := attrid.Intern("power")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransform(power, transform.NewScaling(ghost, f.FromReal(1)))

	all, err := r.ResolveAll(nil)
	require.NoError(t, err)
	_, hasStr := all[str]
	_, hasPower := all[power]
	_, hasGhost := all[ghost]
	assert.True(t, hasStr)
	assert.True(t, hasPower)
	assert.False(t, hasGhost)
}

func TestResolveBatchOmitsNeverRegisteredTargets(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))

	out, err := r.ResolveBatch([]attrid.Identifier{str, attrid.Intern("nowhere")}, nil)
	require.NoError(t, err)
	_, ok := out[attrid.Intern("nowhere")]
	assert.False(t, ok)
	assert.Len(t, out, 1)
}

func TestBreakdownStructureMatchesExpectedShape(t *testing.T) {
	r := resolver.New()
	str := attrid.Intern("strength")
	r.RegisterSource(str, source.NewConstant(f.FromReal(10)))
	r.RegisterTransform(str, transform.NewAdditive(f.FromReal(5)))

	_, err := r.Resolve(str, nil)
	require.NoError(t, err)

	ra, ok := r.Breakdown(str)
	require.True(t, ok)

	want := []resolver.SourceContribution{{Description: "Source #1", Value: f.FromReal(10)}}
	if diff := cmp.Diff(want, ra.Sources, cmp.Comparer(func(a, b attrval.Value) bool {
		return a.ToReal() == b.ToReal()
	})); diff != "" {
		t.Fatalf("unexpected source breakdown (-want +got):\n%s", diff)
	}
}
