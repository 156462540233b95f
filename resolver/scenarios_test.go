package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/bonus"
	"github.com/bramblecore/attrflow/resolver"
	"github.com/bramblecore/attrflow/source"
	"github.com/bramblecore/attrflow/transform"
)

// TestScenarioCharacterSheet walks a small character-sheet resolver
// through base stats, a derived attribute, an equipped-item fork, and a
// conditional buff, checking the final numbers at each step.
func TestScenarioCharacterSheet(t *testing.T) {
	r := resolver.New()
	strength := attrid.Intern("strength")
	vitality := attrid.Intern("vitality")
	maxHealth := attrid.Intern("max_health")

	r.RegisterSource(strength, source.NewConstant(f.FromReal(15)))
	r.RegisterSource(vitality, source.NewConstant(f.FromReal(20)))
	r.RegisterSource(maxHealth, source.NewConstant(f.FromReal(100)))
	r.RegisterTransform(maxHealth, transform.NewScaling(vitality, f.FromReal(5)))

	base, err := r.Resolve(maxHealth, nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, base.Value.ToReal()) // 100 + 20*5

	equipped := r.Fork()
	equipped.RegisterTransform(maxHealth, transform.NewAdditive(f.FromReal(50)))
	equippedRA, err := equipped.Resolve(maxHealth, nil)
	require.NoError(t, err)
	assert.Equal(t, 250.0, equippedRA.Value.ToReal())

	// The un-forked resolver's cached value is untouched by the fork.
	stillBase, err := r.Resolve(maxHealth, nil)
	require.NoError(t, err)
	assert.Equal(t, 200.0, stillBase.Value.ToReal())

	berserk := equipped.Fork()
	rageActive := true
	rageBonus := bonus.Mul(maxHealth).Percent(f.FromReal(0.1)).InPhase(transform.PhaseMultiplicative())
	berserk.RegisterTransformExplicit(maxHealth, transform.PhaseMultiplicative(), transform.RuleMultiplicative(),
		transform.NewConditional(func(*attrctx.Context) bool { return rageActive }, bonus.Compile(rageBonus, f).Transform, "rage"))

	berserkRA, err := berserk.Resolve(maxHealth, nil)
	require.NoError(t, err)
	assert.InDelta(t, 275.0, berserkRA.Value.ToReal(), 1e-9) // 250 * 1.1

	strRA, err := berserk.Resolve(strength, nil)
	require.NoError(t, err)
	assert.Equal(t, 15.0, strRA.Value.ToReal())
}
