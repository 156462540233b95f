package resolver

import (
	"fmt"
	"math"
	"strings"

	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrerr"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
	"github.com/bramblecore/attrflow/transform"
)

// resolveAttribute sums id's sources into a base value, then applies its
// transforms phase by phase and, within each phase, stack-rule group by
// stack-rule group, against the running value.
func (r *Resolver) resolveAttribute(id attrid.Identifier, ctx *attrctx.Context) (ResolvedAttribute, error) {
	srcs := r.effectiveSources(id)
	contributions := make([]SourceContribution, 0, len(srcs))
	running := r.factory.Zero()

	if len(srcs) == 0 {
		contributions = append(contributions, SourceContribution{Description: "Default", Value: running})
	} else {
		for i, s := range srcs {
			v := s.Produce(id, ctx)
			running = running.Add(v)
			contributions = append(contributions, SourceContribution{
				Description: fmt.Sprintf("Source #%d", i+1),
				Value:       v,
			})
		}
	}

	groups := groupEntries(r.effectiveTransforms(id))
	applications := make([]RuleApplication, 0, len(groups))

	for _, grp := range groups {
		newRunning, desc, err := r.reduceGroup(id, running, grp, ctx)
		if err != nil {
			return ResolvedAttribute{}, err
		}
		applications = append(applications, RuleApplication{Description: desc, Value: newRunning})
		running = newRunning
	}

	return ResolvedAttribute{
		ID:         id,
		Value:      running,
		Sources:    contributions,
		Transforms: applications,
	}, nil
}

// group is one phase+stack-rule bucket of transform entries, in the
// base-then-overlay, registration-preserving order they were added.
type group struct {
	phase   transform.Phase
	rule    transform.StackRule
	entries []transform.Entry
}

// groupEntries partitions entries by ascending phase rank, then within
// each phase by ascending stack-rule priority, with ties within the same
// (phase, rule) kept in first-occurrence order. A distinct Diminishing{k}
// forms its own group even when another Diminishing{k'} shares the phase.
func groupEntries(entries []transform.Entry) []group {
	type key struct {
		phaseRank int
		rule      transform.StackRule
	}
	index := make(map[key]int)
	var groups []group

	for _, e := range entries {
		k := key{phaseRank: e.Phase.Rank(), rule: e.Rule}
		if idx, ok := index[k]; ok {
			groups[idx].entries = append(groups[idx].entries, e)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, group{phase: e.Phase, rule: e.Rule, entries: []transform.Entry{e}})
	}

	// Stable sort by (phase rank, rule priority); Go's sort.SliceStable
	// would work equally well, but groups is small and insertion sort
	// keeps this dependency-free and obviously stable.
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0; j-- {
			a, b := groups[j-1], groups[j]
			if a.phase.Rank() < b.phase.Rank() {
				break
			}
			if a.phase.Rank() == b.phase.Rank() && a.rule.Priority() <= b.rule.Priority() {
				break
			}
			groups[j-1], groups[j] = groups[j], groups[j-1]
		}
	}
	return groups
}

// buildReads resolves every identifier entry.Transform declares a read of,
// from the resolver's cache. Every declared read is guaranteed a graph
// node (and thus a cache entry by the time its dependents sweep) by
// buildGraph; a cache miss here indicates an internal invariant violation,
// not a user-facing condition, and is reported as MissingReadError rather
// than panicking.
func (r *Resolver) buildReads(entry transform.Entry) (map[attrid.Identifier]attrval.Value, error) {
	reads := make(map[attrid.Identifier]attrval.Value, len(entry.Transform.DeclaredReads()))
	for _, dep := range entry.Transform.DeclaredReads() {
		ra, ok := r.cache[dep]
		if !ok {
			return nil, &attrerr.MissingReadError{ID: dep}
		}
		reads[dep] = ra.Value
	}
	return reads, nil
}

func describeGroup(rule transform.StackRule, entries []transform.Entry) string {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Transform.Describe()
	}
	return fmt.Sprintf("%s(%s)", rule.String(), strings.Join(labels, ", "))
}

// reduceGroup applies one phase+stack-rule group of transforms against
// running, per the rule's combination semantics, and returns the new
// running value plus a breakdown description.
func (r *Resolver) reduceGroup(id attrid.Identifier, running attrval.Value, grp group, ctx *attrctx.Context) (attrval.Value, string, error) {
	desc := describeGroup(grp.rule, grp.entries)
	f := r.factory

	switch {
	case grp.rule.Priority() == 0: // Override
		// Last registered entry wins: only it is applied, to the running value.
		last := grp.entries[len(grp.entries)-1]
		reads, err := r.buildReads(last)
		if err != nil {
			return nil, "", err
		}
		result, err := last.Transform.Apply(running, reads, ctx)
		if err != nil {
			return nil, "", invalidTransform(id, last, err)
		}
		return result, desc, nil

	case grp.rule.Priority() == 1: // Additive
		total := running
		for _, e := range grp.entries {
			reads, err := r.buildReads(e)
			if err != nil {
				return nil, "", err
			}
			delta, err := e.Transform.Apply(f.Zero(), reads, ctx)
			if err != nil {
				return nil, "", invalidTransform(id, e, err)
			}
			total = total.Add(delta)
		}
		return total, desc, nil

	case grp.rule.Priority() == 2: // Multiplicative
		factor := f.One()
		for _, e := range grp.entries {
			reads, err := r.buildReads(e)
			if err != nil {
				return nil, "", err
			}
			contrib, err := e.Transform.Apply(f.One(), reads, ctx)
			if err != nil {
				return nil, "", invalidTransform(id, e, err)
			}
			factor = factor.Mul(contrib)
		}
		return running.Mul(factor), desc, nil

	case grp.rule.IsDiminishing():
		// n depends only on how many entries stacked in this group, not on
		// what any individual entry computes.
		n := float64(len(grp.entries))
		k := grp.rule.K()
		factor := f.FromReal(1 - math.Exp(-k*n))
		return running.Mul(factor), desc, nil

	case grp.rule.Priority() == 4: // Min
		bound := f.NegInfSentinel()
		for _, e := range grp.entries {
			reads, err := r.buildReads(e)
			if err != nil {
				return nil, "", err
			}
			// A transform that maps the sentinel back to itself imposes no
			// lower bound; one that moves it is treated as a floor and its
			// probe result folds into the tightest (largest) bound seen.
			candidate, err := e.Transform.Apply(f.NegInfSentinel(), reads, ctx)
			if err != nil {
				return nil, "", invalidTransform(id, e, err)
			}
			if !valuesEqual(candidate, f.NegInfSentinel()) && bound.Less(candidate) {
				bound = candidate
			}
		}
		return running.Max(bound), desc, nil

	case grp.rule.Priority() == 5: // Max
		bound := f.PosInfSentinel()
		for _, e := range grp.entries {
			reads, err := r.buildReads(e)
			if err != nil {
				return nil, "", err
			}
			// Symmetric with Min: a moved probe is a ceiling, folded into
			// the tightest (smallest) bound seen.
			candidate, err := e.Transform.Apply(f.PosInfSentinel(), reads, ctx)
			if err != nil {
				return nil, "", invalidTransform(id, e, err)
			}
			if !valuesEqual(candidate, f.PosInfSentinel()) && candidate.Less(bound) {
				bound = candidate
			}
		}
		return running.Min(bound), desc, nil

	case grp.rule.Priority() == 6: // MinMax
		lowerBound := f.NegInfSentinel()
		upperBound := f.PosInfSentinel()
		for _, e := range grp.entries {
			reads, err := r.buildReads(e)
			if err != nil {
				return nil, "", err
			}
			// A transform that maps a sentinel back to itself imposes no
			// bound on that side; one that moves it is treated as a clamp
			// and its probe result folds into the tightest bound seen.
			loProbe, err := e.Transform.Apply(f.NegInfSentinel(), reads, ctx)
			if err != nil {
				return nil, "", invalidTransform(id, e, err)
			}
			if !valuesEqual(loProbe, f.NegInfSentinel()) && lowerBound.Less(loProbe) {
				lowerBound = loProbe
			}

			hiProbe, err := e.Transform.Apply(f.PosInfSentinel(), reads, ctx)
			if err != nil {
				return nil, "", invalidTransform(id, e, err)
			}
			if !valuesEqual(hiProbe, f.PosInfSentinel()) && hiProbe.Less(upperBound) {
				upperBound = hiProbe
			}
		}
		return running.Clamp(lowerBound, upperBound), desc, nil
	}

	return running, desc, nil
}

func valuesEqual(a, b attrval.Value) bool {
	return !a.Less(b) && !b.Less(a)
}

func invalidTransform(id attrid.Identifier, e transform.Entry, err error) error {
	return &attrerr.InvalidTransformError{ID: id, Message: e.Transform.Describe() + ": " + err.Error()}
}
