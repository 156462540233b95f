package transform

// rule kind constants also double as priority: lower applies first within
// a phase.
const (
	kindOverride = iota
	kindAdditive
	kindMultiplicative
	kindDiminishing
	kindMin
	kindMax
	kindMinMax
)

// StackRule governs how multiple transforms sharing a phase and target
// combine. Rules apply lowest-priority-first: Override, Additive,
// Multiplicative, Diminishing{k}, Min, Max, MinMax.
//
// StackRule is comparable; two Diminishing rules with different k are
// distinct rules and form distinct reduction groups.
type StackRule struct {
	kind int
	k    float64
}

// RuleOverride replaces the running value outright; only the last
// registered Override transform in a group has any visible effect.
func RuleOverride() StackRule { return StackRule{kind: kindOverride} }

// RuleAdditive sums every transform's delta against the pre-group value.
func RuleAdditive() StackRule { return StackRule{kind: kindAdditive} }

// RuleMultiplicative multiplies every transform's factor against the
// pre-group value.
func RuleMultiplicative() StackRule { return StackRule{kind: kindMultiplicative} }

// RuleDiminishing applies diminishing returns with curve constant k: the
// running value is multiplied by 1 - e^(-k*n), where n is the number of
// entries in the group; the entries' own Apply results are not consulted.
// Two Diminishing rules with different k values form separate groups.
func RuleDiminishing(k float64) StackRule { return StackRule{kind: kindDiminishing, k: k} }

// RuleMin probes each entry as a lower bound (via -INF sentinel) and raises
// the running value to the tightest (largest) bound any entry imposes.
func RuleMin() StackRule { return StackRule{kind: kindMin} }

// RuleMax probes each entry as an upper bound (via +INF sentinel) and lowers
// the running value to the tightest (smallest) bound any entry imposes.
func RuleMax() StackRule { return StackRule{kind: kindMax} }

// RuleMinMax treats each transform in the group as a clamp bound, folding
// every lower bound together and every upper bound together.
func RuleMinMax() StackRule { return StackRule{kind: kindMinMax} }

// Priority returns the rule's position in the lowest-priority-first
// application order.
func (r StackRule) Priority() int { return r.kind }

// K returns the Diminishing curve constant; meaningless for other kinds.
func (r StackRule) K() float64 { return r.k }

// IsDiminishing reports whether r is a Diminishing rule.
func (r StackRule) IsDiminishing() bool { return r.kind == kindDiminishing }

func (r StackRule) String() string {
	switch r.kind {
	case kindOverride:
		return "Override"
	case kindAdditive:
		return "Additive"
	case kindMultiplicative:
		return "Multiplicative"
	case kindDiminishing:
		return "Diminishing"
	case kindMin:
		return "Min"
	case kindMax:
		return "Max"
	case kindMinMax:
		return "MinMax"
	default:
		return "Unknown"
	}
}
