package transform

// Phase buckets transforms targeting one attribute into an application
// order: all Additive-phase transforms run, then all Multiplicative-phase,
// then all Final-phase, then any Custom phases in ascending rank.
type Phase struct {
	rank int
}

// PhaseAdditive is rank 0: the first bucket to apply.
func PhaseAdditive() Phase { return Phase{rank: 0} }

// PhaseMultiplicative is rank 1.
func PhaseMultiplicative() Phase { return Phase{rank: 1} }

// PhaseFinal is rank 2: clamps and overrides typically live here.
func PhaseFinal() Phase { return Phase{rank: 2} }

// PhaseCustom returns a phase with the given rank, floored at 3 so custom
// phases never collide with or precede the three built-in phases.
func PhaseCustom(n int) Phase {
	if n < 3 {
		n = 3
	}
	return Phase{rank: n}
}

// Rank returns the phase's position in the total application order.
func (p Phase) Rank() int { return p.rank }

// Less reports whether p applies strictly before other.
func (p Phase) Less(other Phase) bool { return p.rank < other.rank }

// Equal reports whether p and other are the same phase.
func (p Phase) Equal(other Phase) bool { return p.rank == other.rank }
