package attrval

// Value is the abstract scalar the resolver performs all arithmetic over.
// Implementations must be comparable by value (no shared mutable state) and
// must realize a total, deterministic arithmetic: given the same operands,
// an operation always returns the same result.
type Value interface {
	Add(other Value) Value
	Sub(other Value) Value
	Mul(other Value) Value
	Div(other Value) Value
	Min(other Value) Value
	Max(other Value) Value
	Clamp(lo, hi Value) Value

	// Less orders two values of the same realization.
	Less(other Value) bool

	// ToReal returns a float64 view of the value, for callers that only
	// need an approximate reading (FixedValue.String formats through it).
	ToReal() float64

	String() string
}

// Factory constructs Values of one realization and the sentinel bounds the
// reducer's probe-based bound extraction relies on.
type Factory interface {
	Zero() Value
	One() Value
	FromInt(n int64) Value
	FromReal(f float64) Value

	// NegInfSentinel and PosInfSentinel stand in for -Inf/+Inf. A transform
	// that maps one of these back to itself is not a bound-imposing
	// transform (see the resolver's bound-extraction probe).
	NegInfSentinel() Value
	PosInfSentinel() Value
}
