package attrval

import (
	"fmt"
	"math"
)

// MaxScale is the largest decimal scale a FixedValue may carry.
const MaxScale = 18

var pow10 [MaxScale + 1]int64

func init() {
	p := int64(1)
	for i := range pow10 {
		pow10[i] = p
		p *= 10
	}
}

// FixedValue is a fixed-point realization of Value: an integer mantissa at
// a given decimal scale. Arithmetic between two FixedValues of different
// scale normalizes both operands to the larger scale first.
type FixedValue struct {
	mantissa int64
	scale    uint8
}

// NewFixed constructs a FixedValue from a raw mantissa and scale. Panics if
// scale exceeds MaxScale.
func NewFixed(mantissa int64, scale uint8) FixedValue {
	if scale > MaxScale {
		panic(fmt.Sprintf("attrval: fixed-point scale %d exceeds MaxScale %d", scale, MaxScale))
	}
	return FixedValue{mantissa: mantissa, scale: scale}
}

// FixedFactory produces FixedValue instances at a configured scale.
type FixedFactory struct {
	scale uint8
}

var _ Factory = FixedFactory{}

// NewFixedFactory returns a FixedFactory realizing values at the given
// scale. Panics if scale exceeds MaxScale.
func NewFixedFactory(scale uint8) FixedFactory {
	if scale > MaxScale {
		panic(fmt.Sprintf("attrval: fixed-point scale %d exceeds MaxScale %d", scale, MaxScale))
	}
	return FixedFactory{scale: scale}
}

func (f FixedFactory) Zero() Value { return FixedValue{mantissa: 0, scale: f.scale} }
func (f FixedFactory) One() Value {
	return FixedValue{mantissa: pow10[f.scale], scale: f.scale}
}

func (f FixedFactory) FromInt(n int64) Value {
	return FixedValue{mantissa: n * pow10[f.scale], scale: f.scale}
}

func (f FixedFactory) FromReal(v float64) Value {
	return FixedValue{mantissa: int64(math.Round(v * float64(pow10[f.scale]))), scale: f.scale}
}

// NegInfSentinel and PosInfSentinel return the minimum/maximum int64
// mantissa representable at this factory's scale, standing in for true
// infinities a fixed-point realization cannot carry (see attrval doc.go).
func (f FixedFactory) NegInfSentinel() Value {
	return FixedValue{mantissa: math.MinInt64, scale: f.scale}
}

func (f FixedFactory) PosInfSentinel() Value {
	return FixedValue{mantissa: math.MaxInt64, scale: f.scale}
}

// normalize scales v and other to their common (larger) scale, returning
// both mantissas and that scale.
func (v FixedValue) normalize(other FixedValue) (int64, int64, uint8) {
	if v.scale == other.scale {
		return v.mantissa, other.mantissa, v.scale
	}
	common := v.scale
	if other.scale > common {
		common = other.scale
	}
	vm := v.mantissa * pow10[common-v.scale]
	om := other.mantissa * pow10[common-other.scale]
	return vm, om, common
}

func (v FixedValue) asFixed(other Value) FixedValue {
	o, ok := other.(FixedValue)
	if !ok {
		panic(fmt.Sprintf("attrval: mixed Value realizations: FixedValue and %T", other))
	}
	return o
}

func (v FixedValue) Add(other Value) Value {
	vm, om, scale := v.normalize(v.asFixed(other))
	return FixedValue{mantissa: vm + om, scale: scale}
}

func (v FixedValue) Sub(other Value) Value {
	vm, om, scale := v.normalize(v.asFixed(other))
	return FixedValue{mantissa: vm - om, scale: scale}
}

func (v FixedValue) Mul(other Value) Value {
	vm, om, scale := v.normalize(v.asFixed(other))
	return FixedValue{mantissa: (vm * om) / pow10[scale], scale: scale}
}

func (v FixedValue) Div(other Value) Value {
	vm, om, scale := v.normalize(v.asFixed(other))
	if om == 0 {
		panic("attrval: FixedValue division by zero")
	}
	return FixedValue{mantissa: (vm * pow10[scale]) / om, scale: scale}
}

func (v FixedValue) Min(other Value) Value {
	o := v.asFixed(other)
	vm, om, scale := v.normalize(o)
	if vm <= om {
		return FixedValue{mantissa: vm, scale: scale}
	}
	return FixedValue{mantissa: om, scale: scale}
}

func (v FixedValue) Max(other Value) Value {
	o := v.asFixed(other)
	vm, om, scale := v.normalize(o)
	if vm >= om {
		return FixedValue{mantissa: vm, scale: scale}
	}
	return FixedValue{mantissa: om, scale: scale}
}

func (v FixedValue) Clamp(lo, hi Value) Value {
	return v.Max(lo).Min(hi)
}

func (v FixedValue) Less(other Value) bool {
	vm, om, _ := v.normalize(v.asFixed(other))
	return vm < om
}

func (v FixedValue) ToReal() float64 {
	return float64(v.mantissa) / float64(pow10[v.scale])
}

func (v FixedValue) String() string {
	return fmt.Sprintf("%.*f", v.scale, v.ToReal())
}
