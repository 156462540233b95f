package attrval

import (
	"fmt"
	"math"
)

// Float64Value is the native float64 realization of Value.
type Float64Value float64

// Float64Factory produces Float64Value instances.
type Float64Factory struct{}

var _ Factory = Float64Factory{}

func (Float64Factory) Zero() Value           { return Float64Value(0) }
func (Float64Factory) One() Value            { return Float64Value(1) }
func (Float64Factory) FromInt(n int64) Value { return Float64Value(n) }
func (Float64Factory) FromReal(f float64) Value {
	return Float64Value(f)
}
func (Float64Factory) NegInfSentinel() Value { return Float64Value(math.Inf(-1)) }
func (Float64Factory) PosInfSentinel() Value { return Float64Value(math.Inf(1)) }

func (v Float64Value) asF64(other Value) float64 {
	o, ok := other.(Float64Value)
	if !ok {
		panic(fmt.Sprintf("attrval: mixed Value realizations: Float64Value and %T", other))
	}
	return float64(o)
}

func (v Float64Value) Add(other Value) Value { return Float64Value(float64(v) + v.asF64(other)) }
func (v Float64Value) Sub(other Value) Value { return Float64Value(float64(v) - v.asF64(other)) }
func (v Float64Value) Mul(other Value) Value { return Float64Value(float64(v) * v.asF64(other)) }
func (v Float64Value) Div(other Value) Value {
	d := v.asF64(other)
	if d == 0 {
		panic("attrval: Float64Value division by zero")
	}
	return Float64Value(float64(v) / d)
}

func (v Float64Value) Min(other Value) Value {
	return Float64Value(math.Min(float64(v), v.asF64(other)))
}

func (v Float64Value) Max(other Value) Value {
	return Float64Value(math.Max(float64(v), v.asF64(other)))
}

func (v Float64Value) Clamp(lo, hi Value) Value {
	return v.Max(lo).Min(hi)
}

func (v Float64Value) Less(other Value) bool { return float64(v) < v.asF64(other) }

func (v Float64Value) ToReal() float64 { return float64(v) }

func (v Float64Value) String() string { return fmt.Sprintf("%g", float64(v)) }
