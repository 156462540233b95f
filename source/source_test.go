package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
	"github.com/bramblecore/attrflow/source"
)

var f = attrval.Float64Factory{}

func TestConstantAlwaysProducesSameValue(t *testing.T) {
	c := source.NewConstant(f.FromReal(7))
	assert.Equal(t, 7.0, c.Produce(attrid.Intern("anything"), nil).ToReal())
}

func TestLookupReturnsInsertedValue(t *testing.T) {
	l := source.NewLookup(f.Zero())
	str := attrid.Intern("strength")
	l.Insert(str, f.FromReal(12))

	assert.Equal(t, 12.0, l.Produce(str, nil).ToReal())
}

func TestLookupReturnsZeroForMissingKey(t *testing.T) {
	l := source.NewLookup(f.Zero())
	assert.Equal(t, 0.0, l.Produce(attrid.Intern("missing"), nil).ToReal())
}
