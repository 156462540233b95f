package source

import (
	"github.com/bramblecore/attrflow/attrctx"
	"github.com/bramblecore/attrflow/attrid"
	"github.com/bramblecore/attrflow/attrval"
)

// Source produces a base contribution to an attribute. Stateless and
// deterministic: the same id and ctx always yield the same value.
type Source interface {
	Produce(id attrid.Identifier, ctx *attrctx.Context) attrval.Value
}

// Constant always produces the same value, regardless of id or context.
type Constant struct {
	Value attrval.Value
}

// NewConstant returns a Source that always produces value.
func NewConstant(value attrval.Value) Constant {
	return Constant{Value: value}
}

func (c Constant) Produce(attrid.Identifier, *attrctx.Context) attrval.Value { return c.Value }

// Lookup produces values from a caller-supplied table, keyed by
// identifier. Identifiers absent from the table produce zero.
type Lookup struct {
	zero   attrval.Value
	values map[attrid.Identifier]attrval.Value
}

// NewLookup returns an empty Lookup source; zero is the value produced for
// identifiers never inserted.
func NewLookup(zero attrval.Value) *Lookup {
	return &Lookup{zero: zero, values: make(map[attrid.Identifier]attrval.Value)}
}

// Insert sets the value Lookup produces for id.
func (l *Lookup) Insert(id attrid.Identifier, value attrval.Value) {
	l.values[id] = value
}

func (l *Lookup) Produce(id attrid.Identifier, _ *attrctx.Context) attrval.Value {
	if v, ok := l.values[id]; ok {
		return v
	}
	return l.zero
}
