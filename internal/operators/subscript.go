package operators

import (
	"github.com/sunholo/pylattice/internal/subscript"
	"github.com/sunholo/pylattice/internal/ty"
)

// IndexTuple implements fixed-length subscript indexing of a Tuple type:
// a single negative-aware index resolves to the element
// type at that position, or an error if it is out of bounds.
func (c *Context) IndexTuple(t ty.TTuple, i int64) (ty.Type, error) {
	pos, err := subscript.Index(len(t.Elements), i)
	if err != nil {
		return ty.Unknown, err
	}
	return t.Elements[pos], nil
}

// SliceTuple implements fixed-length slicing of a Tuple type:
// the result is a fresh Tuple built from the elements the slice selects, in
// yield order.
func (c *Context) SliceTuple(t ty.TTuple, start, stop, step *int64) (ty.Type, error) {
	indices, err := subscript.Slice(len(t.Elements), start, stop, step)
	if err != nil {
		return ty.Unknown, err
	}
	elements := make([]ty.Type, len(indices))
	for i, idx := range indices {
		elements[i] = t.Elements[idx]
	}
	return c.db.InternTuple(elements), nil
}
