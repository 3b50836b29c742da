package netlist

// VarRef is a multi-bit operand: either a named slice of a declared
// variable, or an anonymous constant literal. Exactly one of the two forms
// applies; IsConst reports which.
type VarRef struct {
	// Name is empty for anonymous constants.
	Name     string
	Range    Range
	Width    uint32
	IsVector bool

	Const ConstBits
	HasX  bool
}

// IsConst reports whether v is an anonymous constant rather than a named
// reference.
func (v VarRef) IsConst() bool { return v.Name == "" }

// namedVarRef builds a whole- or partial-vector named reference with an
// already-normalized zero-based range.
func namedVarRef(name string, r Range, width uint32) VarRef {
	return VarRef{Name: name, Range: r, Width: width, IsVector: width > 1}
}

// constVarRef builds an anonymous constant reference.
func constVarRef(c ConstBits) VarRef {
	return VarRef{Range: Range{}, Width: c.Width, Const: c, HasX: c.HasX()}
}
