// Package onebit holds the one-bit-per-wire counterparts of the types in
// package netlist: the output of the bit exploder and the input/output of
// the flattener. Every reference here denotes exactly one wire bit.
package onebit

// VarRef is a single-bit operand: either a named bit of a declared vector
// (or a scalar), or an anonymous constant bit.
type VarRef struct {
	// Name is "anonymous" for a constant bit; any other value names a
	// declared variable.
	Name       string
	Index      uint32
	IsVector   bool
	InitialVal uint8 // 0 or 1, meaningful iff Name == "anonymous"
}

const AnonymousName = "anonymous"

// IsAnonymous reports whether v is a constant bit rather than a named wire.
func (v VarRef) IsAnonymous() bool { return v.Name == AnonymousName }

// Anonymous builds a constant one-bit reference with the given initial
// value (0 or 1). The x-mask of the source constant, if any, is discarded
// here: a one-bit reference only ever carries a concrete 0 or 1.
func Anonymous(val uint8) VarRef {
	return VarRef{Name: AnonymousName, InitialVal: val}
}

// Named builds a reference to one bit of a declared variable.
func Named(name string, index uint32, isVector bool) VarRef {
	return VarRef{Name: name, Index: index, IsVector: isVector}
}

// Assign is a single-bit assignment lhs <- rhs.
type Assign struct {
	LHS VarRef
	RHS VarRef
}

// PortConn is one single-bit port connection: the actual wire bit
// substituted for bit Index of port PortName.
type PortConn struct {
	PortName string
	Index    uint32
	Actual   VarRef
}

// SubInstance is one instantiation of another module, every pin broken out
// to single-bit connections.
type SubInstance struct {
	InstName    string
	DefName     string
	Connections []PortConn
}

// PortDef mirrors netlist.PortDef: a declared port or internal wire, still
// carrying its full vector width (individual bits are addressed via
// VarRef.Index, not by expanding PortDef itself into per-bit entries).
type PortDef struct {
	Name     string
	Width    uint32
	IsVector bool
}

// Module is the one-bit record produced by the exploder (for a
// hierarchical module) or by the flattener (for the flat top module).
type Module struct {
	DefName string
	Level   uint32

	Inputs  []PortDef
	Outputs []PortDef
	Inouts  []PortDef
	Wires   []PortDef

	Assigns      []Assign
	SubInstances []SubInstance
}

// IsLeaf reports whether m is a black-box cell: level 0 with no visible
// body.
func (m *Module) IsLeaf() bool {
	return m.Level == 0 && len(m.Assigns) == 0 && len(m.SubInstances) == 0
}

// Port returns the declared PortDef for name across inputs, outputs, and
// inouts.
func (m *Module) Port(name string) (PortDef, bool) {
	for _, p := range m.Inputs {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range m.Outputs {
		if p.Name == name {
			return p, true
		}
	}
	for _, p := range m.Inouts {
		if p.Name == name {
			return p, true
		}
	}
	return PortDef{}, false
}

// Clone returns a deep copy of m, used by the flattener when inlining a
// child module's already-flattened body into multiple parent instances.
func (m *Module) Clone() *Module {
	c := &Module{
		DefName: m.DefName,
		Level:   m.Level,
		Inputs:  append([]PortDef(nil), m.Inputs...),
		Outputs: append([]PortDef(nil), m.Outputs...),
		Inouts:  append([]PortDef(nil), m.Inouts...),
		Wires:   append([]PortDef(nil), m.Wires...),
		Assigns: append([]Assign(nil), m.Assigns...),
	}
	c.SubInstances = make([]SubInstance, len(m.SubInstances))
	for i, s := range m.SubInstances {
		c.SubInstances[i] = SubInstance{
			InstName:    s.InstName,
			DefName:     s.DefName,
			Connections: append([]PortConn(nil), s.Connections...),
		}
	}
	return c
}
