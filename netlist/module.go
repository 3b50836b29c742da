package netlist

// Direction is a port or wire's role within its owning module.
type Direction int

const (
	DirInput Direction = iota
	DirOutput
	DirInout
	DirWire
)

func (d Direction) String() string {
	switch d {
	case DirInput:
		return "input"
	case DirOutput:
		return "output"
	case DirInout:
		return "inout"
	case DirWire:
		return "wire"
	default:
		return "unknown"
	}
}

// PortDef is a module-level port or internal wire declaration.
type PortDef struct {
	Name      string
	Direction Direction
	Width     uint32
	IsVector  bool
}

// AssignMulti is a continuous or blocking assignment: lhs width must equal
// the sum of the rhs operand widths.
type AssignMulti struct {
	LHS VarRef
	RHS []VarRef
}

// PortConnMulti is one named port connection of a sub-instance: the sum of
// Actuals' widths must equal the target port's declared width.
type PortConnMulti struct {
	PortName string
	Actuals  []VarRef
}

// SubInstance is one instantiation of another module (user-defined or
// leaf) inside a parent Module.
type SubInstance struct {
	InstName    string
	DefName     string
	Connections []PortConnMulti
}

// Module is the multi-bit record the Extractor builds for one module
// definition: its ports, internal wires, assignments, and sub-instances, in
// source order.
type Module struct {
	DefName string
	Level   uint32

	Inputs  []PortDef
	Outputs []PortDef
	Inouts  []PortDef
	Wires   []PortDef

	Assigns      []AssignMulti
	SubInstances []SubInstance

	portIndex map[string]int
}

// IsLeaf reports whether m is a black-box cell (no body visible to the
// pipeline): it has no assigns and no sub-instances, and level 0.
func (m *Module) IsLeaf() bool {
	return m.Level == 0 && len(m.Assigns) == 0 && len(m.SubInstances) == 0
}

// buildPortIndex computes the declaration-order index of every IO port
// (inputs, then outputs, then inouts).
func (m *Module) buildPortIndex() {
	m.portIndex = make(map[string]int, len(m.Inputs)+len(m.Outputs)+len(m.Inouts))
	i := 0
	for _, p := range m.Inputs {
		m.portIndex[p.Name] = i
		i++
	}
	for _, p := range m.Outputs {
		m.portIndex[p.Name] = i
		i++
	}
	for _, p := range m.Inouts {
		m.portIndex[p.Name] = i
		i++
	}
}

// PortIndex returns the declaration-order position of the named IO port.
func (m *Module) PortIndex(name string) (int, bool) {
	if m.portIndex == nil {
		m.buildPortIndex()
	}
	idx, ok := m.portIndex[name]
	return idx, ok
}

// Port returns the declared PortDef for name, searching inputs, outputs,
// and inouts in that order.
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

// Wire returns the declared PortDef for an internal wire named name.
func (m *Module) Wire(name string) (PortDef, bool) {
	for _, w := range m.Wires {
		if w.Name == name {
			return w, true
		}
	}
	return PortDef{}, false
}
