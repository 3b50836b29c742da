package netlist

import "github.com/db47h/vnetlist/internal/onebit"

// Explode converts a multi-bit hierarchical netlist into a one-bit
// hierarchical netlist: every assignment and port connection becomes an
// ordered list of single-bit references. Structural fields (name, level,
// ports, wires, instance names) carry over unchanged.
func Explode(modules map[string]*Module) map[string]*onebit.Module {
	out := make(map[string]*onebit.Module, len(modules))
	for name, m := range modules {
		out[name] = ExplodeModule(m)
	}
	return out
}

// ExplodeModule explodes a single Module.
func ExplodeModule(m *Module) *onebit.Module {
	out := &onebit.Module{
		DefName: m.DefName,
		Level:   m.Level,
		Inputs:  clonePortDefs(m.Inputs),
		Outputs: clonePortDefs(m.Outputs),
		Inouts:  clonePortDefs(m.Inouts),
		Wires:   clonePortDefs(m.Wires),
	}
	for _, a := range m.Assigns {
		out.Assigns = append(out.Assigns, explodeAssign(a)...)
	}
	for _, s := range m.SubInstances {
		os := onebit.SubInstance{InstName: s.InstName, DefName: s.DefName}
		for _, pc := range s.Connections {
			os.Connections = append(os.Connections, explodePortConn(pc)...)
		}
		out.SubInstances = append(out.SubInstances, os)
	}
	return out
}

func clonePortDefs(ps []PortDef) []onebit.PortDef {
	if ps == nil {
		return nil
	}
	out := make([]onebit.PortDef, len(ps))
	for i, p := range ps {
		out[i] = onebit.PortDef{Name: p.Name, Width: p.Width, IsVector: p.IsVector}
	}
	return out
}

// expandBits flattens an ordered VarRef sequence (an assignment's rhs, or a
// port connection's actuals) into single-bit onebit.VarRef values,
// MSB-first within each operand, in the order the operands appear.
func expandBits(operands []VarRef) []onebit.VarRef {
	var out []onebit.VarRef
	for _, r := range operands {
		if !r.IsConst() {
			for idx := r.Range.End; idx >= r.Range.Start; idx-- {
				out = append(out, onebit.Named(r.Name, uint32(idx), r.IsVector))
			}
			continue
		}
		for pos := int(r.Width) - 1; pos >= 0; pos-- {
			out = append(out, onebit.Anonymous(uint8(r.Const.Bit(uint32(pos)))))
		}
	}
	return out
}

func explodeAssign(a AssignMulti) []onebit.Assign {
	bits := expandBits(a.RHS)
	out := make([]onebit.Assign, len(bits))
	idxL := a.LHS.Range.End
	for i, rb := range bits {
		out[i] = onebit.Assign{LHS: onebit.Named(a.LHS.Name, uint32(idxL), a.LHS.IsVector), RHS: rb}
		idxL--
	}
	return out
}

func explodePortConn(pc PortConnMulti) []onebit.PortConn {
	bits := expandBits(pc.Actuals)
	out := make([]onebit.PortConn, len(bits))
	idx := uint32(len(bits))
	for i, rb := range bits {
		idx--
		out[i] = onebit.PortConn{PortName: pc.PortName, Index: idx, Actual: rb}
	}
	return out
}
