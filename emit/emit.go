// Package emit serializes a one-bit netlist to a human-readable HDL
// shape. Only the fields a flat netlist actually carries are produced;
// exact textual syntax is this package's own concern and built with plain
// fmt.Sprintf rather than a templating engine or AST-based code generator.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/db47h/vnetlist/internal/onebit"
	"github.com/db47h/vnetlist/netlist"
	"github.com/pkg/errors"
)

// Emitter writes one-bit netlists to an underlying io.Writer.
type Emitter struct {
	w io.Writer
}

// New wraps w as an Emitter.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// EmitHier writes every module of hier in level-ascending order; the first
// hier.NumLeafModules are declared as black boxes with no body.
func (e *Emitter) EmitHier(hier *netlist.HierNetlist) error {
	for i, m := range hier.Modules {
		if err := e.emitModule(m, i < hier.NumLeafModules); err != nil {
			return errors.Wrapf(err, "emit: module %q", m.DefName)
		}
	}
	return nil
}

// EmitFlat writes the single flattened top module. top is never itself a
// black box: a fully flat netlist with no instances is still given a body
// (possibly empty).
func (e *Emitter) EmitFlat(top *onebit.Module) error {
	if err := e.emitModule(top, false); err != nil {
		return errors.Wrapf(err, "emit: module %q", top.DefName)
	}
	return nil
}

func (e *Emitter) emitModule(m *onebit.Module, blackBox bool) error {
	var b strings.Builder

	ports := make([]string, 0, len(m.Inputs)+len(m.Outputs)+len(m.Inouts))
	for _, p := range m.Inputs {
		ports = append(ports, p.Name)
	}
	for _, p := range m.Outputs {
		ports = append(ports, p.Name)
	}
	for _, p := range m.Inouts {
		ports = append(ports, p.Name)
	}
	fmt.Fprintf(&b, "module %s (%s);\n", m.DefName, strings.Join(ports, ", "))

	for _, p := range m.Inputs {
		fmt.Fprintf(&b, "  input %s;\n", portDecl(p))
	}
	for _, p := range m.Outputs {
		fmt.Fprintf(&b, "  output %s;\n", portDecl(p))
	}
	for _, p := range m.Inouts {
		fmt.Fprintf(&b, "  inout %s;\n", portDecl(p))
	}

	if blackBox {
		b.WriteString("endmodule // black box\n\n")
		_, err := io.WriteString(e.w, b.String())
		return err
	}

	for _, w := range m.Wires {
		fmt.Fprintf(&b, "  wire %s;\n", portDecl(w))
	}
	for _, inst := range m.SubInstances {
		fmt.Fprintf(&b, "  %s %s (\n", inst.DefName, inst.InstName)
		groups := groupConnections(inst.Connections)
		for i, g := range groups {
			sep := ","
			if i == len(groups)-1 {
				sep = ""
			}
			fmt.Fprintf(&b, "    .%s(%s)%s\n", g.portName, pinRHS(g), sep)
		}
		b.WriteString("  );\n")
	}
	for _, a := range m.Assigns {
		fmt.Fprintf(&b, "  assign %s = %s;\n", refString(a.LHS), refString(a.RHS))
	}
	b.WriteString("endmodule\n\n")

	_, err := io.WriteString(e.w, b.String())
	return err
}

func portDecl(p onebit.PortDef) string {
	if p.IsVector {
		return fmt.Sprintf("%s[%d:0]", p.Name, p.Width-1)
	}
	return p.Name
}

// refString formats a one-bit reference the way the spec's Emitter
// contract requires: name[index] for vector bits, the bare name for
// scalars, and a 1'bN literal for anonymous constant bits.
func refString(v onebit.VarRef) string {
	if v.IsAnonymous() {
		if v.InitialVal != 0 {
			return "1'b1"
		}
		return "1'b0"
	}
	if v.IsVector {
		return fmt.Sprintf("%s[%d]", v.Name, v.Index)
	}
	return v.Name
}

// pinGroup collects the consecutive PortConn entries for one named port,
// already in descending bit index order. Groups are emitted in the order
// the instance lists its connections, not re-sorted into the child
// module's port-declaration order.
type pinGroup struct {
	portName string
	conns    []onebit.PortConn
}

func groupConnections(conns []onebit.PortConn) []pinGroup {
	var groups []pinGroup
	for _, c := range conns {
		if n := len(groups); n > 0 && groups[n-1].portName == c.PortName {
			groups[n-1].conns = append(groups[n-1].conns, c)
			continue
		}
		groups = append(groups, pinGroup{portName: c.PortName, conns: []onebit.PortConn{c}})
	}
	return groups
}

func pinRHS(g pinGroup) string {
	if len(g.conns) == 1 {
		return refString(g.conns[0].Actual)
	}
	parts := make([]string, len(g.conns))
	for i, c := range g.conns {
		parts[i] = refString(c.Actual)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
