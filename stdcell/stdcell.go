// Package stdcell describes the leaf ("black box") cell library the
// flattener's output is expected to bottom out in: single-bit logic gates,
// the arithmetic and mux primitives, and the clocked flip-flop, represented
// as pure data, port name, direction, and width only, with no simulated
// behavior. Kept dependency-free of package netlist so that netlist can in
// turn use stdcell.IsKnown as its default leaf-name oracle.
package stdcell

import "sort"

// Direction mirrors netlist.Direction without importing it (see package
// doc): input, output, or inout.
type Direction int

const (
	DirInput Direction = iota
	DirOutput
	DirInout
)

// Port is one declared port of a standard cell.
type Port struct {
	Name      string
	Direction Direction
	Width     uint32
}

// Def is a leaf cell's port template: its declared ports, independent of
// any particular instantiation.
type Def struct {
	Name  string
	Ports []Port
}

func in1(name string) Port  { return Port{Name: name, Direction: DirInput, Width: 1} }
func out1(name string) Port { return Port{Name: name, Direction: DirOutput, Width: 1} }

var defs = []Def{
	{Name: "Not", Ports: []Port{in1("in"), out1("out")}},
	{Name: "And", Ports: []Port{in1("a"), in1("b"), out1("out")}},
	{Name: "Nand", Ports: []Port{in1("a"), in1("b"), out1("out")}},
	{Name: "Or", Ports: []Port{in1("a"), in1("b"), out1("out")}},
	{Name: "Nor", Ports: []Port{in1("a"), in1("b"), out1("out")}},
	{Name: "Xor", Ports: []Port{in1("a"), in1("b"), out1("out")}},
	{Name: "Xnor", Ports: []Port{in1("a"), in1("b"), out1("out")}},
	{Name: "Mux", Ports: []Port{in1("a"), in1("b"), in1("sel"), out1("out")}},
	{Name: "DMux", Ports: []Port{in1("in"), in1("sel"), out1("a"), out1("b")}},
	{Name: "HalfAdder", Ports: []Port{in1("a"), in1("b"), out1("sum"), out1("carry")}},
	{Name: "FullAdder", Ports: []Port{in1("a"), in1("b"), in1("c"), out1("sum"), out1("carry")}},
	{Name: "DFF", Ports: []Port{in1("in"), out1("out")}},
}

var byName = func() map[string]Def {
	m := make(map[string]Def, len(defs))
	for _, d := range defs {
		m[d.Name] = d
	}
	return m
}()

// Lookup returns the port template for a standard cell name, if known.
func Lookup(name string) (Def, bool) {
	d, ok := byName[name]
	return d, ok
}

// IsKnown reports whether name is a recognized standard cell. It is meant
// to be passed as netlist.Flatten's knownLeaf parameter so that an
// instantiated standard cell with no corresponding Module AST node (the
// common case: a library cell the elaborator never gives a body) is
// treated as a leaf rather than a MissingModuleDef error.
func IsKnown(name string) bool {
	_, ok := byName[name]
	return ok
}

// Defs returns a copy of every registered standard cell definition, sorted
// by name for deterministic iteration.
func Defs() []Def {
	out := make([]Def, len(defs))
	copy(out, defs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
