// Package ast describes the contract that the upstream elaborator's typed
// abstract syntax tree must satisfy for the extractor to walk it.
//
// The elaborator itself, the parser, type checker, and everything that
// turns source text into this tree, is an external collaborator and is
// not implemented here. This package only pins down the node shape the
// extractor depends on, plus a small in-memory builder used by tests,
// fixtures, and the demo driver in cmd/vnetlist.
package ast

// Kind identifies the syntactic role of a Node.
type Kind int

// Node kinds understood by the extractor. Any kind not listed here is
// treated as Other and recursed into transparently.
const (
	Other Kind = iota
	Netlist
	Module
	Var
	AssignContinuous
	AssignBlocking
	Cell
	Pin
	Concat
	Select
	VarRef
	Extend
	ExtendSigned
	Replicate
	Const
	TypeTable
)

func (k Kind) String() string {
	switch k {
	case Netlist:
		return "Netlist"
	case Module:
		return "Module"
	case Var:
		return "Var"
	case AssignContinuous:
		return "AssignContinuous"
	case AssignBlocking:
		return "AssignBlocking"
	case Cell:
		return "Cell"
	case Pin:
		return "Pin"
	case Concat:
		return "Concat"
	case Select:
		return "Select"
	case VarRef:
		return "VarRef"
	case Extend:
		return "Extend"
	case ExtendSigned:
		return "ExtendSigned"
	case Replicate:
		return "Replicate"
	case Const:
		return "Const"
	case TypeTable:
		return "TypeTable"
	default:
		return "Other"
	}
}

// Direction is the declared direction of a Var node. Directions other than
// Input, Output, Inout, and Wire (i.e. Ref and ConstRef) are unsupported by
// the extractor and are fatal if encountered on an IO Var.
type Direction int

const (
	DirNone Direction = iota
	DirInput
	DirOutput
	DirInout
	DirWire
	DirParam
	DirRef
	DirConstRef
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
	case DirParam:
		return "param"
	case DirRef:
		return "ref"
	case DirConstRef:
		return "constref"
	default:
		return "none"
	}
}

// Access describes whether a VarRef reads or writes the variable it names.
type Access int

const (
	AccessRead Access = iota
	AccessWrite
)

// ConstLit is the literal payload of a Const node: an unsigned value and an
// x/z mask, both stored LSB-first as 64-bit limbs so that widths beyond 64
// bits round-trip exactly regardless of how many limbs they span. A bit
// position i is unknown ("x") iff limb i/64 of XMask has bit i%64 set.
type ConstLit struct {
	Value []uint64
	XMask []uint64
	Width uint32
}

// HasX reports whether any bit of the literal is marked unknown.
func (c ConstLit) HasX() bool {
	for _, x := range c.XMask {
		if x != 0 {
			return true
		}
	}
	return false
}

// Bit returns the value bit at position pos (0 = LSB).
func (c ConstLit) Bit(pos uint32) int {
	limb, off := pos/64, pos%64
	if int(limb) >= len(c.Value) {
		return 0
	}
	if c.Value[limb]&(1<<off) != 0 {
		return 1
	}
	return 0
}

// Node is the contract implemented by every AST node the extractor visits.
// Most accessors are meaningful only for particular Kinds; a node of a Kind
// that doesn't use an accessor returns its zero value. Children are exposed
// as an intrusive first-child/next-sibling list, matching the elaborator's
// own node representation.
type Node interface {
	Kind() Kind
	// Name is the node's pretty-name: a variable, module, instance, or
	// port name depending on Kind.
	Name() string
	// Width is the node's bit width, meaningful for Var, VarRef, Const,
	// Extend, ExtendSigned, Select, Concat, and Replicate.
	Width() uint32
	Signed() bool

	// Level is populated on Module nodes: 1 + max(level of any
	// instantiated module); leaf cells have level 0.
	Level() uint32
	// Direction is populated on Var nodes.
	Direction() Direction
	// Access reports read/write on VarRef nodes.
	Access() Access
	// DeclRange returns the variable's declared bit range [lo, hi] as
	// written in the source (lo may be greater than hi), meaningful on
	// VarRef nodes.
	DeclRange() (lo, hi int)
	// ConstLit is populated on Const nodes.
	ConstLit() ConstLit
	// ModuleDefName is populated on Cell nodes: the pretty-name of the
	// instantiated module definition.
	ModuleDefName() string
	// PortName is populated on Pin nodes: the name of the port in the
	// instantiated module's namespace that this pin connects.
	PortName() string

	FirstChild() Node
	NextSibling() Node
}

// Children returns n's children in source order as a slice, for callers
// that prefer iteration over the raw first-child/next-sibling links.
func Children(n Node) []Node {
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}
