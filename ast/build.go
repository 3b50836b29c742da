package ast

// node is the single concrete implementation of Node used by the in-memory
// builder below. Real elaborators hand the extractor their own node types;
// this one exists so tests, fixtures, and cmd/vnetlist's demo driver can
// construct trees from simple struct literals without standing up a full
// parser.
type node struct {
	kind   Kind
	name   string
	width  uint32
	signed bool

	level uint32
	dir   Direction

	access         Access
	declLo, declHi int

	lit ConstLit

	moduleDefName string
	portName      string

	first *node
	next  *node
}

func (n *node) Kind() Kind              { return n.kind }
func (n *node) Name() string            { return n.name }
func (n *node) Width() uint32           { return n.width }
func (n *node) Signed() bool            { return n.signed }
func (n *node) Level() uint32           { return n.level }
func (n *node) Direction() Direction    { return n.dir }
func (n *node) Access() Access          { return n.access }
func (n *node) DeclRange() (lo, hi int) { return n.declLo, n.declHi }
func (n *node) ConstLit() ConstLit      { return n.lit }
func (n *node) ModuleDefName() string   { return n.moduleDefName }
func (n *node) PortName() string        { return n.portName }
func (n *node) FirstChild() Node {
	if n.first == nil {
		return nil
	}
	return n.first
}
func (n *node) NextSibling() Node {
	if n.next == nil {
		return nil
	}
	return n.next
}

// chain links ns into a first-child/next-sibling list and returns the head,
// or nil if ns is empty.
func chain(ns []Node) *node {
	var head, tail *node
	for _, c := range ns {
		cn, ok := c.(*node)
		if !ok || cn == nil {
			continue
		}
		if head == nil {
			head = cn
		} else {
			tail.next = cn
		}
		tail = cn
	}
	return head
}

// NewNetlist builds the root node wrapping a design's modules in source
// order.
func NewNetlist(modules ...Node) Node {
	return &node{kind: Netlist, name: "@NETLIST@", first: chain(modules)}
}

// NewTypeTable builds an auxiliary TypeTable node; the extractor's walker
// never recurses into it.
func NewTypeTable() Node {
	return &node{kind: TypeTable, name: "@TYPETABLE@"}
}

// NewModule builds a module definition node. Pass level=0 for leaf
// (black-box) modules.
func NewModule(name string, level uint32, children ...Node) Node {
	return &node{kind: Module, name: name, level: level, first: chain(children)}
}

// NewVar builds an IO or internal-wire variable declaration. declLo/declHi
// are the bit range as written in the source (declLo may exceed declHi);
// for scalars pass declLo == declHi == 0.
func NewVar(name string, dir Direction, width uint32, declLo, declHi int) Node {
	return &node{kind: Var, name: name, dir: dir, width: width, declLo: declLo, declHi: declHi}
}

// NewParam builds a parameter-kind variable; the extractor logs and ignores
// it.
func NewParam(name string) Node {
	return &node{kind: Var, name: name, dir: DirParam}
}

// NewAssignContinuous / NewAssignBlocking build a two-child assignment node:
// first child is the lhs (a write-access VarRef or Select), second is the
// rhs expression root.
func NewAssignContinuous(lhs, rhs Node) Node {
	return &node{kind: AssignContinuous, first: chain([]Node{lhs, rhs})}
}

func NewAssignBlocking(lhs, rhs Node) Node {
	return &node{kind: AssignBlocking, first: chain([]Node{lhs, rhs})}
}

// NewCell builds a sub-module instance node; its children are Pin nodes in
// source (port-connection) order.
func NewCell(instName, defName string, pins ...Node) Node {
	return &node{kind: Cell, name: instName, moduleDefName: defName, first: chain(pins)}
}

// NewPin builds one port connection of a Cell; its single child is the
// actual (connection) expression root.
func NewPin(portName string, actual Node) Node {
	return &node{kind: Pin, portName: portName, first: chain([]Node{actual})}
}

// NewConcat builds an N-ary concatenation; children contribute MSB-first,
// in the order given.
func NewConcat(operands ...Node) Node {
	w := uint32(0)
	for _, o := range operands {
		w += o.Width()
	}
	return &node{kind: Concat, width: w, first: chain(operands)}
}

// NewSelect builds a bit-slice expression. start/width describe the slice
// [start, start+width-1] against base's own bit numbering.
func NewSelect(base Node, start, width int) Node {
	startC := NewConst(32, uint64(start), 0)
	widthC := NewConst(32, uint64(width), 0)
	return &node{kind: Select, width: uint32(width), first: chain([]Node{base, startC, widthC})}
}

// NewVarRef builds a reference to a whole declared vector (or scalar).
// declLo/declHi mirror the referenced Var's declared range; access
// distinguishes an assignment's lhs (AccessWrite) from everything else.
func NewVarRef(name string, access Access, declLo, declHi int) Node {
	w := declHi - declLo
	if w < 0 {
		w = -w
	}
	w++
	return &node{kind: VarRef, name: name, access: access, declLo: declLo, declHi: declHi, width: uint32(w)}
}

// NewExtend builds a zero-extension: width is the node's total (post
// extension) width; operand is the value being widened.
func NewExtend(operand Node, width uint32) Node {
	return &node{kind: Extend, width: width, first: chain([]Node{operand})}
}

// NewExtendSigned builds a sign-extension; the padding bits are all ones
// rather than a copy of the operand's own sign bit.
func NewExtendSigned(operand Node, width uint32) Node {
	return &node{kind: ExtendSigned, width: width, first: chain([]Node{operand})}
}

// NewReplicate builds a {count{element}} replication.
func NewReplicate(element Node, count int) Node {
	countC := NewConst(32, uint64(count), 0)
	return &node{kind: Replicate, width: element.Width() * uint32(count), first: chain([]Node{element, countC})}
}

// NewConst builds a constant literal of width <= 64 bits.
func NewConst(width uint32, value, xmask uint64) Node {
	return &node{kind: Const, width: width, lit: ConstLit{Value: []uint64{value}, XMask: []uint64{xmask}, Width: width}}
}

// NewConstWide builds a constant literal wider than 64 bits from LSB-first
// 64-bit limbs.
func NewConstWide(width uint32, value, xmask []uint64) Node {
	return &node{kind: Const, width: width, lit: ConstLit{Value: value, XMask: xmask, Width: width}}
}
