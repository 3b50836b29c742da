package netlist

import (
	"log"
	"strconv"

	"github.com/db47h/vnetlist/ast"
	"github.com/pkg/errors"
)

// constPoolName is the pretty-name the upstream elaborator gives its
// synthesized constant pool; its subtree is never walked.
const constPoolName = "@CONST-POOL@"

// Extract walks root and returns a multi-bit hierarchical netlist: one
// Module per user module definition, keyed by definition name, plus the
// definition order the modules were encountered in (used downstream only to
// break ties between modules at the same level). The constant pool and
// TypeTable nodes are skipped. logger may be nil to discard diagnostic
// messages (parameter-variable skips, unknown node kinds).
func Extract(root ast.Node, logger *log.Logger) (map[string]*Module, []string, error) {
	st := newWalkState(logger)
	if err := st.walk(root); err != nil {
		return nil, nil, err
	}
	return st.modules, st.moduleOrder, nil
}

func (st *walkState) walk(n ast.Node) error {
	if n == nil {
		return nil
	}
	switch n.Kind() {
	case ast.Netlist:
		return st.walkChildren(n)

	case ast.TypeTable:
		return nil

	case ast.Module:
		return st.visitModule(n)

	case ast.Var:
		return st.visitVar(n)

	case ast.AssignContinuous, ast.AssignBlocking:
		return st.visitAssign(n)

	case ast.Cell:
		return st.visitCell(n)

	case ast.Pin:
		return st.visitPin(n)

	case ast.Select:
		return st.visitSelect(n)

	case ast.VarRef:
		return st.visitVarRef(n)

	case ast.Const:
		return st.visitConst(n)

	case ast.Extend:
		return st.visitExtend(n, false)

	case ast.ExtendSigned:
		return st.visitExtend(n, true)

	case ast.Concat:
		return st.walkChildren(n)

	case ast.Replicate:
		return st.visitReplicate(n)

	default:
		st.logf("vnetlist: ignoring unknown AST node kind %v (%s), recursing", n.Kind(), n.Name())
		return st.walkChildren(n)
	}
}

func (st *walkState) walkChildren(n ast.Node) error {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := st.walk(c); err != nil {
			return err
		}
	}
	return nil
}

func (st *walkState) visitModule(n ast.Node) error {
	name := n.Name()
	if name == constPoolName {
		return nil
	}
	mod := &Module{DefName: name, Level: n.Level()}
	prevModule := st.curModule
	st.curModule = mod
	if err := st.walkChildren(n); err != nil {
		return err
	}
	st.curModule = prevModule
	st.modules[name] = mod
	st.moduleOrder = append(st.moduleOrder, name)
	return nil
}

func (st *walkState) visitVar(n ast.Node) error {
	if n.Direction() == ast.DirParam {
		st.logf("vnetlist: module %s: skipping parameter variable %s", st.curModule.DefName, n.Name())
		return nil
	}
	width := n.Width()
	pd := PortDef{Name: n.Name(), Width: width, IsVector: width > 1}
	switch n.Direction() {
	case ast.DirInput:
		pd.Direction = DirInput
		st.curModule.Inputs = append(st.curModule.Inputs, pd)
	case ast.DirOutput:
		pd.Direction = DirOutput
		st.curModule.Outputs = append(st.curModule.Outputs, pd)
	case ast.DirInout:
		pd.Direction = DirInout
		st.curModule.Inouts = append(st.curModule.Inouts, pd)
	case ast.DirWire:
		pd.Direction = DirWire
		st.curModule.Wires = append(st.curModule.Wires, pd)
	default:
		return newError(ErrUnsupportedDirection, Location{Module: st.curModule.DefName, NodeKind: "Var:" + n.Name()},
			"unsupported variable direction %v", n.Direction())
	}
	return nil
}

func (st *walkState) visitAssign(n ast.Node) error {
	children := ast.Children(n)
	if len(children) != 2 {
		return newError(ErrWidthMismatch, Location{Module: st.curModule.DefName, NodeKind: n.Kind().String()},
			"assignment node has %d children, want 2 (lhs, rhs)", len(children))
	}
	a, err := st.withAssign(func() error {
		if err := st.walk(children[0]); err != nil {
			return err
		}
		return st.walk(children[1])
	})
	if err != nil {
		return err
	}
	total := uint32(0)
	for _, r := range a.RHS {
		total += r.Width
	}
	if total != a.LHS.Width {
		idx := len(st.curModule.Assigns)
		return newError(ErrWidthMismatch, Location{Module: st.curModule.DefName, NodeKind: "Assign#" + strconv.Itoa(idx)},
			"rhs total width %d != lhs width %d", total, a.LHS.Width)
	}
	st.curModule.Assigns = append(st.curModule.Assigns, a)
	return nil
}

func (st *walkState) visitCell(n ast.Node) error {
	inst := &SubInstance{InstName: n.Name(), DefName: n.ModuleDefName()}
	prevInstance := st.curInstance
	st.curInstance = inst
	if err := st.walkChildren(n); err != nil {
		return err
	}
	st.curInstance = prevInstance
	st.curModule.SubInstances = append(st.curModule.SubInstances, *inst)
	return nil
}

func (st *walkState) visitPin(n ast.Node) error {
	if st.curInstance == nil {
		return errors.Errorf("Pin node %q encountered outside a Cell", n.PortName())
	}
	pc := &PortConnMulti{PortName: n.PortName()}
	prevPin := st.curPin
	st.curPin = pc
	if err := st.walkChildren(n); err != nil {
		return err
	}
	st.curPin = prevPin
	st.curInstance.Connections = append(st.curInstance.Connections, *pc)
	return nil
}

func (st *walkState) visitSelect(n ast.Node) error {
	children := ast.Children(n)
	if len(children) != 3 {
		return newError(ErrWidthMismatch, Location{Module: st.curModule.DefName, NodeKind: "Select"},
			"select node has %d children, want 3 (base, start, width)", len(children))
	}
	prevDepth, prevScratch, prevStart := st.selDepth, st.scratch, st.selStart
	st.scratch = VarRef{}

	st.selDepth = 1
	if err := st.walk(children[0]); err != nil {
		return err
	}
	st.selDepth = 2
	if err := st.walk(children[1]); err != nil {
		return err
	}
	st.selDepth = 3
	if err := st.walk(children[2]); err != nil {
		return err
	}

	result := st.scratch
	st.selDepth, st.scratch, st.selStart = prevDepth, prevScratch, prevStart
	st.emit(result)
	return nil
}

func (st *walkState) visitVarRef(n ast.Node) error {
	if st.selDepth == 1 {
		st.scratch.Name = n.Name()
		return nil
	}
	lo, hi := n.DeclRange()
	r, width := normalizeRange(lo, hi)
	v := namedVarRef(n.Name(), r, width)
	st.emit(v)
	return nil
}

func (st *walkState) visitConst(n ast.Node) error {
	lit := n.ConstLit()
	switch st.selDepth {
	case 2:
		st.selStart = int(firstLimb(lit))
		return nil
	case 3:
		width := int(firstLimb(lit))
		st.scratch.Width = uint32(width)
		st.scratch.IsVector = width > 1
		st.scratch.Range = Range{Start: st.selStart, End: st.selStart + width - 1}
		return nil
	default:
		c := ConstBits{Value: append([]uint64(nil), lit.Value...), XMask: append([]uint64(nil), lit.XMask...), Width: lit.Width}
		st.emit(constVarRef(c))
		return nil
	}
}

func firstLimb(lit ast.ConstLit) uint64 {
	if len(lit.Value) == 0 {
		return 0
	}
	return lit.Value[0]
}

func (st *walkState) visitExtend(n ast.Node, signed bool) error {
	children := ast.Children(n)
	if len(children) != 1 {
		return newError(ErrWidthMismatch, Location{Module: st.curModule.DefName, NodeKind: "Extend"},
			"extend node has %d children, want 1 (operand)", len(children))
	}
	operand := children[0]
	padWidth := n.Width() - operand.Width()
	var pad ConstBits
	if signed {
		pad = allOnesConstBits(padWidth)
	} else {
		pad = zeroConstBits(padWidth)
	}
	st.emit(constVarRef(pad))
	return st.walk(operand)
}

func (st *walkState) visitReplicate(n ast.Node) error {
	children := ast.Children(n)
	if len(children) != 2 {
		return newError(ErrWidthMismatch, Location{Module: st.curModule.DefName, NodeKind: "Replicate"},
			"replicate node has %d children, want 2 (element, count)", len(children))
	}
	element, countNode := children[0], children[1]
	count := int(firstLimb(countNode.ConstLit()))

	slice := st.activeSlice()
	if slice == nil {
		return st.walk(element)
	}
	before := len(*slice)
	if err := st.walk(element); err != nil {
		return err
	}
	added := append([]VarRef(nil), (*slice)[before:]...)
	for i := 1; i < count; i++ {
		*slice = append(*slice, added...)
	}
	return nil
}
