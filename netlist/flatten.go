package netlist

import (
	"sort"

	"github.com/db47h/vnetlist/internal/onebit"
	"github.com/pkg/errors"
)

// HierNetlist is a one-bit hierarchical netlist sorted by ascending level,
// leaves first. NumLeafModules is the count of level-0 modules, which
// occupy Modules[0:NumLeafModules].
type HierNetlist struct {
	Modules        []*onebit.Module
	NumLeafModules int
}

// SortByLevel builds a HierNetlist from an exploded module set. order gives
// the extractor's original definition order, used only to break ties
// between modules at the same level so the result is deterministic
// regardless of map iteration order.
func SortByLevel(modules map[string]*onebit.Module, order []string) *HierNetlist {
	list := make([]*onebit.Module, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if m, ok := modules[name]; ok && !seen[name] {
			list = append(list, m)
			seen[name] = true
		}
	}
	for name, m := range modules {
		if !seen[name] {
			list = append(list, m)
			seen[name] = true
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Level < list[j].Level })
	n := 0
	for _, m := range list {
		if m.Level == 0 {
			n++
		}
	}
	return &HierNetlist{Modules: list, NumLeafModules: n}
}

// portBit identifies one bit of one declared port, used as the key for the
// port-substitution map built while inlining a child instance: a single map
// lookup, since each port bit has exactly one driving actual.
type portBit struct {
	name  string
	index uint32
}

// Flatten inlines every non-leaf module bottom-up (hier.Modules is already
// level-sorted, so a module's children are always processed first) and
// returns the flat body of the topmost module. knownLeaf identifies
// instantiated module names that never appeared as their own Module node
// (true black boxes, e.g. library standard cells the AST provider never
// elaborates a body for) and should therefore be treated as leaves rather
// than a MissingModuleDef error; pass nil to accept none.
func Flatten(hier *HierNetlist, modules map[string]*onebit.Module, knownLeaf func(string) bool) (*onebit.Module, error) {
	if knownLeaf == nil {
		knownLeaf = func(string) bool { return false }
	}
	flatBodies := make(map[string]*onebit.Module, len(hier.Modules))
	for _, m := range hier.Modules {
		if m.IsLeaf() {
			continue
		}
		fb, err := flattenModule(m, modules, flatBodies, knownLeaf)
		if err != nil {
			return nil, err
		}
		flatBodies[m.DefName] = fb
	}
	if len(hier.Modules) == 0 {
		return &onebit.Module{}, nil
	}
	top := hier.Modules[len(hier.Modules)-1]
	if fb, ok := flatBodies[top.DefName]; ok {
		return fb, nil
	}
	return top.Clone(), nil
}

func flattenModule(m *onebit.Module, modules map[string]*onebit.Module, flatBodies map[string]*onebit.Module, knownLeaf func(string) bool) (*onebit.Module, error) {
	fb := &onebit.Module{
		DefName: m.DefName,
		Level:   m.Level,
		Inputs:  append([]onebit.PortDef(nil), m.Inputs...),
		Outputs: append([]onebit.PortDef(nil), m.Outputs...),
		Inouts:  append([]onebit.PortDef(nil), m.Inouts...),
		Wires:   append([]onebit.PortDef(nil), m.Wires...),
		Assigns: append([]onebit.Assign(nil), m.Assigns...),
	}
	for _, cj := range m.SubInstances {
		def, ok := modules[cj.DefName]
		if !ok {
			if knownLeaf(cj.DefName) {
				fb.SubInstances = append(fb.SubInstances, cloneInstance(cj))
				continue
			}
			return nil, newError(ErrMissingModuleDef, Location{Module: m.DefName, NodeKind: "Cell:" + cj.InstName},
				"instance %q references undefined module %q", cj.InstName, cj.DefName)
		}
		if def.IsLeaf() {
			fb.SubInstances = append(fb.SubInstances, cloneInstance(cj))
			continue
		}
		childBody, ok := flatBodies[def.DefName]
		if !ok {
			return nil, errors.Errorf("vnetlist: flat body for %q not yet computed when flattening %q (level ordering violated)", def.DefName, m.DefName)
		}
		leaves, assigns, newWires := inlineChild(def, childBody, cj)
		fb.SubInstances = append(fb.SubInstances, leaves...)
		fb.Assigns = append(fb.Assigns, assigns...)
		fb.Wires = append(fb.Wires, newWires...)
	}
	return fb, nil
}

func cloneInstance(s onebit.SubInstance) onebit.SubInstance {
	return onebit.SubInstance{
		InstName:    s.InstName,
		DefName:     s.DefName,
		Connections: append([]onebit.PortConn(nil), s.Connections...),
	}
}

// inlineChild clones def's already-flattened body, renames its internal
// wires and sub-instance names with the cj.InstName__ prefix, and
// substitutes every reference to one of def's ports with the actual
// wire/constant cj connected to it. It returns the substituted leaf
// instances, the substituted residual assignments, and the new (prefixed,
// plus any dangling-open) wire declarations to merge into the parent's
// flat body.
func inlineChild(def *onebit.Module, childBody *onebit.Module, cj onebit.SubInstance) ([]onebit.SubInstance, []onebit.Assign, []onebit.PortDef) {
	prefix := cj.InstName + "__"
	clone := childBody.Clone()

	wireSet := make(map[string]bool, len(clone.Wires))
	for _, w := range clone.Wires {
		wireSet[w.Name] = true
	}

	actuals := make(map[portBit]onebit.VarRef, len(cj.Connections))
	for _, pc := range cj.Connections {
		actuals[portBit{pc.PortName, pc.Index}] = pc.Actual
	}

	var danglingWires []onebit.PortDef
	dangling := make(map[string]bool)
	substitute := func(v onebit.VarRef) onebit.VarRef {
		if v.IsAnonymous() {
			return v
		}
		if wireSet[v.Name] {
			return onebit.Named(prefix+v.Name, v.Index, v.IsVector)
		}
		if _, isPort := def.Port(v.Name); isPort {
			if actual, ok := actuals[portBit{v.Name, v.Index}]; ok {
				return actual
			}
			openName := prefix + "open_" + v.Name
			if !dangling[openName] {
				dangling[openName] = true
				danglingWires = append(danglingWires, onebit.PortDef{Name: openName, Width: 1})
			}
			return onebit.Named(openName, v.Index, false)
		}
		return v
	}

	for i := range clone.Assigns {
		clone.Assigns[i].LHS = substitute(clone.Assigns[i].LHS)
		clone.Assigns[i].RHS = substitute(clone.Assigns[i].RHS)
	}
	for i := range clone.SubInstances {
		clone.SubInstances[i].InstName = prefix + clone.SubInstances[i].InstName
		for j := range clone.SubInstances[i].Connections {
			clone.SubInstances[i].Connections[j].Actual = substitute(clone.SubInstances[i].Connections[j].Actual)
		}
	}

	renamedWires := make([]onebit.PortDef, len(clone.Wires))
	for i, w := range clone.Wires {
		renamedWires[i] = onebit.PortDef{Name: prefix + w.Name, Width: w.Width, IsVector: w.IsVector}
	}
	renamedWires = append(renamedWires, danglingWires...)

	return clone.SubInstances, clone.Assigns, renamedWires
}
