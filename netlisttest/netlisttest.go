// Package netlisttest provides comparison helpers for regrouping one-bit
// references back into their multi-bit shape and comparing two one-bit
// modules for structural equivalence regardless of field ordering. There is
// no simulator to drive matching input vectors through, so the comparison
// instead builds a deterministic, sorted string key for each module and
// diffs those.
package netlisttest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/db47h/vnetlist/internal/onebit"
	"github.com/db47h/vnetlist/netlist"
)

// Regroup concatenates consecutive one-bit refs that share a name and
// contiguous descending indices (or are consecutive anonymous bits) back
// into multi-bit VarRefs. This is the inverse of the bit exploder's
// per-operand expansion, used to check that exploding then regrouping
// reproduces the original rhs modulo constants.
func Regroup(bits []onebit.VarRef) []netlist.VarRef {
	var out []netlist.VarRef
	i := 0
	for i < len(bits) {
		b := bits[i]
		if b.IsAnonymous() {
			vals := []uint8{b.InitialVal}
			j := i + 1
			for j < len(bits) && bits[j].IsAnonymous() {
				vals = append(vals, bits[j].InitialVal)
				j++
			}
			width := uint32(len(vals))
			var value uint64
			for _, v := range vals {
				value = value<<1 | uint64(v)
			}
			out = append(out, netlist.VarRef{Width: width, Const: netlist.NewConstBits(width, value, 0)})
			i = j
			continue
		}
		name := b.Name
		hi, lo := b.Index, b.Index
		j := i + 1
		for j < len(bits) && !bits[j].IsAnonymous() && bits[j].Name == name && lo > 0 && bits[j].Index == lo-1 {
			lo--
			j++
		}
		out = append(out, netlist.VarRef{
			Name:     name,
			Range:    netlist.Range{Start: int(lo), End: int(hi)},
			Width:    hi - lo + 1,
			IsVector: hi != lo,
		})
		i = j
	}
	return out
}

// FlatModulesEqual reports whether a and b describe the same module up to
// reordering of ports, wires, instances, and assigns.
func FlatModulesEqual(a, b *onebit.Module) bool {
	return canonicalFlat(a) == canonicalFlat(b)
}

// Diff returns a human-readable difference between a and b's canonical
// forms, or "" if they're equal. Handy in test failure messages.
func Diff(a, b *onebit.Module) string {
	ca, cb := canonicalFlat(a), canonicalFlat(b)
	if ca == cb {
		return ""
	}
	return fmt.Sprintf("want:\n%s\ngot:\n%s", ca, cb)
}

func canonicalFlat(m *onebit.Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "def=%s level=%d\n", m.DefName, m.Level)

	writePorts := func(label string, ps []onebit.PortDef) {
		names := make([]string, len(ps))
		for i, p := range ps {
			names[i] = fmt.Sprintf("%s:%d", p.Name, p.Width)
		}
		sort.Strings(names)
		fmt.Fprintf(&sb, "%s=%s\n", label, strings.Join(names, ","))
	}
	writePorts("in", m.Inputs)
	writePorts("out", m.Outputs)
	writePorts("io", m.Inouts)
	writePorts("wire", m.Wires)

	insts := make([]string, len(m.SubInstances))
	for i, s := range m.SubInstances {
		conns := make([]string, len(s.Connections))
		for j, c := range s.Connections {
			conns[j] = fmt.Sprintf("%s[%d]=%s", c.PortName, c.Index, refKey(c.Actual))
		}
		sort.Strings(conns)
		insts[i] = fmt.Sprintf("%s:%s(%s)", s.InstName, s.DefName, strings.Join(conns, ","))
	}
	sort.Strings(insts)
	fmt.Fprintf(&sb, "inst=%s\n", strings.Join(insts, ";"))

	assigns := make([]string, len(m.Assigns))
	for i, a := range m.Assigns {
		assigns[i] = fmt.Sprintf("%s<-%s", refKey(a.LHS), refKey(a.RHS))
	}
	sort.Strings(assigns)
	fmt.Fprintf(&sb, "assign=%s\n", strings.Join(assigns, ";"))

	return sb.String()
}

func refKey(v onebit.VarRef) string {
	if v.IsAnonymous() {
		return fmt.Sprintf("const:%d", v.InitialVal)
	}
	return fmt.Sprintf("%s[%d]", v.Name, v.Index)
}

// AllLeaves reports whether every instance in m is a leaf, given a
// predicate that reports whether a definition name is a leaf (invariant 4:
// every instance of a flattened top is a leaf). isLeaf should consult both the
// hierarchical netlist and any external standard-cell registry.
func AllLeaves(m *onebit.Module, isLeaf func(defName string) bool) bool {
	for _, s := range m.SubInstances {
		if !isLeaf(s.DefName) {
			return false
		}
	}
	return true
}
