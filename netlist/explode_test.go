package netlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandBitsConstantMSBFirst(t *testing.T) {
	// 0xA5 = 1010_0101; exploder must walk from bit 7 down to bit 0.
	c := NewConstBits(8, 0xA5, 0)
	bits := expandBits([]VarRef{constVarRef(c)})
	require.Len(t, bits, 8)
	want := []uint8{1, 0, 1, 0, 0, 1, 0, 1}
	for i, b := range bits {
		require.True(t, b.IsAnonymous())
		require.Equalf(t, want[i], b.InitialVal, "bit %d", i)
	}
}

func TestExpandBitsNamedDescending(t *testing.T) {
	v := namedVarRef("bus", Range{Start: 0, End: 3}, 4)
	bits := expandBits([]VarRef{v})
	require.Len(t, bits, 4)
	for i, want := range []uint32{3, 2, 1, 0} {
		require.Equal(t, "bus", bits[i].Name)
		require.Equal(t, want, bits[i].Index)
	}
}

func TestExplodeModuleStructural(t *testing.T) {
	m := &Module{
		DefName: "m",
		Inputs:  []PortDef{{Name: "a", Direction: DirInput, Width: 1}},
		Outputs: []PortDef{{Name: "y", Direction: DirOutput, Width: 1}},
		Assigns: []AssignMulti{
			{LHS: namedVarRef("y", Range{0, 0}, 1), RHS: []VarRef{namedVarRef("a", Range{0, 0}, 1)}},
		},
	}
	ob := ExplodeModule(m)
	require.Equal(t, "m", ob.DefName)
	require.Len(t, ob.Assigns, 1)
	require.Equal(t, "y", ob.Assigns[0].LHS.Name)
	require.Equal(t, "a", ob.Assigns[0].RHS.Name)
}

func TestExplodePortConnIndexing(t *testing.T) {
	pc := PortConnMulti{
		PortName: "p",
		Actuals: []VarRef{
			namedVarRef("w1", Range{0, 0}, 1),
			namedVarRef("w2", Range{0, 1}, 2),
		},
	}
	conns := explodePortConn(pc)
	require.Len(t, conns, 3)
	for i, want := range []uint32{2, 1, 0} {
		require.Equal(t, want, conns[i].Index)
	}
	require.Equal(t, "w1", conns[0].Actual.Name)
	require.Equal(t, "w2", conns[1].Actual.Name)
	require.EqualValues(t, 1, conns[1].Actual.Index)
	require.Equal(t, "w2", conns[2].Actual.Name)
	require.EqualValues(t, 0, conns[2].Actual.Index)
}
