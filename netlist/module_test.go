package netlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModulePortIndexOrdering(t *testing.T) {
	m := &Module{
		Inputs:  []PortDef{{Name: "a"}, {Name: "b"}},
		Outputs: []PortDef{{Name: "y"}},
		Inouts:  []PortDef{{Name: "io"}},
	}
	idx, ok := m.PortIndex("a")
	require.True(t, ok)
	require.Equal(t, 0, idx)
	idx, ok = m.PortIndex("b")
	require.True(t, ok)
	require.Equal(t, 1, idx)
	idx, ok = m.PortIndex("y")
	require.True(t, ok)
	require.Equal(t, 2, idx)
	idx, ok = m.PortIndex("io")
	require.True(t, ok)
	require.Equal(t, 3, idx)

	_, ok = m.PortIndex("nope")
	require.False(t, ok)
}

func TestModulePortAndWireLookup(t *testing.T) {
	m := &Module{
		Inputs: []PortDef{{Name: "a"}},
		Wires:  []PortDef{{Name: "n"}},
	}
	_, ok := m.Port("a")
	require.True(t, ok)
	_, ok = m.Port("n")
	require.False(t, ok)
	_, ok = m.Wire("n")
	require.True(t, ok)
}

func TestModuleIsLeaf(t *testing.T) {
	require.True(t, (&Module{Level: 0}).IsLeaf())
	require.False(t, (&Module{Level: 1}).IsLeaf())
	require.False(t, (&Module{Level: 0, Assigns: []AssignMulti{{}}}).IsLeaf())
	require.False(t, (&Module{Level: 0, SubInstances: []SubInstance{{}}}).IsLeaf())
}
