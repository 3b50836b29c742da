package emit

import (
	"strings"
	"testing"

	"github.com/db47h/vnetlist/internal/onebit"
	"github.com/db47h/vnetlist/netlist"
	"github.com/stretchr/testify/require"
)

func TestEmitFlatModule(t *testing.T) {
	m := &onebit.Module{
		DefName: "inv",
		Level:   1,
		Inputs:  []onebit.PortDef{{Name: "a", Width: 1}},
		Outputs: []onebit.PortDef{{Name: "y", Width: 1}},
		SubInstances: []onebit.SubInstance{
			{InstName: "u_not", DefName: "Not", Connections: []onebit.PortConn{
				{PortName: "in", Index: 0, Actual: onebit.Named("a", 0, false)},
				{PortName: "out", Index: 0, Actual: onebit.Named("y", 0, false)},
			}},
		},
	}
	var sb strings.Builder
	e := New(&sb)
	require.NoError(t, e.EmitFlat(m))

	out := sb.String()
	require.Contains(t, out, "module inv (a, y);")
	require.Contains(t, out, "input a;")
	require.Contains(t, out, "output y;")
	require.Contains(t, out, "Not u_not (")
	require.Contains(t, out, ".in(a)")
	require.Contains(t, out, ".out(y)")
	require.Contains(t, out, "endmodule")
	require.NotContains(t, out, "black box")
}

func TestEmitHierMarksLeavesAsBlackBoxes(t *testing.T) {
	leaf := &onebit.Module{
		DefName: "Not",
		Level:   0,
		Inputs:  []onebit.PortDef{{Name: "in", Width: 1}},
		Outputs: []onebit.PortDef{{Name: "out", Width: 1}},
	}
	hier := &netlist.HierNetlist{Modules: []*onebit.Module{leaf}, NumLeafModules: 1}

	var sb strings.Builder
	require.NoError(t, New(&sb).EmitHier(hier))
	out := sb.String()
	require.Contains(t, out, "module Not (in, out);")
	require.Contains(t, out, "endmodule // black box")
}

func TestRefStringConstants(t *testing.T) {
	require.Equal(t, "1'b0", refString(onebit.Anonymous(0)))
	require.Equal(t, "1'b1", refString(onebit.Anonymous(1)))
	require.Equal(t, "bus[3]", refString(onebit.Named("bus", 3, true)))
	require.Equal(t, "y", refString(onebit.Named("y", 0, false)))
}

func TestGroupConnectionsMultiBitPort(t *testing.T) {
	conns := []onebit.PortConn{
		{PortName: "p", Index: 2, Actual: onebit.Named("w1", 0, false)},
		{PortName: "p", Index: 1, Actual: onebit.Named("w2", 1, true)},
		{PortName: "p", Index: 0, Actual: onebit.Named("w2", 0, true)},
	}
	groups := groupConnections(conns)
	require.Len(t, groups, 1)
	require.Equal(t, "{w1, w2[1], w2[0]}", pinRHS(groups[0]))
}
