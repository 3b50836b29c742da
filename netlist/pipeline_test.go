package netlist

import (
	"testing"

	"github.com/db47h/vnetlist/ast"
	"github.com/db47h/vnetlist/config"
	"github.com/stretchr/testify/require"
)

// invFixture builds a leaf Not module plus an inv module instantiating it
// once.
func invFixture() ast.Node {
	notLeaf := ast.NewModule("Not", 0,
		ast.NewVar("in", ast.DirInput, 1, 0, 0),
		ast.NewVar("out", ast.DirOutput, 1, 0, 0),
	)
	a := ast.NewVar("a", ast.DirInput, 1, 0, 0)
	y := ast.NewVar("y", ast.DirOutput, 1, 0, 0)
	inst := ast.NewCell("u_not", "Not",
		ast.NewPin("in", ast.NewVarRef("a", ast.AccessRead, 0, 0)),
		ast.NewPin("out", ast.NewVarRef("y", ast.AccessWrite, 0, 0)),
	)
	inv := ast.NewModule("inv", 1, a, y, inst)
	return ast.NewNetlist(notLeaf, inv)
}

func TestPipelineRunEndToEnd(t *testing.T) {
	p := NewPipeline(config.Default(), nil)
	err := p.Run(invFixture())
	require.NoError(t, err)

	require.NotNil(t, p.Flat)
	require.Equal(t, "inv", p.Flat.DefName)
	require.Len(t, p.Flat.SubInstances, 1)
	require.Equal(t, "Not", p.Flat.SubInstances[0].DefName)

	require.Equal(t, 1, p.Counters.TotalUsedStdCells)
	require.Equal(t, 1, p.Counters.TotalUsedNotEmptyStdCells)
	require.Equal(t, 1, p.Counters.TotalUsedBlackBoxes)

	idx, ok := p.ModuleIndex("inv")
	require.True(t, ok)
	require.GreaterOrEqual(t, idx, 0)
	_, ok = p.ModuleIndex("nonexistent")
	require.False(t, ok)
}

func TestPipelineEmptyLeafCellsExcluded(t *testing.T) {
	cfg := &config.Config{EmptyLeafCells: []string{"Not"}}
	p := NewPipeline(cfg, nil)
	err := p.Run(invFixture())
	require.NoError(t, err)
	require.Equal(t, 1, p.Counters.TotalUsedStdCells)
	require.Equal(t, 0, p.Counters.TotalUsedNotEmptyStdCells)
}

func TestPipelineDefaultsConfigWhenNil(t *testing.T) {
	p := NewPipeline(nil, nil)
	require.NotNil(t, p.Config)
	require.NotEmpty(t, p.Config.EmptyLeafCells)
}
