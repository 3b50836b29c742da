package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChildrenTraversal(t *testing.T) {
	m := NewModule("m",
		0,
		NewVar("a", DirInput, 1, 0, 0),
		NewVar("b", DirOutput, 2, 0, 1),
	)
	kids := Children(m)
	require.Len(t, kids, 2)
	require.Equal(t, "a", kids[0].Name())
	require.Equal(t, "b", kids[1].Name())
}

func TestNewVarRefWidthFromDeclRange(t *testing.T) {
	v := NewVarRef("bus", AccessRead, 0, 7)
	require.EqualValues(t, 8, v.Width())
	lo, hi := v.DeclRange()
	require.Equal(t, 0, lo)
	require.Equal(t, 7, hi)

	// Reversed declaration order (hi < lo in source) still yields the same
	// width.
	rv := NewVarRef("bus", AccessRead, 7, 0)
	require.EqualValues(t, 8, rv.Width())
}

func TestNewSelectBuildsConstChildren(t *testing.T) {
	base := NewVarRef("bus", AccessRead, 0, 7)
	sel := NewSelect(base, 2, 3)
	require.Equal(t, Select, sel.Kind())
	require.EqualValues(t, 3, sel.Width())

	kids := Children(sel)
	require.Len(t, kids, 3)
	require.Equal(t, base, kids[0])
	require.Equal(t, Const, kids[1].Kind())
	require.EqualValues(t, 2, kids[1].ConstLit().Value[0])
	require.Equal(t, Const, kids[2].Kind())
	require.EqualValues(t, 3, kids[2].ConstLit().Value[0])
}

func TestNewReplicateWidth(t *testing.T) {
	elem := NewVarRef("a", AccessRead, 0, 1)
	rep := NewReplicate(elem, 3)
	require.EqualValues(t, 6, rep.Width())
}

func TestNewConcatWidthSum(t *testing.T) {
	a := NewVarRef("a", AccessRead, 0, 1)
	b := NewVarRef("b", AccessRead, 0, 0)
	c := NewConcat(a, b)
	require.EqualValues(t, 3, c.Width())
}

func TestConstLitHasXAndBit(t *testing.T) {
	lit := ConstLit{Value: []uint64{0b0001}, XMask: []uint64{0b1100}, Width: 4}
	require.True(t, lit.HasX())
	require.Equal(t, 1, lit.Bit(0))
	require.Equal(t, 0, lit.Bit(1))

	noX := ConstLit{Value: []uint64{0xA5}, XMask: []uint64{0}, Width: 8}
	require.False(t, noX.HasX())
}

func TestKindAndDirectionStrings(t *testing.T) {
	require.Equal(t, "Module", Module.String())
	require.Equal(t, "VarRef", VarRef.String())
	require.NotEmpty(t, Other.String())

	require.Equal(t, "input", DirInput.String())
	require.Equal(t, "output", DirOutput.String())
}
