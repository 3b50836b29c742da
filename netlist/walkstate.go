package netlist

import (
	"log"
)

// walkState is the extractor's explicit per-invocation state: fields on a
// struct passed by pointer to a single recursive walk function, rather than
// scratch variables closed over by a tree of visitor methods. Nothing here
// outlives one call to Extract.
type walkState struct {
	modules     map[string]*Module
	moduleOrder []string

	curModule   *Module
	curInstance *SubInstance
	curAssign   *AssignMulti
	curPin      *PortConnMulti

	inAssign   bool
	lhsPending bool

	// selDepth: 0 outside a Select, 1 while visiting the base expression,
	// 2 for the start-offset constant, 3 for the width constant.
	selDepth int
	scratch  VarRef
	selStart int

	logger *log.Logger
}

func newWalkState(logger *log.Logger) *walkState {
	return &walkState{modules: make(map[string]*Module), logger: logger}
}

// activeSlice returns the rhs/actuals list the walker is currently
// accumulating into: a Pin's actuals take priority over an assign's rhs,
// since Pins are only ever visited while already inside a Cell which is
// never itself inside an assignment.
func (st *walkState) activeSlice() *[]VarRef {
	if st.curPin != nil {
		return &st.curPin.Actuals
	}
	if st.curAssign != nil {
		return &st.curAssign.RHS
	}
	return nil
}

// emit routes a fully-built VarRef to the lhs of the current assignment (if
// pending) or appends it to the active rhs/actuals stream.
func (st *walkState) emit(v VarRef) {
	if st.lhsPending {
		st.curAssign.LHS = v
		st.lhsPending = false
		return
	}
	if s := st.activeSlice(); s != nil {
		*s = append(*s, v)
	}
}

func (st *walkState) logf(format string, args ...interface{}) {
	if st.logger != nil {
		st.logger.Printf(format, args...)
	}
}

// withAssign installs a fresh AssignMulti as the current one for the
// duration of fn, restoring the previous one (possibly nil) afterward.
func (st *walkState) withAssign(fn func() error) (AssignMulti, error) {
	prevAssign, prevInAssign, prevLhsPending := st.curAssign, st.inAssign, st.lhsPending
	a := &AssignMulti{}
	st.curAssign, st.inAssign, st.lhsPending = a, true, true
	err := fn()
	st.curAssign, st.inAssign, st.lhsPending = prevAssign, prevInAssign, prevLhsPending
	return *a, err
}
