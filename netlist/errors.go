package netlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a fatal pipeline error.
type ErrorKind int

const (
	ErrUnsupportedDirection ErrorKind = iota
	ErrWidthMismatch
	ErrMissingModuleDef
	ErrEmitterIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnsupportedDirection:
		return "UnsupportedDirection"
	case ErrWidthMismatch:
		return "WidthMismatch"
	case ErrMissingModuleDef:
		return "MissingModuleDef"
	case ErrEmitterIO:
		return "EmitterIO"
	default:
		return "Unknown"
	}
}

// Location pinpoints the AST location a fatal error originated from: the
// enclosing module and a description of the offending node (node kind plus,
// where applicable, an assignment or instance index).
type Location struct {
	Module   string
	NodeKind string
}

func (l Location) String() string {
	if l.Module == "" {
		return l.NodeKind
	}
	return l.Module + "." + l.NodeKind
}

// PipelineError is the error type returned for every fatal pipeline
// condition. An unrecognized AST node kind is deliberately not one of
// these: it is logged and the walker recurses through it transparently.
type PipelineError struct {
	Kind ErrorKind
	Loc  Location
	Err  error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s at %s: %v", e.Kind, e.Loc, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

func newError(kind ErrorKind, loc Location, format string, args ...interface{}) error {
	return &PipelineError{Kind: kind, Loc: loc, Err: errors.Errorf(format, args...)}
}
