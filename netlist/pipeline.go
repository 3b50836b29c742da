package netlist

import (
	"log"

	"github.com/db47h/vnetlist/ast"
	"github.com/db47h/vnetlist/config"
	"github.com/db47h/vnetlist/internal/onebit"
	"github.com/db47h/vnetlist/stdcell"
)

// Counters are the pipeline's summary statistics over the flattened
// netlist.
type Counters struct {
	// TotalUsedStdCells is the number of leaf-cell instances in the flat
	// netlist.
	TotalUsedStdCells int
	// TotalUsedNotEmptyStdCells excludes instances of a definition named in
	// Config.EmptyLeafCells.
	TotalUsedNotEmptyStdCells int
	// TotalUsedBlackBoxes is the number of distinct leaf (level-0) module
	// definitions in the hierarchical netlist, Hier.NumLeafModules. Cells
	// known only through KnownLeaf, with no module definition, are not
	// counted.
	TotalUsedBlackBoxes int
	// TotalNotTieConstantAssign counts flat one-bit assigns whose rhs is a
	// named reference rather than a constant bit.
	TotalNotTieConstantAssign int
}

// Pipeline bundles one run of the extractor, exploder, and flattener over a
// single AST, plus the counters and lookups derived from its output.
//
// A Pipeline is used once: construct it, call Run, then read Hier/Flat/
// Counters. Nothing on it is safe for concurrent use by multiple
// goroutines; cmd/vnetlist-batch runs one Pipeline per goroutine instead of
// sharing one.
type Pipeline struct {
	Config *config.Config
	Logger *log.Logger

	// KnownLeaf identifies instantiated module names that are library
	// black boxes with no AST body at all (so they never appear in the
	// extractor's module map). Defaults to stdcell.IsKnown; callers linking
	// in a different cell library can override it.
	KnownLeaf func(string) bool

	Hier     *HierNetlist
	Flat     *onebit.Module
	Counters Counters

	modules     map[string]*Module
	moduleOrder []string
	moduleIndex map[string]int
}

// NewPipeline constructs a Pipeline. cfg may be nil, in which case
// config.Default() is used; logger may be nil to discard diagnostics.
func NewPipeline(cfg *config.Config, logger *log.Logger) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Pipeline{Config: cfg, Logger: logger, KnownLeaf: stdcell.IsKnown}
}

// Run executes all three stages over root and populates Hier, Flat, and
// Counters. It is fatal (and returns without partial results) on any
// UnsupportedDirection, WidthMismatch, or MissingModuleDef condition.
func (p *Pipeline) Run(root ast.Node) error {
	modules, order, err := Extract(root, p.Logger)
	if err != nil {
		return err
	}

	exploded := Explode(modules)
	hier := SortByLevel(exploded, order)

	flat, err := Flatten(hier, exploded, p.KnownLeaf)
	if err != nil {
		return err
	}
	p.modules = modules
	p.moduleOrder = order
	p.Hier = hier
	p.Flat = flat

	p.computeCounters()
	p.buildModuleIndex()
	return nil
}

func (p *Pipeline) computeCounters() {
	empty := make(map[string]bool, len(p.Config.EmptyLeafCells))
	for _, n := range p.Config.EmptyLeafCells {
		empty[n] = true
	}
	var c Counters
	for _, inst := range p.Flat.SubInstances {
		c.TotalUsedStdCells++
		if !empty[inst.DefName] {
			c.TotalUsedNotEmptyStdCells++
		}
	}
	c.TotalUsedBlackBoxes = p.Hier.NumLeafModules
	for _, a := range p.Flat.Assigns {
		if !a.RHS.IsAnonymous() {
			c.TotalNotTieConstantAssign++
		}
	}
	p.Counters = c
}

func (p *Pipeline) buildModuleIndex() {
	p.moduleIndex = make(map[string]int, len(p.Hier.Modules))
	for i, m := range p.Hier.Modules {
		p.moduleIndex[m.DefName] = i
	}
}

// ModuleIndex returns the position of the named module within Hier.Modules.
func (p *Pipeline) ModuleIndex(name string) (int, bool) {
	idx, ok := p.moduleIndex[name]
	return idx, ok
}

// Modules returns the multi-bit hierarchical netlist the extractor
// produced, keyed by definition name.
func (p *Pipeline) Modules() map[string]*Module { return p.modules }
