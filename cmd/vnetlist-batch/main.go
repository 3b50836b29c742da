// Command vnetlist-batch runs the pipeline over several independent
// designs concurrently, one Pipeline per design, fanned across a worker
// pool. Each individual pipeline run stays single-threaded and
// synchronous; only the fan-out across designs is parallel.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"

	"github.com/db47h/vnetlist/ast"
	"github.com/db47h/vnetlist/config"
	"github.com/db47h/vnetlist/netlist"
)

var logger = log.New(os.Stderr, "vnetlist-batch: ", log.LstdFlags)

// job is one independent pipeline invocation to run.
type job struct {
	name string
	root ast.Node
}

// result is one job's outcome.
type result struct {
	name     string
	counters netlist.Counters
	err      error
}

func main() {
	workers := flag.Int("workers", runtime.GOMAXPROCS(-1), "number of concurrent pipeline workers")
	copies := flag.Int("copies", 4, "number of independent design copies to process")
	flag.Parse()

	jobs := make([]job, *copies)
	for i := range jobs {
		jobs[i] = job{name: fmt.Sprintf("design-%d", i), root: fixture()}
	}

	results := runBatch(jobs, *workers)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			logger.Printf("%s: FAILED: %v", r.name, r.err)
			failed++
			continue
		}
		logger.Printf("%s: stdCells=%d blackBoxes=%d", r.name, r.counters.TotalUsedStdCells, r.counters.TotalUsedBlackBoxes)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// runBatch fans jobs across workers goroutines, each pulling from a shared
// channel and running its own Pipeline to completion before taking the
// next job: a fixed pool draining a channel of whole pipeline runs.
func runBatch(jobs []job, workers int) []result {
	if workers < 1 {
		workers = 1
	}
	in := make(chan job)
	out := make(chan result, len(jobs))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range in {
				out <- runJob(j)
			}
		}()
	}

	go func() {
		for _, j := range jobs {
			in <- j
		}
		close(in)
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]result, 0, len(jobs))
	for r := range out {
		results = append(results, r)
	}
	return results
}

func runJob(j job) result {
	p := netlist.NewPipeline(config.Default(), nil)
	if err := p.Run(j.root); err != nil {
		return result{name: j.name, err: err}
	}
	return result{name: j.name, counters: p.Counters}
}

func fixture() ast.Node {
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
