package world

import (
	"context"
	"runtime"
	"sync"
)

// slabJob classifies every voxel with x in [x0,x1)
type slabJob struct {
	x0, x1 int
	result chan<- int
}

// scanPool runs visibility classification over x-slabs in parallel. Slabs
// map to disjoint index ranges, so workers never write the same flag.
type scanPool struct {
	grid    *Grid
	vis     *visibilityIndex
	jobs    chan slabJob
	workers int
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func newScanPool(g *Grid, vis *visibilityIndex, workers int) *scanPool {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &scanPool{
		grid:    g,
		vis:     vis,
		jobs:    make(chan slabJob, workers*2),
		workers: workers,
		ctx:     ctx,
		cancel:  cancel,
	}
	for range workers {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *scanPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			n := p.classify(job.x0, job.x1)
			select {
			case job.result <- n:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *scanPool) classify(x0, x1 int) int {
	_, h, d := p.grid.Dims()
	visible := 0
	for x := x0; x < x1; x++ {
		for y := 0; y < h; y++ {
			for z := 0; z < d; z++ {
				e := exposed(p.grid, x, y, z)
				p.vis.flags[p.grid.Index(x, y, z)] = e
				if e {
					visible++
				}
			}
		}
	}
	return visible
}

// scan classifies the whole grid and returns the visible count
func (p *scanPool) scan() int {
	w, _, _ := p.grid.Dims()
	slab := max(1, (w+p.workers*4-1)/(p.workers*4))
	results := make(chan int, (w+slab-1)/slab)
	jobs := 0
	for x0 := 0; x0 < w; x0 += slab {
		select {
		case p.jobs <- slabJob{x0: x0, x1: min(x0+slab, w), result: results}:
			jobs++
		case <-p.ctx.Done():
			return 0
		}
	}
	total := 0
	for range jobs {
		total += <-results
	}
	return total
}

func (p *scanPool) shutdown() {
	p.cancel()
	close(p.jobs)
	p.wg.Wait()
}

// scanVisibility fills vis from g using one worker per CPU
func scanVisibility(g *Grid, vis *visibilityIndex) {
	p := newScanPool(g, vis, runtime.NumCPU())
	defer p.shutdown()
	vis.count = p.scan()
}
