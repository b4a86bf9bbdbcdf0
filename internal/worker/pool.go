// Package worker provides a worker pool for parsing several PGN
// sources in parallel. Games inside one source are sequential by
// nature of the format, so the unit of work is a whole source.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/pgn-reader-go/internal/source"
)

// WorkItem is one PGN source to parse.
type WorkItem struct {
	Source source.Source
	Index  int // Original index for stable reporting
}

// ProcessResult carries the statistics of one parsed source.
type ProcessResult struct {
	Name            string
	Index           int
	Games           int
	GamesWithResult int
	GamesWithErrors int
	Err             error
}

// ProcessFunc parses one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of worker goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool running processFunc. The defaults are one
// worker and a buffer of 10 items.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker drains the work channel until it is closed. After Stop,
// remaining items are discarded without being parsed.
func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.workChan {
		if p.IsStopped() {
			continue
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop makes workers discard any items not yet started.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel, waits for the workers and then
// closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the channel the workers report on.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
