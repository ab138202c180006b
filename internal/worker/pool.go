// Package worker provides a worker pool for assembling many transcripts in
// parallel. Each transcript is assembled independently, so workers share
// no board state.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/pgn-delta/internal/assembler"
	"github.com/lgbarn/pgn-delta/internal/chess"
)

// WorkItem represents a transcript to be assembled.
type WorkItem struct {
	Name  string // Input name for reporting, e.g. a file path
	Text  string
	Index int // Original index for tracking
}

// ProcessResult represents the result of assembling a transcript.
type ProcessResult struct {
	Name     string
	Index    int
	Game     *chess.Game
	Warnings []error
	Error    error // Fatal error; Game is nil when set
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// AssembleFunc returns a ProcessFunc that assembles each item with a.
func AssembleFunc(a *assembler.Assembler) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		res := ProcessResult{Name: item.Name, Index: item.Index}
		result, err := a.Assemble(item.Text)
		if err != nil {
			res.Error = err
			return res
		}
		res.Game = result.Game
		res.Warnings = result.Warnings
		return res
	}
}

// Pool manages a pool of workers for parallel assembly. A Pool is used
// once: after Close (or Run) it cannot accept more work.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// processFunc is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(item)
	}
}

// Submit submits a work item for processing.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes items and returns their results in input order. Each
// item's Index is set to its position in items. If ctx is cancelled,
// items not yet processed get ctx.Err() as their Error.
func (p *Pool) Run(ctx context.Context, items []WorkItem) []ProcessResult {
	results := make([]ProcessResult, len(items))
	done := make([]bool, len(items))

	p.Start()
	go func() {
		defer p.Close()
		for i, item := range items {
			item.Index = i
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.workChan <- item:
			}
		}
	}()

	for result := range p.Results() {
		results[result.Index] = result
		done[result.Index] = true
	}

	for i, item := range items {
		if !done[i] {
			results[i] = ProcessResult{Name: item.Name, Index: i, Error: ctx.Err()}
		}
	}
	return results
}
