package renderer

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int // For deterministic ordering
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// TileFunc renders one tile. It is called concurrently for different tiles.
type TileFunc func(task TileTask) TileResult

// WorkerPool runs tile tasks with bounded parallelism
type WorkerPool struct {
	group      errgroup.Group
	render     TileFunc
	numWorkers int

	mu      sync.Mutex
	results []TileResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, render TileFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		render:     render,
		numWorkers: numWorkers,
	}
	wp.group.SetLimit(numWorkers)
	return wp
}

// SubmitTask queues a tile. It blocks while every worker is busy.
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.group.Go(func() error {
		result := wp.render(task)
		result.TaskID = task.TaskID

		wp.mu.Lock()
		wp.results = append(wp.results, result)
		wp.mu.Unlock()

		return nil
	})
}

// Wait blocks until every submitted task has finished and returns the
// results ordered by TaskID
func (wp *WorkerPool) Wait() []TileResult {
	// Tasks always return nil
	_ = wp.group.Wait()

	wp.mu.Lock()
	defer wp.mu.Unlock()
	sort.Slice(wp.results, func(i, j int) bool {
		return wp.results[i].TaskID < wp.results[j].TaskID
	})
	return wp.results
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}
