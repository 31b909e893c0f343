package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/py2cpp-go/core/domain"
)

const defaultBatchTimeout = 10 * time.Minute

// ParallelExecutorImpl fans a batch of ExecutableTasks out across
// goroutines, optionally bounding concurrency with a semaphore
// (spec §5's "multiple modules may be analyzed concurrently" — each
// task here is one module's independent parse+symbol-table pipeline).
type ParallelExecutorImpl struct {
	maxConcurrency int
	timeout        time.Duration
}

// NewParallelExecutor returns an executor with no concurrency cap and
// a conservative default timeout; callers adjust both via
// SetMaxConcurrency/SetTimeout before the first Execute.
func NewParallelExecutor() domain.ParallelExecutor {
	return &ParallelExecutorImpl{timeout: defaultBatchTimeout}
}

// SetMaxConcurrency bounds how many tasks run at once; 0 (the
// default) means unbounded.
func (pe *ParallelExecutorImpl) SetMaxConcurrency(max int) {
	pe.maxConcurrency = max
}

// SetTimeout bounds the whole batch, not any individual task.
func (pe *ParallelExecutorImpl) SetTimeout(timeout time.Duration) {
	pe.timeout = timeout
}

// Execute runs every enabled task, waits for the batch to finish or
// the timeout to elapse, and reports the first failure (if any)
// alongside a count of how many tasks failed.
func (pe *ParallelExecutorImpl) Execute(ctx context.Context, tasks []domain.ExecutableTask) error {
	if len(tasks) == 0 {
		return nil
	}

	if pe.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pe.timeout)
		defer cancel()
	}

	var gate chan struct{}
	if pe.maxConcurrency > 0 {
		gate = make(chan struct{}, pe.maxConcurrency)
	}

	failures := make(chan error, len(tasks))
	var inFlight sync.WaitGroup

	for _, task := range tasks {
		if !task.IsEnabled() {
			continue
		}
		inFlight.Add(1)
		go pe.runOne(ctx, task, gate, &inFlight, failures)
	}

	allDone := make(chan struct{})
	go func() {
		inFlight.Wait()
		close(allDone)
	}()

	select {
	case <-allDone:
		close(failures)
		var errs []error
		for err := range failures {
			errs = append(errs, err)
		}
		if len(errs) > 0 {
			return fmt.Errorf("parallel execution failed with %d errors: %v", len(errs), errs[0])
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("parallel execution timed out after %v", pe.timeout)
	}
}

func (pe *ParallelExecutorImpl) runOne(ctx context.Context, task domain.ExecutableTask, gate chan struct{}, wg *sync.WaitGroup, failures chan<- error) {
	defer wg.Done()

	if gate != nil {
		gate <- struct{}{}
		defer func() { <-gate }()
	}

	select {
	case <-ctx.Done():
		failures <- fmt.Errorf("task %s cancelled: %w", task.Name(), ctx.Err())
		return
	default:
	}

	if _, err := task.Execute(ctx); err != nil {
		failures <- fmt.Errorf("task %s failed: %w", task.Name(), err)
	}
}

// SimpleTask adapts a plain function into an ExecutableTask.
type SimpleTask struct {
	name    string
	enabled bool
	run     func(context.Context) (interface{}, error)
}

// NewSimpleTask wraps run as a named, optionally-disabled task.
func NewSimpleTask(name string, enabled bool, run func(context.Context) (interface{}, error)) domain.ExecutableTask {
	return &SimpleTask{name: name, enabled: enabled, run: run}
}

func (t *SimpleTask) Name() string { return t.name }

func (t *SimpleTask) IsEnabled() bool { return t.enabled }

func (t *SimpleTask) Execute(ctx context.Context) (interface{}, error) {
	if t.run == nil {
		return nil, fmt.Errorf("task %s has no execute function", t.name)
	}
	return t.run(ctx)
}
