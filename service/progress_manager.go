package service

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/py2cpp-go/core/domain"
)

// TaskState tracks one named task's place in the batch (one entry per
// module under analysis by `pyscn check`).
type TaskState struct {
	Name        string
	ProgressBar *progressbar.ProgressBar
	Started     bool
	Completed   bool
	Success     bool
	Processed   int
	Total       int
}

// ProgressManagerImpl reports `pyscn check`'s progress across a batch
// of concurrently-analyzed modules: a live bar when stderr is a
// terminal, nothing when it isn't (CI logs, redirected output).
type ProgressManagerImpl struct {
	mu          sync.Mutex
	writer      io.Writer
	tasks       map[string]*TaskState
	totalFiles  int
	interactive bool
	initialized bool
}

// NewProgressManager returns a manager writing to stderr, with
// interactivity auto-detected from that stream.
func NewProgressManager() domain.ProgressManager {
	return &ProgressManagerImpl{
		tasks:       make(map[string]*TaskState),
		writer:      os.Stderr,
		interactive: ttyStderr(),
	}
}

// Initialize resets tracking for a new batch of totalFiles modules.
func (pm *ProgressManagerImpl) Initialize(totalFiles int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.totalFiles = totalFiles
	pm.initialized = true
	pm.tasks = make(map[string]*TaskState)
}

// StartTask records taskName as started, creating its progress bar if
// the manager is in interactive mode.
func (pm *ProgressManagerImpl) StartTask(taskName string) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if !pm.initialized {
		return
	}

	task := pm.taskFor(taskName, pm.totalFiles)
	task.Started = true
	if pm.interactive && task.ProgressBar == nil {
		task.ProgressBar = pm.newBar(taskName, pm.totalFiles)
	}
}

// CompleteTask finalizes taskName's bar and records whether it
// succeeded.
func (pm *ProgressManagerImpl) CompleteTask(taskName string, success bool) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	task, exists := pm.tasks[taskName]
	if !exists {
		return
	}
	task.Completed = true
	task.Success = success
	if task.ProgressBar != nil {
		_ = task.ProgressBar.Finish()
	}
}

// UpdateProgress advances taskName's counter (creating the task entry
// if StartTask hasn't been called yet).
func (pm *ProgressManagerImpl) UpdateProgress(taskName string, processed, total int) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	task := pm.taskFor(taskName, total)
	task.Processed = processed
	task.Total = total
	if task.ProgressBar != nil {
		_ = task.ProgressBar.Set(processed)
	}
}

// SetWriter redirects progress bar output and re-derives
// interactivity from the new destination.
func (pm *ProgressManagerImpl) SetWriter(writer io.Writer) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.writer = writer
	if file, ok := writer.(*os.File); ok {
		pm.interactive = term.IsTerminal(int(file.Fd()))
	} else {
		pm.interactive = false
	}
}

// IsInteractive reports whether progress bars are being rendered.
func (pm *ProgressManagerImpl) IsInteractive() bool {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return pm.interactive
}

// Close finishes any bar left incomplete, e.g. by a batch that
// errored out before every task reported completion.
func (pm *ProgressManagerImpl) Close() {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	for _, task := range pm.tasks {
		if task.ProgressBar != nil && !task.Completed {
			_ = task.ProgressBar.Finish()
		}
	}
}

// GetTaskStatus returns a snapshot of every task's state, safe for
// the caller to read without further locking.
func (pm *ProgressManagerImpl) GetTaskStatus() map[string]*TaskState {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	status := make(map[string]*TaskState, len(pm.tasks))
	for name, task := range pm.tasks {
		taskCopy := *task
		status[name] = &taskCopy
	}
	return status
}

// taskFor returns taskName's entry, creating it with the given total
// if this is the first reference to it. Caller must hold pm.mu.
func (pm *ProgressManagerImpl) taskFor(taskName string, total int) *TaskState {
	task, exists := pm.tasks[taskName]
	if !exists {
		task = &TaskState{Name: taskName, Total: total}
		pm.tasks[taskName] = task
	}
	return task
}

func (pm *ProgressManagerImpl) newBar(description string, max int) *progressbar.ProgressBar {
	writer := pm.writer
	if writer == nil {
		writer = io.Discard
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSetWriter(writer),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(writer) }),
	)
}

// ttyStderr reports whether stderr looks like an interactive terminal
// and we're not running under CI (which sets $CI and typically
// redirects stderr to a log file anyway).
func ttyStderr() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
