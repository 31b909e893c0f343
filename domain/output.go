package domain

import (
	"context"
	"io"
	"os"
	"time"
)

// OutputFormat names the text/json/yaml result renderings; none of the
// pyscn commands or MCP tools reads it.
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

// FileReader abstracts filesystem access for module discovery, so the
// loader can be exercised against a fake in tests.
type FileReader interface {
	CollectPythonFiles(paths []string, recursive bool, includePatterns, excludePatterns []string) ([]string, error)
	ReadFile(path string) ([]byte, error)
	IsValidPythonFile(path string) bool
	FileExists(path string) (bool, error)
	GetFileInfo(path string) (os.FileInfo, error)
	ValidatePaths(paths []string) error
}

// ErrorCategory classifies a failure for CLI/MCP reporting, distinct
// from the five-member core error taxonomy in errors.go (which
// classifies WHY the core core refused, not where the caller should
// look).
type ErrorCategory string

const (
	ErrorCategoryInput      ErrorCategory = "input"
	ErrorCategoryConfig     ErrorCategory = "config"
	ErrorCategoryTimeout    ErrorCategory = "timeout"
	ErrorCategoryOutput     ErrorCategory = "output"
	ErrorCategoryProcessing ErrorCategory = "processing"
	ErrorCategoryUnknown    ErrorCategory = "unknown"
)

// CategorizedError pairs an error with its category and a
// user-facing explanation, produced by an ErrorCategorizer.
type CategorizedError struct {
	Category ErrorCategory
	Message  string
	Original error
}

func (e *CategorizedError) Error() string {
	if e.Original != nil {
		return e.Original.Error()
	}
	return e.Message
}

func (e *CategorizedError) Unwrap() error { return e.Original }

// ErrorCategorizer turns a raw error into a CategorizedError with
// recovery guidance, implemented in the service layer.
type ErrorCategorizer interface {
	Categorize(err error) *CategorizedError
	GetRecoverySuggestions(category ErrorCategory) []string
}

// ExecutableTask is one unit of work handed to a ParallelExecutor
// (one module's parse+analyze pipeline, per spec §5's "multiple
// modules may be analyzed concurrently").
type ExecutableTask interface {
	Name() string
	Execute(ctx context.Context) (interface{}, error)
	IsEnabled() bool
}

// ParallelExecutor runs a batch of ExecutableTasks concurrently,
// bounded by SetMaxConcurrency, implemented in the service layer.
type ParallelExecutor interface {
	Execute(ctx context.Context, tasks []ExecutableTask) error
	SetMaxConcurrency(max int)
	SetTimeout(timeout time.Duration)
}

// ProgressManager abstracts the CLI's interactive progress display
// over a batch of files (spec §5's concurrent multi-module analysis),
// implemented in the service layer.
type ProgressManager interface {
	Initialize(totalFiles int)
	StartTask(taskName string)
	CompleteTask(taskName string, success bool)
	UpdateProgress(taskName string, processed, total int)
	SetWriter(writer io.Writer)
	IsInteractive() bool
	Close()
}

