package analyzer

import (
	"context"
	"os"

	"github.com/py2cpp-go/core/domain"
	"github.com/py2cpp-go/core/internal/symbol"
)

// ModuleResult pairs a file with its analyzed Session, or the error
// that kept it from analyzing (a read, parse or Logic error).
type ModuleResult struct {
	File    string
	Session *Session
	Err     error
}

// AnalyzeAll drives one Session per file concurrently through
// executor, each owning its own EntryNavigator/NodeQuery/SymbolTable
// and sharing only primitives (spec §5), matching the teacher's
// parallel_executor.go usage pattern. Results preserve the input
// file order.
func AnalyzeAll(ctx context.Context, executor domain.ParallelExecutor, files []string, primitives *symbol.Table) ([]ModuleResult, error) {
	results := make([]ModuleResult, len(files))
	tasks := make([]domain.ExecutableTask, 0, len(files))

	for i, file := range files {
		i, file := i, file
		tasks = append(tasks, newModuleTask(file, func(ctx context.Context) (interface{}, error) {
			source, err := os.ReadFile(file)
			// A module's own failure is reported through its ModuleResult,
			// not as a failure of the whole batch.
			if err != nil {
				results[i] = ModuleResult{File: file, Err: domain.NewFileNotFoundError(file, err)}
				return nil, nil
			}
			session, err := Analyze(ctx, "__main__", source, primitives)
			results[i] = ModuleResult{File: file, Session: session, Err: err}
			return session, nil
		}))
	}

	if err := executor.Execute(ctx, tasks); err != nil {
		return results, err
	}
	return results, nil
}

type moduleTask struct {
	name    string
	execute func(context.Context) (interface{}, error)
}

func newModuleTask(name string, execute func(context.Context) (interface{}, error)) *moduleTask {
	return &moduleTask{name: name, execute: execute}
}

func (t *moduleTask) Name() string { return t.name }
func (t *moduleTask) Execute(ctx context.Context) (interface{}, error) {
	return t.execute(ctx)
}
func (t *moduleTask) IsEnabled() bool { return true }
