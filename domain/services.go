package domain

import "context"

// ResolverService resolves aliases used in markup documents to the script
// files they denote
type ResolverService interface {
	// Resolve maps an alias to the absolute path of its script module
	Resolve(ctx context.Context, req ResolveRequest) (*ResolveResponse, error)

	// Describe returns hover-style metadata for alias.function
	Describe(ctx context.Context, req DescribeRequest) (*DescribeResponse, error)
}

// FunctionService extracts function records from script files
type FunctionService interface {
	// Extract processes every file in the request
	Extract(ctx context.Context, req FunctionsRequest) (*FunctionsResponse, error)

	// ExtractFile processes a single script file
	ExtractFile(ctx context.Context, path string) ([]FunctionInfo, error)
}

// AutoImportService proposes import candidates for typed identifiers
type AutoImportService interface {
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)
}

// ReferenceService searches markup documents for usages of script functions
type ReferenceService interface {
	Search(ctx context.Context, req ReferencesRequest) (*ReferencesResponse, error)
}

// WorkspaceFileFinder enumerates workspace files matching a glob pattern.
// Implementations apply their own exclusion of build/VCS/dependency
// directories and stop at maxResults.
type WorkspaceFileFinder interface {
	FindFiles(ctx context.Context, root, pattern string, maxResults int) ([]string, error)
}

// ContentReader retrieves file content without failing. The second return
// value is false when the file is missing or unreadable; callers treat that
// as "feature unavailable for this request".
type ContentReader interface {
	Read(path string) (string, bool)
}

// FunctionCache holds parsed function records keyed by absolute script
// path. At most one entry exists per path; concurrent repopulation is
// last-write-wins.
type FunctionCache interface {
	Get(path string) ([]FunctionInfo, bool)
	Put(path string, functions []FunctionInfo)
	Invalidate(path string)
	InvalidateAll()
	Len() int
}

// ProgressManager handles progress reporting during long operations
type ProgressManager interface {
	StartTask(description string, total int) TaskProgress
	IsInteractive() bool
	Close()
}

// TaskProgress tracks progress of a single task
type TaskProgress interface {
	Increment(n int)
	Describe(description string)
	Complete()
}

// ExecutableTask is a unit of work for the parallel executor
type ExecutableTask interface {
	Name() string
	IsEnabled() bool
	Execute(ctx context.Context) error
}

// ParallelExecutor runs tasks concurrently with bounded parallelism
type ParallelExecutor interface {
	Execute(ctx context.Context, tasks []ExecutableTask) error
}
