package service

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/constants"
	"github.com/ludo-technologies/qmllink/internal/scanner"
)

// ReferenceServiceImpl implements domain.ReferenceService: it scans markup
// documents across the workspace for usages of one script function through
// whatever alias each document binds the script to. Files are scanned in
// parallel; an unreadable file is skipped with a warning and never aborts
// the search.
type ReferenceServiceImpl struct {
	reader   domain.ContentReader
	finder   domain.WorkspaceFileFinder
	executor domain.ParallelExecutor
}

// NewReferenceService creates a new reference search service
func NewReferenceService(reader domain.ContentReader, finder domain.WorkspaceFileFinder, executor domain.ParallelExecutor) *ReferenceServiceImpl {
	return &ReferenceServiceImpl{reader: reader, finder: finder, executor: executor}
}

// Search finds markup-side usages of req.FunctionName declared in
// req.ScriptPath.
func (s *ReferenceServiceImpl) Search(ctx context.Context, req domain.ReferencesRequest) (*domain.ReferencesResponse, error) {
	if req.ScriptPath == "" || req.FunctionName == "" {
		return nil, domain.NewInvalidInputError("script path and function name are required", nil)
	}

	target, err := filepath.Abs(req.ScriptPath)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid path: %s", req.ScriptPath), err)
	}

	root := req.WorkspaceRoot
	if root == "" {
		root = filepath.Dir(target)
	}

	maxFiles := req.MaxFiles
	if maxFiles <= 0 {
		maxFiles = constants.MaxAutoImportCandidates
	}

	documents, err := s.finder.FindFiles(ctx, root, "**/*"+constants.MarkupExtension, maxFiles)
	if err != nil {
		return nil, domain.NewScanError(root, err)
	}

	response := &domain.ReferencesResponse{
		FilesScanned: len(documents),
		GeneratedAt:  time.Now().Format(time.RFC3339),
	}

	var mu sync.Mutex
	tasks := make([]domain.ExecutableTask, 0, len(documents))
	for _, document := range documents {
		tasks = append(tasks, &referenceScanTask{
			service:      s,
			document:     document,
			target:       target,
			functionName: req.FunctionName,
			mu:           &mu,
			response:     response,
		})
	}

	if err := s.executor.Execute(ctx, tasks); err != nil {
		return nil, err
	}

	return response, nil
}

// referenceScanTask scans one markup document for usages of the target
// function. Read failures degrade to warnings.
type referenceScanTask struct {
	service      *ReferenceServiceImpl
	document     string
	target       string
	functionName string
	mu           *sync.Mutex
	response     *domain.ReferencesResponse
}

func (t *referenceScanTask) Name() string {
	return filepath.Base(t.document)
}

func (t *referenceScanTask) IsEnabled() bool {
	return true
}

func (t *referenceScanTask) Execute(ctx context.Context) error {
	text, ok := t.service.reader.Read(t.document)
	if !ok {
		t.mu.Lock()
		t.response.Warnings = append(t.response.Warnings, fmt.Sprintf("skipped unreadable file: %s", t.document))
		t.mu.Unlock()
		return nil
	}

	references := findReferences(text, t.document, t.target, t.functionName)
	if len(references) == 0 {
		return nil
	}

	t.mu.Lock()
	t.response.References = append(t.response.References, references...)
	t.mu.Unlock()
	return nil
}

// findReferences locates alias.function usages in one document for every
// alias the document binds to the target script.
func findReferences(text, documentPath, target, functionName string) []domain.Reference {
	var aliases []string
	seen := make(map[string]bool)
	for _, imp := range scanner.ExtractImports(text) {
		if seen[imp.Alias] {
			// First binding wins for duplicate aliases.
			continue
		}
		seen[imp.Alias] = true
		if ResolveModulePath(imp.File, documentPath) == target {
			aliases = append(aliases, imp.Alias)
		}
	}
	if len(aliases) == 0 {
		return nil
	}

	var references []domain.Reference
	lines := strings.Split(text, "\n")
	for _, alias := range aliases {
		pattern := regexp.MustCompile(`\b` + regexp.QuoteMeta(alias) + `\.` + regexp.QuoteMeta(functionName) + `\b`)
		for i, line := range lines {
			for _, loc := range pattern.FindAllStringIndex(line, -1) {
				references = append(references, domain.Reference{
					File:   documentPath,
					Line:   i + 1,
					Column: loc[0] + 1,
					Text:   strings.TrimSpace(line),
				})
			}
		}
	}
	return references
}
