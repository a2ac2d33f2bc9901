package service

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/scanner"
)

// FunctionServiceImpl implements domain.FunctionService. Extraction itself
// is pure; the optional cache keyed by absolute path is the only state, and
// it is owned by the hosting session rather than this service.
type FunctionServiceImpl struct {
	reader   domain.ContentReader
	cache    domain.FunctionCache
	progress domain.ProgressManager
}

// NewFunctionService creates a new function extraction service
func NewFunctionService(reader domain.ContentReader) *FunctionServiceImpl {
	return &FunctionServiceImpl{reader: reader}
}

// NewFunctionServiceWithCache creates a function extraction service backed
// by a session cache
func NewFunctionServiceWithCache(reader domain.ContentReader, cache domain.FunctionCache) *FunctionServiceImpl {
	return &FunctionServiceImpl{reader: reader, cache: cache}
}

// NewFunctionServiceWithProgress creates a function extraction service with
// progress reporting
func NewFunctionServiceWithProgress(reader domain.ContentReader, cache domain.FunctionCache, pm domain.ProgressManager) *FunctionServiceImpl {
	return &FunctionServiceImpl{reader: reader, cache: cache, progress: pm}
}

// ExtractFile returns the function records of a single script file. A
// missing or unreadable file yields a file-not-found error; structural
// absence (a file with no declarations) yields an empty slice.
func (s *FunctionServiceImpl) ExtractFile(ctx context.Context, path string) ([]domain.FunctionInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("invalid path: %s", path), err)
	}

	if s.cache != nil {
		if functions, ok := s.cache.Get(abs); ok {
			return functions, nil
		}
	}

	content, ok := s.reader.Read(abs)
	if !ok {
		return nil, domain.NewFileNotFoundError(abs, nil)
	}

	functions := scanner.ExtractFunctions(content)
	if s.cache != nil {
		s.cache.Put(abs, functions)
	}
	return functions, nil
}

// Extract processes every file in the request. Per-file failures become
// warnings; the request as a whole never fails because one file could not
// be read.
func (s *FunctionServiceImpl) Extract(ctx context.Context, req domain.FunctionsRequest) (*domain.FunctionsResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewInvalidInputError("no input paths specified", nil)
	}

	response := &domain.FunctionsResponse{
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	var task domain.TaskProgress
	if s.progress != nil {
		task = s.progress.StartTask("Extracting functions", len(req.Paths))
		defer task.Complete()
	}

	for _, path := range req.Paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		functions, err := s.extractPath(ctx, path, req.NoCache)
		if err != nil {
			response.Warnings = append(response.Warnings, err.Error())
		} else {
			abs, _ := filepath.Abs(path)
			response.Files = append(response.Files, domain.FileFunctions{
				Path:      abs,
				Functions: functions,
			})
		}

		if task != nil {
			task.Increment(1)
		}
	}

	return response, nil
}

func (s *FunctionServiceImpl) extractPath(ctx context.Context, path string, noCache bool) ([]domain.FunctionInfo, error) {
	if noCache && s.cache != nil {
		abs, err := filepath.Abs(path)
		if err == nil {
			s.cache.Invalidate(abs)
		}
	}
	return s.ExtractFile(ctx, path)
}
