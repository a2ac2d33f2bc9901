package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/scanner"
	"github.com/ludo-technologies/qmllink/internal/typemap"
)

// ResolverServiceImpl implements domain.ResolverService by composing the
// import extractor with relative-path resolution. Resolution is recomputed
// from the document text on every call; there is no incremental index.
type ResolverServiceImpl struct {
	reader    domain.ContentReader
	functions domain.FunctionService
}

// NewResolverService creates a new alias resolver service
func NewResolverService(reader domain.ContentReader, functions domain.FunctionService) *ResolverServiceImpl {
	return &ResolverServiceImpl{reader: reader, functions: functions}
}

// ResolveAlias maps an alias used in documentText to the absolute path of
// the script file it denotes. The first import bound to the alias wins when
// duplicates exist. The second return value is false when the alias has no
// matching import.
func ResolveAlias(documentText, documentPath, alias string) (string, bool) {
	imp, ok := scanner.FindImport(documentText, alias)
	if !ok {
		return "", false
	}
	return ResolveModulePath(imp.File, documentPath), true
}

// ResolveModulePath turns a module reference from an import declaration
// into an absolute path, resolving relative references against the
// containing document's directory. Symlinks are not special-cased.
func ResolveModulePath(file, documentPath string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	resolved := filepath.Join(filepath.Dir(documentPath), file)
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return filepath.Clean(resolved)
	}
	return abs
}

// Resolve handles a resolution request. An alias without a matching import
// produces Found=false, not an error.
func (s *ResolverServiceImpl) Resolve(ctx context.Context, req domain.ResolveRequest) (*domain.ResolveResponse, error) {
	if req.Alias == "" {
		return nil, domain.NewInvalidInputError("no alias specified", nil)
	}

	text, err := s.documentText(req.DocumentPath, req.DocumentText)
	if err != nil {
		return nil, err
	}

	response := &domain.ResolveResponse{
		Alias:       req.Alias,
		Imports:     scanner.ExtractImports(text),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	if path, ok := ResolveAlias(text, req.DocumentPath, req.Alias); ok {
		response.ResolvedPath = path
		response.Found = true
	}

	return response, nil
}

// Describe returns hover-style metadata for alias.function: the resolved
// source path plus the first matching declaration with its documentation
// types normalized to the display vocabulary.
func (s *ResolverServiceImpl) Describe(ctx context.Context, req domain.DescribeRequest) (*domain.DescribeResponse, error) {
	if req.Alias == "" || req.FunctionName == "" {
		return nil, domain.NewInvalidInputError("alias and function name are required", nil)
	}

	response := &domain.DescribeResponse{
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	text, err := s.documentText(req.DocumentPath, req.DocumentText)
	if err != nil {
		return nil, err
	}

	sourcePath, ok := ResolveAlias(text, req.DocumentPath, req.Alias)
	if !ok {
		return response, nil
	}

	functions, err := s.functions.ExtractFile(ctx, sourcePath)
	if err != nil {
		// The alias resolved but the target is unreadable: the feature is
		// unavailable for this request, not failed.
		return response, nil
	}

	for _, fn := range functions {
		if fn.Name != req.FunctionName {
			continue
		}
		response.Found = true
		response.SourcePath = sourcePath
		response.Function = fn
		response.NormalizedReturnType = typemap.Normalize(fn.ReturnType)
		for _, p := range fn.ParamDocs {
			response.NormalizedParamTypes = append(response.NormalizedParamTypes, typemap.Normalize(p.Type))
		}
		break
	}

	return response, nil
}

// documentText returns the override text when provided, otherwise the
// on-disk content of the document.
func (s *ResolverServiceImpl) documentText(path, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	text, ok := s.reader.Read(path)
	if !ok {
		return "", domain.NewFileNotFoundError(path, nil)
	}
	return text, nil
}
