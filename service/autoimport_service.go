package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/config"
	"github.com/ludo-technologies/qmllink/internal/constants"
	"github.com/ludo-technologies/qmllink/internal/scanner"
)

// AutoImportServiceImpl implements domain.AutoImportService: given a typed
// identifier it enumerates workspace script files and proposes aliases
// derived from their file names. Matches keep enumeration order; no
// additional ranking is applied.
type AutoImportServiceImpl struct {
	reader              domain.ContentReader
	finder              domain.WorkspaceFileFinder
	aliasSuffix         string
	minIdentifierLength int
	maxCandidates       int
}

// NewAutoImportService creates a new auto-import service
func NewAutoImportService(reader domain.ContentReader, finder domain.WorkspaceFileFinder, cfg *config.ResolveConfig) *AutoImportServiceImpl {
	s := &AutoImportServiceImpl{
		reader:              reader,
		finder:              finder,
		aliasSuffix:         constants.AliasSuffix,
		minIdentifierLength: constants.MinAutoImportIdentifierLength,
		maxCandidates:       constants.MaxAutoImportCandidates,
	}
	if cfg != nil {
		if cfg.AliasSuffix != "" {
			s.aliasSuffix = cfg.AliasSuffix
		}
		if cfg.MinIdentifierLength > 0 {
			s.minIdentifierLength = cfg.MinIdentifierLength
		}
		if cfg.MaxCandidates > 0 {
			s.maxCandidates = cfg.MaxCandidates
		}
	}
	return s
}

// Suggest handles an auto-import request. Triggered is false when the
// identifier is too short, does not begin with an uppercase letter, or is
// already bound to an import in the current document.
func (s *AutoImportServiceImpl) Suggest(ctx context.Context, req domain.SuggestRequest) (*domain.SuggestResponse, error) {
	response := &domain.SuggestResponse{
		Identifier:  req.Identifier,
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	if !s.shouldTrigger(req) {
		return response, nil
	}
	response.Triggered = true

	maxCandidates := req.MaxCandidates
	if maxCandidates <= 0 {
		maxCandidates = s.maxCandidates
	}

	root := req.WorkspaceRoot
	if root == "" {
		root = filepath.Dir(req.DocumentPath)
	}

	candidates, err := s.finder.FindFiles(ctx, root, "**/*.js", maxCandidates)
	if err != nil {
		return nil, domain.NewScanError(root, err)
	}

	documentDir := filepath.Dir(req.DocumentPath)
	typed := strings.ToLower(req.Identifier)

	for _, candidate := range candidates {
		alias := scanner.DeriveAlias(candidate, s.aliasSuffix)
		if !strings.HasPrefix(strings.ToLower(alias), typed) {
			continue
		}
		response.Matches = append(response.Matches, domain.JsFileMatch{
			Path:         candidate,
			Alias:        alias,
			RelativePath: relativeImportPath(documentDir, candidate),
		})
	}

	return response, nil
}

// shouldTrigger checks the trigger conditions for auto-import suggestions.
func (s *AutoImportServiceImpl) shouldTrigger(req domain.SuggestRequest) bool {
	if utf8.RuneCountInString(req.Identifier) < s.minIdentifierLength {
		return false
	}
	first, _ := utf8.DecodeRuneInString(req.Identifier)
	if !unicode.IsUpper(first) {
		return false
	}

	// An identifier already bound to an import needs no suggestion.
	text := req.DocumentText
	if text == "" {
		text, _ = s.reader.Read(req.DocumentPath)
	}
	return !scanner.HasAlias(text, req.Identifier)
}

// relativeImportPath renders candidate relative to the importing document's
// directory, prefixed "./" when not already relative.
func relativeImportPath(documentDir, candidate string) string {
	rel, err := filepath.Rel(documentDir, candidate)
	if err != nil {
		rel = candidate
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}
	return rel
}
