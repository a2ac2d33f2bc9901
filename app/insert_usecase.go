package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/constants"
	"github.com/ludo-technologies/qmllink/internal/scanner"
)

// InsertUseCase plans, and optionally applies, the insertion of a new
// script import into a markup document
type InsertUseCase struct {
	reader      domain.ContentReader
	fileHelper  *FileHelper
	aliasSuffix string
}

// NewInsertUseCase creates a new insert use case
func NewInsertUseCase(reader domain.ContentReader) *InsertUseCase {
	return &InsertUseCase{
		reader:      reader,
		fileHelper:  NewFileHelper(),
		aliasSuffix: constants.AliasSuffix,
	}
}

// Execute computes the insertion plan for the document and, when requested,
// writes the updated text back to disk.
func (uc *InsertUseCase) Execute(ctx context.Context, req domain.InsertRequest) (*domain.InsertResponse, error) {
	if req.DocumentPath == "" || req.ScriptPath == "" {
		return nil, domain.NewInvalidInputError("document and script paths are required", nil)
	}
	if !uc.fileHelper.IsMarkupFile(req.DocumentPath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a markup document: %s", req.DocumentPath), nil)
	}
	if !uc.fileHelper.IsScriptFile(req.ScriptPath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a script file: %s", req.ScriptPath), nil)
	}

	text, ok := uc.reader.Read(req.DocumentPath)
	if !ok {
		return nil, domain.NewFileNotFoundError(req.DocumentPath, nil)
	}

	alias := req.Alias
	if alias == "" {
		alias = scanner.DeriveAlias(req.ScriptPath, uc.aliasSuffix)
	}
	if scanner.HasAlias(text, alias) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("alias already imported: %s", alias), nil)
	}

	documentDir := filepath.Dir(req.DocumentPath)
	rel, err := filepath.Rel(documentDir, req.ScriptPath)
	if err != nil {
		rel = req.ScriptPath
	}
	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "./") && !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}

	point := scanner.PlanImportInsertion(text)
	statement := scanner.FormatImportStatement(rel, alias)

	response := &domain.InsertResponse{
		Point:       point,
		Statement:   statement,
		NewText:     scanner.ApplyImportInsertion(text, statement, point),
		GeneratedAt: time.Now().Format(time.RFC3339),
	}

	if req.Write {
		if err := os.WriteFile(req.DocumentPath, []byte(response.NewText), 0644); err != nil {
			return nil, domain.NewOutputError(fmt.Sprintf("failed to write %s", req.DocumentPath), err)
		}
		response.Written = true
	}

	return response, nil
}
