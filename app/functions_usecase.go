package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/qmllink/domain"
)

// FunctionsUseCase orchestrates the function extraction workflow
type FunctionsUseCase struct {
	service    domain.FunctionService
	fileHelper *FileHelper
}

// NewFunctionsUseCase creates a new functions use case
func NewFunctionsUseCase(service domain.FunctionService) *FunctionsUseCase {
	return &FunctionsUseCase{
		service:    service,
		fileHelper: NewFileHelper(),
	}
}

// Execute performs the complete extraction workflow
func (uc *FunctionsUseCase) Execute(ctx context.Context, req domain.FunctionsRequest) (*domain.FunctionsResponse, error) {
	if len(req.Paths) == 0 {
		return nil, domain.NewInvalidInputError("no input paths specified", nil)
	}

	files, err := ResolveScriptPaths(uc.fileHelper, req.Paths, req.Recursive, req.ExcludePatterns)
	if err != nil {
		return nil, domain.NewFileNotFoundError("failed to collect files", err)
	}
	if len(files) == 0 {
		return nil, domain.NewInvalidInputError("no script files found in the specified paths", nil)
	}

	req.Paths = files
	return uc.service.Extract(ctx, req)
}

// ExtractFile extracts a single script file
func (uc *FunctionsUseCase) ExtractFile(ctx context.Context, filePath string) ([]domain.FunctionInfo, error) {
	if !uc.fileHelper.IsScriptFile(filePath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a script file: %s", filePath), nil)
	}
	return uc.service.ExtractFile(ctx, filePath)
}
