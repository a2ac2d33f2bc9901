package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/qmllink/domain"
)

// ResolveUseCase orchestrates the alias resolution workflow
type ResolveUseCase struct {
	service    domain.ResolverService
	fileHelper *FileHelper
}

// NewResolveUseCase creates a new resolve use case
func NewResolveUseCase(service domain.ResolverService) *ResolveUseCase {
	return &ResolveUseCase{
		service:    service,
		fileHelper: NewFileHelper(),
	}
}

// Execute resolves an alias against one markup document
func (uc *ResolveUseCase) Execute(ctx context.Context, req domain.ResolveRequest) (*domain.ResolveResponse, error) {
	if err := uc.validateDocument(req.DocumentPath, req.DocumentText); err != nil {
		return nil, err
	}
	return uc.service.Resolve(ctx, req)
}

// Describe returns hover-style metadata for alias.function
func (uc *ResolveUseCase) Describe(ctx context.Context, req domain.DescribeRequest) (*domain.DescribeResponse, error) {
	if err := uc.validateDocument(req.DocumentPath, req.DocumentText); err != nil {
		return nil, err
	}
	return uc.service.Describe(ctx, req)
}

func (uc *ResolveUseCase) validateDocument(path, text string) error {
	if path == "" {
		return domain.NewInvalidInputError("no document path specified", nil)
	}
	if !uc.fileHelper.IsMarkupFile(path) {
		return domain.NewInvalidInputError(fmt.Sprintf("not a markup document: %s", path), nil)
	}
	if text != "" {
		return nil
	}
	exists, err := uc.fileHelper.FileExists(path)
	if err != nil {
		return domain.NewFileNotFoundError(path, err)
	}
	if !exists {
		return domain.NewFileNotFoundError(path, nil)
	}
	return nil
}
