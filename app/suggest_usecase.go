package app

import (
	"context"
	"fmt"

	"github.com/ludo-technologies/qmllink/domain"
)

// SuggestUseCase orchestrates the auto-import suggestion workflow
type SuggestUseCase struct {
	service    domain.AutoImportService
	fileHelper *FileHelper
}

// NewSuggestUseCase creates a new suggest use case
func NewSuggestUseCase(service domain.AutoImportService) *SuggestUseCase {
	return &SuggestUseCase{
		service:    service,
		fileHelper: NewFileHelper(),
	}
}

// Execute produces auto-import suggestions for a typed identifier
func (uc *SuggestUseCase) Execute(ctx context.Context, req domain.SuggestRequest) (*domain.SuggestResponse, error) {
	if req.DocumentPath == "" {
		return nil, domain.NewInvalidInputError("no document path specified", nil)
	}
	if !uc.fileHelper.IsMarkupFile(req.DocumentPath) {
		return nil, domain.NewInvalidInputError(fmt.Sprintf("not a markup document: %s", req.DocumentPath), nil)
	}
	if req.Identifier == "" {
		return nil, domain.NewInvalidInputError("no identifier specified", nil)
	}
	return uc.service.Suggest(ctx, req)
}
