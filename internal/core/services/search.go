package services

import (
	"context"
	"errors"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driven"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService runs the read, match and render pipeline for one file.
type SearchService struct {
	reader driven.FileReader
}

// NewSearchService creates a new search service.
func NewSearchService(reader driven.FileReader) *SearchService {
	return &SearchService{reader: reader}
}

// Run reads filename and returns the rendered matching lines.
// Read failures are returned as *domain.OperationError.
func (s *SearchService) Run(ctx context.Context, filename string, cfg domain.SearchConfig) (string, error) {
	logger.Section("Search Execution")

	if s.reader == nil {
		return "", errors.New("file reader not configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	logger.Debug("Query: %q", cfg.Query)
	logger.Debug("File: %s", filename)
	logger.Debug("Case sensitive: %t, line numbers: %t", cfg.CaseSensitive, cfg.ShowLineNumbers)

	contents, err := s.reader.ReadFile(filename)
	if err != nil {
		logger.Warn("Read failed: %v", err)
		return "", &domain.OperationError{Err: err}
	}
	logger.Debug("Read %d bytes", len(contents))

	matches := Search(cfg.Query, cfg.CaseSensitive, contents)
	logger.Info("Matched %d lines", len(matches))

	return Render(matches, cfg.ShowLineNumbers), nil
}
