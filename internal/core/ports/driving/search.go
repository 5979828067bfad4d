package driving

import (
	"context"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

// SearchService provides line search to external actors.
type SearchService interface {
	// Run reads filename, finds the lines matching cfg.Query and returns
	// them rendered as output text.
	Run(ctx context.Context, filename string, cfg domain.SearchConfig) (string, error)
}
