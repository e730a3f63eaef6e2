package ports

import (
	"context"

	"github.com/aalvaropc/customs/internal/domain"
)

// CargoGateway performs the two cargo progress lookups against the customs service.
type CargoGateway interface {
	FetchSummary(ctx context.Context, hbl, year string) (domain.Summary, error)
	FetchDetail(ctx context.Context, cargoManagementNo string) (domain.CargoDetail, error)
}
