package repository

import (
	"context"

	"github.com/alsyedgraphics/printshop-api/internal/domain/entity"
	"github.com/alsyedgraphics/printshop-api/pkg/pagination"
)

// ClientRepository defines the interface for client data operations
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, mobileNumber string) error
	// List returns clients with page-based pagination and optional search
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	Count(ctx context.Context) (int64, error)
}
