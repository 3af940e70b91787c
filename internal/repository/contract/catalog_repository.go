// Repository interface for the framework catalog
package contract

import (
	"context"

	"predator-web/internal/entity"
	"predator-web/internal/repository/specification"
)

type CatalogRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Framework, error)
	// ReplaceAll swaps the stored catalog for frameworks in one transaction.
	ReplaceAll(ctx context.Context, frameworks []entity.Framework) error
}
