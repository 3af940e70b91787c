package service

import (
	"context"
	"fmt"

	"predator-web/internal/catalog"
	"predator-web/internal/constant"
	"predator-web/internal/dto"
	"predator-web/internal/entity"
	"predator-web/internal/repository/contract"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDatabase = "database"
)

// LoadCatalog builds the validated catalog from the configured source.
func LoadCatalog(ctx context.Context, source string, repo contract.CatalogRepository) (*catalog.Catalog, error) {
	switch source {
	case CatalogSourceStatic, "":
		return catalog.New(constant.Frameworks())
	case CatalogSourceDatabase:
		if repo == nil {
			return nil, fmt.Errorf("catalog source %q needs a database connection", source)
		}
		frameworks, err := repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		c, err := catalog.New(frameworks)
		if err != nil {
			return nil, fmt.Errorf("stored catalog: %w", err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", source)
	}
}

// SeedCatalog writes the compiled-in content to the database, replacing
// what is there.
func SeedCatalog(ctx context.Context, repo contract.CatalogRepository) (int, error) {
	frameworks := constant.Frameworks()
	if _, err := catalog.New(frameworks); err != nil {
		return 0, err
	}
	if err := repo.ReplaceAll(ctx, frameworks); err != nil {
		return 0, fmt.Errorf("seed catalog: %w", err)
	}
	return len(frameworks), nil
}

type ICatalogService interface {
	GetFrameworks(ctx context.Context) []dto.FrameworkResponse
}

type catalogService struct {
	catalog *catalog.Catalog
}

func NewCatalogService(c *catalog.Catalog) ICatalogService {
	return &catalogService{catalog: c}
}

func (s *catalogService) GetFrameworks(ctx context.Context) []dto.FrameworkResponse {
	frameworks := s.catalog.Frameworks()
	res := make([]dto.FrameworkResponse, 0, len(frameworks))
	for _, fw := range frameworks {
		res = append(res, toFrameworkResponse(fw))
	}
	return res
}

func toFrameworkResponse(fw entity.Framework) dto.FrameworkResponse {
	res := dto.FrameworkResponse{
		Type:            string(fw.Type),
		Title:           fw.Title,
		Subtitle:        fw.Subtitle,
		Description:     fw.Description,
		LongDescription: fw.Details.LongDescription,
		Benefits:        append([]string(nil), fw.Details.Benefits...),
	}
	for _, m := range fw.Details.Modules {
		res.Modules = append(res.Modules, dto.FrameworkModuleResponse{Title: m.Title, Description: m.Description})
	}
	for _, p := range fw.Plans {
		res.Plans = append(res.Plans, dto.PricingPlanResponse{
			Id:         p.Id,
			Tier:       string(p.Tier),
			Name:       p.Name,
			Price:      p.Price,
			PriceValue: p.PriceValue,
			Features:   append([]string(nil), p.Features...),
			Cta:        p.Cta,
		})
	}
	return res
}
