// Mapper for catalog entity <-> model conversion
package mapper

import (
	"predator-web/internal/entity"
	"predator-web/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ToEntity(fw *model.Framework) entity.Framework {
	modules := make([]entity.FrameworkModule, 0, len(fw.Modules))
	for _, mod := range fw.Modules {
		modules = append(modules, entity.FrameworkModule{Title: mod.Title, Description: mod.Description})
	}

	plans := make([]entity.PricingPlan, 0, len(fw.Plans))
	for _, p := range fw.Plans {
		plans = append(plans, entity.PricingPlan{
			Id:         p.Id,
			Tier:       entity.SubscriptionTier(p.Tier),
			Name:       p.Name,
			Price:      p.Price,
			PriceValue: p.PriceValue,
			Features:   append([]string(nil), p.Features...),
			Cta:        p.Cta,
		})
	}

	return entity.Framework{
		Type:        entity.FrameworkType(fw.Type),
		Title:       fw.Title,
		Subtitle:    fw.Subtitle,
		Description: fw.Description,
		Details: entity.FrameworkDetails{
			LongDescription: fw.LongDescription,
			Modules:         modules,
			Benefits:        append([]string(nil), fw.Benefits...),
		},
		Plans: plans,
	}
}

// ToModel records position as the row order so list order survives the
// round trip.
func (m *CatalogMapper) ToModel(fw entity.Framework, position int) *model.Framework {
	modules := make([]model.FrameworkModule, 0, len(fw.Details.Modules))
	for _, mod := range fw.Details.Modules {
		modules = append(modules, model.FrameworkModule{Title: mod.Title, Description: mod.Description})
	}

	plans := make([]model.PricingPlan, 0, len(fw.Plans))
	for i, p := range fw.Plans {
		plans = append(plans, model.PricingPlan{
			Id:            p.Id,
			FrameworkType: string(fw.Type),
			Position:      i,
			Tier:          string(p.Tier),
			Name:          p.Name,
			Price:         p.Price,
			PriceValue:    p.PriceValue,
			Features:      append([]string(nil), p.Features...),
			Cta:           p.Cta,
		})
	}

	return &model.Framework{
		Type:            string(fw.Type),
		Position:        position,
		Title:           fw.Title,
		Subtitle:        fw.Subtitle,
		Description:     fw.Description,
		LongDescription: fw.Details.LongDescription,
		Modules:         modules,
		Benefits:        append([]string(nil), fw.Details.Benefits...),
		Plans:           plans,
	}
}

func (m *CatalogMapper) ToEntities(models []*model.Framework) []entity.Framework {
	out := make([]entity.Framework, 0, len(models))
	for _, fw := range models {
		out = append(out, m.ToEntity(fw))
	}
	return out
}

func (m *CatalogMapper) ToModels(frameworks []entity.Framework) []*model.Framework {
	out := make([]*model.Framework, 0, len(frameworks))
	for i, fw := range frameworks {
		out = append(out, m.ToModel(fw, i))
	}
	return out
}
