// Implementation of CatalogRepository
package implementation

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"predator-web/internal/entity"
	"predator-web/internal/mapper"
	"predator-web/internal/model"
	"predator-web/internal/repository/contract"
	"predator-web/internal/repository/specification"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CatalogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]entity.Framework, error) {
	if len(specs) == 0 {
		specs = []specification.Specification{specification.CatalogOrder}
	}

	var models []*model.Framework
	query := r.db.WithContext(ctx).Preload("Plans", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
	if err := r.applySpecifications(query, specs...).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("load frameworks: %w", err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CatalogRepositoryImpl) ReplaceAll(ctx context.Context, frameworks []entity.Framework) error {
	models := r.mapper.ToModels(frameworks)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.PricingPlan{}).Error; err != nil {
			return fmt.Errorf("clear plans: %w", err)
		}
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Framework{}).Error; err != nil {
			return fmt.Errorf("clear frameworks: %w", err)
		}
		if len(models) == 0 {
			return nil
		}
		if err := tx.Create(&models).Error; err != nil {
			return fmt.Errorf("insert frameworks: %w", err)
		}
		return nil
	})
}
