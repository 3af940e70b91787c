package specification

import (
	"gorm.io/gorm"

	"predator-web/internal/entity"
)

// ByFrameworkType filters frameworks by their type key
type ByFrameworkType struct {
	Type entity.FrameworkType
}

func (s ByFrameworkType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("type = ?", string(s.Type))
}

// CatalogOrder is the display order of frameworks
var CatalogOrder = OrderBy{Field: "position"}
