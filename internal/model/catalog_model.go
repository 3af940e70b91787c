// GORM models for the catalog tables
package model

import (
	"time"

	"gorm.io/datatypes"
)

type FrameworkModule struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Framework is one offering. Position keeps catalog order.
type Framework struct {
	Type            string                                `gorm:"type:varchar(50);primaryKey"`
	Position        int                                   `gorm:"not null;default:0"`
	Title           string                                `gorm:"type:text;not null"`
	Subtitle        string                                `gorm:"type:varchar(255)"`
	Description     string                                `gorm:"type:text"`
	LongDescription string                                `gorm:"type:text"`
	Modules         datatypes.JSONSlice[FrameworkModule] `gorm:"type:jsonb"`
	Benefits        datatypes.JSONSlice[string]          `gorm:"type:jsonb"`
	Plans           []PricingPlan                         `gorm:"foreignKey:FrameworkType;references:Type;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time                             `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                             `gorm:"autoUpdateTime"`
}

func (Framework) TableName() string {
	return "frameworks"
}

type PricingPlan struct {
	Id            string                      `gorm:"type:varchar(100);primaryKey"`
	FrameworkType string                      `gorm:"type:varchar(50);index;not null"`
	Position      int                         `gorm:"not null;default:0"`
	Tier          string                      `gorm:"type:varchar(20);not null"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Price         string                      `gorm:"type:varchar(100)"`
	PriceValue    float64                     `gorm:"type:numeric(12,2);not null"`
	Features      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Cta           string                      `gorm:"type:varchar(100)"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime"`
}

func (PricingPlan) TableName() string {
	return "pricing_plans"
}
