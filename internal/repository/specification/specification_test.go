package specification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"predator-web/internal/entity"
	"predator-web/internal/model"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost"}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Skipf("postgres dialector unavailable: %v", err)
	}
	return db
}

func TestSpecificationsBuildSQL(t *testing.T) {
	db := dryRunDB(t)

	var rows []model.Framework
	stmt := CatalogOrder.Apply(ByFrameworkType{Type: entity.FrameworkTypePrivateEquity}.Apply(db.Model(&model.Framework{}))).
		Find(&rows).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, `"frameworks"`)
	assert.Contains(t, sql, "type = $1")
	assert.Contains(t, sql, "ORDER BY position ASC")
	assert.Equal(t, []interface{}{"PRIVATE_EQUITY"}, stmt.Vars)
}
