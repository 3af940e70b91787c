package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/constant"
)

func TestCatalogMapper_PreservesContentAndOrder(t *testing.T) {
	m := NewCatalogMapper()
	frameworks := constant.Frameworks()

	models := m.ToModels(frameworks)
	require.Len(t, models, 2)
	assert.Equal(t, 1, models[1].Position)
	assert.Equal(t, "PRIVATE_EQUITY", models[1].Type)
	assert.Equal(t, 2, models[1].Plans[2].Position)
	assert.Equal(t, "PRIVATE_EQUITY", models[1].Plans[2].FrameworkType)

	assert.Equal(t, frameworks, m.ToEntities(models))
}
