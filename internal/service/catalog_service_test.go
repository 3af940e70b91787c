package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"predator-web/internal/catalog"
	"predator-web/internal/constant"
	"predator-web/internal/entity"
	"predator-web/internal/repository/specification"
)

type memCatalogRepo struct {
	frameworks []entity.Framework
	err        error
}

func (r *memCatalogRepo) FindAll(context.Context, ...specification.Specification) ([]entity.Framework, error) {
	return r.frameworks, r.err
}

func (r *memCatalogRepo) ReplaceAll(_ context.Context, frameworks []entity.Framework) error {
	r.frameworks = frameworks
	return r.err
}

func TestLoadCatalog_Static(t *testing.T) {
	c, err := LoadCatalog(context.Background(), CatalogSourceStatic, nil)
	require.NoError(t, err)
	assert.Len(t, c.Frameworks(), 2)
}

func TestLoadCatalog_DatabaseRoundTrip(t *testing.T) {
	repo := &memCatalogRepo{}
	n, err := SeedCatalog(context.Background(), repo)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	c, err := LoadCatalog(context.Background(), CatalogSourceDatabase, repo)
	require.NoError(t, err)
	assert.Equal(t, constant.Frameworks(), c.Frameworks())
}

func TestLoadCatalog_Failures(t *testing.T) {
	_, err := LoadCatalog(context.Background(), CatalogSourceDatabase, nil)
	assert.Error(t, err)

	_, err = LoadCatalog(context.Background(), "yaml", nil)
	assert.Error(t, err)

	_, err = LoadCatalog(context.Background(), CatalogSourceDatabase, &memCatalogRepo{})
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)

	_, err = LoadCatalog(context.Background(), CatalogSourceDatabase, &memCatalogRepo{err: errors.New("connection refused")})
	assert.Error(t, err)
}

func TestCatalogService_GetFrameworks(t *testing.T) {
	svc := NewCatalogService(catalog.Default())

	res := svc.GetFrameworks(context.Background())
	require.Len(t, res, 2)
	assert.Equal(t, "ORGANIZATIONAL", res[0].Type)
	require.Len(t, res[1].Plans, 3)
	assert.Equal(t, "pe-associate", res[1].Plans[2].Id)
	assert.Equal(t, 59999.0, res[1].Plans[2].PriceValue)
}
