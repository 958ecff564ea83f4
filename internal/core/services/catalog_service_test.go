package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comerzia/comerzia_backend/internal/core/domain"
	"github.com/comerzia/comerzia_backend/internal/core/services"
)

func productEntries() []domain.CatalogEntry {
	return []domain.CatalogEntry{
		{EntryID: "p1", Kind: domain.ItemTypeProduct, Code: "WID-01", Name: "Widget", CategoryName: "Hardware", ListPrice: decimal.NewFromInt(10), IsActive: true},
		{EntryID: "p2", Kind: domain.ItemTypeProduct, Code: "GAD-02", Name: "Gadget", CategoryName: "Hardware", ListPrice: decimal.NewFromInt(25), IsActive: true},
		{EntryID: "p3", Kind: domain.ItemTypeProduct, Code: "OLD-03", Name: "Legacy widget", CategoryName: "Clearance", ListPrice: decimal.NewFromInt(1), IsActive: false},
	}
}

func TestCatalogService_FilterMatchesCodeNameAndCategory(t *testing.T) {
	repo := &MockCatalogRepository{}
	repo.On("ListProducts", mock.Anything).Return(productEntries(), nil)
	svc := services.NewCatalogService(repo)

	byName := svc.ListProducts(context.Background(), "widg")
	require.Len(t, byName, 1)
	assert.Equal(t, "Widget", byName[0].Name)

	byCode := svc.ListProducts(context.Background(), "gad-")
	require.Len(t, byCode, 1)
	assert.Equal(t, "Gadget", byCode[0].Name)

	byCategory := svc.ListProducts(context.Background(), "hardware")
	assert.Len(t, byCategory, 2)
}

func TestCatalogService_BlankFilterKeepsActiveEntries(t *testing.T) {
	repo := &MockCatalogRepository{}
	repo.On("ListProducts", mock.Anything).Return(productEntries(), nil)
	svc := services.NewCatalogService(repo)

	entries := svc.ListProducts(context.Background(), "  ")

	// The inactive entry is always excluded.
	assert.Len(t, entries, 2)
}

func TestCatalogService_RepoFailureDegradesToEmpty(t *testing.T) {
	repo := &MockCatalogRepository{}
	repo.On("ListProducts", mock.Anything).Return(nil, errors.New("connection refused"))
	repo.On("ListServices", mock.Anything).Return(nil, errors.New("connection refused"))
	svc := services.NewCatalogService(repo)

	products := svc.ListProducts(context.Background(), "")
	assert.NotNil(t, products)
	assert.Empty(t, products)

	servicesList := svc.ListServices(context.Background(), "")
	assert.NotNil(t, servicesList)
	assert.Empty(t, servicesList)
}
