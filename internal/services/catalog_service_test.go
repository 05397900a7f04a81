package services_test

import (
	"testing"

	"hotel_pos_backend/internal/models"
	"hotel_pos_backend/internal/repositories"
	"hotel_pos_backend/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) (services.CatalogService, repositories.StateRepository) {
	t.Helper()
	state := repositories.NewMemoryStateRepository()
	catalog, err := services.NewCatalogService(state)
	require.NoError(t, err)
	return catalog, state
}

func createItem(t *testing.T, catalog services.CatalogService, name, category, price string) *models.MenuItem {
	t.Helper()
	item, err := catalog.Create(services.CreateMenuItemRequest{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	return item
}

func TestCatalogCreateAssignsIdentity(t *testing.T) {
	catalog, _ := newCatalog(t)

	item := createItem(t, catalog, "Masala Dosa", models.CategoryMains, "120.00")

	assert.NotEmpty(t, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.Equal(t, "Masala Dosa", item.Name)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("120.00")))
}

func TestCatalogListPreservesInsertionOrder(t *testing.T) {
	catalog, _ := newCatalog(t)

	first := createItem(t, catalog, "Samosa", models.CategoryStarters, "30")
	second := createItem(t, catalog, "Gulab Jamun", models.CategoryDesserts, "50")
	third := createItem(t, catalog, "Chai", models.CategoryBeverages, "20")

	items := catalog.List(models.MenuItemFilters{})
	require.Len(t, items, 3)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, second.ID, items[1].ID)
	assert.Equal(t, third.ID, items[2].ID)
}

func TestCatalogListFiltersByCategory(t *testing.T) {
	catalog, _ := newCatalog(t)

	createItem(t, catalog, "Samosa", models.CategoryStarters, "30")
	createItem(t, catalog, "Chai", models.CategoryBeverages, "20")

	beverages := models.CategoryBeverages
	items := catalog.List(models.MenuItemFilters{Category: &beverages})
	require.Len(t, items, 1)
	assert.Equal(t, "Chai", items[0].Name)
}

func TestCatalogUpdateMergesFields(t *testing.T) {
	catalog, _ := newCatalog(t)
	item := createItem(t, catalog, "Paneer Tikka", models.CategoryStarters, "150")

	newName := "Paneer Tikka Masala"
	newPrice := decimal.RequireFromString("180.50")
	updated, err := catalog.Update(item.ID, services.UpdateMenuItemRequest{
		Name:  &newName,
		Price: &newPrice,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Paneer Tikka Masala", updated.Name)
	assert.True(t, updated.Price.Equal(newPrice))
	// Untouched fields survive the merge.
	assert.Equal(t, models.CategoryStarters, updated.Category)
}

func TestCatalogUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	catalog, _ := newCatalog(t)
	createItem(t, catalog, "Chai", models.CategoryBeverages, "20")

	newName := "Coffee"
	updated, err := catalog.Update("no-such-id", services.UpdateMenuItemRequest{Name: &newName})
	require.NoError(t, err)
	assert.Nil(t, updated)

	items := catalog.List(models.MenuItemFilters{})
	require.Len(t, items, 1)
	assert.Equal(t, "Chai", items[0].Name)
}

func TestCatalogDeleteIsIdempotent(t *testing.T) {
	catalog, _ := newCatalog(t)
	item := createItem(t, catalog, "Chai", models.CategoryBeverages, "20")

	require.NoError(t, catalog.Delete(item.ID))
	require.NoError(t, catalog.Delete(item.ID))
	assert.Empty(t, catalog.List(models.MenuItemFilters{}))
	assert.Nil(t, catalog.Find(item.ID))
}

func TestCatalogRejectsNegativePrice(t *testing.T) {
	catalog, _ := newCatalog(t)

	_, err := catalog.Create(services.CreateMenuItemRequest{
		Name:     "Broken",
		Category: models.CategoryMains,
		Price:    decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, services.ErrInvalidAmount)
}

func TestCatalogSurvivesRestart(t *testing.T) {
	catalog, state := newCatalog(t)
	item := createItem(t, catalog, "Masala Dosa", models.CategoryMains, "120.00")

	reloaded, err := services.NewCatalogService(state)
	require.NoError(t, err)

	found := reloaded.Find(item.ID)
	require.NotNil(t, found)
	assert.Equal(t, item.Name, found.Name)
	assert.True(t, found.Price.Equal(item.Price))
}
