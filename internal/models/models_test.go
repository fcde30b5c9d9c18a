package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylehaus/storefront-client/internal/models"
)

func TestIsAdmin(t *testing.T) {
	t.Run("derived from role", func(t *testing.T) {
		assert.True(t, (&models.User{Role: "admin"}).IsAdmin())
		assert.False(t, (&models.User{Role: "customer"}).IsAdmin())
		assert.False(t, (&models.User{Role: "Admin"}).IsAdmin(), "role comparison is case sensitive")
		assert.False(t, (*models.User)(nil).IsAdmin())
	})

	t.Run("session requires authentication", func(t *testing.T) {
		admin := &models.User{ID: "u1", Role: models.RoleAdmin}

		assert.True(t, models.Session{User: admin, IsAuthenticated: true}.IsAdmin())
		assert.False(t, models.Session{User: admin, IsAuthenticated: false}.IsAdmin())
		assert.False(t, models.Session{IsAuthenticated: true}.IsAdmin(), "no user means no admin")
	})
}

func TestProductFilterValues(t *testing.T) {
	t.Run("zero filters produce an empty query", func(t *testing.T) {
		assert.Empty(t, models.ProductFilters{}.Values().Encode())
	})

	t.Run("set fields appear under their wire names", func(t *testing.T) {
		active := true
		q := models.ProductFilters{
			CategoryID:       "cat_1",
			SubCategoryID:    "sub_2",
			MainCategoryName: "women",
			Search:           "silk scarf",
			SortBy:           "name",
			IsActive:         &active,
			Limit:            100,
			Skip:             24,
		}.Values()

		assert.Equal(t, "cat_1", q.Get("category_id"))
		assert.Equal(t, "sub_2", q.Get("sub_category_id"))
		assert.Equal(t, "women", q.Get("main_category_name"))
		assert.Equal(t, "silk scarf", q.Get("search"))
		assert.Equal(t, "name", q.Get("sortBy"))
		assert.Equal(t, "true", q.Get("is_active"))
		assert.Equal(t, "100", q.Get("limit"))
		assert.Equal(t, "24", q.Get("skip"))
	})

	t.Run("explicit inactive filter is kept", func(t *testing.T) {
		inactive := false

		q := models.ProductFilters{IsActive: &inactive}.Values()

		assert.Equal(t, "false", q.Get("is_active"))
	})
}

func TestRFQFilterValues(t *testing.T) {
	q := models.RFQFilters{Status: models.RFQStatusNew, Limit: 50, Skip: 10}.Values()

	assert.Equal(t, "new", q.Get("status"))
	assert.Equal(t, "50", q.Get("limit"))
	assert.Equal(t, "10", q.Get("skip"))
	assert.Empty(t, models.RFQFilters{}.Values().Encode())
}

func TestProductDescriptionSanitized(t *testing.T) {
	// Arrange
	payload := `{
		"id": "prod_1",
		"name": "Linen Blazer",
		"description": "<p>Breathable <b>summer</b> cut</p><script>alert('x')</script>",
		"category_id": "cat_1"
	}`

	var product models.Product

	// Act
	err := json.Unmarshal([]byte(payload), &product)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "<p>Breathable <b>summer</b> cut</p>", product.Description)
	assert.Equal(t, "Linen Blazer", product.Name)
}
