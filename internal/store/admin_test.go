package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stylehaus/storefront-client/internal/api/mocks"
	appErrors "github.com/stylehaus/storefront-client/internal/errors"
	"github.com/stylehaus/storefront-client/internal/models"
)

func TestRefreshStats(t *testing.T) {
	t.Run("Success - counters come from list totals", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		adminStore := NewAdminStore(mockClient, discardLogger())

		mockClient.On("Products", mock.Anything, models.ProductFilters{Limit: 1}).
			Return(&models.ProductList{Total: 42, Limit: 1}, nil).Once()
		mockClient.On("Categories", mock.Anything).
			Return([]models.Category{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}, nil).Once()
		mockClient.On("RFQRequests", mock.Anything, models.RFQFilters{Limit: 1}).
			Return(&models.RFQList{Total: 17, Limit: 1}, nil).Once()
		mockClient.On("RFQRequests", mock.Anything, models.RFQFilters{Status: models.RFQStatusNew, Limit: 1}).
			Return(&models.RFQList{Total: 5, Limit: 1}, nil).Once()

		// Act
		err := adminStore.RefreshStats(t.Context())

		// Assert
		require.NoError(t, err)
		snap := adminStore.Snapshot()
		assert.Equal(t, DashboardStats{Products: 42, Categories: 3, RFQRequests: 17, NewRFQ: 5}, snap.Stats)
		assert.False(t, snap.Loading)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - previous counters survive", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		adminStore := NewAdminStore(mockClient, discardLogger())
		adminStore.stats = DashboardStats{Products: 10, Categories: 2, RFQRequests: 4, NewRFQ: 1}

		mockClient.On("Products", mock.Anything, mock.Anything).
			Return(nil, appErrors.NetworkError("Unable to reach the server")).Once()

		// Act
		err := adminStore.RefreshStats(t.Context())

		// Assert
		require.Error(t, err)
		snap := adminStore.Snapshot()
		assert.Equal(t, 10, snap.Stats.Products)
		assert.Equal(t, "Unable to reach the server", snap.Error)
		assert.False(t, snap.Loading)
		mockClient.AssertNotCalled(t, "Categories", mock.Anything)
	})
}

func TestAdminUIState(t *testing.T) {
	// Arrange
	adminStore := NewAdminStore(new(mocks.Client), discardLogger())

	// Act
	adminStore.SetActiveTab("products")
	adminStore.SetShowLoginForm(true)

	// Assert
	snap := adminStore.Snapshot()
	assert.Equal(t, "products", snap.ActiveTab)
	assert.True(t, snap.ShowLoginForm)

	adminStore.Reset()
	snap = adminStore.Snapshot()
	assert.Equal(t, DefaultAdminTab, snap.ActiveTab)
	assert.False(t, snap.ShowLoginForm)
	assert.Equal(t, DashboardStats{}, snap.Stats)
}
