package store

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stylehaus/storefront-client/internal/api/mocks"
	appErrors "github.com/stylehaus/storefront-client/internal/errors"
	"github.com/stylehaus/storefront-client/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededRFQStore(t *testing.T, mockClient *mocks.Client, requests []models.RFQRequest) *RFQStore {
	t.Helper()

	rfqStore := NewRFQStore(mockClient, discardLogger())

	mockClient.On("RFQRequests", mock.Anything, mock.Anything).Return(&models.RFQList{
		Requests: requests,
		Total:    len(requests),
		Limit:    50,
	}, nil).Once()
	require.NoError(t, rfqStore.FetchRequests(t.Context(), models.RFQFilters{}))

	return rfqStore
}

func TestSubmitRFQ(t *testing.T) {
	validLead := models.SubmitRFQRequest{
		Name:         "Jordan Baker",
		Email:        "jordan@example.com",
		Requirements: "500 embroidered polo shirts for a trade fair",
	}

	t.Run("Success - submission updates no local cache", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := NewRFQStore(mockClient, discardLogger())

		mockClient.On("SubmitRFQ", mock.Anything, mock.Anything).Return(nil).Once()

		// Act
		err := rfqStore.Submit(t.Context(), validLead)

		// Assert
		require.NoError(t, err)
		snap := rfqStore.Snapshot()
		assert.Empty(t, snap.Requests)
		assert.False(t, snap.Loading)
		assert.Empty(t, snap.Error)
		mockClient.AssertExpectations(t)
	})

	t.Run("Failure - invalid lead never hits the network", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := NewRFQStore(mockClient, discardLogger())

		// Act
		err := rfqStore.Submit(t.Context(), models.SubmitRFQRequest{Name: "X", Email: "not-an-email"})

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		mockClient.AssertNotCalled(t, "SubmitRFQ", mock.Anything, mock.Anything)
	})

	t.Run("Failure - server rejection is recorded", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := NewRFQStore(mockClient, discardLogger())

		mockClient.On("SubmitRFQ", mock.Anything, mock.Anything).
			Return(appErrors.APIError("Too many submissions", 429)).Once()

		// Act
		err := rfqStore.Submit(t.Context(), validLead)

		// Assert
		require.Error(t, err)
		assert.Equal(t, "Too many submissions", rfqStore.Snapshot().Error)
	})
}

func TestFetchRFQRequests(t *testing.T) {
	t.Run("Success - cache replaced wholesale", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, []models.RFQRequest{
			{ID: "rfq_1", Status: models.RFQStatusNew},
			{ID: "rfq_2", Status: models.RFQStatusQuoted},
		})

		mockClient.On("RFQRequests", mock.Anything, mock.MatchedBy(func(f models.RFQFilters) bool {
			return f.Status == models.RFQStatusNew
		})).Return(&models.RFQList{
			Requests: []models.RFQRequest{{ID: "rfq_9", Status: models.RFQStatusNew}},
			Total:    1,
			Limit:    50,
		}, nil).Once()

		// Act
		require.NoError(t, rfqStore.FetchRequests(t.Context(), models.RFQFilters{Status: models.RFQStatusNew}))

		// Assert
		snap := rfqStore.Snapshot()
		require.Len(t, snap.Requests, 1)
		assert.Equal(t, "rfq_9", snap.Requests[0].ID)
		assert.Equal(t, 1, snap.Pagination.Total)
	})

	t.Run("Failure - previous leads survive", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, []models.RFQRequest{{ID: "rfq_1"}})

		mockClient.On("RFQRequests", mock.Anything, mock.Anything).
			Return(nil, appErrors.NetworkError("offline")).Once()

		// Act
		err := rfqStore.FetchRequests(t.Context(), models.RFQFilters{})

		// Assert
		require.Error(t, err)
		snap := rfqStore.Snapshot()
		assert.Len(t, snap.Requests, 1)
		assert.Equal(t, "offline", snap.Error)
	})
}

func TestUpdateRFQStatus(t *testing.T) {
	leads := func() []models.RFQRequest {
		created := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

		return []models.RFQRequest{
			{ID: "rfq_123", Name: "Jordan Baker", Status: models.RFQStatusNew, CreatedAt: created, UpdatedAt: created},
			{ID: "rfq_456", Name: "Sam Woods", Status: models.RFQStatusReviewing, CreatedAt: created, UpdatedAt: created},
		}
	}

	t.Run("patches exactly the matching record after confirmation", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, leads())

		patchTime := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		rfqStore.now = func() time.Time { return patchTime }

		mockClient.On("UpdateRFQStatus", mock.Anything, "rfq_123", mock.Anything).
			Return(nil, nil).Once()

		// Act
		err := rfqStore.UpdateStatus(t.Context(), "rfq_123", models.UpdateRFQStatusRequest{
			Status: models.RFQStatusQuoted,
			Notes:  "sent pricing sheet",
		})

		// Assert
		require.NoError(t, err)
		snap := rfqStore.Snapshot()
		assert.Equal(t, models.RFQStatusQuoted, snap.Requests[0].Status)
		assert.Equal(t, "sent pricing sheet", snap.Requests[0].Notes)
		assert.Equal(t, patchTime, snap.Requests[0].UpdatedAt)
		// the other record is untouched
		assert.Equal(t, models.RFQStatusReviewing, snap.Requests[1].Status)
		assert.NotEqual(t, patchTime, snap.Requests[1].UpdatedAt)
	})

	t.Run("idempotent - applying the same status twice equals once", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, leads())

		patchTime := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		rfqStore.now = func() time.Time { return patchTime }

		mockClient.On("UpdateRFQStatus", mock.Anything, "rfq_123", mock.Anything).
			Return(nil, nil).Twice()

		req := models.UpdateRFQStatusRequest{Status: models.RFQStatusWon}

		// Act
		require.NoError(t, rfqStore.UpdateStatus(t.Context(), "rfq_123", req))
		once := rfqStore.Snapshot()
		require.NoError(t, rfqStore.UpdateStatus(t.Context(), "rfq_123", req))
		twice := rfqStore.Snapshot()

		// Assert
		assert.Equal(t, once.Requests, twice.Requests)
		mockClient.AssertExpectations(t)
	})

	t.Run("server-returned record wins over the local patch", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, leads())

		serverTime := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)
		mockClient.On("UpdateRFQStatus", mock.Anything, "rfq_123", mock.Anything).
			Return(&models.RFQRequest{
				ID:        "rfq_123",
				Name:      "Jordan Baker",
				Status:    models.RFQStatusClosed,
				UpdatedAt: serverTime,
			}, nil).Once()

		// Act
		require.NoError(t, rfqStore.UpdateStatus(t.Context(), "rfq_123", models.UpdateRFQStatusRequest{
			Status: models.RFQStatusClosed,
		}))

		// Assert
		snap := rfqStore.Snapshot()
		assert.Equal(t, models.RFQStatusClosed, snap.Requests[0].Status)
		assert.Equal(t, serverTime, snap.Requests[0].UpdatedAt)
	})

	t.Run("failed update leaves every record untouched", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, leads())

		mockClient.On("UpdateRFQStatus", mock.Anything, "rfq_123", mock.Anything).
			Return(nil, appErrors.APIError("Conflict", 409)).Once()

		// Act
		err := rfqStore.UpdateStatus(t.Context(), "rfq_123", models.UpdateRFQStatusRequest{
			Status: models.RFQStatusLost,
		})

		// Assert
		require.Error(t, err)
		snap := rfqStore.Snapshot()
		assert.Equal(t, models.RFQStatusNew, snap.Requests[0].Status)
		assert.Equal(t, "Conflict", snap.Error)
	})

	t.Run("unknown id is a local no-op", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := seededRFQStore(t, mockClient, leads())

		mockClient.On("UpdateRFQStatus", mock.Anything, "rfq_999", mock.Anything).
			Return(nil, nil).Once()

		// Act
		err := rfqStore.UpdateStatus(t.Context(), "rfq_999", models.UpdateRFQStatusRequest{
			Status: models.RFQStatusWon,
		})

		// Assert
		require.NoError(t, err)
		snap := rfqStore.Snapshot()
		assert.Equal(t, models.RFQStatusNew, snap.Requests[0].Status)
		assert.Equal(t, models.RFQStatusReviewing, snap.Requests[1].Status)
	})

	t.Run("invalid status fails validation locally", func(t *testing.T) {
		// Arrange
		mockClient := new(mocks.Client)
		rfqStore := NewRFQStore(mockClient, discardLogger())

		// Act
		err := rfqStore.UpdateStatus(t.Context(), "rfq_123", models.UpdateRFQStatusRequest{
			Status: "approved",
		})

		// Assert
		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeValidation, appErr.Code)
		mockClient.AssertNotCalled(t, "UpdateRFQStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
