package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/stylehaus/storefront-client/internal/api"
	appErrors "github.com/stylehaus/storefront-client/internal/errors"
	"github.com/stylehaus/storefront-client/internal/models"
)

// RFQStore owns the lead slice for the admin list view. Submissions happen
// from a shopper context, so a successful submit updates no local cache.
type RFQStore struct {
	mu       sync.Mutex
	client   api.Client
	logger   *slog.Logger
	validate *validator.Validate
	now      func() time.Time

	requests   []models.RFQRequest
	pagination models.Pagination
	filters    models.RFQFilters
	loading    bool
	errMsg     string

	seq uint64
}

func NewRFQStore(client api.Client, logger *slog.Logger) *RFQStore {
	return &RFQStore{
		client:   client,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

type RFQSnapshot struct {
	Requests   []models.RFQRequest
	Pagination models.Pagination
	Filters    models.RFQFilters
	Loading    bool
	Error      string
}

func (s *RFQStore) Snapshot() RFQSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return RFQSnapshot{
		Requests:   append([]models.RFQRequest(nil), s.requests...),
		Pagination: s.pagination,
		Filters:    s.filters,
		Loading:    s.loading,
		Error:      s.errMsg,
	}
}

func (s *RFQStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = ""
}

func (s *RFQStore) SetFilters(filters models.RFQFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = filters
}

// Submit validates the lead and fires the creation call. The result is not
// cached locally; the shopper flow only needs success or an error message.
func (s *RFQStore) Submit(ctx context.Context, req models.SubmitRFQRequest) error {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		valErr := appErrors.ValidationError("Please fill in all required fields").WithError(err)

		s.mu.Lock()
		s.errMsg = valErr.Message
		s.mu.Unlock()

		return valErr
	}

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	err := s.client.SubmitRFQ(ctx, &req)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to submit RFQ")

		return err
	}

	s.logger.Info("RFQ submitted", slog.String("email", req.Email))

	return nil
}

// FetchRequests replaces the cached leads wholesale; a failure keeps the
// previous list so the admin view can offer a retry over stale data.
func (s *RFQStore) FetchRequests(ctx context.Context, filters models.RFQFilters) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.loading = true
	s.errMsg = ""
	s.filters = filters
	s.mu.Unlock()

	list, err := s.client.RFQRequests(ctx, filters)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return nil
	}

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to fetch RFQ requests")

		return err
	}

	s.requests = list.Requests
	s.pagination = models.Pagination{Total: list.Total, Limit: list.Limit, Skip: list.Skip}

	return nil
}

// UpdateStatus patches the one matching cached record only after the server
// confirmed the change. Any backend-accepted status is mirrored as-is; an id
// missing from the cache is a local no-op.
func (s *RFQStore) UpdateStatus(ctx context.Context, id string, req models.UpdateRFQStatusRequest) error {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		valErr := appErrors.ValidationError("Invalid RFQ status").WithError(err)

		s.mu.Lock()
		s.errMsg = valErr.Message
		s.mu.Unlock()

		return valErr
	}

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	updated, err := s.client.UpdateRFQStatus(ctx, id, &req)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to update RFQ status")

		return err
	}

	for i := range s.requests {
		if s.requests[i].ID != id {
			continue
		}

		if updated != nil {
			s.requests[i] = *updated
		} else {
			s.requests[i].Status = req.Status
			s.requests[i].Notes = req.Notes
			s.requests[i].UpdatedAt = s.now()
		}

		break
	}

	return nil
}
