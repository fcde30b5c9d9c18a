// Package store holds the client-side state slices synchronized with the
// backend. Each slice owns one entity family, is mutated only by its own
// methods, and follows the pending/fulfilled/rejected lifecycle: a fetch sets
// loading and clears the previous error, then either applies the result or
// records the failure while keeping the last-good data.
package store

import (
	"log/slog"

	"github.com/stylehaus/storefront-client/internal/api"
	"github.com/stylehaus/storefront-client/internal/cache"
	"github.com/stylehaus/storefront-client/internal/config"
	appErrors "github.com/stylehaus/storefront-client/internal/errors"
)

// Store aggregates the slices behind one dependency-injected root so tests
// can build isolated instances.
type Store struct {
	Auth    *AuthStore
	Catalog *CatalogStore
	RFQ     *RFQStore
	Admin   *AdminStore
}

func New(client api.Client, snapshots cache.Cache, cfg *config.Config) *Store {
	logger := slog.Default()

	return &Store{
		Auth:    NewAuthStore(client, logger),
		Catalog: NewCatalogStore(client, snapshots, &cfg.Catalog, logger),
		RFQ:     NewRFQStore(client, logger),
		Admin:   NewAdminStore(client, logger),
	}
}

// errorMessage converts any client failure into the human-readable string a
// slice records; fallback is used when the failure carries no message.
func errorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}

	if appErr, ok := appErrors.IsAppError(err); ok && appErr.Message != "" {
		return appErr.Message
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return fallback
}
