package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"

	"github.com/stylehaus/storefront-client/internal/api"
	appErrors "github.com/stylehaus/storefront-client/internal/errors"
	"github.com/stylehaus/storefront-client/internal/models"
)

// AuthStore owns the session slice. It starts in the anonymous-loading state
// until the first VerifySession resolves, mirroring a page bootstrap.
type AuthStore struct {
	mu       sync.Mutex
	client   api.Client
	logger   *slog.Logger
	validate *validator.Validate

	user            *models.User
	isAuthenticated bool
	accessToken     string
	refreshToken    string
	loading         bool
	errMsg          string
}

func NewAuthStore(client api.Client, logger *slog.Logger) *AuthStore {
	return &AuthStore{
		client:   client,
		logger:   logger,
		validate: validator.New(),
		loading:  true,
	}
}

// Session returns a snapshot by value; the admin flag is always derived from
// the user record, never stored.
func (s *AuthStore) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *models.User
	if s.user != nil {
		u := *s.user
		user = &u
	}

	return models.Session{
		User:            user,
		IsAuthenticated: s.isAuthenticated,
		AccessToken:     s.accessToken,
		RefreshToken:    s.refreshToken,
		Loading:         s.loading,
		Error:           s.errMsg,
	}
}

func (s *AuthStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = ""
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	s.errMsg = ""
}

func (s *AuthStore) Login(ctx context.Context, req models.LoginRequest) error {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		valErr := appErrors.ValidationError("Username and password are required").WithError(err)

		s.mu.Lock()
		s.errMsg = valErr.Message
		s.mu.Unlock()

		return valErr
	}

	s.begin()

	result, err := s.client.Login(ctx, &req)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.user = nil
		s.isAuthenticated = false
		s.accessToken = ""
		s.refreshToken = ""
		s.errMsg = errorMessage(err, "Login failed")

		return err
	}

	s.user = result.User
	s.isAuthenticated = true
	s.accessToken = result.AccessToken
	s.refreshToken = result.RefreshToken
	s.errMsg = ""

	s.logger.Info("Login succeeded", slog.String("username", req.Username))

	return nil
}

// VerifySession restores an authenticated session from persisted tokens at
// process start. A locally expired access token skips straight to refresh;
// any verify failure also falls back to refresh before giving up.
func (s *AuthStore) VerifySession(ctx context.Context) {
	tokens := s.client.Tokens()

	if tokens.Access() == "" && tokens.Refresh() == "" {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()

		return
	}

	s.begin()

	if access := tokens.Access(); access != "" && !tokenExpired(access) {
		user, err := s.client.VerifyToken(ctx)
		if err == nil {
			s.applyVerifiedUser(user, tokens)

			return
		}

		s.logger.Info("Token verification failed, attempting refresh", slog.String("error", err.Error()))
	}

	s.RefreshSession(ctx)
}

// RefreshSession exchanges the refresh token for a new pair. On failure the
// persisted credentials are cleared and the slice returns to anonymous.
func (s *AuthStore) RefreshSession(ctx context.Context) {
	result, err := s.client.RefreshToken(ctx)
	if err != nil {
		if clearErr := s.client.Tokens().Clear(); clearErr != nil {
			s.logger.Error("Failed to clear tokens after refresh failure", slog.String("error", clearErr.Error()))
		}

		s.mu.Lock()
		s.loading = false
		s.user = nil
		s.isAuthenticated = false
		s.accessToken = ""
		s.refreshToken = ""
		s.mu.Unlock()

		return
	}

	if result.User != nil {
		s.applyVerifiedUser(result.User, s.client.Tokens())

		return
	}

	// Refresh endpoints that return only tokens still need the user record.
	user, err := s.client.VerifyToken(ctx)
	if err != nil {
		s.mu.Lock()
		s.loading = false
		s.user = nil
		s.isAuthenticated = false
		s.mu.Unlock()

		return
	}

	s.applyVerifiedUser(user, s.client.Tokens())
}

func (s *AuthStore) applyVerifiedUser(user *models.User, tokens api.TokenStore) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	s.user = user
	s.isAuthenticated = user != nil
	s.accessToken = tokens.Access()
	s.refreshToken = tokens.Refresh()
	s.errMsg = ""
}

// Logout notifies the server best-effort and unconditionally ends anonymous.
func (s *AuthStore) Logout(ctx context.Context) {
	s.begin()

	if err := s.client.Logout(ctx); err != nil {
		s.logger.Warn("Server logout failed, clearing local session anyway", slog.String("error", err.Error()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	s.user = nil
	s.isAuthenticated = false
	s.accessToken = ""
	s.refreshToken = ""
	s.errMsg = ""
}

// tokenExpired inspects the unverified exp claim; signature checks belong to
// the backend. Tokens that do not parse are treated as expired.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}

	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}
