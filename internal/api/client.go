package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appErrors "github.com/stylehaus/storefront-client/internal/errors"
	"github.com/stylehaus/storefront-client/internal/metrics"
	"github.com/stylehaus/storefront-client/internal/models"
)

// Client is the single chokepoint for all backend I/O. Every method returns
// either the typed payload or an *errors.AppError; there are no retries and
// no partial results.
type Client interface {
	HealthCheck(ctx context.Context) error

	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResult, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error)
	Logout(ctx context.Context) error
	VerifyToken(ctx context.Context) (*models.User, error)
	RefreshToken(ctx context.Context) (*models.AuthResult, error)

	Categories(ctx context.Context) ([]models.Category, error)
	MainCategories(ctx context.Context) ([]models.Category, error)
	SubCategories(ctx context.Context, mainCategorySlug string) ([]models.Category, error)
	CategoriesForAdmin(ctx context.Context) (*models.AdminCategoryTree, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	Products(ctx context.Context, filters models.ProductFilters) (*models.ProductList, error)
	ProductsByMainCategory(ctx context.Context, mainCategorySlug string, filters models.ProductFilters) (*models.ProductList, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	ProductBySlug(ctx context.Context, mainCategory, slug string) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	SubmitRFQ(ctx context.Context, req *models.SubmitRFQRequest) error
	RFQRequests(ctx context.Context, filters models.RFQFilters) (*models.RFQList, error)
	UpdateRFQStatus(ctx context.Context, id string, req *models.UpdateRFQStatusRequest) (*models.RFQRequest, error)

	Tokens() TokenStore
}

type restClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, tokens TokenStore) Client {
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tokens: tokens,
		logger: slog.Default(),
	}
}

func (c *restClient) Tokens() TokenStore {
	return c.tokens
}

// wire envelope shared by every backend response.
type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (e *envelope) status() (bool, string) {
	return e.Success, e.Error
}

type statuser interface {
	status() (bool, string)
}

type authEnvelope struct {
	envelope
	User         *models.User `json:"user,omitempty"`
	AccessToken  string       `json:"access_token,omitempty"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

type categoryListEnvelope struct {
	envelope
	Categories []models.Category `json:"categories"`
}

type categoryEnvelope struct {
	envelope
	Category *models.Category `json:"category"`
}

type adminCategoriesEnvelope struct {
	envelope
	models.AdminCategoryTree
}

type productListEnvelope struct {
	envelope
	models.ProductList
}

type productEnvelope struct {
	envelope
	Product *models.Product `json:"product"`
}

type rfqListEnvelope struct {
	envelope
	models.RFQList
}

type rfqEnvelope struct {
	envelope
	Request *models.RFQRequest `json:"rfq_request"`
}

// metricEndpoint collapses concrete paths to their leading resource so the
// Prometheus label stays low-cardinality.
func metricEndpoint(endpoint string) string {
	trimmed := strings.TrimPrefix(endpoint, "/")
	if i := strings.IndexAny(trimmed, "/?"); i >= 0 {
		trimmed = trimmed[:i]
	}

	return "/" + trimmed
}

// do issues one request and decodes the response into out. Non-2xx statuses
// and success=false envelopes both become AppErrors carrying the server
// message when one was provided.
func (c *restClient) do(ctx context.Context, method, endpoint string, body any, out statuser) error {
	reqURL := c.baseURL + endpoint

	var reqBody io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.InternalError("Failed to encode request body").WithError(err)
		}

		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return appErrors.InternalError("Failed to build request").WithError(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if token := c.tokens.Access(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()

	metrics.RequestStarted()
	defer metrics.RequestFinished()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveRequest(method, metricEndpoint(endpoint), 0, time.Since(start))
		c.logger.Warn("Request failed before a response arrived",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()))

		return appErrors.NetworkError("Unable to reach the server").WithError(err)
	}
	defer resp.Body.Close()

	metrics.ObserveRequest(method, metricEndpoint(endpoint), resp.StatusCode, time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.NetworkError("Failed to read server response").WithError(err)
	}

	if out == nil {
		out = &envelope{}
	}

	decodeErr := json.Unmarshal(respBody, out)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)

		if decodeErr == nil {
			if _, serverMsg := out.status(); serverMsg != "" {
				message = serverMsg
			}
		}

		c.logger.Warn("Request rejected by server",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode))

		switch resp.StatusCode {
		case http.StatusNotFound:
			return appErrors.NotFoundError(message)
		case http.StatusUnauthorized:
			return appErrors.UnauthorizedError(message)
		default:
			return appErrors.APIError(message, resp.StatusCode)
		}
	}

	if decodeErr != nil {
		return appErrors.APIError("Invalid JSON in server response", resp.StatusCode).WithError(decodeErr)
	}

	if ok, serverMsg := out.status(); !ok {
		if serverMsg == "" {
			serverMsg = "Request was not successful"
		}

		return appErrors.APIError(serverMsg, resp.StatusCode)
	}

	return nil
}

func (c *restClient) HealthCheck(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

// storeAuthTokens persists the pair a successful auth call returned. A
// persistence failure is logged but does not fail the login itself.
func (c *restClient) storeAuthTokens(env *authEnvelope) {
	if env.AccessToken == "" {
		return
	}

	if err := c.tokens.Set(env.AccessToken, env.RefreshToken); err != nil {
		c.logger.Error("Failed to persist auth tokens", slog.String("error", err.Error()))
	}
}

func (c *restClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResult, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/register", req, &env); err != nil {
		return nil, err
	}

	c.storeAuthTokens(&env)

	return &models.AuthResult{User: env.User, AccessToken: env.AccessToken, RefreshToken: env.RefreshToken}, nil
}

func (c *restClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResult, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &env); err != nil {
		return nil, err
	}

	c.storeAuthTokens(&env)

	return &models.AuthResult{User: env.User, AccessToken: env.AccessToken, RefreshToken: env.RefreshToken}, nil
}

// Logout notifies the server best-effort; the persisted pair is cleared no
// matter how the call went.
func (c *restClient) Logout(ctx context.Context) error {
	defer func() {
		if err := c.tokens.Clear(); err != nil {
			c.logger.Error("Failed to clear auth tokens", slog.String("error", err.Error()))
		}
	}()

	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *restClient) VerifyToken(ctx context.Context) (*models.User, error) {
	var env authEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/verify", nil, &env); err != nil {
		return nil, err
	}

	return env.User, nil
}

func (c *restClient) RefreshToken(ctx context.Context) (*models.AuthResult, error) {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return nil, appErrors.UnauthorizedError("No refresh token available")
	}

	body := map[string]string{"refresh_token": refresh}

	var env authEnvelope
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", body, &env); err != nil {
		return nil, err
	}

	c.storeAuthTokens(&env)

	return &models.AuthResult{User: env.User, AccessToken: env.AccessToken, RefreshToken: env.RefreshToken}, nil
}

func (c *restClient) Categories(ctx context.Context) ([]models.Category, error) {
	var env categoryListEnvelope
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &env); err != nil {
		return nil, err
	}

	return env.Categories, nil
}

func (c *restClient) MainCategories(ctx context.Context) ([]models.Category, error) {
	var env categoryListEnvelope
	if err := c.do(ctx, http.MethodGet, "/categories/main", nil, &env); err != nil {
		return nil, err
	}

	return env.Categories, nil
}

func (c *restClient) SubCategories(ctx context.Context, mainCategorySlug string) ([]models.Category, error) {
	if mainCategorySlug == "" {
		return nil, appErrors.AddValidationError("mainCategorySlug", "must not be empty")
	}

	var env categoryListEnvelope
	if err := c.do(ctx, http.MethodGet, "/categories/sub/"+url.PathEscape(mainCategorySlug), nil, &env); err != nil {
		return nil, err
	}

	return env.Categories, nil
}

func (c *restClient) CategoriesForAdmin(ctx context.Context) (*models.AdminCategoryTree, error) {
	var env adminCategoriesEnvelope
	if err := c.do(ctx, http.MethodGet, "/categories/admin", nil, &env); err != nil {
		return nil, err
	}

	return &env.AdminCategoryTree, nil
}

func (c *restClient) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	var env categoryEnvelope
	if err := c.do(ctx, http.MethodPost, "/categories", req, &env); err != nil {
		return nil, err
	}

	return env.Category, nil
}

func (c *restClient) UpdateCategory(ctx context.Context, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	var env categoryEnvelope
	if err := c.do(ctx, http.MethodPut, "/categories/"+url.PathEscape(id), req, &env); err != nil {
		return nil, err
	}

	return env.Category, nil
}

func (c *restClient) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/categories/"+url.PathEscape(id), nil, nil)
}

func listEndpoint(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}

	return base + "?" + q.Encode()
}

func (c *restClient) Products(ctx context.Context, filters models.ProductFilters) (*models.ProductList, error) {
	var env productListEnvelope
	if err := c.do(ctx, http.MethodGet, listEndpoint("/products", filters.Values()), nil, &env); err != nil {
		return nil, err
	}

	return &env.ProductList, nil
}

func (c *restClient) ProductsByMainCategory(ctx context.Context, mainCategorySlug string, filters models.ProductFilters) (*models.ProductList, error) {
	if mainCategorySlug == "" {
		return nil, appErrors.AddValidationError("mainCategorySlug", "must not be empty")
	}

	endpoint := listEndpoint("/products/category/"+url.PathEscape(mainCategorySlug), filters.Values())

	var env productListEnvelope
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}

	return &env.ProductList, nil
}

func (c *restClient) Product(ctx context.Context, id string) (*models.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(id), nil, &env); err != nil {
		return nil, err
	}

	return env.Product, nil
}

func (c *restClient) ProductBySlug(ctx context.Context, mainCategory, slug string) (*models.Product, error) {
	if mainCategory == "" || slug == "" {
		return nil, appErrors.AddValidationError("slug", "mainCategory and slug are required")
	}

	endpoint := "/products/slug/" + url.PathEscape(mainCategory) + "/" + url.PathEscape(slug)

	var env productEnvelope
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &env); err != nil {
		return nil, err
	}

	if env.Product == nil {
		return nil, appErrors.NotFoundError("Product not found")
	}

	return env.Product, nil
}

func (c *restClient) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPost, "/products", req, &env); err != nil {
		return nil, err
	}

	return env.Product, nil
}

func (c *restClient) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	var env productEnvelope
	if err := c.do(ctx, http.MethodPut, "/products/"+url.PathEscape(id), req, &env); err != nil {
		return nil, err
	}

	return env.Product, nil
}

func (c *restClient) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil)
}

func (c *restClient) SubmitRFQ(ctx context.Context, req *models.SubmitRFQRequest) error {
	return c.do(ctx, http.MethodPost, "/rfq", req, nil)
}

func (c *restClient) RFQRequests(ctx context.Context, filters models.RFQFilters) (*models.RFQList, error) {
	var env rfqListEnvelope
	if err := c.do(ctx, http.MethodGet, listEndpoint("/rfq", filters.Values()), nil, &env); err != nil {
		return nil, err
	}

	return &env.RFQList, nil
}

func (c *restClient) UpdateRFQStatus(ctx context.Context, id string, req *models.UpdateRFQStatusRequest) (*models.RFQRequest, error) {
	var env rfqEnvelope
	if err := c.do(ctx, http.MethodPut, "/rfq/"+url.PathEscape(id), req, &env); err != nil {
		return nil, err
	}

	return env.Request, nil
}
