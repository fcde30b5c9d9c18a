package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"

	"github.com/stylehaus/storefront-client/internal/api"
	"github.com/stylehaus/storefront-client/internal/cache"
	"github.com/stylehaus/storefront-client/internal/config"
	appErrors "github.com/stylehaus/storefront-client/internal/errors"
	"github.com/stylehaus/storefront-client/internal/models"
)

// CatalogStore owns the product and category slices. Listings are replaced
// wholesale from the server response and paginated locally in fixed-size
// windows over the capped fetch, so moving the window never refetches.
type CatalogStore struct {
	mu        sync.Mutex
	client    api.Client
	snapshots cache.Cache
	logger    *slog.Logger
	validate  *validator.Validate

	pageSize   int
	fetchLimit int

	products       []models.Product
	currentProduct *models.Product
	pagination     models.Pagination
	filters        models.ProductFilters
	page           int
	loading        bool
	errMsg         string

	// Sequence fencing: each issued fetch takes the next number and its
	// resolution is applied only while it is still the latest, so a slow
	// superseded response can never overwrite newer state.
	productSeq  uint64
	categorySeq uint64

	categories     []models.Category
	mainCategories []models.Category
	subCategories  map[string][]models.Category
}

func NewCatalogStore(client api.Client, snapshots cache.Cache, cfg *config.CatalogConfig, logger *slog.Logger) *CatalogStore {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}

	fetchLimit := cfg.FetchLimit
	if fetchLimit <= 0 {
		fetchLimit = 100
	}

	return &CatalogStore{
		client:        client,
		snapshots:     snapshots,
		logger:        logger,
		validate:      validator.New(),
		pageSize:      pageSize,
		fetchLimit:    fetchLimit,
		page:          1,
		filters:       models.ProductFilters{SortBy: "name"},
		subCategories: map[string][]models.Category{},
	}
}

// CatalogSnapshot is a point-in-time copy of the slice for view consumers.
type CatalogSnapshot struct {
	Products       []models.Product
	CurrentProduct *models.Product
	Pagination     models.Pagination
	Filters        models.ProductFilters
	Page           int
	Loading        bool
	Error          string
	Categories     []models.Category
	MainCategories []models.Category
	SubCategories  map[string][]models.Category
}

func (s *CatalogStore) Snapshot() CatalogSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current *models.Product
	if s.currentProduct != nil {
		p := *s.currentProduct
		current = &p
	}

	subs := make(map[string][]models.Category, len(s.subCategories))
	for parent, cats := range s.subCategories {
		subs[parent] = append([]models.Category(nil), cats...)
	}

	return CatalogSnapshot{
		Products:       append([]models.Product(nil), s.products...),
		CurrentProduct: current,
		Pagination:     s.pagination,
		Filters:        s.filters,
		Page:           s.page,
		Loading:        s.loading,
		Error:          s.errMsg,
		Categories:     append([]models.Category(nil), s.categories...),
		MainCategories: append([]models.Category(nil), s.mainCategories...),
		SubCategories:  subs,
	}
}

func (s *CatalogStore) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = ""
}

// SetFilters merges the given filters into the slice and resets the window
// to the first page whenever the search text, sort key or category scope
// changed. It never triggers a fetch by itself.
func (s *CatalogStore) SetFilters(filters models.ProductFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scopeChanged := filters.Search != s.filters.Search ||
		filters.SortBy != s.filters.SortBy ||
		filters.CategoryID != s.filters.CategoryID ||
		filters.SubCategoryID != s.filters.SubCategoryID ||
		filters.MainCategoryName != s.filters.MainCategoryName

	s.filters = filters

	if scopeChanged {
		s.page = 1
	}
}

func (s *CatalogStore) Filters() models.ProductFilters {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filters
}

// SetPage moves the client-side window without refetching. Out-of-range
// values clamp to the nearest valid page.
func (s *CatalogStore) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if max := s.pageCountLocked(); page > max {
		page = max
	}
	if page < 1 {
		page = 1
	}

	s.page = page
}

func (s *CatalogStore) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pageCountLocked()
}

func (s *CatalogStore) pageCountLocked() int {
	if len(s.products) == 0 {
		return 1
	}

	return (len(s.products) + s.pageSize - 1) / s.pageSize
}

// Page returns the products visible in the current window.
func (s *CatalogStore) Page() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := (s.page - 1) * s.pageSize
	if start >= len(s.products) {
		return nil
	}

	end := start + s.pageSize
	if end > len(s.products) {
		end = len(s.products)
	}

	return append([]models.Product(nil), s.products[start:end]...)
}

func (s *CatalogStore) beginProductFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.productSeq++
	s.loading = true
	s.errMsg = ""

	return s.productSeq
}

// applyProductList installs a fetch result unless a newer fetch has been
// issued since; superseded resolutions (and their errors) are dropped.
func (s *CatalogStore) applyProductList(seq uint64, list *models.ProductList, err error, fallback string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.productSeq {
		s.logger.Debug("Dropping superseded product fetch", slog.Uint64("seq", seq))

		return nil
	}

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, fallback)

		return err
	}

	s.products = list.Products
	s.pagination = models.Pagination{Total: list.Total, Limit: list.Limit, Skip: list.Skip}
	s.errMsg = ""

	return nil
}

func (s *CatalogStore) cappedFilters(filters models.ProductFilters) models.ProductFilters {
	if filters.Limit <= 0 || filters.Limit > s.fetchLimit {
		filters.Limit = s.fetchLimit
	}

	return filters
}

func listingCacheKey(filters models.ProductFilters) string {
	encoded := filters.Values().Encode()
	if encoded == "" {
		encoded = "all"
	}

	return cache.Key(cache.ProductListKeyPrefix, encoded)
}

// storeListingSnapshot writes the last-good listing through to the snapshot
// cache; failures are logged and never surfaced as slice errors.
func (s *CatalogStore) storeListingSnapshot(ctx context.Context, key string, list *models.ProductList) {
	if s.snapshots == nil {
		return
	}

	if err := s.snapshots.Set(ctx, key, list, 0); err != nil {
		s.logger.Warn("Failed to cache listing snapshot", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *CatalogStore) FetchProducts(ctx context.Context, filters models.ProductFilters) error {
	filters = s.cappedFilters(filters)
	seq := s.beginProductFetch()

	list, err := s.client.Products(ctx, filters)
	if err == nil {
		s.storeListingSnapshot(ctx, listingCacheKey(filters), list)
	}

	return s.applyProductList(seq, list, err, "Failed to fetch products")
}

func (s *CatalogStore) FetchProductsByCategory(ctx context.Context, mainCategorySlug string, filters models.ProductFilters) error {
	filters = s.cappedFilters(filters)
	seq := s.beginProductFetch()

	list, err := s.client.ProductsByMainCategory(ctx, mainCategorySlug, filters)
	if err == nil {
		key := cache.Key(cache.ProductListKeyPrefix, mainCategorySlug+"?"+filters.Values().Encode())
		s.storeListingSnapshot(ctx, key, list)
	}

	return s.applyProductList(seq, list, err, "Failed to fetch products by category")
}

// WarmFromCache seeds the listing from the last-good snapshot so a fresh
// process can render before its first fetch resolves. It applies nothing
// when the slice already holds products.
func (s *CatalogStore) WarmFromCache(ctx context.Context, filters models.ProductFilters) bool {
	if s.snapshots == nil {
		return false
	}

	filters = s.cappedFilters(filters)

	var list models.ProductList

	found, err := s.snapshots.Get(ctx, listingCacheKey(filters), &list)
	if err != nil {
		s.logger.Warn("Failed to read listing snapshot", slog.String("error", err.Error()))

		return false
	}

	if !found {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.products) > 0 {
		return false
	}

	s.products = list.Products
	s.pagination = models.Pagination{Total: list.Total, Limit: list.Limit, Skip: list.Skip}

	return true
}

// FetchProduct populates the current-product slot used by detail views.
// A not-found result clears the slot and records the condition; views render
// it as an empty state rather than a fault.
func (s *CatalogStore) FetchProduct(ctx context.Context, id string) error {
	s.beginDetailFetch()

	product, err := s.client.Product(ctx, id)

	return s.applyDetail(product, err)
}

func (s *CatalogStore) FetchProductBySlug(ctx context.Context, mainCategory, slugValue string) error {
	s.beginDetailFetch()

	product, err := s.client.ProductBySlug(ctx, mainCategory, slugValue)

	return s.applyDetail(product, err)
}

func (s *CatalogStore) beginDetailFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = true
	s.errMsg = ""
}

func (s *CatalogStore) applyDetail(product *models.Product, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.currentProduct = nil
		s.errMsg = errorMessage(err, "Failed to fetch product")

		return err
	}

	s.currentProduct = product

	return nil
}

func (s *CatalogStore) ClearCurrentProduct() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentProduct = nil
}

func (s *CatalogStore) beginCategoryFetch() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categorySeq++
	s.loading = true
	s.errMsg = ""

	return s.categorySeq
}

func (s *CatalogStore) FetchCategories(ctx context.Context) error {
	seq := s.beginCategoryFetch()

	categories, err := s.client.Categories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.categorySeq {
		return nil
	}

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to fetch categories")

		return err
	}

	s.categories = categories

	return nil
}

func (s *CatalogStore) FetchMainCategories(ctx context.Context) error {
	seq := s.beginCategoryFetch()

	categories, err := s.client.MainCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.categorySeq {
		return nil
	}

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to fetch main categories")

		return err
	}

	s.mainCategories = categories

	return nil
}

// FetchSubCategories caches children keyed by their parent's slug, so
// several parents' children stay cached side by side without eviction.
func (s *CatalogStore) FetchSubCategories(ctx context.Context, mainCategorySlug string) error {
	seq := s.beginCategoryFetch()

	categories, err := s.client.SubCategories(ctx, mainCategorySlug)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.categorySeq {
		return nil
	}

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to fetch sub categories")

		return err
	}

	s.subCategories[mainCategorySlug] = categories

	return nil
}

// FetchCategoriesForAdmin loads the full two-level taxonomy: the flat list,
// the main categories, and the sub-category grouping all come from one call.
func (s *CatalogStore) FetchCategoriesForAdmin(ctx context.Context) error {
	seq := s.beginCategoryFetch()

	tree, err := s.client.CategoriesForAdmin(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.categorySeq {
		return nil
	}

	s.loading = false

	if err != nil {
		s.errMsg = errorMessage(err, "Failed to fetch categories for admin")

		return err
	}

	flat := append([]models.Category(nil), tree.MainCategories...)
	for _, subs := range tree.SubCategoriesByMain {
		flat = append(flat, subs...)
	}

	s.categories = flat
	s.mainCategories = tree.MainCategories

	if tree.SubCategoriesByMain != nil {
		s.subCategories = tree.SubCategoriesByMain
	}

	return nil
}

// Mutations below patch local state only after the server confirmed the
// change; a failure leaves the slice untouched apart from the error field.

func (s *CatalogStore) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	if req.Slug == "" {
		req.Slug = slug.Make(req.Name)
	}

	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, s.recordMutationError(appErrors.ValidationError("Invalid category data").WithError(err))
	}

	created, err := s.client.CreateCategory(ctx, &req)
	if err != nil {
		return nil, s.recordMutationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append(s.categories, *created)

	if created.Type == models.CategoryTypeMain {
		s.mainCategories = append(s.mainCategories, *created)
	} else if created.MainCategoryID != "" {
		s.subCategories[created.MainCategoryID] = append(s.subCategories[created.MainCategoryID], *created)
	}

	return created, nil
}

func (s *CatalogStore) UpdateCategory(ctx context.Context, id string, req models.UpdateCategoryRequest) (*models.Category, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, s.recordMutationError(appErrors.ValidationError("Invalid category data").WithError(err))
	}

	updated, err := s.client.UpdateCategory(ctx, id, &req)
	if err != nil {
		return nil, s.recordMutationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i].ID == updated.ID {
			s.categories[i] = *updated

			break
		}
	}

	return updated, nil
}

func (s *CatalogStore) DeleteCategory(ctx context.Context, id string) error {
	if err := s.client.DeleteCategory(ctx, id); err != nil {
		return s.recordMutationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	return nil
}

func (s *CatalogStore) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if req.SEOSlug == "" {
		req.SEOSlug = slug.Make(req.Name)
	}

	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, s.recordMutationError(appErrors.ValidationError("Invalid product data").WithError(err))
	}

	created, err := s.client.CreateProduct(ctx, &req)
	if err != nil {
		return nil, s.recordMutationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]models.Product{*created}, s.products...)
	s.pagination.Total++

	return created, nil
}

func (s *CatalogStore) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return nil, s.recordMutationError(appErrors.ValidationError("Invalid product data").WithError(err))
	}

	updated, err := s.client.UpdateProduct(ctx, id, &req)
	if err != nil {
		return nil, s.recordMutationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == updated.ID {
			s.products[i] = *updated

			break
		}
	}

	if s.currentProduct != nil && s.currentProduct.ID == updated.ID {
		p := *updated
		s.currentProduct = &p
	}

	return updated, nil
}

func (s *CatalogStore) DeleteProduct(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		return s.recordMutationError(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept

	if s.pagination.Total > 0 {
		s.pagination.Total--
	}

	if s.currentProduct != nil && s.currentProduct.ID == id {
		s.currentProduct = nil
	}

	return nil
}

func (s *CatalogStore) recordMutationError(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.errMsg = errorMessage(err, "Request failed")

	return err
}
