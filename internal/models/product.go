package models

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// Product descriptions arrive as rich text authored in the admin console; they
// are sanitized once, at the wire boundary, so everything downstream can treat
// them as safe.
var descriptionPolicy = bluemonday.UGCPolicy()

type Specifications struct {
	Material string `json:"material,omitempty"`
	Color    string `json:"color,omitempty"`
	Size     string `json:"size,omitempty"`
}

type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description"`
	CategoryID       string         `json:"category_id"`
	CategoryName     string         `json:"category_name,omitempty"`
	MainCategoryName string         `json:"main_category_name,omitempty"`
	Images           []string       `json:"images,omitempty"`
	Specifications   Specifications `json:"specifications"`
	SEOSlug          string         `json:"seo_slug"`
	SEOTitle         string         `json:"seo_title,omitempty"`
	SEODescription   string         `json:"seo_description,omitempty"`
	SEOKeywords      string         `json:"seo_keywords,omitempty"`
	IsActive         bool           `json:"is_active"`
	CreatedAt        time.Time      `json:"created_at"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	a.Description = descriptionPolicy.Sanitize(a.Description)
	*p = Product(a)

	return nil
}

type CreateProductRequest struct {
	Name           string         `json:"name" validate:"required,min=3,max=200"`
	Description    string         `json:"description,omitempty"`
	CategoryID     string         `json:"category_id" validate:"required"`
	Images         []string       `json:"images,omitempty"`
	Specifications Specifications `json:"specifications"`
	SEOSlug        string         `json:"seo_slug,omitempty"`
	SEOTitle       string         `json:"seo_title,omitempty"`
	SEODescription string         `json:"seo_description,omitempty"`
	SEOKeywords    string         `json:"seo_keywords,omitempty"`
	IsActive       *bool          `json:"is_active,omitempty"`
}

type UpdateProductRequest struct {
	Name           *string         `json:"name,omitempty" validate:"omitempty,min=3,max=200"`
	Description    *string         `json:"description,omitempty"`
	CategoryID     *string         `json:"category_id,omitempty"`
	Images         []string        `json:"images,omitempty"`
	Specifications *Specifications `json:"specifications,omitempty"`
	SEOSlug        *string         `json:"seo_slug,omitempty"`
	SEOTitle       *string         `json:"seo_title,omitempty"`
	SEODescription *string         `json:"seo_description,omitempty"`
	SEOKeywords    *string         `json:"seo_keywords,omitempty"`
	IsActive       *bool           `json:"is_active,omitempty"`
}

// ProductFilters mirrors the query parameters accepted by every product
// listing endpoint. Zero values are omitted from the query string.
type ProductFilters struct {
	CategoryID       string
	SubCategoryID    string
	MainCategoryName string
	Search           string
	SortBy           string
	IsActive         *bool
	Limit            int
	Skip             int
}

func (f ProductFilters) Values() url.Values {
	q := url.Values{}

	if f.CategoryID != "" {
		q.Set("category_id", f.CategoryID)
	}
	if f.SubCategoryID != "" {
		q.Set("sub_category_id", f.SubCategoryID)
	}
	if f.MainCategoryName != "" {
		q.Set("main_category_name", f.MainCategoryName)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	if f.IsActive != nil {
		q.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}

	return q
}

// ProductList is the payload of a successful listing call.
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Limit    int       `json:"limit"`
	Skip     int       `json:"skip"`
}
