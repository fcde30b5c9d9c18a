package models

const (
	CategoryTypeMain = "main"
	CategoryTypeSub  = "sub"
)

type Category struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Type           string `json:"type"`
	MainCategoryID string `json:"main_category_id,omitempty"`
	Slug           string `json:"slug"`
}

type CreateCategoryRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Description    string `json:"description,omitempty"`
	Type           string `json:"type" validate:"required,oneof=main sub"`
	MainCategoryID string `json:"main_category_id,omitempty" validate:"required_if=Type sub"`
	Slug           string `json:"slug,omitempty"`
}

type UpdateCategoryRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description    *string `json:"description,omitempty"`
	MainCategoryID *string `json:"main_category_id,omitempty"`
	Slug           *string `json:"slug,omitempty"`
}

// AdminCategoryTree is the payload of the admin listing: main categories plus
// their sub-categories grouped by parent category id.
type AdminCategoryTree struct {
	MainCategories     []Category            `json:"main_categories"`
	SubCategoriesByMain map[string][]Category `json:"sub_categories_by_main"`
}
