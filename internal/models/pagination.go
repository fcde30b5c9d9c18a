package models

// Pagination mirrors the metadata the backend returns alongside listings.
type Pagination struct {
	Total int `json:"total"`
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}
