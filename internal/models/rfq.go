package models

import (
	"net/url"
	"strconv"
	"time"
)

type RFQStatus string

const (
	RFQStatusNew       RFQStatus = "new"
	RFQStatusReviewing RFQStatus = "reviewing"
	RFQStatusQuoted    RFQStatus = "quoted"
	RFQStatusClosed    RFQStatus = "closed"
	RFQStatusWon       RFQStatus = "won"
	RFQStatusLost      RFQStatus = "lost"
)

type RFQRequest struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	Company         string    `json:"company,omitempty"`
	Requirements    string    `json:"requirements"`
	ProductCategory string    `json:"product_category,omitempty"`
	Quantity        string    `json:"quantity,omitempty"`
	Budget          string    `json:"budget,omitempty"`
	Timeline        string    `json:"timeline,omitempty"`
	Status          RFQStatus `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SubmitRFQRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	Requirements    string `json:"requirements" validate:"required,min=10"`
	ProductCategory string `json:"product_category,omitempty"`
	Quantity        string `json:"quantity,omitempty"`
	Budget          string `json:"budget,omitempty"`
	Timeline        string `json:"timeline,omitempty"`
}

// UpdateRFQStatusRequest carries any backend-accepted status; the client does
// not enforce workflow order between statuses.
type UpdateRFQStatusRequest struct {
	Status RFQStatus `json:"status" validate:"required,oneof=new reviewing quoted closed won lost"`
	Notes  string    `json:"notes,omitempty"`
}

type RFQFilters struct {
	Status RFQStatus
	Limit  int
	Skip   int
}

func (f RFQFilters) Values() url.Values {
	q := url.Values{}

	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}

	return q
}

// RFQList is the payload of a successful admin listing call.
type RFQList struct {
	Requests []RFQRequest `json:"rfq_requests"`
	Total    int          `json:"total"`
	Limit    int          `json:"limit"`
	Skip     int          `json:"skip"`
}
