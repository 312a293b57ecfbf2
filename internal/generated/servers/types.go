// Package servers provides the HTTP models, the server interface and the
// echo route bindings for the Tours API described in api/openapi.yaml.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for ListToursParamsSortBy.
const (
	CreatedAt    ListToursParamsSortBy = "createdAt"
	Name         ListToursParamsSortBy = "name"
	Price        ListToursParamsSortBy = "price"
	Rating       ListToursParamsSortBy = "rating"
	ReviewsCount ListToursParamsSortBy = "reviewsCount"
)

// Defines values for ListToursParamsSortOrder.
const (
	Asc  ListToursParamsSortOrder = "asc"
	Desc ListToursParamsSortOrder = "desc"
)

// Defines values for TourLineType.
const (
	Excluded TourLineType = "excluded"
	Included TourLineType = "included"
)

// Error defines model for Error.
type Error struct {
	Code    int                `json:"code"`
	Details *map[string]string `json:"details,omitempty"`
	Message string             `json:"message"`
}

// Inquiry defines model for Inquiry.
type Inquiry struct {
	CreatedAt time.Time           `json:"createdAt"`
	Email     string              `json:"email"`
	Id        openapi_types.UUID  `json:"id"`
	Message   string              `json:"message"`
	Name      string              `json:"name"`
	Phone     *string             `json:"phone,omitempty"`
	TourId    *openapi_types.UUID `json:"tourId,omitempty"`
}

// InquiryPage defines model for InquiryPage.
type InquiryPage struct {
	Items []Inquiry `json:"items"`
	Limit int       `json:"limit"`
	Page  int       `json:"page"`
	Total int64     `json:"total"`
}

// ItineraryItem defines model for ItineraryItem.
type ItineraryItem struct {
	Activity  string             `json:"activity"`
	CreatedAt time.Time          `json:"createdAt"`
	DayNumber int                `json:"dayNumber"`
	Id        openapi_types.UUID `json:"id"`
	TourId    openapi_types.UUID `json:"tourId"`
}

// NewInquiry defines model for NewInquiry.
type NewInquiry struct {
	Email   string              `json:"email" validate:"required,email"`
	Message string              `json:"message" validate:"required"`
	Name    string              `json:"name" validate:"required,max=80"`
	Phone   *string             `json:"phone,omitempty" validate:"omitempty,max=30"`
	TourId  *openapi_types.UUID `json:"tourId,omitempty"`
}

// NewItineraryItem defines model for NewItineraryItem.
type NewItineraryItem struct {
	Activity  string `json:"activity" validate:"required"`
	DayNumber int    `json:"dayNumber" validate:"required,gte=1"`
}

// NewTour defines model for NewTour.
type NewTour struct {
	Description  string   `json:"description" validate:"required"`
	Duration     string   `json:"duration" validate:"required"`
	IsHotDeal    *bool    `json:"isHotDeal,omitempty"`
	Location     string   `json:"location" validate:"required,max=80"`
	Name         string   `json:"name" validate:"required,max=80"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewsCount *int     `json:"reviewsCount,omitempty" validate:"omitempty,gte=0"`
	Tagline      string   `json:"tagline" validate:"required,max=80"`
}

// NewTourImageReference defines model for NewTourImageReference.
type NewTourImageReference struct {
	ImageUrl *string `json:"imageUrl,omitempty"`
}

// NewTourLine defines model for NewTourLine.
type NewTourLine struct {
	Description string `json:"description" validate:"required,max=80"`
}

// Tour defines model for Tour.
type Tour struct {
	CreatedAt    time.Time          `json:"createdAt"`
	Description  string             `json:"description"`
	Duration     string             `json:"duration"`
	Id           openapi_types.UUID `json:"id"`
	ImageUrl     *string            `json:"imageUrl,omitempty"`
	IsHotDeal    bool               `json:"isHotDeal"`
	Location     string             `json:"location"`
	Name         string             `json:"name"`
	Price        float64            `json:"price"`
	Rating       float64            `json:"rating"`
	ReviewsCount int                `json:"reviewsCount"`
	Tagline      string             `json:"tagline"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	Version      int                `json:"version"`
}

// TourImage defines model for TourImage.
type TourImage struct {
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	ImageUrl  string             `json:"imageUrl"`
	TourId    openapi_types.UUID `json:"tourId"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// TourLine defines model for TourLine.
type TourLine struct {
	CreatedAt   time.Time          `json:"createdAt"`
	Description string             `json:"description"`
	Id          openapi_types.UUID `json:"id"`
	TourId      openapi_types.UUID `json:"tourId"`
	Type        TourLineType       `json:"type"`
}

// TourLineType defines model for TourLine.Type.
type TourLineType string

// TourPage defines model for TourPage.
type TourPage struct {
	Items []Tour `json:"items"`
	Limit int    `json:"limit"`
	Page  int    `json:"page"`
	Total int64  `json:"total"`
}

// TourPatch defines model for TourPatch.
type TourPatch struct {
	Description  *string  `json:"description,omitempty"`
	Duration     *string  `json:"duration,omitempty"`
	IsHotDeal    *bool    `json:"isHotDeal,omitempty"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=80"`
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=80"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Rating       *float64 `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	ReviewsCount *int     `json:"reviewsCount,omitempty" validate:"omitempty,gte=0"`
	Tagline      *string  `json:"tagline,omitempty" validate:"omitempty,max=80"`
}

// TourView defines model for TourView.
type TourView struct {
	Exclusions []TourLine      `json:"exclusions"`
	Images     []TourImage     `json:"images"`
	Inclusions []TourLine      `json:"inclusions"`
	Itinerary  []ItineraryItem `json:"itinerary"`
	Tour       Tour            `json:"tour"`
}

// ListToursParams defines parameters for ListTours.
type ListToursParams struct {
	Hot       *bool                     `form:"hot,omitempty" json:"hot,omitempty"`
	Search    *string                   `form:"search,omitempty" json:"search,omitempty"`
	Page      *int                      `form:"page,omitempty" json:"page,omitempty"`
	Limit     *int                      `form:"limit,omitempty" json:"limit,omitempty"`
	SortBy    *ListToursParamsSortBy    `form:"sortBy,omitempty" json:"sortBy,omitempty"`
	SortOrder *ListToursParamsSortOrder `form:"sortOrder,omitempty" json:"sortOrder,omitempty"`
}

// ListToursParamsSortBy defines parameters for ListTours.
type ListToursParamsSortBy string

// ListToursParamsSortOrder defines parameters for ListTours.
type ListToursParamsSortOrder string

// ListInquiriesParams defines parameters for ListInquiries.
type ListInquiriesParams struct {
	Page  *int `form:"page,omitempty" json:"page,omitempty"`
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateTourJSONRequestBody defines body for CreateTour for application/json ContentType.
type CreateTourJSONRequestBody = NewTour

// UpdateTourJSONRequestBody defines body for UpdateTour for application/json ContentType.
type UpdateTourJSONRequestBody = TourPatch

// AddInclusionJSONRequestBody defines body for AddInclusion for application/json ContentType.
type AddInclusionJSONRequestBody = NewTourLine

// AddExclusionJSONRequestBody defines body for AddExclusion for application/json ContentType.
type AddExclusionJSONRequestBody = NewTourLine

// AddItineraryItemJSONRequestBody defines body for AddItineraryItem for application/json ContentType.
type AddItineraryItemJSONRequestBody = NewItineraryItem

// AddImageJSONRequestBody defines body for AddImage for application/json ContentType.
type AddImageJSONRequestBody = NewTourImageReference

// CreateInquiryJSONRequestBody defines body for CreateInquiry for application/json ContentType.
type CreateInquiryJSONRequestBody = NewInquiry
