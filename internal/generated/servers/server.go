package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List tours
	// (GET /api/v1/tours)
	ListTours(ctx echo.Context, params ListToursParams) error
	// Create a tour
	// (POST /api/v1/tours)
	CreateTour(ctx echo.Context) error
	// Get a tour with its dependents
	// (GET /api/v1/tours/{tourId})
	GetTour(ctx echo.Context, tourId openapi_types.UUID) error
	// Merge-patch a tour
	// (PUT /api/v1/tours/{tourId})
	UpdateTour(ctx echo.Context, tourId openapi_types.UUID) error
	// Delete a tour and its dependents
	// (DELETE /api/v1/tours/{tourId})
	DeleteTour(ctx echo.Context, tourId openapi_types.UUID) error
	// ListInclusions
	// (GET /api/v1/tours/{tourId}/inclusions)
	ListInclusions(ctx echo.Context, tourId openapi_types.UUID) error
	// AddInclusion
	// (POST /api/v1/tours/{tourId}/inclusions)
	AddInclusion(ctx echo.Context, tourId openapi_types.UUID) error
	// RemoveInclusion
	// (DELETE /api/v1/tours/{tourId}/inclusions/{itemId})
	RemoveInclusion(ctx echo.Context, tourId openapi_types.UUID, itemId openapi_types.UUID) error
	// ListExclusions
	// (GET /api/v1/tours/{tourId}/exclusions)
	ListExclusions(ctx echo.Context, tourId openapi_types.UUID) error
	// AddExclusion
	// (POST /api/v1/tours/{tourId}/exclusions)
	AddExclusion(ctx echo.Context, tourId openapi_types.UUID) error
	// RemoveExclusion
	// (DELETE /api/v1/tours/{tourId}/exclusions/{itemId})
	RemoveExclusion(ctx echo.Context, tourId openapi_types.UUID, itemId openapi_types.UUID) error
	// ListItinerary
	// (GET /api/v1/tours/{tourId}/itinerary)
	ListItinerary(ctx echo.Context, tourId openapi_types.UUID) error
	// AddItineraryItem
	// (POST /api/v1/tours/{tourId}/itinerary)
	AddItineraryItem(ctx echo.Context, tourId openapi_types.UUID) error
	// RemoveItineraryItem
	// (DELETE /api/v1/tours/{tourId}/itinerary/{itemId})
	RemoveItineraryItem(ctx echo.Context, tourId openapi_types.UUID, itemId openapi_types.UUID) error
	// ListImages
	// (GET /api/v1/tours/{tourId}/images)
	ListImages(ctx echo.Context, tourId openapi_types.UUID) error
	// Attach an uploaded file or an existing image reference
	// (POST /api/v1/tours/{tourId}/images)
	AddImage(ctx echo.Context, tourId openapi_types.UUID) error
	// RemoveImage
	// (DELETE /api/v1/tours/{tourId}/images/{imageId})
	RemoveImage(ctx echo.Context, tourId openapi_types.UUID, imageId openapi_types.UUID) error
	// ListInquiries
	// (GET /api/v1/inquiries)
	ListInquiries(ctx echo.Context, params ListInquiriesParams) error
	// CreateInquiry
	// (POST /api/v1/inquiries)
	CreateInquiry(ctx echo.Context) error
	// DeleteInquiry
	// (DELETE /api/v1/inquiries/{inquiryId})
	DeleteInquiry(ctx echo.Context, inquiryId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListTours converts echo context to params.
func (w *ServerInterfaceWrapper) ListTours(ctx echo.Context) error {
	var err error
	// Parameter object where we will unmarshal all parameters from the context
	var params ListToursParams
	// ------------- Optional query parameter "hot" -------------

	err = runtime.BindQueryParameter("form", true, false, "hot", ctx.QueryParams(), &params.Hot)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter hot: %s", err))
	}

	// ------------- Optional query parameter "search" -------------

	err = runtime.BindQueryParameter("form", true, false, "search", ctx.QueryParams(), &params.Search)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter search: %s", err))
	}

	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// ------------- Optional query parameter "sortBy" -------------

	err = runtime.BindQueryParameter("form", true, false, "sortBy", ctx.QueryParams(), &params.SortBy)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortBy: %s", err))
	}

	// ------------- Optional query parameter "sortOrder" -------------

	err = runtime.BindQueryParameter("form", true, false, "sortOrder", ctx.QueryParams(), &params.SortOrder)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter sortOrder: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListTours(ctx, params)
	return err
}

// CreateTour converts echo context to params.
func (w *ServerInterfaceWrapper) CreateTour(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateTour(ctx)
	return err
}

// GetTour converts echo context to params.
func (w *ServerInterfaceWrapper) GetTour(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetTour(ctx, tourId)
	return err
}

// UpdateTour converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateTour(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateTour(ctx, tourId)
	return err
}

// DeleteTour converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteTour(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteTour(ctx, tourId)
	return err
}

// ListInclusions converts echo context to params.
func (w *ServerInterfaceWrapper) ListInclusions(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListInclusions(ctx, tourId)
	return err
}

// AddInclusion converts echo context to params.
func (w *ServerInterfaceWrapper) AddInclusion(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddInclusion(ctx, tourId)
	return err
}

// RemoveInclusion converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveInclusion(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// ------------- Path parameter "itemId" -------------
	var itemId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveInclusion(ctx, tourId, itemId)
	return err
}

// ListExclusions converts echo context to params.
func (w *ServerInterfaceWrapper) ListExclusions(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListExclusions(ctx, tourId)
	return err
}

// AddExclusion converts echo context to params.
func (w *ServerInterfaceWrapper) AddExclusion(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddExclusion(ctx, tourId)
	return err
}

// RemoveExclusion converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveExclusion(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// ------------- Path parameter "itemId" -------------
	var itemId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveExclusion(ctx, tourId, itemId)
	return err
}

// ListItinerary converts echo context to params.
func (w *ServerInterfaceWrapper) ListItinerary(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListItinerary(ctx, tourId)
	return err
}

// AddItineraryItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddItineraryItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddItineraryItem(ctx, tourId)
	return err
}

// RemoveItineraryItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveItineraryItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// ------------- Path parameter "itemId" -------------
	var itemId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "itemId", ctx.Param("itemId"), &itemId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter itemId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveItineraryItem(ctx, tourId, itemId)
	return err
}

// ListImages converts echo context to params.
func (w *ServerInterfaceWrapper) ListImages(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListImages(ctx, tourId)
	return err
}

// AddImage converts echo context to params.
func (w *ServerInterfaceWrapper) AddImage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AddImage(ctx, tourId)
	return err
}

// RemoveImage converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveImage(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "tourId" -------------
	var tourId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "tourId", ctx.Param("tourId"), &tourId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter tourId: %s", err))
	}

	// ------------- Path parameter "imageId" -------------
	var imageId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "imageId", ctx.Param("imageId"), &imageId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter imageId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RemoveImage(ctx, tourId, imageId)
	return err
}

// ListInquiries converts echo context to params.
func (w *ServerInterfaceWrapper) ListInquiries(ctx echo.Context) error {
	var err error
	ctx.Set(BearerAuthScopes, []string{})

	// Parameter object where we will unmarshal all parameters from the context
	var params ListInquiriesParams
	// ------------- Optional query parameter "page" -------------

	err = runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter page: %s", err))
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListInquiries(ctx, params)
	return err
}

// CreateInquiry converts echo context to params.
func (w *ServerInterfaceWrapper) CreateInquiry(ctx echo.Context) error {
	var err error
	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateInquiry(ctx)
	return err
}

// DeleteInquiry converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteInquiry(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "inquiryId" -------------
	var inquiryId openapi_types.UUID

	err = runtime.BindStyledParameterWithOptions("simple", "inquiryId", ctx.Param("inquiryId"), &inquiryId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter inquiryId: %s", err))
	}

	ctx.Set(BearerAuthScopes, []string{})

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteInquiry(ctx, inquiryId)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group used for route registration.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {

	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/tours", wrapper.ListTours)
	router.POST(baseURL+"/api/v1/tours", wrapper.CreateTour)
	router.GET(baseURL+"/api/v1/tours/:tourId", wrapper.GetTour)
	router.PUT(baseURL+"/api/v1/tours/:tourId", wrapper.UpdateTour)
	router.DELETE(baseURL+"/api/v1/tours/:tourId", wrapper.DeleteTour)
	router.GET(baseURL+"/api/v1/tours/:tourId/inclusions", wrapper.ListInclusions)
	router.POST(baseURL+"/api/v1/tours/:tourId/inclusions", wrapper.AddInclusion)
	router.DELETE(baseURL+"/api/v1/tours/:tourId/inclusions/:itemId", wrapper.RemoveInclusion)
	router.GET(baseURL+"/api/v1/tours/:tourId/exclusions", wrapper.ListExclusions)
	router.POST(baseURL+"/api/v1/tours/:tourId/exclusions", wrapper.AddExclusion)
	router.DELETE(baseURL+"/api/v1/tours/:tourId/exclusions/:itemId", wrapper.RemoveExclusion)
	router.GET(baseURL+"/api/v1/tours/:tourId/itinerary", wrapper.ListItinerary)
	router.POST(baseURL+"/api/v1/tours/:tourId/itinerary", wrapper.AddItineraryItem)
	router.DELETE(baseURL+"/api/v1/tours/:tourId/itinerary/:itemId", wrapper.RemoveItineraryItem)
	router.GET(baseURL+"/api/v1/tours/:tourId/images", wrapper.ListImages)
	router.POST(baseURL+"/api/v1/tours/:tourId/images", wrapper.AddImage)
	router.DELETE(baseURL+"/api/v1/tours/:tourId/images/:imageId", wrapper.RemoveImage)
	router.GET(baseURL+"/api/v1/inquiries", wrapper.ListInquiries)
	router.POST(baseURL+"/api/v1/inquiries", wrapper.CreateInquiry)
	router.DELETE(baseURL+"/api/v1/inquiries/:inquiryId", wrapper.DeleteInquiry)

}
