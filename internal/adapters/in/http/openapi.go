package http

import (
	"errors"
	"fmt"

	"tours/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewOpenAPIValidator checks the parameters and security requirements of
// every request the document describes. Requests the document does not
// describe pass through. Bodies are checked by RequestValidator once bound.
func NewOpenAPIValidator(doc *openapi3.T, authenticate openapi3filter.AuthenticationFunc) (echo.MiddlewareFunc, error) {
	// Routes are matched on path alone.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build OpenAPI router: %w", err)
	}

	options := &openapi3filter.Options{
		ExcludeRequestBody: true,
		AuthenticationFunc: authenticate,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return requestValidationError(err)
			}

			return next(ctx)
		}
	}, nil
}

func requestValidationError(err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	var requestErr *openapi3filter.RequestError
	if !errors.As(err, &requestErr) || requestErr.Parameter == nil {
		return errs.NewValidationError("Invalid request")
	}

	reason := requestErr.Reason
	var schemaErr *openapi3.SchemaError
	if errors.As(requestErr.Err, &schemaErr) {
		reason = schemaErr.Reason
	}
	if reason == "" {
		reason = "is invalid"
	}

	return errs.NewValidationErrorWithFields(
		"Invalid parameter "+requestErr.Parameter.Name,
		map[string]string{requestErr.Parameter.Name: reason},
	)
}
