package http

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewOpenAPIValidator loads the OpenAPI document at specPath and returns an
// echo middleware rejecting requests that do not conform to it. Requests for
// paths outside the document pass through untouched.
func NewOpenAPIValidator(specPath string) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(specPath)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacyrouter.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			route, pathParams, err := router.FindRoute(c.Request())
			if err != nil {
				if err == routers.ErrPathNotFound {
					return next(c)
				}
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    c.Request(),
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					// Identity is established by the request context
					// middleware, not by the document's security schemes.
					AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
						return nil
					},
				},
			}
			if err := openapi3filter.ValidateRequest(c.Request().Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, ErrorResponse{
					Code:    http.StatusBadRequest,
					Message: err.Error(),
				})
			}

			return next(c)
		}
	}, nil
}
