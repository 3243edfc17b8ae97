package middleware

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// OpenAPIValidator validates incoming requests against an OpenAPI 3 contract
// before they reach the handlers. Requests that do not match the contract are
// rejected with 400 without touching the application layer.
type OpenAPIValidator struct {
	router routers.Router
}

// NewOpenAPIValidator loads the given OpenAPI document and builds a request
// router for it. Returns an error if the document is malformed.
func NewOpenAPIValidator(spec []byte) (*OpenAPIValidator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return &OpenAPIValidator{router: router}, nil
}

// Middleware returns echo middleware that validates each request against the
// contract. Requests for paths outside the contract pass through untouched.
// Token validation is left to JWTAuth, so security requirements declared in
// the contract are not enforced here.
func (v *OpenAPIValidator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := v.router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: func(context.Context, *openapi3filter.AuthenticationInput) error {
						return nil
					},
				},
			}

			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			return next(ctx)
		}
	}
}
