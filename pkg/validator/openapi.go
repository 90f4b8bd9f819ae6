package validator

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"

	apperrors "rpg-api/backend/pkg/errors"
	"rpg-api/backend/pkg/i18n"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var embeddedSchema []byte

// OpenAPIValidator validates requests against the catalog's OpenAPI document
type OpenAPIValidator struct {
	swagger   *openapi3.T
	router    routers.Router
	localizer *i18n.Localizer
}

// NewOpenAPIValidator loads the schema at schemaPath, or the embedded schema
// when schemaPath is empty, and mounts it under basePath.
func NewOpenAPIValidator(schemaPath, basePath string, localizer *i18n.Localizer) (*OpenAPIValidator, error) {
	data := embeddedSchema
	if schemaPath != "" {
		fileData, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read OpenAPI schema from %s: %w", schemaPath, err)
		}
		data = fileData
	}

	swagger, err := loadOpenAPISchema(data, basePath)
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("error creating OpenAPI router: %w", err)
	}

	return &OpenAPIValidator{
		swagger:   swagger,
		router:    router,
		localizer: localizer,
	}, nil
}

func loadOpenAPISchema(data []byte, basePath string) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI schema: %w", err)
	}

	if basePath != "" {
		swagger.Servers = openapi3.Servers{{URL: basePath}}
	}

	if err := swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI schema: %w", err)
	}

	return swagger, nil
}

// Document returns the loaded document as JSON
func (v *OpenAPIValidator) Document() ([]byte, error) {
	return v.swagger.MarshalJSON()
}

// Middleware returns a Gin middleware function that validates requests against the OpenAPI schema
func (v *OpenAPIValidator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route, pathParams, err := v.router.FindRoute(c.Request)
		if err != nil {
			// Routes outside the document (health, metrics) are not validated
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options: &openapi3filter.Options{
				AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
				MultiError:         false,
			},
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			reason := err.Error()
			var reqErr *openapi3filter.RequestError
			if errors.As(err, &reqErr) && reqErr.Reason != "" {
				reason = reqErr.Reason
			}

			appErr := apperrors.BadRequestWithDetails(apperrors.CodeInvalidRequest, "Invalid request: "+reason, err.Error()).
				WithParams(reason)
			if v.localizer != nil {
				appErr.Message = v.localizer.Localize(c, appErr.Code, appErr.Params...)
			}
			_ = c.Error(appErr)
			c.Abort()
			return
		}

		c.Next()
	}
}
