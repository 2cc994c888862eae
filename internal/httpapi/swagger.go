//go:build swagger

package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

// docTemplate is kept minimal; `make swagger-gen` regenerates the full spec
// from the annotations on handlers and pkg/types.
const docTemplate = `{
  "schemes": ["http"],
  "swagger": "2.0",
  "info": {
    "title": "suited API",
    "description": "HTTP API for suite registration, loading, and memory-budget management.",
    "version": "1.0"
  },
  "basePath": "/"
}`

var swaggerInfo = &swag.Spec{
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(swaggerInfo.InstanceName(), swaggerInfo)
}

// MountSwagger serves the OpenAPI UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler())
}
