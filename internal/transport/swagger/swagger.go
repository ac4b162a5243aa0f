package swagger

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func Handler() http.Handler {
	// The OpenAPI document itself is served at /openapi.yml by the router.
	return httpSwagger.Handler(
		httpSwagger.URL("/openapi.yml"),
	)
}
