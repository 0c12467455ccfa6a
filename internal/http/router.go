package httpapi

import (
	"expvar"
	"net/http"

	"github.com/rs/cors"
)

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", app.listProductsHandler)
	mux.HandleFunc("POST /products", app.createProductHandler)
	mux.HandleFunc("POST /products/cost", app.costHandler)
	mux.HandleFunc("GET /products/{id}", app.getProductHandler)
	mux.HandleFunc("PUT /products/{id}", app.updateProductHandler)
	mux.HandleFunc("DELETE /products/{id}", app.deleteProductHandler)
	mux.HandleFunc("GET /packages/base", app.listBasePackagesHandler)
	mux.HandleFunc("POST /packages", app.createPackageHandler)
	mux.HandleFunc("GET /packages/{id}/info", app.packageInfoHandler)
	mux.HandleFunc("GET /healthz", app.healthHandler)
	mux.HandleFunc("GET /debug/metrics", app.metricsHandler)
	mux.Handle("GET /debug/vars", expvar.Handler())
	mux.HandleFunc("GET /openapi.yaml", app.openapiHandler)
	mux.HandleFunc("GET /docs", app.docsHandler)

	c := cors.New(cors.Options{
		AllowedOrigins: app.Cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})
	return c.Handler(WithRequestID(WithLogging(mux)))
}
