package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"

	"catalogapi/internal/catalog"
	"catalogapi/internal/config"
	httpopenapi "catalogapi/internal/http/openapi"
	"catalogapi/internal/ids"
	"catalogapi/internal/model"
	"catalogapi/internal/obs"
	"catalogapi/internal/store"
)

// App bundles the handler dependencies. Collections and the resolver are
// injected at construction time; handlers hold no ambient state.
type App struct {
	Cfg      config.Config
	Products *store.Collection[model.Product]
	Packages *store.Collection[model.Package]
	Custom   *store.Collection[model.CustomPackage]
	Resolver *catalog.Resolver
	started  time.Time
}

// NewApp wires the handler set over the given collections.
func NewApp(cfg config.Config, products *store.Collection[model.Product], packages *store.Collection[model.Package], custom *store.Collection[model.CustomPackage]) *App {
	return &App{
		Cfg:      cfg,
		Products: products,
		Packages: packages,
		Custom:   custom,
		Resolver: catalog.NewResolver(products, custom),
		started:  time.Now(),
	}
}

// idSelection is the request body of cost-of-selection and create-package.
type idSelection struct {
	IDs []string `json:"ids"`
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return false
	}
	return true
}

func (a *App) listProductsHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, a.Products.All())
}

func (a *App) createProductHandler(w http.ResponseWriter, r *http.Request) {
	// Any subset of fields is accepted; a product without name or price is
	// stored as-is.
	var fields model.ProductPatch
	if !decodeJSONBody(w, r, &fields) {
		return
	}
	p := fields.Apply(model.Product{ID: ids.New()})
	if err := a.Products.Append(p); err != nil {
		obs.Logger.Error("product_create_failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	obs.Logger.Info("product_created",
		"product_id", p.ID,
		"request_id", RequestIDFromContext(r.Context()),
	)
	WriteJSON(w, http.StatusOK, map[string]string{"id": p.ID})
}

func (a *App) getProductHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := a.Products.FindByID(r.PathValue("id"))
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

func (a *App) updateProductHandler(w http.ResponseWriter, r *http.Request) {
	var patch model.ProductPatch
	if !decodeJSONBody(w, r, &patch) {
		return
	}
	id := r.PathValue("id")
	err := a.Products.UpdateByID(id, patch.Apply)
	switch {
	case errors.Is(err, store.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
	case err != nil:
		obs.Logger.Error("product_update_failed", "product_id", id, "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (a *App) deleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := a.Products.RemoveByID(id); err != nil {
		obs.Logger.Error("product_delete_failed", "product_id", id, "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	// Idempotent: deleting an absent product is still a success.
	w.WriteHeader(http.StatusOK)
}

func (a *App) costHandler(w http.ResponseWriter, r *http.Request) {
	var sel idSelection
	if !decodeJSONBody(w, r, &sel) {
		return
	}
	if len(sel.IDs) == 0 {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "ids must be a non-empty array")
		return
	}
	cost, err := a.Resolver.CostOfSelection(sel.IDs)
	if err != nil {
		// Unknown ids fail the whole selection; a hole in the aggregation
		// input is never priced over.
		WriteJSONError(w, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]float64{"cost": cost})
}

func (a *App) listBasePackagesHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, a.Packages.All())
}

func (a *App) createPackageHandler(w http.ResponseWriter, r *http.Request) {
	var sel idSelection
	if !decodeJSONBody(w, r, &sel) {
		return
	}
	// Referenced ids are stored without existence validation; resolution
	// happens on read.
	pkg := model.CustomPackage{ID: ids.New(), Products: sel.IDs}
	if err := a.Custom.Append(pkg); err != nil {
		obs.Logger.Error("package_create_failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		WriteJSONError(w, http.StatusInternalServerError, "internal_error", "")
		return
	}
	obs.Logger.Info("package_created",
		"package_id", pkg.ID,
		"product_refs", len(pkg.Products),
		"request_id", RequestIDFromContext(r.Context()),
	)
	WriteJSON(w, http.StatusOK, map[string]string{"id": pkg.ID})
}

func (a *App) packageInfoHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	info, err := a.Resolver.PackageInfo(id)
	switch {
	case errors.Is(err, catalog.ErrPackageNotFound):
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
	case err != nil:
		obs.Logger.Error("package_resolution_failed", "package_id", id, "error", err)
		WriteJSONError(w, http.StatusInternalServerError, "resolution_failed", err.Error())
	default:
		WriteJSON(w, http.StatusOK, info)
	}
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	m := map[string]any{
		"products":        a.Products.Len(),
		"base_packages":   a.Packages.Len(),
		"custom_packages": a.Custom.Len(),
		"uptime_sec":      time.Since(a.started).Seconds(),
	}
	WriteJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Catalog API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
