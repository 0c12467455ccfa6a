package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"catalogapi/internal/catalog"
	"catalogapi/internal/config"
	httpapi "catalogapi/internal/http"
	"catalogapi/internal/model"
	"catalogapi/internal/obs"
	"catalogapi/internal/store"
)

func startServer(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	obs.InitLogger()
	products, err := store.Open(filepath.Join(dir, "products.json"), "products", catalog.SeedProducts())
	if err != nil {
		t.Fatalf("open products: %v", err)
	}
	packages, err := store.Open(filepath.Join(dir, "packages.json"), "packages", catalog.SeedBasePackages())
	if err != nil {
		t.Fatalf("open packages: %v", err)
	}
	custom, err := store.Open(filepath.Join(dir, "custom_packages.json"), "packages", []model.CustomPackage{})
	if err != nil {
		t.Fatalf("open custom packages: %v", err)
	}
	app := httpapi.NewApp(config.Load(), products, packages, custom)
	srv := httptest.NewServer(httpapi.NewRouter(app))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestCatalogLifecycle(t *testing.T) {
	dir := t.TempDir()
	srv := startServer(t, dir)

	// The catalog starts with the three seeded products.
	resp, err := http.Get(srv.URL + "/products")
	if err != nil {
		t.Fatal(err)
	}
	var seeded []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&seeded); err != nil {
		t.Fatal(err)
	}
	_ = resp.Body.Close()
	if len(seeded) != 3 {
		t.Fatalf("expected 3 seeded products, got %d", len(seeded))
	}

	// Create two products and bundle them.
	var ids []string
	for _, body := range []string{
		`{"name":"alpha","price":10}`,
		`{"name":"beta","price":20.12345}`,
	} {
		r := postJSON(t, srv.URL+"/products", body)
		if r.StatusCode != http.StatusOK {
			t.Fatalf("create product: expected 200, got %d", r.StatusCode)
		}
		var out map[string]string
		if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
			t.Fatal(err)
		}
		_ = r.Body.Close()
		ids = append(ids, out["id"])
	}

	r := postJSON(t, srv.URL+"/packages", `{"ids":["`+ids[0]+`","`+ids[1]+`"]}`)
	if r.StatusCode != http.StatusOK {
		t.Fatalf("create package: expected 200, got %d", r.StatusCode)
	}
	var pkgOut map[string]string
	if err := json.NewDecoder(r.Body).Decode(&pkgOut); err != nil {
		t.Fatal(err)
	}
	_ = r.Body.Close()

	ri, err := http.Get(srv.URL + "/packages/" + pkgOut["id"] + "/info")
	if err != nil {
		t.Fatal(err)
	}
	defer ri.Body.Close()
	if ri.StatusCode != http.StatusOK {
		t.Fatalf("package info: expected 200, got %d", ri.StatusCode)
	}
	var info model.PackageInfo
	if err := json.NewDecoder(ri.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Price != 30.1235 {
		t.Fatalf("expected package price 30.1235, got %v", info.Price)
	}
	if len(info.Products) != 2 || info.Products[0].Name != "alpha" || info.Products[1].Name != "beta" {
		t.Fatalf("expected resolved products in order, got %+v", info.Products)
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	srv := startServer(t, dir)

	r := postJSON(t, srv.URL+"/products", `{"name":"durable","price":42}`)
	if r.StatusCode != http.StatusOK {
		t.Fatalf("create: expected 200, got %d", r.StatusCode)
	}
	var out map[string]string
	if err := json.NewDecoder(r.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	_ = r.Body.Close()
	srv.Close()

	// Reopen the same data directory; the product must still be there and
	// the seeds must not be applied twice.
	srv2 := startServer(t, dir)
	rg, err := http.Get(srv2.URL + "/products/" + out["id"])
	if err != nil {
		t.Fatal(err)
	}
	defer rg.Body.Close()
	if rg.StatusCode != http.StatusOK {
		t.Fatalf("expected product to survive restart, got %d", rg.StatusCode)
	}
	rl, err := http.Get(srv2.URL + "/products")
	if err != nil {
		t.Fatal(err)
	}
	defer rl.Body.Close()
	var all []model.Product
	if err := json.NewDecoder(rl.Body).Decode(&all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 3 seeds + 1 created, got %d", len(all))
	}
}
