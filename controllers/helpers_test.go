package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/princinho/ecomapi/config"
	"github.com/princinho/ecomapi/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(db database.Gateway, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.GET("/", Root())
	r.GET("/schema", GetSchema())
	r.GET("/test", TestDatabase(db, cfg))
	api := r.Group("/api")
	{
		api.GET("/categories", GetCategories(db))
		api.POST("/categories", AddCategory(db))
		api.GET("/products", GetProducts(db))
		api.POST("/products", AddProduct(db))
		api.POST("/uploads", UploadImages(cfg))
	}
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response: %v (body %q)", err, w.Body.String())
	}
	return m
}

func createCategory(t *testing.T, r http.Handler, name, slug string) map[string]any {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/categories", map[string]any{"name": name, "slug": slug})
	if w.Code != http.StatusCreated {
		t.Fatalf("create category %q: expected 201, got %d (body %s)", slug, w.Code, w.Body.String())
	}
	return decodeBody(t, w)["item"].(map[string]any)
}

func createProduct(t *testing.T, r http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/products", body)
}
