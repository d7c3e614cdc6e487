package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(router, api, "1.0.0")
	return router
}

func TestRegisterWiresGreetingRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["message"] != "Hello World!" {
		t.Fatalf("expected greeting message, got %q", body["message"])
	}
	if body["version"] != "1.0.0" {
		t.Fatalf("expected version 1.0.0, got %q", body["version"])
	}
	if body["timestamp"] == "" {
		t.Fatal("expected timestamp field")
	}
}

func TestRegisterWiresHealthRoute(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected status healthy, got %q", body["status"])
	}
}

func TestGreetingAppearsInOpenAPI(t *testing.T) {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("RoutesTest", "test"))
	Register(router, api, "1.0.0")

	paths := api.OpenAPI().Paths
	if paths == nil {
		t.Fatal("expected OpenAPI paths")
	}
	item, ok := paths["/"]
	if !ok || item.Get == nil {
		t.Fatal("expected GET / in the OpenAPI document")
	}
}
