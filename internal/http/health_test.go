package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"phonestore/internal/config"
)

func TestRootHealth(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %q", body["status"])
	}
	if body["service"] != config.ServiceName {
		t.Errorf("expected service name, got %q", body["service"])
	}
	if body["version"] != config.APIVersion {
		t.Errorf("expected version, got %q", body["version"])
	}
}

func TestDetailedHealth(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status     string            `json:"status"`
		APIVersion string            `json:"api_version"`
		Endpoints  map[string]string `json:"endpoints"`
	}
	decodeBody(t, resp, &body)
	if body.Status != "healthy" || body.APIVersion != config.APIVersion {
		t.Errorf("unexpected health payload: %+v", body)
	}
	if body.Endpoints["phones"] != "/phones" {
		t.Errorf("expected phones endpoint advertised, got %v", body.Endpoints)
	}
}
