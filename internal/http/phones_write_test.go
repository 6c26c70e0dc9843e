package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"phonestore/internal/domain"
)

const validPhoneBody = `{
	"name": "X",
	"brand": "Y",
	"price": 100,
	"condition": "Good",
	"description": "0123456789",
	"images": ["u"],
	"storage": "64GB"
}`

func jsonReq(method, target, body, token string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestCreatePhone(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(jsonReq("POST", "/phones", validPhoneBody, bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var p domain.Phone
	decodeBody(t, resp, &p)
	if p.ID == "" {
		t.Error("expected server-assigned id")
	}
	if p.CreatedAt == "" {
		t.Error("expected server-assigned created_at")
	}
	if !p.Available {
		t.Error("expected available=true default")
	}
	if p.IsDeal {
		t.Error("expected is_deal=false default")
	}

	// The stored record must be readable afterwards.
	getResp, err := app.Test(httptest.NewRequest("GET", "/phones/"+p.ID, nil))
	if err != nil {
		t.Fatal(err)
	}
	if getResp.StatusCode != http.StatusOK {
		t.Fatalf("expected created phone to be fetchable, got %d", getResp.StatusCode)
	}
}

func TestCreateSchemaViolation(t *testing.T) {
	app := newAPIApp(t)

	body := strings.Replace(validPhoneBody, `"price": 100`, `"price": 0`, 1)
	resp, err := app.Test(jsonReq("POST", "/phones", body, bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestCreateWithoutToken(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(jsonReq("POST", "/phones", validPhoneBody, ""))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	if resp.Header.Get("WWW-Authenticate") != "Bearer" {
		t.Error("expected WWW-Authenticate: Bearer challenge")
	}
}

func TestUpdateUnknownIDWithEmptyBody(t *testing.T) {
	app := newAPIApp(t)

	// The existence check must win over the empty-body check.
	resp, err := app.Test(jsonReq("PUT", "/phones/no-such-id", "{}", bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateEmptyBodyExistingID(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(jsonReq("PUT", "/phones/seed-iphone-12", "{}", bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["error"] != "No fields to update" {
		t.Errorf("unexpected detail: %q", body["error"])
	}
}

func TestUpdateAppliesPatch(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(jsonReq("PUT", "/phones/seed-iphone-12", `{"price": 21000, "available": false}`, bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var p domain.Phone
	decodeBody(t, resp, &p)
	if p.Price != 21000 {
		t.Errorf("expected patched price 21000, got %d", p.Price)
	}
	if p.Available {
		t.Error("explicit available=false was not applied")
	}
	if p.Name != "iPhone 12 128GB" {
		t.Error("unsupplied field changed")
	}
}

func TestUpdateBadField(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(jsonReq("PUT", "/phones/seed-iphone-12", `{"condition": "Mint"}`, bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.StatusCode)
	}
}

func TestMarkSoldFlow(t *testing.T) {
	app := newAPIApp(t)
	token := bearerToken(t)

	resp, err := app.Test(jsonReq("DELETE", "/phones/seed-galaxy-s21", "", token))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]string
	decodeBody(t, resp, &body)
	if body["phone_id"] != "seed-galaxy-s21" {
		t.Errorf("expected phone_id in confirmation, got %v", body)
	}
	if body["message"] == "" {
		t.Error("expected confirmation message")
	}

	// Listing survives, just flipped to unavailable.
	getResp, err := app.Test(httptest.NewRequest("GET", "/phones/seed-galaxy-s21", nil))
	if err != nil {
		t.Fatal(err)
	}
	var p domain.Phone
	decodeBody(t, getResp, &p)
	if p.Available {
		t.Error("expected available=false after mark sold")
	}

	// Re-marking a sold listing succeeds.
	again, err := app.Test(jsonReq("DELETE", "/phones/seed-galaxy-s21", "", token))
	if err != nil {
		t.Fatal(err)
	}
	if again.StatusCode != http.StatusOK {
		t.Fatalf("expected idempotent 200, got %d", again.StatusCode)
	}
}

func TestMarkSoldUnknownID(t *testing.T) {
	app := newAPIApp(t)

	resp, err := app.Test(jsonReq("DELETE", "/phones/no-such-id", "", bearerToken(t)))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
