package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func registerBody(slug, email string) map[string]interface{} {
	return map[string]interface{}{
		"establishment_name": "Salon " + slug,
		"establishment_slug": slug,
		"name":               "Owner",
		"email":              email,
		"password":           "secret123",
	}
}

func TestRegisterSuccess(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/register", registerBody("bella-hair", "owner@bella.com")))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["token"] == nil || resp["token"] == "" {
		t.Error("expected a token in the response")
	}
	est, _ := resp["establishment"].(map[string]interface{})
	if est["slug"] != "bella-hair" {
		t.Errorf("expected slug bella-hair, got %v", est["slug"])
	}
}

func TestRegisterDuplicateSlug(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	seedEstablishment(db, "taken-slug")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/register", registerBody("taken-slug", "owner@taken.com")))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["error"] != "slug_already_exists" {
		t.Errorf("expected slug_already_exists, got %s", w.Body.String())
	}
}

func TestRegisterInvalidTimezone(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	body := registerBody("tz-salon", "owner@tz.com")
	body["establishment_timezone"] = "Mars/Olympus"

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/register", body))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginSuccess(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "login-ok")
	user, _ := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["token"] == nil {
		t.Error("expected a token")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "login-bad")
	user, _ := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/api/auth/login", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "whatever1",
	}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("GET", "/api/me", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/me", nil, "not-a-jwt"))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}
