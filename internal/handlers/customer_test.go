package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCreateCustomer(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "cust-create")
	_, token := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/customers", map[string]interface{}{
		"name":  "Alice",
		"phone": "11999990000",
	}, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if parseResponse(w)["name"] != "Alice" {
		t.Errorf("expected Alice, got %v", parseResponse(w)["name"])
	}
}

func TestCreateCustomerMissingName(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "cust-noname")
	_, token := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/customers", map[string]interface{}{
		"phone": "11999990000",
	}, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListCustomersSearch(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "cust-search")
	_, token := seedOwner(db, est)

	seedCustomer(db, est, "Alice Martins")
	seedCustomer(db, est, "Bob Costa")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/me/customers?query=alice", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	list := parseResponseArray(w)
	if len(list) != 1 || list[0]["name"] != "Alice Martins" {
		t.Errorf("expected only Alice, got %v", list)
	}
}
