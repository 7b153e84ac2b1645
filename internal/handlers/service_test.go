package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/salonops/salon-scheduler/internal/models"
)

func TestCreateServiceSuccess(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "svc-create")
	_, token := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/services", map[string]interface{}{
		"name":         "Beard Trim",
		"duration_min": 30,
		"price":        35.5,
		"category":     "Barber",
	}, token))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	resp := parseResponse(w)
	if resp["active"] != true {
		t.Error("new services should start active")
	}
	if resp["category"] != "barber" {
		t.Errorf("expected lowercased category, got %v", resp["category"])
	}
}

func TestCreateServiceMissingDuration(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "svc-nodur")
	_, token := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("POST", "/api/me/services", map[string]interface{}{
		"name":  "Beard Trim",
		"price": 35.5,
	}, token))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListServicesFiltersByActive(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "svc-filter")
	_, token := seedOwner(db, est)

	seedService(db, est, "Haircut", 45, 80)
	retired := seedService(db, est, "Perm", 120, 150)
	db.Model(retired).Update("active", false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/me/services?active=true", nil, token))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	list := parseResponseArray(w)
	if len(list) != 1 || list[0]["name"] != "Haircut" {
		t.Errorf("expected only the active service, got %v", list)
	}
}

func TestListServicesScopedToTenant(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	mine := seedEstablishment(db, "svc-mine")
	other := seedEstablishment(db, "svc-other")
	_, token := seedOwner(db, mine)

	seedService(db, mine, "Haircut", 45, 80)
	seedService(db, other, "Foreign Cut", 45, 80)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest("GET", "/api/me/services", nil, token))

	list := parseResponseArray(w)
	if len(list) != 1 {
		t.Fatalf("expected 1 service, got %d", len(list))
	}
	if list[0]["name"] != "Haircut" {
		t.Errorf("leaked another tenant's service: %v", list[0])
	}
}

func TestUpdateServiceDeactivates(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "svc-update")
	_, token := seedOwner(db, est)
	svc := seedService(db, est, "Haircut", 45, 80)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest(
		"PATCH", fmt.Sprintf("/api/me/services/%d", svc.ID),
		map[string]interface{}{"active": false, "price": 90},
		token,
	))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.Service
	db.First(&stored, svc.ID)
	if stored.Active {
		t.Error("expected service deactivated")
	}
	if stored.Price != 90 {
		t.Errorf("expected price 90, got %v", stored.Price)
	}
}

func TestUpdateServiceNotFound(t *testing.T) {
	db := freshDB()
	router := setupRouter(db)

	est := seedEstablishment(db, "svc-missing")
	_, token := seedOwner(db, est)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authRequest(
		"PATCH", "/api/me/services/9999",
		map[string]interface{}{"price": 90},
		token,
	))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
