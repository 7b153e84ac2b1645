package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBusinessCodeStaysStableWithDetail(t *testing.T) {
	err := ErrBusinessDetail("invalid_days", "assignment 2")

	if code := BusinessCode(err); code != "invalid_days" {
		t.Errorf("expected code invalid_days, got %q", code)
	}
	if detail := BusinessDetail(err); detail != "assignment 2" {
		t.Errorf("expected detail to carry the entry, got %q", detail)
	}
	if !IsBusiness(err, "invalid_days") {
		t.Error("IsBusiness should match on the code alone")
	}
}

func TestBusinessDetailSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("replacing assignments: %w", ErrBusinessDetail("invalid_time_format", "assignment 0"))

	if code := BusinessCode(err); code != "invalid_time_format" {
		t.Errorf("expected code through the wrap, got %q", code)
	}
	if detail := BusinessDetail(err); detail != "assignment 0" {
		t.Errorf("expected detail through the wrap, got %q", detail)
	}
}

func TestBusinessDetailEmptyForOtherErrors(t *testing.T) {
	if detail := BusinessDetail(errors.New("boom")); detail != "" {
		t.Errorf("expected empty detail, got %q", detail)
	}
}

func TestInternalWritesErrorCodeEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Internal(c, "failed_to_list_workstations", "Failed to list workstations.")

	if w.Code != 500 {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["error_code"] != "failed_to_list_workstations" {
		t.Errorf("expected error_code key, got %v", body)
	}
	if body["message"] == "" {
		t.Errorf("expected message, got %v", body)
	}
}
