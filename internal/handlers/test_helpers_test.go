package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/config"
	dbpkg "github.com/salonops/salon-scheduler/internal/db"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/routes"
)

const testJWTSecret = "test-secret-key-for-unit-tests"

var (
	testDB  *gorm.DB
	testCfg = &config.Config{JWTSecret: testJWTSecret, ServerPort: "0"}
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("SKIP_EMAIL_DNS_CHECK", "true")

	var err error
	testDB, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	// Single connection so every goroutine sees the same in-memory tables.
	sqlDB, _ := testDB.DB()
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(testDB); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	code := m.Run()
	os.Exit(code)
}

// freshDB wipes every table, children before parents.
func freshDB() *gorm.DB {
	testDB.Exec("DELETE FROM audit_logs")
	testDB.Exec("DELETE FROM appointments")
	testDB.Exec("DELETE FROM workstation_assignments")
	testDB.Exec("DELETE FROM staff_memberships")
	testDB.Exec("DELETE FROM workstations")
	testDB.Exec("DELETE FROM services")
	testDB.Exec("DELETE FROM customers")
	testDB.Exec("DELETE FROM users")
	testDB.Exec("DELETE FROM establishments")
	return testDB
}

func setupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	routes.RegisterRoutes(r, db, testCfg)
	return r
}

// --------------------------------------------------
// Seeds
// --------------------------------------------------

func seedEstablishment(db *gorm.DB, slug string) *models.Establishment {
	est := &models.Establishment{
		Name:     "Studio " + slug,
		Slug:     slug,
		Timezone: "UTC",
	}
	db.Create(est)
	return est
}

func seedUser(db *gorm.DB, est *models.Establishment, name, email, role string) *models.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		EstablishmentID: est.ID,
		Name:            name,
		Email:           email,
		PasswordHash:    string(hashed),
		Role:            role,
	}
	db.Create(user)
	return user
}

func seedOwner(db *gorm.DB, est *models.Establishment) (*models.User, string) {
	user := seedUser(db, est, "Owner", "owner-"+est.Slug+"@test.com", "owner")
	return user, makeToken(user)
}

func seedCustomer(db *gorm.DB, est *models.Establishment, name string) *models.Customer {
	customer := &models.Customer{
		EstablishmentID: est.ID,
		Name:            name,
	}
	db.Create(customer)
	return customer
}

func seedService(db *gorm.DB, est *models.Establishment, name string, durationMin int, price float64) *models.Service {
	svc := &models.Service{
		EstablishmentID: est.ID,
		Name:            name,
		DurationMin:     durationMin,
		Price:           price,
		Active:          true,
	}
	db.Create(svc)
	return svc
}

func seedWorkstation(db *gorm.DB, est *models.Establishment, name string, number int) *models.Workstation {
	ws := &models.Workstation{
		EstablishmentID: est.ID,
		Name:            name,
		Number:          number,
		Status:          models.WorkstationAvailable,
	}
	db.Create(ws)
	return ws
}

func seedMembership(db *gorm.DB, est *models.Establishment, user *models.User) *models.StaffMembership {
	pct := 40.0
	m := &models.StaffMembership{
		EstablishmentID:      est.ID,
		UserID:               user.ID,
		EmploymentType:       models.EmploymentEmployee,
		CommissionModel:      "percentage",
		CommissionPercentage: &pct,
		Status:               models.MembershipActive,
		StartDate:            time.Now(),
	}
	db.Create(m)
	return m
}

func seedAssignment(db *gorm.DB, ws *models.Workstation, user *models.User, start, end, days string) *models.WorkstationAssignment {
	a := &models.WorkstationAssignment{
		WorkstationID: ws.ID,
		UserID:        user.ID,
		StartTime:     start,
		EndTime:       end,
		Days:          days,
	}
	db.Create(a)
	return a
}

// --------------------------------------------------
// Requests
// --------------------------------------------------

func makeToken(user *models.User) string {
	claims := jwt.MapClaims{
		"sub":             user.ID,
		"establishmentId": user.EstablishmentID,
		"role":            user.Role,
		"exp":             time.Now().Add(time.Hour).Unix(),
		"iat":             time.Now().Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	return token
}

func jsonRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func authRequest(method, path string, body interface{}, token string) *http.Request {
	req := jsonRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func parseResponseArray(w *httptest.ResponseRecorder) []map[string]interface{} {
	var resp []map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}
