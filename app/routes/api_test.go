package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/trixtech/trixtech/app/models"
	"github.com/trixtech/trixtech/app/routes"
	"github.com/trixtech/trixtech/pkg/auth"
	"github.com/trixtech/trixtech/pkg/router"
)

type apiTest struct {
	db      *gorm.DB
	handler http.Handler
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Service{}, &models.Booking{}, &models.Payment{},
	))

	r := router.New()
	routes.RegisterAPI(r, db)

	return &apiTest{db: db, handler: r.Handler()}
}

func (a *apiTest) user(t *testing.T, name, role string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("secret-password")
	require.NoError(t, err)

	user := models.User{
		Name:     name,
		Email:    strings.ToLower(name) + "@example.com",
		Password: hash,
		Role:     role,
	}
	require.NoError(t, a.db.Create(&user).Error)

	token, err := auth.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return user, token
}

// do performs a request against the API. token may be empty; body may be nil.
func (a *apiTest) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func TestCatalogReadsArePublic(t *testing.T) {
	api := newAPITest(t)

	rec := api.do(t, http.MethodGet, "/api/services", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/services/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogMutationsRequireAdmin(t *testing.T) {
	api := newAPITest(t)
	_, customerToken := api.user(t, "Customer", models.RoleCustomer)
	_, adminToken := api.user(t, "Admin", models.RoleAdmin)

	body := map[string]interface{}{"name": "Tent Rental", "price": 100}

	rec := api.do(t, http.MethodPost, "/api/services", "", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "missing token")

	rec = api.do(t, http.MethodPost, "/api/services", "garbage-token", body)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "invalid token")

	rec = api.do(t, http.MethodPost, "/api/services", customerToken, body)
	assert.Equal(t, http.StatusForbidden, rec.Code, "customer role")

	rec = api.do(t, http.MethodPost, "/api/services", adminToken, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Service
	decodeBody(t, rec, &created)
	assert.Equal(t, "Tent Rental", created.Name)
	assert.Equal(t, 100.0, created.Price)
}

func TestRegisterAndLogin(t *testing.T) {
	api := newAPITest(t)

	rec := api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	decodeBody(t, rec, &reg)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "customer", reg.User["role"])
	assert.NotContains(t, rec.Body.String(), "password123")
	assert.NotContains(t, strings.ToLower(rec.Body.String()), `"password"`)

	// Duplicate email conflicts.
	rec = api.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@example.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Login with the right and wrong credentials.
	rec = api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	api := newAPITest(t)
	customerA, tokenA := api.user(t, "CustomerA", models.RoleCustomer)
	_, tokenB := api.user(t, "CustomerB", models.RoleCustomer)
	_, adminToken := api.user(t, "Admin", models.RoleAdmin)

	tent := models.Service{Name: "Tent Rental", Price: 100, Availability: true}
	require.NoError(t, api.db.Create(&tent).Error)

	// A client-supplied userId is ignored; ownership comes from the token.
	rec := api.do(t, http.MethodPost, "/api/bookings", tokenA, map[string]interface{}{
		"serviceId": tent.ID,
		"date":      "2024-06-01",
		"quantity":  3,
		"userId":    99999,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var booking models.Booking
	decodeBody(t, rec, &booking)
	assert.Equal(t, customerA.ID, booking.UserID)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, models.BookingPending, booking.Status)

	// Another customer cannot see it.
	rec = api.do(t, http.MethodGet, "/api/bookings", tokenB, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listB []models.Booking
	decodeBody(t, rec, &listB)
	assert.Empty(t, listB)

	// Status updates are admin-only and must follow the transition table.
	rec = api.do(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID), tokenA,
		map[string]string{"status": "approved"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID), adminToken,
		map[string]string{"status": "approved"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPut, fmt.Sprintf("/api/bookings/%d", booking.ID), adminToken,
		map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusConflict, rec.Code, "no edge from approved back to pending")

	// Unauthenticated booking access is rejected.
	rec = api.do(t, http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminSurface(t *testing.T) {
	api := newAPITest(t)
	_, customerToken := api.user(t, "Customer", models.RoleCustomer)
	_, adminToken := api.user(t, "Admin", models.RoleAdmin)

	rec := api.do(t, http.MethodGet, "/api/admin/reports", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/admin/reports", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary struct {
		TotalBookings    int64            `json:"totalBookings"`
		TotalRevenue     float64          `json:"totalRevenue"`
		BookingsByStatus map[string]int64 `json:"bookingsByStatus"`
	}
	decodeBody(t, rec, &summary)
	assert.Zero(t, summary.TotalBookings)

	// Admin user listing returns only customers, never credentials.
	rec = api.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]interface{}
	decodeBody(t, rec, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "Customer", users[0]["name"])
	assert.NotContains(t, strings.ToLower(rec.Body.String()), "password")
}

func TestPaymentsOverHTTP(t *testing.T) {
	api := newAPITest(t)
	_, token := api.user(t, "Customer", models.RoleCustomer)

	rec := api.do(t, http.MethodPost, "/api/payments", "", map[string]interface{}{
		"bookingId": 1, "amount": 300,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/payments", token, map[string]interface{}{
		"bookingId": 1, "amount": 300,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var payment models.Payment
	decodeBody(t, rec, &payment)
	assert.Equal(t, models.PaymentCompleted, payment.Status)
}
