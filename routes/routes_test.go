package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"home-maintenance-server/middleware"
	"home-maintenance-server/models"
	"home-maintenance-server/services"
	"home-maintenance-server/types"
	"home-maintenance-server/utils"
)

var (
	customerIdentity = &types.Identity{UserID: "11111111-1111-1111-1111-111111111111", Phone: "+966500000001", Name: "Sara", Role: "customer"}
	adminIdentity    = &types.Identity{UserID: "22222222-2222-2222-2222-222222222222", Phone: "+966501111111", Name: "Admin", Role: "admin"}
)

type testEnv struct {
	router   *gin.Engine
	bookings *mockBookings
	resolver *mockResolver
	reviews  *mockReviews
	catalog  *mockCatalog
	areas    *mockAreas
	contact  *mockContact
	users    *mockUsers
	sessions *mockSessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		bookings: new(mockBookings),
		resolver: new(mockResolver),
		reviews:  new(mockReviews),
		catalog:  new(mockCatalog),
		areas:    new(mockAreas),
		contact:  new(mockContact),
		users:    new(mockUsers),
		sessions: new(mockSessions),
	}
	env.sessions.On("Resolve", mock.Anything, "customer-token").Return(customerIdentity, nil).Maybe()
	env.sessions.On("Resolve", mock.Anything, "admin-token").Return(adminIdentity, nil).Maybe()

	h := &Handlers{
		Bookings: env.bookings,
		Resolver: env.resolver,
		Reviews:  env.reviews,
		Catalog:  env.catalog,
		Areas:    env.areas,
		Contact:  env.contact,
		Users:    env.users,
		Sessions: env.sessions,
		Cookie:   CookieOptions{Name: "session"},
	}

	env.router = gin.New()
	env.router.Use(middleware.SessionMiddleware(env.sessions, "session"))
	RegisterRoutes(env.router, h)

	t.Cleanup(func() {
		env.bookings.AssertExpectations(t)
		env.resolver.AssertExpectations(t)
		env.reviews.AssertExpectations(t)
		env.catalog.AssertExpectations(t)
		env.areas.AssertExpectations(t)
		env.users.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: token})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestCreateRequest(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/services/request", "", map[string]string{"service": "AC Repair"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Not logged in"}`, w.Body.String())

	input := services.CreateBookingInput{Service: "AC Repair", ScheduledDate: "2026-11-01T10:00"}
	env.bookings.On("Create", mock.Anything, customerIdentity, input).
		Return(&models.ServiceRequest{ID: "r1", Service: "AC Repair", Status: models.RequestStatusPending}, nil).
		Twice()

	for _, path := range []string{"/services/request", "/api/services/request"} {
		w = env.do(http.MethodPost, path, "customer-token", input)
		require.Equal(t, http.StatusOK, w.Code, path)

		var body struct {
			Success bool                  `json:"success"`
			Request models.ServiceRequest `json:"request"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "r1", body.Request.ID)
	}
}

func TestMyRequestsReturnsArray(t *testing.T) {
	env := newTestEnv(t)
	env.resolver.On("ResolveRequests", mock.Anything, customerIdentity.UserID, customerIdentity.Phone).
		Return([]models.ServiceRequest{}, nil).
		Once()

	w := env.do(http.MethodGet, "/api/dashboard/my-requests", "customer-token", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCancelRequest(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.On("Cancel", mock.Anything, customerIdentity, "r1").
		Return(&models.ServiceRequest{ID: "r1", Status: models.RequestStatusCancelled}, nil).Once()
	env.bookings.On("Cancel", mock.Anything, customerIdentity, "r2").
		Return(nil, types.NewConflictError("Cannot cancel this service")).Once()
	env.bookings.On("Cancel", mock.Anything, customerIdentity, "r3").
		Return(nil, types.NewForbiddenError("Access denied")).Once()

	w := env.do(http.MethodPost, "/api/dashboard/request/r1/cancel", "customer-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Service cancelled successfully"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/dashboard/request/r2/cancel", "customer-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Cannot cancel this service"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/dashboard/request/r3/cancel", "customer-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRescheduleRequest(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.On("Reschedule", mock.Anything, customerIdentity, "r1", "2026-12-01T09:30").
		Return(&models.ServiceRequest{ID: "r1"}, nil).Once()

	w := env.do(http.MethodPut, "/api/dashboard/request/r1/reschedule", "customer-token",
		map[string]string{"scheduledDate": "2026-12-01T09:30"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Service rescheduled successfully"`)
}

func TestReviewRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.reviews.On("ForRequest", mock.Anything, "r1").Return(nil, nil).Once()
	env.reviews.On("Submit", mock.Anything, "r2", customerIdentity.UserID, services.ReviewInput{Rating: 5, Title: "Great", Comment: "Quick"}).
		Return(&models.Review{ID: "v1", Rating: 5}, nil).Once()
	env.reviews.On("Stats", mock.Anything).Return(&models.ReviewStats{TotalReviews: 3, AvgRating: 4.3}, nil).Once()

	w := env.do(http.MethodGet, "/api/dashboard/request/r1/review", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = env.do(http.MethodPost, "/api/dashboard/request/r2/review", "customer-token",
		services.ReviewInput{Rating: 5, Title: "Great", Comment: "Quick"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Review submitted successfully"`)

	w = env.do(http.MethodGet, "/api/dashboard/reviews/stats", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"avgRating":4.3`)
}

func TestCustomerHistoryIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.On("CustomerHistory", mock.Anything, "966500000001").
		Return(&services.CustomerHistory{Found: false, Message: "No records found for this phone number"}, nil).Once()

	w := env.do(http.MethodGet, "/api/dashboard/customer-history/966500000001", "customer-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodGet, "/api/dashboard/customer-history/966500000001", "admin-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"found":false,"message":"No records found for this phone number"}`, w.Body.String())
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/admin/requests", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/admin/requests", "customer-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Admin access required"}`, w.Body.String())
}

func TestAdminListRequestsFilter(t *testing.T) {
	env := newTestEnv(t)
	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	env.bookings.On("AdminList", mock.Anything, mock.MatchedBy(func(f models.RequestFilter) bool {
		return f.Status == models.RequestStatusPending && f.StartDate != nil && f.StartDate.Equal(start) && f.EndDate == nil
	})).Return([]models.ServiceRequest{{ID: "r1"}}, nil).Once()

	w := env.do(http.MethodGet, "/admin/requests?status=pending&startDate=2026-10-01", "admin-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = env.do(http.MethodGet, "/admin/requests?endDate=yesterday", "admin-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportRequests(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.On("Export", mock.Anything).Return([]utils.ExportRow{{
		ID:            "r1",
		CustomerName:  "Sara",
		CustomerPhone: "+966500000001",
		Service:       "AC Repair",
		Status:        "pending",
		Price:         150,
		ScheduledDate: time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC),
		Location:      "Jazan",
	}}, nil).Once()

	w := env.do(http.MethodGet, "/admin/export", "admin-token", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Regexp(t, `^attachment; filename="service-requests-\d+\.csv"$`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "\ufeffID,Customer Name,Phone,"))
	assert.True(t, strings.HasSuffix(w.Body.String(), "r1,Sara,+966500000001,AC Repair,pending,150,3/7/2026,Jazan,-"))
}

func TestExportWithoutRequests(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.On("Export", mock.Anything).Return(nil, types.NewValidationError("No requests to export")).Once()

	w := env.do(http.MethodGet, "/admin/export", "admin-token", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"No requests to export"}`, w.Body.String())
}

func TestAdminDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("Delete", mock.Anything, adminIdentity, adminIdentity.UserID).
		Return(types.NewConflictError("Cannot delete your own admin account")).Once()
	env.users.On("Delete", mock.Anything, adminIdentity, "u9").Return(nil).Once()

	w := env.do(http.MethodPost, "/admin/users/"+adminIdentity.UserID+"/delete", "admin-token", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/admin/users/u9/delete", "admin-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"User and all associated bookings deleted"}`, w.Body.String())
}

func TestVerifyOTPStartsSession(t *testing.T) {
	env := newTestEnv(t)
	input := services.VerifyOTPInput{UID: "firebase-uid", Name: "Sara", Phone: "966500000001"}
	user := &models.User{ID: customerIdentity.UserID, Phone: "+966500000001", Name: "Sara", Role: models.RoleCustomer}
	env.users.On("VerifyOTP", mock.Anything, input).Return(user, nil).Once()
	env.sessions.On("Issue", mock.Anything, mock.MatchedBy(func(id *types.Identity) bool {
		return id.UserID == user.ID && id.Phone == user.Phone
	})).Return("signed-token", nil).Once()

	w := env.do(http.MethodPost, "/auth/verify-otp", "", input)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 86400, cookies[0].MaxAge)
}

func TestAdminLoginRejectsCustomer(t *testing.T) {
	env := newTestEnv(t)
	env.users.On("AdminLogin", mock.Anything, "sara@example.com", "secret").
		Return(nil, types.NewForbiddenError("Access denied. Admin role required.")).Once()

	w := env.do(http.MethodPost, "/auth/admin-login", "", map[string]string{"email": "sara@example.com", "password": "secret"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.sessions.On("Destroy", mock.Anything, "customer-token").Return(nil).Twice()

	w := env.do(http.MethodPost, "/auth/logout", "customer-token", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = env.do(http.MethodGet, "/auth/logout", "customer-token", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	env.sessions.AssertExpectations(t)
}

func TestCatalogRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.On("ListActive", mock.Anything).Return([]models.Service{{ID: "s1", Name: "AC Repair"}}, nil).Once()
	env.catalog.On("Create", mock.Anything, mock.AnythingOfType("services.ServiceInput")).
		Return(&models.Service{ID: "s2", Name: "Plumbing"}, nil).Once()
	env.catalog.On("BulkStatus", mock.Anything, []string{"s1", "s2"}, "inactive").Return(int64(2), nil).Once()

	w := env.do(http.MethodGet, "/api/catalog", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"services":[`)

	w = env.do(http.MethodPost, "/api/catalog", "customer-token", map[string]string{"name": "Plumbing"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(http.MethodPost, "/api/catalog", "admin-token", map[string]string{"name": "Plumbing"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodPost, "/api/catalog/bulk/status", "admin-token",
		map[string]interface{}{"serviceIds": []string{"s1", "s2"}, "status": "inactive"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"updated":2}`, w.Body.String())
}

func TestAreaRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.areas.On("Get", mock.Anything, "missing").Return(nil, types.NewNotFoundError("Area not found")).Once()
	env.areas.On("BulkStatus", mock.Anything, []string{"a1"}, "active").Return(int64(1), nil).Once()

	w := env.do(http.MethodGet, "/api/areas/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Area not found"}`, w.Body.String())

	w = env.do(http.MethodPost, "/api/areas/bulk/status", "admin-token",
		map[string]interface{}{"areaIds": []string{"a1"}, "status": "active"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"modifiedCount":1}`, w.Body.String())
}

func TestContactRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.contact.On("Get", mock.Anything).Return(models.DefaultContact(), nil).Once()

	w := env.do(http.MethodGet, "/api/contact", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phone":"+966502258883"`)

	w = env.do(http.MethodPost, "/api/contact/update", "customer-token", map[string]string{"phone": "+966500000009"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
