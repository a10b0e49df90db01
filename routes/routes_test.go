package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"ecoskip/config"
	"ecoskip/handlers"
	"ecoskip/middleware"
	"ecoskip/models"
	"ecoskip/services/booking"
	"ecoskip/services/catalog"
	"ecoskip/services/session"
	"ecoskip/services/user"
	"ecoskip/services/wizard"
	"ecoskip/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
	utils.SetLogger(zap.NewNop())
	os.Exit(m.Run())
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, req models.UserRegistrationData) (*user.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*user.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, email, password string) (*user.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	resp, _ := args.Get(0).(*user.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(ctx context.Context, userID string, input models.BookingInput) (*models.Booking, error) {
	args := m.Called(ctx, userID, input)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	bs, _ := args.Get(0).([]models.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID, bookingID string) (*models.Booking, error) {
	args := m.Called(ctx, userID, bookingID)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	args := m.Called(ctx)
	bs, _ := args.Get(0).([]models.Booking)
	return bs, args.Error(1)
}

type mockSessionService struct{ mock.Mock }

func (m *mockSessionService) view(args mock.Arguments) (*session.View, error) {
	v, _ := args.Get(0).(*session.View)
	return v, args.Error(1)
}

func (m *mockSessionService) Create(ctx context.Context) (*session.View, error) {
	return m.view(m.Called(ctx))
}

func (m *mockSessionService) Get(ctx context.Context, id string) (*session.View, error) {
	return m.view(m.Called(ctx, id))
}

func (m *mockSessionService) SetAddress(ctx context.Context, id string, a models.Address) (*session.View, error) {
	return m.view(m.Called(ctx, id, a))
}

func (m *mockSessionService) ToggleWasteType(ctx context.Context, id, wasteType string) (*session.View, error) {
	return m.view(m.Called(ctx, id, wasteType))
}

func (m *mockSessionService) SelectSkip(ctx context.Context, id string, skipID int) (*session.View, error) {
	return m.view(m.Called(ctx, id, skipID))
}

func (m *mockSessionService) SkipOptions(ctx context.Context, id string, f catalog.Filter) ([]catalog.SkipView, error) {
	args := m.Called(ctx, id, f)
	vs, _ := args.Get(0).([]catalog.SkipView)
	return vs, args.Error(1)
}

func (m *mockSessionService) SetPlacement(ctx context.Context, id string, p models.Placement) (*session.View, error) {
	return m.view(m.Called(ctx, id, p))
}

func (m *mockSessionService) SelectDeliveryDate(ctx context.Context, id, date string) (*session.View, error) {
	return m.view(m.Called(ctx, id, date))
}

func (m *mockSessionService) RemoveCharge(ctx context.Context, id string, c wizard.Charge) (*session.View, error) {
	return m.view(m.Called(ctx, id, c))
}

func (m *mockSessionService) Continue(ctx context.Context, id string) (*session.View, error) {
	return m.view(m.Called(ctx, id))
}

func (m *mockSessionService) Back(ctx context.Context, id string) (*session.View, error) {
	return m.view(m.Called(ctx, id))
}

func (m *mockSessionService) Reset(ctx context.Context, id string) (*session.View, error) {
	return m.view(m.Called(ctx, id))
}

func (m *mockSessionService) Calendar(ctx context.Context, id, month string) (*wizard.CalendarView, error) {
	args := m.Called(ctx, id, month)
	v, _ := args.Get(0).(*wizard.CalendarView)
	return v, args.Error(1)
}

func (m *mockSessionService) Submit(ctx context.Context, id, userID string) (*models.Booking, error) {
	args := m.Called(ctx, id, userID)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockSessionService) Cancel(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockContactService struct{ mock.Mock }

func (m *mockContactService) Submit(ctx context.Context, msg models.ContactSubmission) error {
	return m.Called(ctx, msg).Error(0)
}

type fixture struct {
	router   *gin.Engine
	users    *mockUserService
	bookings *mockBookingService
	sessions *mockSessionService
	contact  *mockContactService
	metrics  *middleware.Metrics
}

func newFixture() *fixture {
	f := &fixture{
		router:   gin.New(),
		users:    &mockUserService{},
		bookings: &mockBookingService{},
		sessions: &mockSessionService{},
		contact:  &mockContactService{},
		metrics:  middleware.NewMetrics("ecoskip"),
	}
	f.router.Use(utils.ErrorHandler())
	RegisterRoutes(f.router, &handlers.HandlerBundle{
		Users:          f.users,
		UserHandler:    handlers.NewUserHandler(f.users),
		BookingHandler: handlers.NewBookingHandler(f.bookings),
		SessionHandler: handlers.NewSessionHandler(f.sessions),
		CatalogHandler: handlers.NewCatalogHandler(catalog.Default()),
		ContactHandler: handlers.NewContactHandler(f.contact),
		AdminHandler:   handlers.NewAdminHandler(f.bookings),
		Metrics:        f.metrics,
	})
	return f
}

func (f *fixture) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := utils.GenerateToken(userID, userID+"@example.com", time.Hour)
	require.NoError(t, err)
	return tok
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

const registerBody = `{"name":"Nimal","email":"nimal@example.com","password":"secret123","phone":"0771234567","district":"Colombo"}`

func TestRegister(t *testing.T) {
	f := newFixture()
	f.users.On("Register", mock.Anything, mock.MatchedBy(func(r models.UserRegistrationData) bool {
		return r.Email == "nimal@example.com"
	})).Return(&user.AuthResponse{Token: "tok", User: models.PublicUser{ID: "u1", Role: models.RoleCustomer}}, nil).Once()

	w := f.do(http.MethodPost, "/api/auth/register", registerBody, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User created successfully", body["message"])
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, "u1", body["user"].(map[string]any)["id"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodPost, "/api/auth/register", `{"email":"x@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.users.On("Register", mock.Anything, mock.Anything).Return(nil, user.ErrUserExists).Once()
	w = f.do(http.MethodPost, "/api/auth/register", registerBody, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "User already exists", decode(t, w)["message"])

	f.users.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("mongo down")).Once()
	w = f.do(http.MethodPost, "/api/auth/register", registerBody, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Server error", body["message"])
	assert.Equal(t, "mongo down", body["error"])
}

func TestLogin(t *testing.T) {
	f := newFixture()
	f.users.On("Login", mock.Anything, "nimal@example.com", "wrong").Return(nil, user.ErrInvalidCredentials).Once()
	f.users.On("Login", mock.Anything, "nimal@example.com", "secret123").
		Return(&user.AuthResponse{Token: "tok"}, nil).Once()

	w := f.do(http.MethodPost, "/api/auth/login", `{"email":"nimal@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["message"])

	w = f.do(http.MethodPost, "/api/auth/login", `{"email":"nimal@example.com"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.do(http.MethodPost, "/api/auth/login", `{"email":"nimal@example.com","password":"secret123"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Login successful", decode(t, w)["message"])
}

func TestMe(t *testing.T) {
	f := newFixture()

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/auth/me", "", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/api/auth/me", "", "not-a-jwt").Code)

	f.users.On("GetUserByID", mock.Anything, "gone").Return(nil, user.ErrUserNotFound).Once()
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/auth/me", "", tokenFor(t, "gone")).Code)

	f.users.On("GetUserByID", mock.Anything, "u1").
		Return(&models.User{ID: "u1", Email: "u1@example.com", PasswordHash: "hash"}, nil).Once()
	w := f.do(http.MethodGet, "/api/auth/me", "", tokenFor(t, "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1@example.com", decode(t, w)["user"].(map[string]any)["email"])
	assert.NotContains(t, w.Body.String(), "hash")
}

func TestBookings(t *testing.T) {
	f := newFixture()
	tok := tokenFor(t, "u1")

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/api/bookings", "", "").Code)

	f.bookings.On("CreateBooking", mock.Anything, "u1", mock.Anything).
		Return(&models.Booking{BookingID: "SK-1", UserID: "u1", TotalAmount: 40200}, nil).Once()
	w := f.do(http.MethodPost, "/api/bookings", `{"wasteTypes":["household"],"placement":"private"}`, tok)
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Booking created successfully", body["message"])
	assert.Equal(t, 402.0, body["booking"].(map[string]any)["totalAmount"])

	f.bookings.On("CreateBooking", mock.Anything, "u1", mock.Anything).
		Return(nil, booking.ErrInvalidBooking).Once()
	w = f.do(http.MethodPost, "/api/bookings", `{}`, tok)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	f.bookings.On("ListBookings", mock.Anything, "u1").Return([]models.Booking{{BookingID: "SK-1"}}, nil).Once()
	w = f.do(http.MethodGet, "/api/bookings", "", tok)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["bookings"], 1)

	f.bookings.On("GetBooking", mock.Anything, "u1", "SK-2").Return(nil, booking.ErrBookingNotFound).Once()
	w = f.do(http.MethodGet, "/api/bookings/SK-2", "", tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Booking not found", decode(t, w)["message"])

	f.bookings.AssertExpectations(t)
}

func TestCreateBooking_RequiresValidToken(t *testing.T) {
	f := newFixture()
	body := `{"wasteTypes":["household"],"placement":"private"}`

	w := f.do(http.MethodPost, "/api/bookings", body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Access token required", decode(t, w)["message"])

	w = f.do(http.MethodPost, "/api/bookings", body, "not-a-jwt")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w)["message"])

	config.AppConfig.JWTSecret = "other-secret"
	forged := tokenFor(t, "u1")
	config.AppConfig.JWTSecret = "test-secret"
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/api/bookings", body, forged).Code)

	f.bookings.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestSessions(t *testing.T) {
	f := newFixture()

	f.sessions.On("Create", mock.Anything).Return(&session.View{SessionID: "s1", Step: wizard.StepPostcode}, nil).Once()
	w := f.do(http.MethodPost, "/api/booking-sessions", "", "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "s1", decode(t, w)["sessionId"])

	f.sessions.On("Get", mock.Anything, "missing").Return(nil, session.ErrSessionNotFound).Once()
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/booking-sessions/missing", "", "").Code)

	f.sessions.On("Continue", mock.Anything, "s1").Return(nil, wizard.ErrStepIncomplete).Once()
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/booking-sessions/s1/continue", "", "").Code)

	f.sessions.On("SelectSkip", mock.Anything, "s1", 17941).Return(nil, catalog.ErrSkipNotSelectable).Once()
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/booking-sessions/s1/skip", `{"skipId":17941}`, "").Code)

	f.sessions.On("SkipOptions", mock.Anything, "s1", catalog.Filter{HeavyWaste: true}).
		Return([]catalog.SkipView{{SkipOffering: models.SkipOffering{ID: 17934}, Selected: true}}, nil).Once()
	w = f.do(http.MethodGet, "/api/booking-sessions/s1/skips?heavy=true", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"selected":true`)

	f.sessions.On("SelectDeliveryDate", mock.Anything, "s1", "2025-06-17").Return(&session.View{SessionID: "s1"}, nil).Once()
	assert.Equal(t, http.StatusOK, f.do(http.MethodPut, "/api/booking-sessions/s1/delivery-date", `{"date":"2025-06-17"}`, "").Code)

	f.sessions.On("RemoveCharge", mock.Anything, "s1", wizard.ChargePermit).Return(&session.View{SessionID: "s1"}, nil).Once()
	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/booking-sessions/s1/charges/permit", "", "").Code)

	f.sessions.On("Calendar", mock.Anything, "s1", "next").Return(&wizard.CalendarView{Month: "2025-07"}, nil).Once()
	w = f.do(http.MethodGet, "/api/booking-sessions/s1/calendar?month=next", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2025-07")

	f.sessions.On("Cancel", mock.Anything, "s1").Return(nil).Once()
	assert.Equal(t, http.StatusOK, f.do(http.MethodDelete, "/api/booking-sessions/s1", "", "").Code)

	f.sessions.AssertExpectations(t)
}

func TestSessionSubmit(t *testing.T) {
	f := newFixture()

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/api/booking-sessions/s1/submit", "", "").Code)

	tok := tokenFor(t, "u1")
	f.sessions.On("Submit", mock.Anything, "s1", "u1").Return(nil, session.ErrNotAtPayment).Once()
	assert.Equal(t, http.StatusConflict, f.do(http.MethodPost, "/api/booking-sessions/s1/submit", "", tok).Code)

	f.sessions.On("Submit", mock.Anything, "s1", "u1").Return(&models.Booking{BookingID: "SK-9"}, nil).Once()
	w := f.do(http.MethodPost, "/api/booking-sessions/s1/submit", "", tok)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "SK-9", decode(t, w)["booking"].(map[string]any)["bookingId"])
}

func TestCatalog(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodGet, "/api/skips?road=true", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Skips []models.SkipOffering `json:"skips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Skips)
	for _, s := range body.Skips {
		assert.True(t, s.AllowedOnRoad)
		assert.False(t, s.Forbidden)
	}

	var priced struct {
		Skips []struct {
			PriceBeforeVAT models.Money `json:"price_before_vat"`
			VAT            int          `json:"vat"`
			PriceIncVAT    models.Money `json:"price_inc_vat"`
		} `json:"skips"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &priced))
	for _, s := range priced.Skips {
		want := models.SkipOffering{PriceBeforeVAT: s.PriceBeforeVAT, VAT: s.VAT}.PriceIncVAT()
		assert.Equal(t, want, s.PriceIncVAT)
	}

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/api/skips?heavy=maybe", "", "").Code)

	w = f.do(http.MethodGet, "/api/waste-types", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode(t, w)["wasteTypes"])
}

func TestContact(t *testing.T) {
	f := newFixture()
	f.contact.On("Submit", mock.Anything, mock.MatchedBy(func(m models.ContactSubmission) bool {
		return m.Email == "a@example.com" && m.Message == "Hello"
	})).Return(nil).Once()

	w := f.do(http.MethodPost, "/api/contact", `{"name":"A","email":"a@example.com","message":"Hello"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message sent successfully", decode(t, w)["message"])
	f.contact.AssertExpectations(t)
}

func TestHealthAndNoRoute(t *testing.T) {
	f := newFixture()

	w := f.do(http.MethodGet, "/api/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "OK", body["status"])
	_, err := time.Parse(time.RFC3339Nano, body["timestamp"].(string))
	assert.NoError(t, err)

	w = f.do(http.MethodGet, "/api/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", decode(t, w)["message"])
}

func TestAdminBookings(t *testing.T) {
	f := newFixture()

	f.users.On("GetUserByID", mock.Anything, "u1").Return(&models.User{ID: "u1", Role: models.RoleCustomer}, nil).Once()
	w := f.do(http.MethodGet, "/api/admin/bookings", "", tokenFor(t, "u1"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Admin access required", decode(t, w)["message"])

	f.users.On("GetUserByID", mock.Anything, "admin").Return(&models.User{ID: "admin", Role: models.RoleAdmin}, nil).Once()
	f.bookings.On("ListAllBookings", mock.Anything).Return([]models.Booking{{BookingID: "SK-1"}, {BookingID: "SK-2"}}, nil).Once()
	w = f.do(http.MethodGet, "/api/admin/bookings", "", tokenFor(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["bookings"], 2)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture()
	f.do(http.MethodGet, "/api/waste-types", "", "")

	w := f.do(http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/waste-types"`)
}
