package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
	"github.com/md-abdullah-al-ahad/skillsync-backend/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterCustomValidations(v)
	}
}

// fakeAuth stands in for the real auth middleware in handler tests.
func fakeAuth(userUUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userUUID", userUUID)
		c.Set("role", role)
		c.Next()
	}
}

type stubBookingUC struct {
	createFn func(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error)
	listFn   func(ctx context.Context, userUUID, role string, filter domain.BookingFilter) ([]domain.Booking, domain.Pagination, error)
	getFn    func(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	updateFn func(ctx context.Context, bookingID string, actor domain.Actor, target string) (*domain.Booking, error)
}

func (s *stubBookingUC) CreateBooking(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error) {
	return s.createFn(ctx, studentUUID, input)
}

func (s *stubBookingUC) GetUserBookings(ctx context.Context, userUUID, role string, filter domain.BookingFilter) ([]domain.Booking, domain.Pagination, error) {
	return s.listFn(ctx, userUUID, role, filter)
}

func (s *stubBookingUC) GetBookingByID(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	return s.getFn(ctx, bookingID, actor)
}

func (s *stubBookingUC) UpdateBookingStatus(ctx context.Context, bookingID string, actor domain.Actor, target string) (*domain.Booking, error) {
	return s.updateFn(ctx, bookingID, actor, target)
}

func newBookingRouter(uc domain.BookingUseCase, userUUID, role string) *gin.Engine {
	r := gin.New()
	NewBookingHandler(r, uc, fakeAuth(userUUID, role))
	return r
}

func createBookingBody(t *testing.T) string {
	t.Helper()
	start := time.Now().Add(24 * time.Hour).UTC()
	body, err := json.Marshal(gin.H{
		"tutor_profile_id": "5f6d1c9e-0000-4000-8000-000000000001",
		"start_time":       start.Format(time.RFC3339),
		"end_time":         start.Add(time.Hour).Format(time.RFC3339),
		"price":            40.0,
	})
	require.NoError(t, err)
	return string(body)
}

func TestCreateBookingSuccess(t *testing.T) {
	uc := &stubBookingUC{
		createFn: func(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error) {
			assert.Equal(t, "student-1", studentUUID)
			return &domain.Booking{ID: "b1", Status: domain.StatusConfirmed}, nil
		},
	}
	r := newBookingRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(createBookingBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), domain.StatusConfirmed)
}

func TestCreateBookingConflict(t *testing.T) {
	uc := &stubBookingUC{
		createFn: func(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error) {
			return nil, domain.ErrSlotConflict
		},
	}
	r := newBookingRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(createBookingBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already booked")
}

func TestCreateBookingValidationError(t *testing.T) {
	uc := &stubBookingUC{
		createFn: func(ctx context.Context, studentUUID string, input domain.CreateBookingInput) (*domain.Booking, error) {
			t.Fatal("usecase must not be called on bind failure")
			return nil, nil
		},
	}
	r := newBookingRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"price": -5}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingTutorForbidden(t *testing.T) {
	uc := &stubBookingUC{}
	r := newBookingRouter(uc, "tutor-1", domain.RoleTutor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(createBookingBody(t)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Students only")
}

func TestGetBookingNotFound(t *testing.T) {
	uc := &stubBookingUC{
		getFn: func(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
			return nil, domain.ErrBookingNotFound
		},
	}
	r := newBookingRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMyBookingsPassesFilter(t *testing.T) {
	uc := &stubBookingUC{
		listFn: func(ctx context.Context, userUUID, role string, filter domain.BookingFilter) ([]domain.Booking, domain.Pagination, error) {
			assert.Equal(t, domain.StatusCompleted, filter.Status)
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 5, filter.Limit)
			return []domain.Booking{}, domain.NewPagination(0, 2, 5), nil
		},
	}
	r := newBookingRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings?status=COMPLETED&page=2&limit=5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalPages":0`)
}

func TestUpdateBookingStatusErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"student tries to complete", domain.ErrOnlyTutorCanComplete, http.StatusForbidden},
		{"future completion", domain.ErrFutureCompletion, http.StatusBadRequest},
		{"cancel completed", domain.ErrCancelCompleted, http.StatusBadRequest},
		{"already cancelled", domain.ErrAlreadyCancelled, http.StatusBadRequest},
		{"stranger", domain.ErrBookingUpdateDenied, http.StatusForbidden},
		{"missing", domain.ErrBookingNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubBookingUC{
				updateFn: func(ctx context.Context, bookingID string, actor domain.Actor, target string) (*domain.Booking, error) {
					return nil, tt.err
				},
			}
			r := newBookingRouter(uc, "student-1", domain.RoleStudent)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1",
				strings.NewReader(`{"status":"COMPLETED"}`))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestUpdateBookingStatusRejectsUnknownStatus(t *testing.T) {
	uc := &stubBookingUC{
		updateFn: func(ctx context.Context, bookingID string, actor domain.Actor, target string) (*domain.Booking, error) {
			t.Fatal("usecase must not be called for an unknown status")
			return nil, nil
		},
	}
	r := newBookingRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/b1",
		strings.NewReader(`{"status":"PENDING"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
