package delivery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/md-abdullah-al-ahad/skillsync-backend/domain"
)

type stubStudentUC struct {
	profileFn func(ctx context.Context, userUUID string) (*domain.User, *domain.StudentStats, error)
	updateFn  func(ctx context.Context, userUUID string, input domain.UpdateStudentProfileInput) (*domain.User, error)
}

func (s *stubStudentUC) GetStudentProfile(ctx context.Context, userUUID string) (*domain.User, *domain.StudentStats, error) {
	return s.profileFn(ctx, userUUID)
}

func (s *stubStudentUC) UpdateStudentProfile(ctx context.Context, userUUID string, input domain.UpdateStudentProfileInput) (*domain.User, error) {
	return s.updateFn(ctx, userUUID, input)
}

func newStudentRouter(studentUC domain.StudentUseCase, bookingUC domain.BookingUseCase, userUUID, role string) *gin.Engine {
	r := gin.New()
	NewStudentHandler(r, studentUC, bookingUC, fakeAuth(userUUID, role))
	return r
}

func TestGetStudentProfileWithStats(t *testing.T) {
	uc := &stubStudentUC{
		profileFn: func(ctx context.Context, userUUID string) (*domain.User, *domain.StudentStats, error) {
			assert.Equal(t, "student-1", userUUID)
			return &domain.User{UUID: "student-1", Name: "Amina"},
				&domain.StudentStats{TotalBookings: 4, CompletedBookings: 2}, nil
		},
	}
	r := newStudentRouter(uc, &stubBookingUC{}, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Amina"`)
	assert.Contains(t, w.Body.String(), `"total_bookings":4`)
}

func TestStudentRoutesRequireStudentRole(t *testing.T) {
	r := newStudentRouter(&stubStudentUC{}, &stubBookingUC{}, "tutor-1", domain.RoleTutor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Students only")
}

func TestUpdateStudentProfileRequiresAField(t *testing.T) {
	uc := &stubStudentUC{
		updateFn: func(ctx context.Context, userUUID string, input domain.UpdateStudentProfileInput) (*domain.User, error) {
			t.Fatal("usecase must not be called for an empty update")
			return nil, nil
		},
	}
	r := newStudentRouter(uc, &stubBookingUC{}, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/students/profile", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStudentBookingsScopesToCaller(t *testing.T) {
	bookingUC := &stubBookingUC{
		listFn: func(ctx context.Context, userUUID, role string, filter domain.BookingFilter) ([]domain.Booking, domain.Pagination, error) {
			assert.Equal(t, "student-1", userUUID)
			assert.Equal(t, domain.RoleStudent, role)
			assert.Equal(t, domain.StatusConfirmed, filter.Status)
			return []domain.Booking{{ID: "b1"}}, domain.NewPagination(1, 1, 10), nil
		},
	}
	r := newStudentRouter(&stubStudentUC{}, bookingUC, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/students/bookings?status=CONFIRMED", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}
