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

type stubTutorUC struct {
	listFn        func(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorProfile, domain.Pagination, error)
	getFn         func(ctx context.Context, tutorProfileID string) (*domain.TutorProfile, error)
	myProfileFn   func(ctx context.Context, userUUID string) (*domain.TutorProfile, *domain.TutorStats, error)
	updateFn      func(ctx context.Context, userUUID string, input domain.UpdateTutorProfileInput) (*domain.TutorProfile, error)
	availFn       func(ctx context.Context, userUUID string) ([]domain.AvailabilitySlot, error)
	addAvailFn    func(ctx context.Context, userUUID string, slot domain.AvailabilitySlotInput) (*domain.AvailabilitySlot, error)
	replaceFn     func(ctx context.Context, userUUID string, slots []domain.AvailabilitySlotInput) ([]domain.AvailabilitySlot, error)
	deleteAvailFn func(ctx context.Context, userUUID, slotID string) error
}

func (s *stubTutorUC) GetAllTutors(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorProfile, domain.Pagination, error) {
	return s.listFn(ctx, filter)
}

func (s *stubTutorUC) GetTutorByID(ctx context.Context, tutorProfileID string) (*domain.TutorProfile, error) {
	return s.getFn(ctx, tutorProfileID)
}

func (s *stubTutorUC) GetMyTutorProfile(ctx context.Context, userUUID string) (*domain.TutorProfile, *domain.TutorStats, error) {
	return s.myProfileFn(ctx, userUUID)
}

func (s *stubTutorUC) UpdateTutorProfile(ctx context.Context, userUUID string, input domain.UpdateTutorProfileInput) (*domain.TutorProfile, error) {
	return s.updateFn(ctx, userUUID, input)
}

func (s *stubTutorUC) GetAvailability(ctx context.Context, userUUID string) ([]domain.AvailabilitySlot, error) {
	return s.availFn(ctx, userUUID)
}

func (s *stubTutorUC) AddAvailability(ctx context.Context, userUUID string, slot domain.AvailabilitySlotInput) (*domain.AvailabilitySlot, error) {
	return s.addAvailFn(ctx, userUUID, slot)
}

func (s *stubTutorUC) ReplaceAvailability(ctx context.Context, userUUID string, slots []domain.AvailabilitySlotInput) ([]domain.AvailabilitySlot, error) {
	return s.replaceFn(ctx, userUUID, slots)
}

func (s *stubTutorUC) DeleteAvailability(ctx context.Context, userUUID, slotID string) error {
	return s.deleteAvailFn(ctx, userUUID, slotID)
}

func newTutorRouter(uc domain.TutorUseCase, userUUID, role string) *gin.Engine {
	r := gin.New()
	NewTutorHandler(r, uc, fakeAuth(userUUID, role))
	return r
}

func TestGetAllTutorsParsesFilters(t *testing.T) {
	uc := &stubTutorUC{
		listFn: func(ctx context.Context, filter domain.TutorFilter) ([]domain.TutorProfile, domain.Pagination, error) {
			assert.Equal(t, "math", filter.Category)
			assert.Equal(t, "amina", filter.Search)
			if assert.NotNil(t, filter.MinPrice) {
				assert.Equal(t, 20.0, *filter.MinPrice)
			}
			if assert.NotNil(t, filter.MinRating) {
				assert.Equal(t, 4.0, *filter.MinRating)
			}
			assert.Nil(t, filter.MaxPrice)
			return nil, domain.NewPagination(0, 1, 10), nil
		},
	}
	r := newTutorRouter(uc, "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/tutors?category=math&search=amina&min_price=20&min_rating=4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetTutorByIDInactive(t *testing.T) {
	uc := &stubTutorUC{
		getFn: func(ctx context.Context, tutorProfileID string) (*domain.TutorProfile, error) {
			return nil, domain.ErrTutorInactive
		},
	}
	r := newTutorRouter(uc, "", "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tutors/tp1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddAvailabilityDefaultsActive(t *testing.T) {
	uc := &stubTutorUC{
		addAvailFn: func(ctx context.Context, userUUID string, slot domain.AvailabilitySlotInput) (*domain.AvailabilitySlot, error) {
			assert.Equal(t, "MON", slot.DayOfWeek)
			assert.True(t, slot.IsActive)
			return &domain.AvailabilitySlot{ID: "s1", DayOfWeek: slot.DayOfWeek}, nil
		},
	}
	r := newTutorRouter(uc, "tutor-1", domain.RoleTutor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tutor/availability",
		strings.NewReader(`{"day_of_week":"MON","start_time":"09:00","end_time":"12:00"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAddAvailabilityRejectsBadTime(t *testing.T) {
	uc := &stubTutorUC{
		addAvailFn: func(ctx context.Context, userUUID string, slot domain.AvailabilitySlotInput) (*domain.AvailabilitySlot, error) {
			t.Fatal("usecase must not be called for a malformed time")
			return nil, nil
		},
	}
	r := newTutorRouter(uc, "tutor-1", domain.RoleTutor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tutor/availability",
		strings.NewReader(`{"day_of_week":"MON","start_time":"9am","end_time":"12:00"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "HH:MM")
}

func TestAvailabilityRequiresTutorRole(t *testing.T) {
	uc := &stubTutorUC{}
	r := newTutorRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tutor/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Tutors only")
}
