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

type stubReviewUC struct {
	createFn func(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error)
	listFn   func(ctx context.Context, tutorProfileID string, filter domain.ReviewFilter) ([]domain.Review, domain.Pagination, error)
	getFn    func(ctx context.Context, reviewID string) (*domain.Review, error)
}

func (s *stubReviewUC) CreateReview(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error) {
	return s.createFn(ctx, studentUUID, input)
}

func (s *stubReviewUC) GetTutorReviews(ctx context.Context, tutorProfileID string, filter domain.ReviewFilter) ([]domain.Review, domain.Pagination, error) {
	return s.listFn(ctx, tutorProfileID, filter)
}

func (s *stubReviewUC) GetReviewByID(ctx context.Context, reviewID string) (*domain.Review, error) {
	return s.getFn(ctx, reviewID)
}

func newReviewRouter(uc domain.ReviewUseCase, userUUID, role string) *gin.Engine {
	r := gin.New()
	NewReviewHandler(r, uc, fakeAuth(userUUID, role))
	return r
}

const createReviewBody = `{"booking_id":"5f6d1c9e-0000-4000-8000-000000000001","rating":5,"comment":"great session"}`

func TestCreateReviewSuccess(t *testing.T) {
	uc := &stubReviewUC{
		createFn: func(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error) {
			assert.Equal(t, "student-1", studentUUID)
			assert.Equal(t, 5, input.Rating)
			return &domain.Review{ID: "r1", Rating: 5}, nil
		},
	}
	r := newReviewRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(createReviewBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestCreateReviewBusinessErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"already reviewed", domain.ErrAlreadyReviewed, http.StatusConflict},
		{"not completed", domain.ErrNotCompleted, http.StatusBadRequest},
		{"not your booking", domain.ErrNotYourBooking, http.StatusForbidden},
		{"booking missing", domain.ErrBookingNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubReviewUC{
				createFn: func(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error) {
					return nil, tt.err
				},
			}
			r := newReviewRouter(uc, "student-1", domain.RoleStudent)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(createReviewBody))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.err.Error())
		})
	}
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	uc := &stubReviewUC{
		createFn: func(ctx context.Context, studentUUID string, input domain.CreateReviewInput) (*domain.Review, error) {
			t.Fatal("usecase must not be called for an invalid rating")
			return nil, nil
		},
	}
	r := newReviewRouter(uc, "student-1", domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reviews",
		strings.NewReader(`{"booking_id":"5f6d1c9e-0000-4000-8000-000000000001","rating":6}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTutorReviewsIsPublic(t *testing.T) {
	uc := &stubReviewUC{
		listFn: func(ctx context.Context, tutorProfileID string, filter domain.ReviewFilter) ([]domain.Review, domain.Pagination, error) {
			assert.Equal(t, "tp1", tutorProfileID)
			assert.Equal(t, 4, filter.MinRating)
			return []domain.Review{{ID: "r1", Rating: 5}}, domain.NewPagination(1, 1, 10), nil
		},
	}

	// No auth middleware on the public listing.
	r := gin.New()
	NewReviewHandler(r, uc, fakeAuth("ignored", domain.RoleStudent))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews/tutor/tp1?min_rating=4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestGetReviewByIDNotFound(t *testing.T) {
	uc := &stubReviewUC{
		getFn: func(ctx context.Context, reviewID string) (*domain.Review, error) {
			return nil, domain.ErrReviewNotFound
		},
	}
	r := gin.New()
	NewReviewHandler(r, uc, fakeAuth("ignored", domain.RoleStudent))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reviews/nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
