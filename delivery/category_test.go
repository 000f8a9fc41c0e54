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

type stubCategoryUC struct {
	listFn   func(ctx context.Context) ([]domain.Category, error)
	getFn    func(ctx context.Context, categoryID string) (*domain.Category, error)
	createFn func(ctx context.Context, name, slug string) (*domain.Category, error)
	updateFn func(ctx context.Context, categoryID string, name, slug *string) (*domain.Category, error)
	deleteFn func(ctx context.Context, categoryID string) error
}

func (s *stubCategoryUC) GetAllCategories(ctx context.Context) ([]domain.Category, error) {
	return s.listFn(ctx)
}

func (s *stubCategoryUC) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.getFn(ctx, categoryID)
}

func (s *stubCategoryUC) CreateCategory(ctx context.Context, name, slug string) (*domain.Category, error) {
	return s.createFn(ctx, name, slug)
}

func (s *stubCategoryUC) UpdateCategory(ctx context.Context, categoryID string, name, slug *string) (*domain.Category, error) {
	return s.updateFn(ctx, categoryID, name, slug)
}

func (s *stubCategoryUC) DeleteCategory(ctx context.Context, categoryID string) error {
	return s.deleteFn(ctx, categoryID)
}

func newCategoryRouter(uc domain.CategoryUseCase, role string) *gin.Engine {
	r := gin.New()
	NewCategoryHandler(r, uc, fakeAuth("user-1", role))
	return r
}

func TestGetAllCategoriesIsPublic(t *testing.T) {
	uc := &stubCategoryUC{
		listFn: func(ctx context.Context) ([]domain.Category, error) {
			return []domain.Category{{ID: "c1", Name: "Math", Slug: "math", TutorCount: 3}}, nil
		},
	}
	r := newCategoryRouter(uc, domain.RoleStudent)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tutor_count":3`)
}

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	uc := &stubCategoryUC{
		createFn: func(ctx context.Context, name, slug string) (*domain.Category, error) {
			t.Fatal("usecase must not be called for non-admin")
			return nil, nil
		},
	}
	r := newCategoryRouter(uc, domain.RoleTutor)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Math","slug":"math"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCreateCategorySuccess(t *testing.T) {
	uc := &stubCategoryUC{
		createFn: func(ctx context.Context, name, slug string) (*domain.Category, error) {
			assert.Equal(t, "Computer Science", name)
			assert.Equal(t, "computer-science", slug)
			return &domain.Category{ID: "c1", Name: name, Slug: slug}, nil
		},
	}
	r := newCategoryRouter(uc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Computer Science","slug":"computer-science"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateCategoryRejectsBadSlug(t *testing.T) {
	uc := &stubCategoryUC{
		createFn: func(ctx context.Context, name, slug string) (*domain.Category, error) {
			t.Fatal("usecase must not be called for a malformed slug")
			return nil, nil
		},
	}
	r := newCategoryRouter(uc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Math","slug":"Not A Slug"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "hyphens")
}

func TestCreateCategoryNameConflict(t *testing.T) {
	uc := &stubCategoryUC{
		createFn: func(ctx context.Context, name, slug string) (*domain.Category, error) {
			return nil, domain.ErrCategoryNameTaken
		},
	}
	r := newCategoryRouter(uc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Math","slug":"math"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCategoryInUse(t *testing.T) {
	uc := &stubCategoryUC{
		deleteFn: func(ctx context.Context, categoryID string) error {
			return domain.ErrCategoryInUse
		},
	}
	r := newCategoryRouter(uc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/categories/c1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "reassign tutors")
}
