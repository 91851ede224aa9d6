package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blog-cms/internal/domain"
	"blog-cms/internal/gateway"
	"blog-cms/internal/middleware"
	"blog-cms/internal/mocks"
	"blog-cms/internal/security"
	"blog-cms/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	testArticleID = "3f1c8e2a-6b1d-4c55-9a0e-1f2b3c4d5e6f"
	testAuthorID  = "9b2d7c41-2f6e-4a8b-8c3d-5e6f7a8b9c0d"
	testRootID    = "0d4e5f60-7a8b-4c9d-8e0f-1a2b3c4d5e6f"
)

var createdAt = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

type testServer struct {
	router     *gin.Engine
	articles   *mocks.MockArticleServiceInterface
	authors    *mocks.MockAuthorServiceInterface
	categories *mocks.MockCategoryServiceInterface
}

func newTestServer(t *testing.T, db Pinger, limiter *middleware.RateLimiter) *testServer {
	t.Helper()
	s := &testServer{
		articles:   mocks.NewMockArticleServiceInterface(t),
		authors:    mocks.NewMockAuthorServiceInterface(t),
		categories: mocks.NewMockCategoryServiceInterface(t),
	}
	sanitizer := security.NewContentSanitizer()
	catalog := gateway.EnglishCatalog()

	s.router = NewRouter(Router{
		Health:      NewHealthHandler(db, nil),
		Articles:    NewArticleHandler(gateway.NewArticleGateways(s.articles, sanitizer, catalog)),
		Authors:     NewAuthorHandler(gateway.NewAuthorGateways(s.authors, sanitizer, catalog)),
		Categories:  NewCategoryHandler(gateway.NewCategoryGateways(s.categories, sanitizer, catalog)),
		RateLimiter: limiter,
	})
	return s
}

func (s *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func draft() domain.Article {
	return domain.Article{
		ID:         testArticleID,
		Title:      "Hello",
		Content:    "<p>Body</p>",
		Slug:       "hello",
		Status:     domain.StatusDraft,
		AuthorID:   testAuthorID,
		Timestamps: domain.CreatedNow(createdAt),
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		category gateway.Category
		want     int
	}{
		{gateway.CategoryValidation, http.StatusBadRequest},
		{gateway.CategoryNotFound, http.StatusNotFound},
		{gateway.CategoryConflict, http.StatusConflict},
		{gateway.CategoryInvalidState, http.StatusConflict},
		{gateway.CategoryInternal, http.StatusInternalServerError},
		{gateway.Category("unknown"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.category), "category %s", tt.category)
	}
}

func TestCreateArticle(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.articles.EXPECT().
		CreateArticle(mock.Anything, service.CreateArticleCommand{Title: "Hello", Content: "<p>Body</p>", AuthorID: testAuthorID}).
		Return(draft(), nil)

	w := s.do(http.MethodPost, "/api/v1/articles", `{"title":"Hello","content":"<p>Body</p>","author_id":"`+testAuthorID+`"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[gateway.ArticleResponse](t, w)
	assert.Equal(t, testArticleID, resp.ID)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, "2024-06-01T08:00:00Z", resp.CreatedAt)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestCreateArticle_ValidationError(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	w := s.do(http.MethodPost, "/api/v1/articles", `{"title":"","content":"x","author_id":"42"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[gateway.Error](t, w)
	assert.Equal(t, gateway.CategoryValidation, body.Category)
	assert.Equal(t, string(domain.CodeValidationFailed), body.Code)
	assert.Contains(t, body.Fields, "title")
	assert.Contains(t, body.Fields, "author_id")
}

func TestCreateArticle_MalformedJSON(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	w := s.do(http.MethodPost, "/api/v1/articles", `{"title":`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(domain.CodeValidationFailed), decode[gateway.Error](t, w).Code)
}

func TestCreateArticle_SlugConflict(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.articles.EXPECT().
		CreateArticle(mock.Anything, mock.Anything).
		Return(domain.Article{}, domain.NewError(domain.CodeArticleAlreadyExists, "slug hello is taken"))

	w := s.do(http.MethodPost, "/api/v1/articles", `{"title":"Hello","content":"Body","author_id":"`+testAuthorID+`"}`)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, gateway.CategoryConflict, decode[gateway.Error](t, w).Category)
}

func TestGetArticle_NotFound(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.articles.EXPECT().
		GetArticle(mock.Anything, service.GetArticleQuery{ArticleID: testArticleID}).
		Return(domain.Article{}, domain.ErrArticleNotFound(testArticleID))

	w := s.do(http.MethodGet, "/api/v1/articles/"+testArticleID, "")

	require.Equal(t, http.StatusNotFound, w.Code)
	body := decode[gateway.Error](t, w)
	assert.Equal(t, string(domain.CodeArticleNotFound), body.Code)
	assert.Equal(t, "The article does not exist.", body.Message)
}

func TestGetArticle_InvalidID(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	w := s.do(http.MethodGet, "/api/v1/articles/not-a-uuid", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Must be a valid UUID.", decode[gateway.Error](t, w).Fields["article_id"])
}

func TestSubmitArticle_InvalidState(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.articles.EXPECT().
		SubmitArticleForReview(mock.Anything, service.SubmitArticleCommand{ArticleID: testArticleID}).
		Return(domain.Article{}, domain.NewError(domain.CodeCannotSubmitPublished, "published"))

	w := s.do(http.MethodPost, "/api/v1/articles/"+testArticleID+"/submit", "")

	require.Equal(t, http.StatusConflict, w.Code)
	body := decode[gateway.Error](t, w)
	assert.Equal(t, gateway.CategoryInvalidState, body.Category)
	assert.Equal(t, string(domain.CodeCannotSubmitPublished), body.Code)
}

func TestPublishArticle_EmptyBody(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	published := draft()
	published.Status = domain.StatusPublished
	s.articles.EXPECT().
		PublishArticle(mock.Anything, service.PublishArticleCommand{ArticleID: testArticleID}).
		Return(published, nil)

	w := s.do(http.MethodPost, "/api/v1/articles/"+testArticleID+"/publish", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "published", decode[gateway.ArticleResponse](t, w).Status)
}

func TestReviewArticle_PathWins(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.articles.EXPECT().
		ReviewArticle(mock.Anything, mock.MatchedBy(func(cmd service.ReviewArticleCommand) bool {
			return cmd.ArticleID == testArticleID && cmd.Decision == "approve"
		})).
		Return(draft(), nil)

	body := `{"article_id":"00000000-0000-0000-0000-000000000000","reviewer_id":"editor-1","decision":"approve"}`
	w := s.do(http.MethodPost, "/api/v1/articles/"+testArticleID+"/review", body)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestListArticles_BadQuery(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	w := s.do(http.MethodGet, "/api/v1/articles?page=abc", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListArticles(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.articles.EXPECT().
		ListArticles(mock.Anything, service.ListArticlesQuery{Page: 2, Limit: 5, Status: "draft"}).
		Return(domain.Page[domain.Article]{Items: []domain.Article{draft()}, Page: 2, Limit: 5, Total: 6}, nil)

	w := s.do(http.MethodGet, "/api/v1/articles?page=2&limit=5&status=draft", "")

	require.Equal(t, http.StatusOK, w.Code)
	page := decode[gateway.PageResponse[gateway.ArticleResponse]](t, w)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalPages)
}

func TestDeleteAuthor_Blocked(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.authors.EXPECT().
		DeleteAuthor(mock.Anything, service.DeleteAuthorCommand{AuthorID: testAuthorID}).
		Return(domain.NewError(domain.CodeAuthorHasArticles, "author has articles"))

	w := s.do(http.MethodDelete, "/api/v1/authors/"+testAuthorID, "")

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(domain.CodeAuthorHasArticles), decode[gateway.Error](t, w).Code)
}

func TestCreateAuthor(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.authors.EXPECT().
		CreateAuthor(mock.Anything, service.CreateAuthorCommand{Name: "Ada", Email: "ada@example.com", Bio: "Writes"}).
		Return(domain.Author{ID: testAuthorID, Name: "Ada", Email: "ada@example.com", Bio: "Writes", Timestamps: domain.CreatedNow(createdAt)}, nil)

	w := s.do(http.MethodPost, "/api/v1/authors", `{"name":"Ada","email":"ada@example.com","bio":"Writes"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, testAuthorID, decode[gateway.AuthorResponse](t, w).ID)
}

func TestCategoryTree_RouteBeforeID(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.categories.EXPECT().
		ListCategoryTree(mock.Anything, service.ListCategoryTreeQuery{MaxDepth: 2}).
		Return([]domain.CategoryNode{{
			Category: domain.Category{ID: testRootID, Name: "Go", Slug: "go", Timestamps: domain.CreatedNow(createdAt)},
			Depth:    1,
		}}, nil)

	w := s.do(http.MethodGet, "/api/v1/categories/tree?max_depth=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	tree := decode[gateway.CategoryTreeResponse](t, w)
	assert.Equal(t, 2, tree.MaxDepth)
	require.Len(t, tree.Categories, 1)
	assert.Equal(t, "go", tree.Categories[0].Slug)
}

func TestCategoryTree_DepthOutOfRange(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	w := s.do(http.MethodGet, "/api/v1/categories/tree?max_depth=11", "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[gateway.Error](t, w).Fields, "max_depth")
}

func TestInternalError_Hidden(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	s.categories.EXPECT().
		GetCategory(mock.Anything, service.GetCategoryQuery{CategoryID: testRootID}).
		Return(domain.Category{}, errors.New("dial tcp 10.0.0.9:5432: connection refused"))

	w := s.do(http.MethodGet, "/api/v1/categories/"+testRootID, "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode[gateway.Error](t, w)
	assert.Equal(t, gateway.CodeInternal, body.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.9")
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		path   string
		status int
		want   string
	}{
		{name: "healthy", db: fakePinger{}, path: "/health", status: http.StatusOK, want: `"status":"healthy"`},
		{name: "unhealthy", db: fakePinger{err: errors.New("down")}, path: "/health", status: http.StatusServiceUnavailable, want: `"database":"unhealthy"`},
		{name: "ready", db: fakePinger{}, path: "/ready", status: http.StatusOK, want: `"status":"ready"`},
		{name: "not ready", db: fakePinger{err: errors.New("down")}, path: "/ready", status: http.StatusServiceUnavailable, want: `"status":"not ready"`},
		{name: "live", db: fakePinger{err: errors.New("down")}, path: "/live", status: http.StatusOK, want: `"status":"alive"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.db, nil)

			w := s.do(http.MethodGet, tt.path, "")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, fakePinger{}, nil)

	w := s.do(http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blog_cms_")
}

func TestRateLimit_AppliesToAPIOnly(t *testing.T) {
	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{Rate: 0.01, Burst: 1, CleanupInterval: time.Minute})
	defer limiter.Stop()
	s := newTestServer(t, fakePinger{}, limiter)

	s.articles.EXPECT().
		GetArticle(mock.Anything, mock.Anything).
		Return(draft(), nil).Once()

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/articles/"+testArticleID, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, s.do(http.MethodGet, "/api/v1/articles/"+testArticleID, "").Code)
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/live", "").Code)
}
