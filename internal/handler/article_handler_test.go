package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/middleware"
	"github.com/Atlas00000/sharevoices/internal/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var editor = domain.Actor{ID: "3b0f4a52-4a0e-4f55-9d8c-0d5f7f0f3f11", Role: domain.RoleEditor}

func articleRouter(svc *mocks.MockContentServiceInterface) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Identity())
	NewArticleHandler(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

type call struct {
	method string
	path   string
	body   any
	actor  *domain.Actor
}

func (rc call) serve(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	if rc.body != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(rc.body))
	}
	req := httptest.NewRequest(rc.method, rc.path, &body)
	req.Header.Set("Content-Type", "application/json")
	if rc.actor != nil {
		req.Header.Set(middleware.UserIDHeader, rc.actor.ID)
		req.Header.Set(middleware.UserRoleHeader, rc.actor.Role)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleArticle() *domain.Article {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Article{
		ID:             uuid.New().String(),
		Slug:           "clean-water-initiatives",
		Title:          "Clean Water Initiatives!",
		Content:        "Access to clean water changes everything for a village.",
		Category:       "health",
		Tags:           []string{"water"},
		AuthorID:       editor.ID,
		Status:         domain.StatusDraft,
		CurrentVersion: 1,
		ReadTime:       1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestArticleHandler_CreateArticle(t *testing.T) {
	t.Run("creates article", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		article := sampleArticle()
		in := domain.CreateArticleInput{
			Title:    article.Title,
			Content:  article.Content,
			Category: article.Category,
			Tags:     article.Tags,
		}

		svc.EXPECT().CreateArticle(mock.Anything, editor, in).Return(article, nil)

		w := call{method: http.MethodPost, path: "/api/v1/articles", body: in, actor: &editor}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusCreated, w.Code)
		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, article.ID, response.ID)
		assert.Equal(t, "clean-water-initiatives", response.Slug)
		assert.Equal(t, "draft", response.Status)
		assert.Equal(t, 1, response.CurrentVersion)
		assert.Equal(t, "2024-03-01T10:00:00Z", response.CreatedAt)
		assert.Nil(t, response.PublishedAt)
	})

	t.Run("requires identity", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)

		w := call{method: http.MethodPost, path: "/api/v1/articles", body: map[string]string{"title": "x"}}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects readers", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		reader := domain.Actor{ID: uuid.New().String(), Role: domain.RoleReader}

		w := call{method: http.MethodPost, path: "/api/v1/articles", body: map[string]string{"title": "x"}, actor: &reader}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("reports validation fields", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().CreateArticle(mock.Anything, editor, mock.Anything).
			Return(nil, domain.NewValidationError("title", "the length must be between 3 and 200"))

		w := call{method: http.MethodPost, path: "/api/v1/articles", body: map[string]string{"title": "x"}, actor: &editor}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var response struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "validation failed", response.Error)
		assert.Contains(t, response.Fields, "title")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		router := articleRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.UserIDHeader, editor.ID)
		req.Header.Set(middleware.UserRoleHeader, editor.Role)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestArticleHandler_ListArticles(t *testing.T) {
	t.Run("passes query parameters through", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		article := sampleArticle()
		page := domain.NewArticlePage([]domain.Article{*article}, 21, 2, 10)

		svc.EXPECT().ListArticles(mock.Anything, domain.ArticleFilter{
			Page:     2,
			Limit:    10,
			Category: "health",
			Status:   "published",
			AuthorID: editor.ID,
			Search:   "water",
		}).Return(&page, nil)

		path := fmt.Sprintf("/api/v1/articles?page=2&limit=10&category=health&status=published&authorId=%s&search=water", editor.ID)
		w := call{method: http.MethodGet, path: path}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response ArticleListResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Articles, 1)
		assert.Equal(t, int64(21), response.Total)
		assert.Equal(t, 2, response.Page)
		assert.Equal(t, 3, response.TotalPages)
	})

	t.Run("accepts author_id alias", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		page := domain.NewArticlePage(nil, 0, 1, 10)

		svc.EXPECT().ListArticles(mock.Anything, mock.MatchedBy(func(f domain.ArticleFilter) bool {
			return f.AuthorID == editor.ID && f.Page == 0 && f.Limit == 0
		})).Return(&page, nil)

		w := call{method: http.MethodGet, path: "/api/v1/articles?author_id=" + editor.ID}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"articles":[],"total":0,"page":1,"total_pages":0}`, w.Body.String())
	})

	for _, query := range []string{"page=abc", "limit=ten"} {
		t.Run("rejects "+query, func(t *testing.T) {
			svc := mocks.NewMockContentServiceInterface(t)

			w := call{method: http.MethodGet, path: "/api/v1/articles?" + query}.serve(t, articleRouter(svc))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestArticleHandler_GetArticle(t *testing.T) {
	t.Run("resolves slug anonymously", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		article := sampleArticle()
		article.ViewCount = 7
		published := article.CreatedAt.Add(time.Hour)
		article.PublishedAt = &published

		svc.EXPECT().GetArticle(mock.Anything, article.Slug).Return(article, nil)

		w := call{method: http.MethodGet, path: "/api/v1/articles/" + article.Slug}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(7), response.ViewCount)
		require.NotNil(t, response.PublishedAt)
		assert.Equal(t, "2024-03-01T11:00:00Z", *response.PublishedAt)
	})

	t.Run("maps not found", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().GetArticle(mock.Anything, "missing").Return(nil, fmt.Errorf("get article: %w", domain.ErrNotFound))

		w := call{method: http.MethodGet, path: "/api/v1/articles/missing"}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("hides internal errors", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().GetArticle(mock.Anything, "broken").Return(nil, errors.New("pq: relation does not exist"))

		w := call{method: http.MethodGet, path: "/api/v1/articles/broken"}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestArticleHandler_UpdateArticle(t *testing.T) {
	t.Run("applies patch", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		article := sampleArticle()
		article.Title = "Clean Water Everywhere"
		article.CurrentVersion = 2

		svc.EXPECT().UpdateArticle(mock.Anything, editor, article.ID, mock.MatchedBy(func(p domain.ArticlePatch) bool {
			return p.Title != nil && *p.Title == "Clean Water Everywhere" && p.Content == nil
		})).Return(article, nil)

		w := call{
			method: http.MethodPut,
			path:   "/api/v1/articles/" + article.ID,
			body:   map[string]string{"title": "Clean Water Everywhere"},
			actor:  &editor,
		}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.CurrentVersion)
	})

	t.Run("maps conflict", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().UpdateArticle(mock.Anything, editor, "a1", mock.Anything).
			Return(nil, fmt.Errorf("update slug %q: %w", "taken", domain.ErrConflict))

		w := call{method: http.MethodPut, path: "/api/v1/articles/a1", body: map[string]string{"title": "Taken"}, actor: &editor}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestArticleHandler_DeleteArticle(t *testing.T) {
	admin := domain.Actor{ID: uuid.New().String(), Role: domain.RoleAdmin}

	t.Run("admin deletes", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().DeleteArticle(mock.Anything, admin, "a1").Return(nil)

		w := call{method: http.MethodDelete, path: "/api/v1/articles/a1", actor: &admin}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("editor is forbidden", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)

		w := call{method: http.MethodDelete, path: "/api/v1/articles/a1", actor: &editor}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unknown article", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().DeleteArticle(mock.Anything, admin, "gone").Return(domain.ErrNotFound)

		w := call{method: http.MethodDelete, path: "/api/v1/articles/gone", actor: &admin}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleHandler_PublishArticle(t *testing.T) {
	svc := mocks.NewMockContentServiceInterface(t)
	article := sampleArticle()
	article.Status = domain.StatusPublished
	svc.EXPECT().PublishArticle(mock.Anything, editor, article.ID).Return(article, nil)

	w := call{method: http.MethodPost, path: "/api/v1/articles/" + article.ID + "/publish", actor: &editor}.serve(t, articleRouter(svc))

	require.Equal(t, http.StatusOK, w.Code)
	var response ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "published", response.Status)
}

func TestArticleHandler_Versions(t *testing.T) {
	created := time.Date(2024, 3, 2, 9, 30, 0, 0, time.UTC)
	v2 := domain.ArticleVersion{
		ArticleID: "a1",
		Version:   2,
		Title:     "Clean Water Everywhere",
		Changes: []domain.Change{{
			Field:    domain.FieldTitle,
			OldValue: domain.StringValue("Clean Water Initiatives!"),
			NewValue: domain.StringValue("Clean Water Everywhere"),
		}},
		CreatedBy: editor.ID,
		CreatedAt: created,
	}

	t.Run("lists history", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().ListVersions(mock.Anything, "a1").Return([]domain.ArticleVersion{v2, {ArticleID: "a1", Version: 1, CreatedAt: created}}, nil)

		w := call{method: http.MethodGet, path: "/api/v1/articles/a1/versions", actor: &editor}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Versions []VersionResponse `json:"versions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Versions, 2)
		assert.Equal(t, 2, response.Versions[0].Version)
		assert.Equal(t, domain.FieldTitle, response.Versions[0].Changes[0].Field)
		assert.Equal(t, []domain.Change{}, response.Versions[1].Changes)
		assert.Equal(t, "2024-03-02T09:30:00Z", response.Versions[0].CreatedAt)
	})

	t.Run("history of deleted article", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().ListVersions(mock.Anything, "gone").Return(nil, domain.ErrNotFound)

		w := call{method: http.MethodGet, path: "/api/v1/articles/gone/versions", actor: &editor}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("gets single version", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().GetVersion(mock.Anything, "a1", 2).Return(&v2, nil)

		w := call{method: http.MethodGet, path: "/api/v1/articles/a1/versions/2", actor: &editor}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response VersionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Clean Water Everywhere", response.Title)
		assert.Equal(t, []string{}, response.Tags)
	})

	for _, raw := range []string{"two", "0", "-1"} {
		t.Run("rejects version "+raw, func(t *testing.T) {
			svc := mocks.NewMockContentServiceInterface(t)

			w := call{method: http.MethodGet, path: "/api/v1/articles/a1/versions/" + raw, actor: &editor}.serve(t, articleRouter(svc))

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}

	t.Run("restores version", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		article := sampleArticle()
		article.CurrentVersion = 3
		svc.EXPECT().RestoreVersion(mock.Anything, editor, article.ID, 1).Return(article, nil)

		w := call{method: http.MethodPost, path: "/api/v1/articles/" + article.ID + "/versions/1/restore", actor: &editor}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response ArticleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.CurrentVersion)
	})
}

func TestArticleHandler_Stats(t *testing.T) {
	t.Run("article stats require a writer", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)

		w := call{method: http.MethodGet, path: "/api/v1/articles/a1/stats"}.serve(t, articleRouter(svc))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("article stats", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().ArticleStats(mock.Anything, "a1").Return(&domain.ArticleStats{ArticleID: "a1", TotalViews: 40, VersionCount: 2}, nil)

		w := call{method: http.MethodGet, path: "/api/v1/articles/a1/stats", actor: &editor}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response domain.ArticleStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(40), response.TotalViews)
		assert.Equal(t, 2, response.VersionCount)
	})

	t.Run("global stats are public and not shadowed by id route", func(t *testing.T) {
		svc := mocks.NewMockContentServiceInterface(t)
		svc.EXPECT().GlobalStats(mock.Anything).Return(&domain.GlobalStats{TotalArticles: 5, PublishedArticles: 3}, nil)

		w := call{method: http.MethodGet, path: "/api/v1/articles/stats/global"}.serve(t, articleRouter(svc))

		require.Equal(t, http.StatusOK, w.Code)
		var response domain.GlobalStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(5), response.TotalArticles)
	})
}
