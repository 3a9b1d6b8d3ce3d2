package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Atlas00000/sharevoices/internal/domain"
	"github.com/Atlas00000/sharevoices/internal/logger"
	"github.com/Atlas00000/sharevoices/internal/middleware"
	"github.com/Atlas00000/sharevoices/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	content service.ContentServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(content service.ContentServiceInterface) *ArticleHandler {
	return &ArticleHandler{content: content}
}

// RegisterRoutes mounts the article endpoints on the given group.
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	writers := middleware.RequireRole(writerRoles...)

	articles := rg.Group("/articles")
	articles.GET("", h.ListArticles)
	articles.GET("/stats/global", h.GlobalStats)
	articles.GET("/:id", h.GetArticle)
	articles.POST("", writers, h.CreateArticle)
	articles.PUT("/:id", writers, h.UpdateArticle)
	articles.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.DeleteArticle)
	articles.POST("/:id/publish", writers, h.PublishArticle)
	articles.GET("/:id/versions", writers, h.ListVersions)
	articles.GET("/:id/versions/:version", writers, h.GetVersion)
	articles.POST("/:id/versions/:version/restore", writers, h.RestoreVersion)
	articles.GET("/:id/stats", writers, h.ArticleStats)
}

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID             string   `json:"id"`
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	AuthorID       string   `json:"author_id"`
	Status         string   `json:"status"`
	FeaturedImage  *string  `json:"featured_image,omitempty"`
	MediaURLs      []string `json:"media_urls,omitempty"`
	CurrentVersion int      `json:"current_version"`
	ViewCount      int64    `json:"view_count"`
	LikeCount      int64    `json:"like_count"`
	CommentCount   int64    `json:"comment_count"`
	ReadTime       int      `json:"read_time"`
	PublishedAt    *string  `json:"published_at,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// ArticleListResponse represents a page of articles.
type ArticleListResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// VersionResponse represents a historical snapshot in the API response.
type VersionResponse struct {
	ArticleID string          `json:"article_id"`
	Version   int             `json:"version"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Category  string          `json:"category"`
	Tags      []string        `json:"tags"`
	AuthorID  string          `json:"author_id"`
	Changes   []domain.Change `json:"changes"`
	CreatedBy string          `json:"created_by"`
	CreatedAt string          `json:"created_at"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	response := ArticleResponse{
		ID:             a.ID,
		Slug:           a.Slug,
		Title:          a.Title,
		Content:        a.Content,
		Category:       a.Category,
		Tags:           a.Tags,
		AuthorID:       a.AuthorID,
		Status:         string(a.Status),
		FeaturedImage:  a.FeaturedImage,
		MediaURLs:      a.MediaURLs,
		CurrentVersion: a.CurrentVersion,
		ViewCount:      a.ViewCount,
		LikeCount:      a.LikeCount,
		CommentCount:   a.CommentCount,
		ReadTime:       a.ReadTime,
		CreatedAt:      a.CreatedAt.Format(TimeFormat),
		UpdatedAt:      a.UpdatedAt.Format(TimeFormat),
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if a.PublishedAt != nil {
		publishedAt := a.PublishedAt.Format(TimeFormat)
		response.PublishedAt = &publishedAt
	}
	return response
}

func toVersionResponse(v *domain.ArticleVersion) VersionResponse {
	response := VersionResponse{
		ArticleID: v.ArticleID,
		Version:   v.Version,
		Title:     v.Title,
		Content:   v.Content,
		Category:  v.Category,
		Tags:      v.Tags,
		AuthorID:  v.AuthorID,
		Changes:   v.Changes,
		CreatedBy: v.CreatedBy,
		CreatedAt: v.CreatedAt.Format(TimeFormat),
	}
	if response.Tags == nil {
		response.Tags = []string{}
	}
	if response.Changes == nil {
		response.Changes = []domain.Change{}
	}
	return response
}

// CreateArticle handles POST /api/v1/articles
func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var in domain.CreateArticleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.content.CreateArticle(c.Request.Context(), actorFrom(c), in)
	if err != nil {
		respondError(c, err, "create article")
		return
	}

	c.JSON(http.StatusCreated, toArticleResponse(article))
}

// ListArticles handles GET /api/v1/articles
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	filter := domain.ArticleFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		AuthorID: c.Query("authorId"),
		Search:   c.Query("search"),
	}
	if filter.AuthorID == "" {
		filter.AuthorID = c.Query("author_id")
	}

	var err error
	if filter.Page, err = queryInt(c, "page"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return
	}
	if filter.Limit, err = queryInt(c, "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
		return
	}

	page, err := h.content.ListArticles(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "list articles")
		return
	}

	response := ArticleListResponse{
		Articles:   make([]ArticleResponse, 0, len(page.Articles)),
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	}
	for i := range page.Articles {
		response.Articles = append(response.Articles, toArticleResponse(&page.Articles[i]))
	}

	c.JSON(http.StatusOK, response)
}

// GetArticle handles GET /api/v1/articles/:id
// The parameter may be an id or a slug.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.content.GetArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "get article")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// UpdateArticle handles PUT /api/v1/articles/:id
func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var patch domain.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.content.UpdateArticle(c.Request.Context(), actorFrom(c), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "update article")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// DeleteArticle handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.content.DeleteArticle(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		respondError(c, err, "delete article")
		return
	}

	c.Status(http.StatusNoContent)
}

// PublishArticle handles POST /api/v1/articles/:id/publish
func (h *ArticleHandler) PublishArticle(c *gin.Context) {
	article, err := h.content.PublishArticle(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err, "publish article")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ListVersions handles GET /api/v1/articles/:id/versions
func (h *ArticleHandler) ListVersions(c *gin.Context) {
	versions, err := h.content.ListVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "list versions")
		return
	}

	response := make([]VersionResponse, 0, len(versions))
	for i := range versions {
		response = append(response, toVersionResponse(&versions[i]))
	}

	c.JSON(http.StatusOK, gin.H{"versions": response})
}

// GetVersion handles GET /api/v1/articles/:id/versions/:version
func (h *ArticleHandler) GetVersion(c *gin.Context) {
	version, ok := versionParam(c)
	if !ok {
		return
	}

	v, err := h.content.GetVersion(c.Request.Context(), c.Param("id"), version)
	if err != nil {
		respondError(c, err, "get version")
		return
	}

	c.JSON(http.StatusOK, toVersionResponse(v))
}

// RestoreVersion handles POST /api/v1/articles/:id/versions/:version/restore
func (h *ArticleHandler) RestoreVersion(c *gin.Context) {
	version, ok := versionParam(c)
	if !ok {
		return
	}

	article, err := h.content.RestoreVersion(c.Request.Context(), actorFrom(c), c.Param("id"), version)
	if err != nil {
		respondError(c, err, "restore version")
		return
	}

	c.JSON(http.StatusOK, toArticleResponse(article))
}

// ArticleStats handles GET /api/v1/articles/:id/stats
func (h *ArticleHandler) ArticleStats(c *gin.Context) {
	stats, err := h.content.ArticleStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "article stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GlobalStats handles GET /api/v1/articles/stats/global
func (h *ArticleHandler) GlobalStats(c *gin.Context) {
	stats, err := h.content.GlobalStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "global stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func actorFrom(c *gin.Context) domain.Actor {
	actor, _ := middleware.GetActor(c)
	return actor
}

// queryInt returns 0 for an absent parameter so the service applies its default.
func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func versionParam(c *gin.Context) (int, bool) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "version must be a positive integer"})
		return 0, false
	}
	return version, true
}

// respondError maps domain error kinds to HTTP statuses. Anything unrecognised
// is logged with the request id and reported as an opaque 500.
func respondError(c *gin.Context, err error, op string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": validationErr.Fields})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	default:
		logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("operation", op),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
