package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ClinkThearly/research-tool-v2/internal/listquery"
	"github.com/ClinkThearly/research-tool-v2/internal/model"
)

type ArticleStore interface {
	List(q listquery.Query) ([]model.Article, int, error)
	UpdateStatus(id int64, status string) error
	Delete(id int64) error
	Insert(draft model.ArticleDraft) (int64, error)
}

type ArticleHandler struct {
	repository ArticleStore
}

func NewArticleHandler(repository ArticleStore) *ArticleHandler {
	return &ArticleHandler{repository: repository}
}

// sortCycles encodes, per sortable column, the query the client should
// navigate to when that column header is activated from state q.
func sortCycles(q listquery.Query) map[string]string {
	cycles := make(map[string]string, 4)
	for _, col := range []string{"title", "published_date", "relevance_score", "status"} {
		cycles[col] = q.CycleSort(col).Encode()
	}
	return cycles
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	q := listquery.Parse(c.Request.URL.Query())

	articles, total, err := h.repository.List(q)
	if err != nil {
		slog.Error("error fetching articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var articleRes []ArticleResponse
	for _, a := range articles {
		articleRes = append(articleRes, ArticleResponse{
			ID:             a.ID,
			Title:          a.Title,
			PublishedDate:  a.PublishedDate.Format(time.RFC3339),
			RelevanceScore: a.RelevanceScore,
			Status:         a.Status,
			URL:            a.URL,
		})
	}

	res := ArticlesResponse{
		Articles: articleRes,
		Total:    total,
		Offset:   q.Offset,
		Search:   q.Search,
		SortKey:  q.SortKey,
		SortDir:  string(q.SortDir),
		Nav: NavigationResponse{
			HasPrev: q.HasPrev(),
			HasNext: q.HasNext(total),
			Prev:    q.Prev().Encode(),
			Next:    q.Next().Encode(),
			Sort:    sortCycles(q),
		},
	}

	c.JSON(http.StatusOK, res)
}

// UpdateStatus applies a single status transition. The enum is validated
// before the store is touched; an unknown article id is a silent success.
func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, UpdateStatusResponse{Success: false, Error: "Invalid request body"})
		return
	}

	if !model.ValidStatus(req.NewStatus) {
		c.JSON(http.StatusBadRequest, UpdateStatusResponse{Success: false, Error: "Invalid status"})
		return
	}

	if err := h.repository.UpdateStatus(req.ArticleID, req.NewStatus); err != nil {
		slog.Error("error updating article status", "error", err, "article_id", req.ArticleID)
		c.JSON(http.StatusInternalServerError, UpdateStatusResponse{Success: false, Error: "Failed to update article status"})
		return
	}

	c.JSON(http.StatusOK, UpdateStatusResponse{Success: true})
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Status == "" {
		req.Status = model.StatusUngraded
	}
	if !model.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	publishedDate, err := time.Parse(time.RFC3339, req.PublishedDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid published_date"})
		return
	}

	id, err := h.repository.Insert(model.ArticleDraft{
		Title:          req.Title,
		PublishedDate:  publishedDate,
		RelevanceScore: req.RelevanceScore,
		Status:         req.Status,
		URL:            req.URL,
	})
	if err != nil {
		slog.Error("error inserting article", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, CreateArticleResponse{ID: id})
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article id"})
		return
	}

	if err := h.repository.Delete(id); err != nil {
		slog.Error("error deleting article", "error", err, "article_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ArticleHandler) GetHealth(c *gin.Context) {
	_, _, err := h.repository.List(listquery.Query{})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
