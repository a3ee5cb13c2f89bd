package handler

import (
	"github.com/ClinkThearly/research-tool-v2/internal/model"
	"github.com/ClinkThearly/research-tool-v2/internal/review"
)

type ArticleResponse struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	PublishedDate  string `json:"published_date"`
	RelevanceScore int    `json:"relevance_score"`
	Status         string `json:"status"`
	URL            string `json:"url"`
}

// NavigationResponse carries the encoded query strings for every move the
// list view can make from its current state, so clients never rebuild the
// pagination or sort-cycle logic themselves.
type NavigationResponse struct {
	HasPrev bool              `json:"has_prev"`
	HasNext bool              `json:"has_next"`
	Prev    string            `json:"prev"`
	Next    string            `json:"next"`
	Sort    map[string]string `json:"sort"`
}

type ArticlesResponse struct {
	Articles []ArticleResponse  `json:"articles"`
	Total    int                `json:"total"`
	Offset   int                `json:"offset"`
	Search   string             `json:"q"`
	SortKey  string             `json:"sort,omitempty"`
	SortDir  string             `json:"direction,omitempty"`
	Nav      NavigationResponse `json:"nav"`
}

type UpdateStatusRequest struct {
	ArticleID int64  `json:"articleId"`
	NewStatus string `json:"newStatus"`
}

type UpdateStatusResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type CreateArticleRequest struct {
	Title          string `json:"title"`
	PublishedDate  string `json:"published_date"`
	RelevanceScore int    `json:"relevance_score"`
	Status         string `json:"status"`
	URL            string `json:"url"`
}

type CreateArticleResponse struct {
	ID int64 `json:"id"`
}

type ReviewResponse struct {
	State      string                `json:"state"`
	SlideIndex int                   `json:"slide_index"`
	SlideCount int                   `json:"slide_count"`
	HasPrev    bool                  `json:"has_prev"`
	HasNext    bool                  `json:"has_next"`
	Slide      *model.Slide          `json:"slide,omitempty"`
	Conf       *review.Confirmations `json:"confirmations,omitempty"`
}

type ConfirmSlideResponse struct {
	Complete bool `json:"complete"`
	Missing  int  `json:"missing"`
}
