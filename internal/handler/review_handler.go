package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ClinkThearly/research-tool-v2/internal/model"
	"github.com/ClinkThearly/research-tool-v2/internal/review"
)

// maxUploadSize caps catalogue uploads at 32 MB.
const maxUploadSize = 32 << 20

type Extractor interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
	Data(ctx context.Context, extractionID string) ([]model.Slide, error)
}

type ReviewHandler struct {
	extractor Extractor
	session   *review.Session
}

func NewReviewHandler(extractor Extractor, session *review.Session) *ReviewHandler {
	return &ReviewHandler{extractor: extractor, session: session}
}

func toReviewResponse(snap review.Snapshot) ReviewResponse {
	res := ReviewResponse{
		State:      string(snap.State),
		SlideIndex: snap.SlideIndex,
		SlideCount: snap.SlideCount,
		HasPrev:    snap.HasPrev,
		HasNext:    snap.HasNext,
		Slide:      snap.Slide,
	}
	if snap.State == review.StateReviewing && snap.Slide != nil {
		conf := snap.Conf
		res.Conf = &conf
	}
	return res
}

// Upload proxies a PDF to the extraction service and, on success, starts a
// review session at slide 0. Any failure along the way returns the session
// to the no-document state.
func (h *ReviewHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No PDF file provided"})
		return
	}
	defer file.Close()

	ct := header.Header.Get("Content-Type")
	if !strings.Contains(ct, "pdf") && !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are allowed"})
		return
	}

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds maximum limit"})
		return
	}

	h.session.Begin()

	extractionID, err := h.extractor.Upload(c.Request.Context(), header.Filename, file)
	if err != nil {
		h.session.Fail()
		slog.Error("error uploading to extraction service", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	slides, err := h.extractor.Data(c.Request.Context(), extractionID)
	if err != nil {
		h.session.Fail()
		slog.Error("error fetching extracted data", "error", err, "extraction_id", extractionID)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.session.Finish(slides)
	slog.Info("extraction complete", "extraction_id", extractionID, "slides", len(slides))

	c.JSON(http.StatusOK, toReviewResponse(h.session.Snapshot()))
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	c.JSON(http.StatusOK, toReviewResponse(h.session.Snapshot()))
}

func (h *ReviewHandler) NextSlide(c *gin.Context) {
	h.stepSlide(c, h.session.Next)
}

func (h *ReviewHandler) PrevSlide(c *gin.Context) {
	h.stepSlide(c, h.session.Prev)
}

func (h *ReviewHandler) stepSlide(c *gin.Context, step func() error) {
	if err := step(); err != nil {
		h.reviewError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReviewResponse(h.session.Snapshot()))
}

func (h *ReviewHandler) Discard(c *gin.Context) {
	h.session.Discard()
	c.JSON(http.StatusOK, toReviewResponse(h.session.Snapshot()))
}

func (h *ReviewHandler) EditSlide(c *gin.Context) {
	var edit review.Edit
	if err := c.ShouldBindJSON(&edit); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.session.Apply(edit); err != nil {
		h.reviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(h.session.Snapshot()))
}

func (h *ReviewHandler) ConfirmField(c *gin.Context) {
	var field review.Field
	if err := c.ShouldBindJSON(&field); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.session.ConfirmField(field); err != nil {
		h.reviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReviewResponse(h.session.Snapshot()))
}

func (h *ReviewHandler) ConfirmSlide(c *gin.Context) {
	complete, missing, err := h.session.ConfirmSlide()
	if err != nil {
		h.reviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, ConfirmSlideResponse{Complete: complete, Missing: missing})
}

func (h *ReviewHandler) reviewError(c *gin.Context, err error) {
	if errors.Is(err, review.ErrNoDocument) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
