package review

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/ClinkThearly/research-tool-v2/internal/model"
)

func testSlides() []model.Slide {
	return []model.Slide{
		{
			Title: "Market Overview",
			Text:  "Revenue grew across all segments.",
			Charts: []model.Chart{
				{
					Title: "Revenue by Region",
					Type:  "bar",
					Data:  map[string]string{"EMEA": "120", "APAC": "95"},
				},
			},
			Tables: []model.Table{
				{
					Title:   "Quarterly Figures",
					Headers: []string{"Quarter", "Revenue"},
					Rows:    [][]string{{"Q1", "30"}, {"Q2", "42"}},
				},
			},
			Images: []string{"figure-1.png"},
			Media:  []model.Media{{Type: "video", Description: "Keynote clip"}},
			Notes:  "Check APAC figure against the appendix.",
		},
		{
			Title: "Outlook",
			Text:  "Guidance unchanged.",
		},
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateNoDocument, s.Snapshot().State)

	s.Begin()
	assert.Equal(t, StateProcessing, s.Snapshot().State)

	s.Finish(testSlides())
	snap := s.Snapshot()
	assert.Equal(t, StateReviewing, snap.State)
	assert.Equal(t, 0, snap.SlideIndex)
	assert.Equal(t, 2, snap.SlideCount)
	assert.Equal(t, "Market Overview", snap.Slide.Title)

	s.Discard()
	snap = s.Snapshot()
	assert.Equal(t, StateNoDocument, snap.State)
	assert.Equal(t, 0, snap.SlideCount)
	if snap.Slide != nil {
		t.Fatal("discarded session should have no slide")
	}
}

func TestUploadFailureReturnsToNoDocument(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Fail()

	assert.Equal(t, StateNoDocument, s.Snapshot().State)
}

func TestZeroSlideDocumentIsGuarded(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(nil)

	snap := s.Snapshot()
	assert.Equal(t, StateReviewing, snap.State)
	assert.Equal(t, 0, snap.SlideCount)
	assert.Equal(t, false, snap.HasNext)
	assert.Equal(t, false, snap.HasPrev)

	assert.Equal(t, ErrNoSlide, s.Next())
	assert.Equal(t, ErrNoSlide, s.Prev())

	_, _, err := s.ConfirmSlide()
	assert.Equal(t, ErrNoSlide, err)
}

func TestNavigationBoundsAndConfirmationReset(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(testSlides())

	assert.Equal(t, ErrNoSlide, s.Prev())

	err := s.ConfirmField(Field{Section: SectionTitle})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, s.Snapshot().Conf.Title)

	assert.Equal(t, nil, s.Next())
	snap := s.Snapshot()
	assert.Equal(t, 1, snap.SlideIndex)
	assert.Equal(t, "Outlook", snap.Slide.Title)
	// Stepping rebuilt the tree; the previous confirmation is gone.
	assert.Equal(t, false, snap.Conf.Title)

	assert.Equal(t, ErrNoSlide, s.Next())

	assert.Equal(t, nil, s.Prev())
	assert.Equal(t, false, s.Snapshot().Conf.Title)
}

func TestApplyEdits(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(testSlides())

	edits := []Edit{
		{Field: Field{Section: SectionTitle}, Value: "Corrected Title"},
		{Field: Field{Section: SectionChart, Index: 0, Part: "data", Key: "EMEA"}, Value: "125"},
		{Field: Field{Section: SectionTable, Index: 0, Part: "row", Row: 1}, Col: 1, Value: "44"},
		{Field: Field{Section: SectionMedia, Index: 0, Part: "description"}, Value: "Opening keynote"},
	}

	for _, e := range edits {
		assert.Equal(t, nil, s.Apply(e))
	}

	snap := s.Snapshot()
	assert.Equal(t, "Corrected Title", snap.Slide.Title)
	assert.Equal(t, "125", snap.Slide.Charts[0].Data["EMEA"])
	assert.Equal(t, "44", snap.Slide.Tables[0].Rows[1][1])
	assert.Equal(t, "Opening keynote", snap.Slide.Media[0].Description)
}

func TestApplyEditRejectsUnknownPositions(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(testSlides())

	bad := []Edit{
		{Field: Field{Section: SectionChart, Index: 3, Part: "title"}},
		{Field: Field{Section: SectionChart, Index: 0, Part: "data", Key: "LATAM"}},
		{Field: Field{Section: SectionTable, Index: 0, Part: "row", Row: 9}},
		{Field: Field{Section: "footer"}},
	}

	for _, e := range bad {
		assert.NotEqual(t, nil, s.Apply(e))
	}
}

func TestConfirmSlideCompleteness(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(testSlides())

	complete, missing, err := s.ConfirmSlide()
	assert.Equal(t, nil, err)
	assert.Equal(t, false, complete)
	// 4 scalar fields + chart (3 parts + 2 data keys) + table (title,
	// headers, 2 rows) + 1 image + media (2 parts) = 16 positions.
	assert.Equal(t, 16, missing)

	fields := []Field{
		{Section: SectionTitle},
		{Section: SectionText},
		{Section: SectionNotes},
		{Section: SectionAdditional},
		{Section: SectionChart, Index: 0, Part: "title"},
		{Section: SectionChart, Index: 0, Part: "type"},
		{Section: SectionChart, Index: 0, Part: "notes"},
		{Section: SectionChart, Index: 0, Part: "data", Key: "EMEA"},
		{Section: SectionChart, Index: 0, Part: "data", Key: "APAC"},
		{Section: SectionTable, Index: 0, Part: "title"},
		{Section: SectionTable, Index: 0, Part: "headers"},
		{Section: SectionTable, Index: 0, Part: "row", Row: 0},
		{Section: SectionTable, Index: 0, Part: "row", Row: 1},
		{Section: SectionImage, Index: 0},
		{Section: SectionMedia, Index: 0, Part: "type"},
		{Section: SectionMedia, Index: 0, Part: "description"},
	}

	for _, f := range fields {
		assert.Equal(t, nil, s.ConfirmField(f))
	}

	complete, missing, err = s.ConfirmSlide()
	assert.Equal(t, nil, err)
	assert.Equal(t, true, complete)
	assert.Equal(t, 0, missing)
}

func TestConfirmFieldRejectsUnknownPositions(t *testing.T) {
	s := NewSession()
	s.Begin()
	s.Finish(testSlides())

	assert.NotEqual(t, nil, s.ConfirmField(Field{Section: SectionChart, Index: 5, Part: "title"}))
	assert.NotEqual(t, nil, s.ConfirmField(Field{Section: SectionChart, Index: 0, Part: "data", Key: "LATAM"}))
	assert.NotEqual(t, nil, s.ConfirmField(Field{Section: SectionTable, Index: 0, Part: "row", Row: 7}))
}
