// Package review holds the catalogue page's slide-by-slide review workflow
// over externally extracted PDF data. Everything here is in-memory,
// single-document state: edits never reach a server-side store and a
// process restart loses the session.
package review

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ClinkThearly/research-tool-v2/internal/model"
)

type State string

const (
	StateNoDocument State = "no_document"
	StateProcessing State = "processing"
	StateReviewing  State = "reviewing"
)

var (
	ErrNoDocument = errors.New("no document under review")
	ErrNoSlide    = errors.New("document has no slides")
)

// Edit mutates a single field of the active slide in place. Col addresses
// a cell within a table header or row.
type Edit struct {
	Field Field  `json:"field"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

// Session is the review workflow over one uploaded document. A process
// holds a single session; starting a new upload replaces whatever was
// being reviewed.
type Session struct {
	mu     sync.Mutex
	state  State
	slides []model.Slide
	index  int
	conf   Confirmations
}

// Snapshot is a point-in-time copy handed to the HTTP layer.
type Snapshot struct {
	State      State
	SlideIndex int
	SlideCount int
	Slide      *model.Slide
	Conf       Confirmations
	HasPrev    bool
	HasNext    bool
}

func NewSession() *Session {
	return &Session{state: StateNoDocument}
}

// Begin marks an upload in flight, discarding any document under review.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateProcessing
	s.slides = nil
	s.index = 0
	s.conf = Confirmations{}
}

// Finish installs the extracted document and enters Reviewing at slide 0.
// A zero-slide document still enters Reviewing; navigation and editing
// are simply inert until it is discarded.
func (s *Session) Finish(slides []model.Slide) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateReviewing
	s.slides = slides
	s.index = 0
	s.conf = newConfirmations(s.currentSlide())
}

// Fail abandons an upload that never produced a document.
func (s *Session) Fail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateNoDocument
	s.slides = nil
	s.index = 0
	s.conf = Confirmations{}
}

// Discard drops the document and all in-memory edits.
func (s *Session) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateNoDocument
	s.slides = nil
	s.index = 0
	s.conf = Confirmations{}
}

func (s *Session) currentSlide() *model.Slide {
	if s.index < 0 || s.index >= len(s.slides) {
		return nil
	}
	return &s.slides[s.index]
}

// Next steps to the following slide. Stepping resets the confirmation
// tree: review state is per-slide and does not survive navigation.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return ErrNoDocument
	}
	if s.index+1 >= len(s.slides) {
		return ErrNoSlide
	}

	s.index++
	s.conf = newConfirmations(s.currentSlide())
	return nil
}

func (s *Session) Prev() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return ErrNoDocument
	}
	if s.index == 0 {
		return ErrNoSlide
	}

	s.index--
	s.conf = newConfirmations(s.currentSlide())
	return nil
}

// Apply edits one field of the active slide.
func (s *Session) Apply(e Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return ErrNoDocument
	}

	slide := s.currentSlide()
	if slide == nil {
		return ErrNoSlide
	}

	return applyEdit(slide, e)
}

// ConfirmField marks one field position of the active slide reviewed.
func (s *Session) ConfirmField(f Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return ErrNoDocument
	}
	if s.currentSlide() == nil {
		return ErrNoSlide
	}

	return s.conf.confirm(f)
}

// ConfirmSlide reports whether every field of the active slide has been
// reviewed and how many are still unconfirmed. It has no persisted effect.
func (s *Session) ConfirmSlide() (bool, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReviewing {
		return false, 0, ErrNoDocument
	}
	if s.currentSlide() == nil {
		return false, 0, ErrNoSlide
	}

	missing := s.conf.missing()
	return missing == 0, missing, nil
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:      s.state,
		SlideIndex: s.index,
		SlideCount: len(s.slides),
		Conf:       s.conf,
		HasPrev:    s.state == StateReviewing && s.index > 0,
		HasNext:    s.state == StateReviewing && s.index+1 < len(s.slides),
	}

	if slide := s.currentSlide(); slide != nil {
		copied := *slide
		snap.Slide = &copied
	}

	return snap
}

func applyEdit(slide *model.Slide, e Edit) error {
	f := e.Field
	switch f.Section {
	case SectionTitle:
		slide.Title = e.Value
	case SectionText:
		slide.Text = e.Value
	case SectionNotes:
		slide.Notes = e.Value
	case SectionAdditional:
		slide.AdditionalElements = e.Value
	case SectionChart:
		if f.Index < 0 || f.Index >= len(slide.Charts) {
			return fmt.Errorf("no chart at index %d", f.Index)
		}
		chart := &slide.Charts[f.Index]
		switch f.Part {
		case "title":
			chart.Title = e.Value
		case "type":
			chart.Type = e.Value
		case "notes":
			chart.Notes = e.Value
		case "data":
			if _, ok := chart.Data[f.Key]; !ok {
				return fmt.Errorf("chart %d has no data key %q", f.Index, f.Key)
			}
			chart.Data[f.Key] = e.Value
		default:
			return fmt.Errorf("unknown chart part %q", f.Part)
		}
	case SectionTable:
		if f.Index < 0 || f.Index >= len(slide.Tables) {
			return fmt.Errorf("no table at index %d", f.Index)
		}
		table := &slide.Tables[f.Index]
		switch f.Part {
		case "title":
			table.Title = e.Value
		case "headers":
			if e.Col < 0 || e.Col >= len(table.Headers) {
				return fmt.Errorf("table %d has no header column %d", f.Index, e.Col)
			}
			table.Headers[e.Col] = e.Value
		case "row":
			if f.Row < 0 || f.Row >= len(table.Rows) {
				return fmt.Errorf("table %d has no row %d", f.Index, f.Row)
			}
			if e.Col < 0 || e.Col >= len(table.Rows[f.Row]) {
				return fmt.Errorf("table %d row %d has no column %d", f.Index, f.Row, e.Col)
			}
			table.Rows[f.Row][e.Col] = e.Value
		default:
			return fmt.Errorf("unknown table part %q", f.Part)
		}
	case SectionImage:
		if f.Index < 0 || f.Index >= len(slide.Images) {
			return fmt.Errorf("no image at index %d", f.Index)
		}
		slide.Images[f.Index] = e.Value
	case SectionMedia:
		if f.Index < 0 || f.Index >= len(slide.Media) {
			return fmt.Errorf("no media entry at index %d", f.Index)
		}
		switch f.Part {
		case "type":
			slide.Media[f.Index].Type = e.Value
		case "description":
			slide.Media[f.Index].Description = e.Value
		default:
			return fmt.Errorf("unknown media part %q", f.Part)
		}
	default:
		return fmt.Errorf("unknown section %q", f.Section)
	}
	return nil
}
