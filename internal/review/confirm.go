package review

import (
	"fmt"

	"github.com/ClinkThearly/research-tool-v2/internal/model"
)

// Section names the part of a slide a field lives in.
type Section string

const (
	SectionTitle      Section = "title"
	SectionText       Section = "text"
	SectionNotes      Section = "notes"
	SectionAdditional Section = "additional_elements"
	SectionChart      Section = "chart"
	SectionTable      Section = "table"
	SectionImage      Section = "image"
	SectionMedia      Section = "media"
)

// Field addresses a single reviewable field by structural position:
// section, element index and part within the element. Charts key their
// data entries by the data map key, tables address rows by index.
type Field struct {
	Section Section `json:"section"`
	Index   int     `json:"index"`
	Part    string  `json:"part,omitempty"`
	Key     string  `json:"key,omitempty"`
	Row     int     `json:"row"`
}

func (f Field) String() string {
	return fmt.Sprintf("%s[%d].%s", f.Section, f.Index, f.Part)
}

// Confirmations mirrors a slide's structure with one reviewed flag per
// field. It is rebuilt all-false whenever the active slide changes.
type Confirmations struct {
	Title              bool                 `json:"title"`
	Text               bool                 `json:"text"`
	Notes              bool                 `json:"notes"`
	AdditionalElements bool                 `json:"additional_elements"`
	Charts             []ChartConfirmations `json:"charts"`
	Tables             []TableConfirmations `json:"tables"`
	Images             []bool               `json:"images"`
	Media              []MediaConfirmations `json:"media"`
}

type ChartConfirmations struct {
	Title bool            `json:"title"`
	Type  bool            `json:"type"`
	Notes bool            `json:"notes"`
	Data  map[string]bool `json:"data"`
}

type TableConfirmations struct {
	Title   bool   `json:"title"`
	Headers bool   `json:"headers"`
	Rows    []bool `json:"rows"`
}

type MediaConfirmations struct {
	Type        bool `json:"type"`
	Description bool `json:"description"`
}

// newConfirmations sizes an all-false tree to the given slide.
func newConfirmations(s *model.Slide) Confirmations {
	c := Confirmations{}
	if s == nil {
		return c
	}

	c.Charts = make([]ChartConfirmations, len(s.Charts))
	for i, chart := range s.Charts {
		data := make(map[string]bool, len(chart.Data))
		for key := range chart.Data {
			data[key] = false
		}
		c.Charts[i] = ChartConfirmations{Data: data}
	}

	c.Tables = make([]TableConfirmations, len(s.Tables))
	for i, table := range s.Tables {
		c.Tables[i] = TableConfirmations{Rows: make([]bool, len(table.Rows))}
	}

	c.Images = make([]bool, len(s.Images))
	c.Media = make([]MediaConfirmations, len(s.Media))

	return c
}

// confirm marks the field at f reviewed. The position must exist in the
// tree; a field the slide does not have is an error, not a new key.
func (c *Confirmations) confirm(f Field) error {
	switch f.Section {
	case SectionTitle:
		c.Title = true
	case SectionText:
		c.Text = true
	case SectionNotes:
		c.Notes = true
	case SectionAdditional:
		c.AdditionalElements = true
	case SectionChart:
		if f.Index < 0 || f.Index >= len(c.Charts) {
			return fmt.Errorf("no chart at index %d", f.Index)
		}
		chart := &c.Charts[f.Index]
		switch f.Part {
		case "title":
			chart.Title = true
		case "type":
			chart.Type = true
		case "notes":
			chart.Notes = true
		case "data":
			if _, ok := chart.Data[f.Key]; !ok {
				return fmt.Errorf("chart %d has no data key %q", f.Index, f.Key)
			}
			chart.Data[f.Key] = true
		default:
			return fmt.Errorf("unknown chart part %q", f.Part)
		}
	case SectionTable:
		if f.Index < 0 || f.Index >= len(c.Tables) {
			return fmt.Errorf("no table at index %d", f.Index)
		}
		table := &c.Tables[f.Index]
		switch f.Part {
		case "title":
			table.Title = true
		case "headers":
			table.Headers = true
		case "row":
			if f.Row < 0 || f.Row >= len(table.Rows) {
				return fmt.Errorf("table %d has no row %d", f.Index, f.Row)
			}
			table.Rows[f.Row] = true
		default:
			return fmt.Errorf("unknown table part %q", f.Part)
		}
	case SectionImage:
		if f.Index < 0 || f.Index >= len(c.Images) {
			return fmt.Errorf("no image at index %d", f.Index)
		}
		c.Images[f.Index] = true
	case SectionMedia:
		if f.Index < 0 || f.Index >= len(c.Media) {
			return fmt.Errorf("no media entry at index %d", f.Index)
		}
		switch f.Part {
		case "type":
			c.Media[f.Index].Type = true
		case "description":
			c.Media[f.Index].Description = true
		default:
			return fmt.Errorf("unknown media part %q", f.Part)
		}
	default:
		return fmt.Errorf("unknown section %q", f.Section)
	}
	return nil
}

// missing counts fields not yet reviewed. Zero means the slide may be
// confirmed.
func (c *Confirmations) missing() int {
	n := 0
	for _, ok := range []bool{c.Title, c.Text, c.Notes, c.AdditionalElements} {
		if !ok {
			n++
		}
	}

	for _, chart := range c.Charts {
		for _, ok := range []bool{chart.Title, chart.Type, chart.Notes} {
			if !ok {
				n++
			}
		}
		for _, ok := range chart.Data {
			if !ok {
				n++
			}
		}
	}

	for _, table := range c.Tables {
		for _, ok := range []bool{table.Title, table.Headers} {
			if !ok {
				n++
			}
		}
		for _, ok := range table.Rows {
			if !ok {
				n++
			}
		}
	}

	for _, ok := range c.Images {
		if !ok {
			n++
		}
	}

	for _, m := range c.Media {
		if !m.Type {
			n++
		}
		if !m.Description {
			n++
		}
	}

	return n
}
