// Package listquery holds the article list view state: search, page offset
// and the active sort. The state round-trips through URL query parameters so
// a list view is shareable and survives a reload.
package listquery

import (
	"net/url"
	"strconv"
)

const PageSize = 10

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

var sortColumns = map[string]bool{
	"title":           true,
	"published_date":  true,
	"relevance_score": true,
	"status":          true,
}

// Sortable reports whether col is one of the allow-listed sort columns.
func Sortable(col string) bool {
	return sortColumns[col]
}

// Query is the decoded list view state. A zero Query means first page,
// no search, default ordering.
type Query struct {
	Search  string
	Offset  int
	SortKey string    // empty when unsorted
	SortDir Direction // empty when unsorted
}

// Parse decodes the state from URL query parameters. Negative or
// non-numeric offsets become 0 and stray offsets snap down to a page
// boundary, so Offset is always a non-negative multiple of PageSize.
func Parse(v url.Values) Query {
	q := Query{Search: v.Get("q")}

	if n, err := strconv.Atoi(v.Get("offset")); err == nil && n > 0 {
		q.Offset = n - n%PageSize
	}

	if key := v.Get("sort"); key != "" {
		q.SortKey = key
		q.SortDir = Direction(v.Get("direction"))
		if q.SortDir != Desc {
			q.SortDir = Asc
		}
	}

	return q
}

// Values is the encode half of the round-trip. Zero-value fields are
// omitted so default views keep a clean URL.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	if q.SortKey != "" {
		v.Set("sort", q.SortKey)
		v.Set("direction", string(q.SortDir))
	}
	return v
}

func (q Query) Encode() string {
	return q.Values().Encode()
}

// Prev steps one page back, floored at 0.
func (q Query) Prev() Query {
	q.Offset -= PageSize
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Next steps one page forward. There is no upper clamp here; HasNext is
// the only enforcement of the upper bound.
func (q Query) Next() Query {
	q.Offset += PageSize
	return q
}

func (q Query) HasPrev() bool {
	return q.Offset > 0
}

func (q Query) HasNext(total int) bool {
	return q.Offset+PageSize < total
}

// CycleSort advances the tri-state sort cycle for col: none → asc → desc
// → none. Activating a different column always lands on asc and silences
// the previous column, since only one sort key is active at a time. The
// current offset is preserved.
func (q Query) CycleSort(col string) Query {
	if q.SortKey != col {
		q.SortKey = col
		q.SortDir = Asc
		return q
	}

	switch q.SortDir {
	case Asc:
		q.SortDir = Desc
	default:
		q.SortKey = ""
		q.SortDir = ""
	}
	return q
}
