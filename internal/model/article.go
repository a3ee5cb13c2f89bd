package model

import "time"

const (
	StatusRelevant    = "Relevant"
	StatusNotRelevant = "Not Relevant"
	StatusUngraded    = "Ungraded"
)

// ValidStatus reports whether s is one of the three persistable review states.
// No other value may ever reach the articles table.
func ValidStatus(s string) bool {
	switch s {
	case StatusRelevant, StatusNotRelevant, StatusUngraded:
		return true
	}
	return false
}

type Article struct {
	ID             int64
	Title          string
	PublishedDate  time.Time
	RelevanceScore int
	Status         string
	URL            string
}

// ArticleDraft is an article before insertion, without a database id.
type ArticleDraft struct {
	Title          string
	PublishedDate  time.Time
	RelevanceScore int
	Status         string
	URL            string
}
