package feeds

import "time"

// Article is a raw feed entry before it becomes a dashboard row.
type Article struct {
	Title       string
	URL         string
	PublishedAt time.Time
}

type Client interface {
	Fetch(limit int) ([]Article, error)
	Name() string
}
