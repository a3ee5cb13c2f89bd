package feeds

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const feedlyBaseURL = "https://cloud.feedly.com"

type FeedlyClient struct {
	token      string
	streamID   string
	baseURL    string
	httpClient *http.Client
}

func NewFeedlyClient(token, streamID string) *FeedlyClient {
	return &FeedlyClient{
		token:      token,
		streamID:   streamID,
		baseURL:    feedlyBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *FeedlyClient) Name() string {
	return "Feedly"
}

func (c *FeedlyClient) Fetch(limit int) ([]Article, error) {
	endpoint := fmt.Sprintf(
		"%s/v3/streams/contents?streamId=%s&count=%d",
		c.baseURL, url.QueryEscape(c.streamID), limit,
	)

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("feedly fetch: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feedly fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feedly fetch: status %d", resp.StatusCode)
	}

	var raw feedlyResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("feedly decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Items))
	for _, item := range raw.Items {
		link := item.CanonicalURL
		if link == "" && len(item.Alternate) > 0 {
			link = item.Alternate[0].Href
		}
		if link == "" {
			continue
		}

		articles = append(articles, Article{
			Title:       item.Title,
			URL:         link,
			PublishedAt: time.UnixMilli(item.Published),
		})
	}

	return articles, nil
}

type feedlyResponse struct {
	Items []feedlyItem `json:"items"`
}

type feedlyItem struct {
	Title        string       `json:"title"`
	CanonicalURL string       `json:"canonicalUrl"`
	Alternate    []feedlyLink `json:"alternate"`
	Published    int64        `json:"published"`
}

type feedlyLink struct {
	Href string `json:"href"`
}
