package feeds

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestFeedlyFetch(t *testing.T) {
	payload := map[string]interface{}{
		"items": []map[string]interface{}{
			{
				"title":        "New dataset released for protein folding",
				"canonicalUrl": "https://example.com/dataset",
				"published":    int64(1772100000000),
			},
			{
				"title": "Alternate link only",
				"alternate": []map[string]interface{}{
					{"href": "https://example.com/alternate"},
				},
				"published": int64(1772100000000),
			},
			{
				"title":     "No link at all, dropped",
				"published": int64(1772100000000),
			},
		},
	}

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v3/streams/contents", r.URL.Path)
		assert.Equal(t, "feed/research", r.URL.Query().Get("streamId"))
		assert.Equal(t, "50", r.URL.Query().Get("count"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := NewFeedlyClient("test-token", "feed/research")
	client.baseURL = srv.URL

	articles, err := client.Fetch(50)

	assert.Equal(t, nil, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, 2, len(articles))

	a := articles[0]
	assert.Equal(t, "New dataset released for protein folding", a.Title)
	assert.Equal(t, "https://example.com/dataset", a.URL)
	assert.NotEqual(t, time.Time{}, a.PublishedAt)

	assert.Equal(t, "https://example.com/alternate", articles[1].URL)
}

func TestFeedlyFetchUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewFeedlyClient("bad-token", "feed/research")
	client.baseURL = srv.URL

	_, err := client.Fetch(10)
	assert.NotEqual(t, nil, err)
}
