package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ClinkThearly/research-tool-v2/db"
	"github.com/ClinkThearly/research-tool-v2/internal/model"
	"github.com/ClinkThearly/research-tool-v2/internal/repository"
	"github.com/ClinkThearly/research-tool-v2/pkg/feeds"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	var clients []feeds.Client
	if token := os.Getenv("FEEDLY_API_TOKEN"); token != "" {
		clients = append(clients, feeds.NewFeedlyClient(token, os.Getenv("FEEDLY_STREAM_ID")))
	}

	if len(clients) == 0 {
		slog.Error("no feed source API tokens configured")
		return
	}

	repo := repository.NewArticleRepository(db.DB)

	for _, client := range clients {
		source := client.Name()

		fetched, err := client.Fetch(50)
		if err != nil {
			slog.Error("error fetching articles", "source", source, "error", err)
			continue
		}

		var saved, duplicated, errors int

		for _, a := range fetched {
			// New rows arrive ungraded with a zero score; the scorer
			// fills in relevance_score and a human grades status.
			id, err := repo.Insert(model.ArticleDraft{
				Title:         a.Title,
				PublishedDate: a.PublishedAt,
				Status:        model.StatusUngraded,
				URL:           a.URL,
			})
			if err != nil {
				slog.Error("error saving article", "source", source, "error", err)
				errors++
				continue
			}

			if id == 0 {
				slog.Info("duplicate article skipped", "source", source, "url", a.URL)
				duplicated++
				continue
			}

			saved++

			err = db.PushToQueue(db.ScoreQueueKey, strconv.FormatInt(id, 10))
			if err != nil {
				slog.Error("error pushing to Redis queue", "source", source, "error", err, "article_id", id)
				errors++
			}
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "errors", errors)
	}
}
