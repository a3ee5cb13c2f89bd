package main

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ClinkThearly/research-tool-v2/db"
	"github.com/ClinkThearly/research-tool-v2/internal/repository"
	"github.com/ClinkThearly/research-tool-v2/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	const maxRetries = 3

	// 0 blocks until work arrives.
	const popTimeout = 0 * time.Second

	err := db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	err = db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	articleRepo := repository.NewArticleRepository(db.DB)

	var scorer llm.Scorer
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		scorer = llm.NewAnthropicClient(key)
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		scorer = llm.NewOpenAIClient(key)
	} else {
		log.Fatal("no LLM API key configured")
	}

	attempts := make(map[int64]int)

	for {
		id, err := db.PopFromQueue(db.ScoreQueueKey, popTimeout)
		if err != nil {
			slog.Error("error popping from Redis queue", "error", err)
			break
		}

		articleID, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			slog.Error("invalid article id in queue", "id", id, "error", err)
			continue
		}

		if attempts[articleID] >= maxRetries {
			slog.Warn("article exceeded max retries, dead-lettering", "article_id", articleID)
			db.PushToQueue(db.DeadLetterKey, id)
			delete(attempts, articleID)
			continue
		}

		article, err := articleRepo.GetByID(articleID)
		if err != nil {
			slog.Error("error getting article from DB", "error", err, "article_id", articleID)
			continue
		}

		if article == nil {
			slog.Warn("article not found in DB", "article_id", articleID)
			continue
		}

		result, err := scorer.Score(llm.ScoreInput{Title: article.Title})
		if err != nil {
			slog.Error("error scoring article", "error", err, "article_id", articleID)

			attempts[articleID]++
			db.PushToQueue(db.ScoreQueueKey, id)

			time.Sleep(5 * time.Second)
			continue
		}

		err = articleRepo.SetRelevanceScore(articleID, result.RelevanceScore)
		if err != nil {
			slog.Error("error saving relevance score", "error", err, "article_id", articleID)
			continue
		}

		delete(attempts, articleID)
		slog.Info("article scored", "article_id", articleID, "score", result.RelevanceScore, "model", result.ModelUsed)
	}
}
