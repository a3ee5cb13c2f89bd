package repository

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/ClinkThearly/research-tool-v2/internal/listquery"
	"github.com/ClinkThearly/research-tool-v2/internal/model"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// listOrder maps the view state onto an ORDER BY clause. Only allow-listed
// columns are ever interpolated; anything else falls back to the default
// ordering.
func listOrder(q listquery.Query) string {
	if q.SortKey != "" && listquery.Sortable(q.SortKey) {
		dir := "ASC"
		if q.SortDir == listquery.Desc {
			dir = "DESC"
		}
		return q.SortKey + " " + dir
	}
	return "published_date DESC"
}

// List returns one page of articles matching q plus the total count for the
// same filter. The two queries run concurrently with no shared snapshot; a
// write landing between them can skew the count, which is acceptable drift
// for a dashboard.
func (r *ArticleRepository) List(q listquery.Query) ([]model.Article, int, error) {
	sel := psql.
		Select("id", "title", "published_date", "relevance_score", "status", "url").
		From("articles")
	cnt := psql.Select("COUNT(*)").From("articles")

	if q.Search != "" {
		filter := sq.ILike{"title": "%" + q.Search + "%"}
		sel = sel.Where(filter)
		cnt = cnt.Where(filter)
	}

	sel = sel.
		OrderBy(listOrder(q)).
		Limit(listquery.PageSize).
		Offset(uint64(q.Offset))

	type countResult struct {
		total int
		err   error
	}
	countCh := make(chan countResult, 1)

	go func() {
		query, args, err := cnt.ToSql()
		if err != nil {
			countCh <- countResult{err: err}
			return
		}
		var total int
		err = r.db.QueryRow(query, args...).Scan(&total)
		countCh <- countResult{total: total, err: err}
	}()

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		err := rows.Scan(&a.ID, &a.Title, &a.PublishedDate, &a.RelevanceScore, &a.Status, &a.URL)
		if err != nil {
			return nil, 0, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	count := <-countCh
	if count.err != nil {
		return nil, 0, count.err
	}

	return articles, count.total, nil
}

// UpdateStatus overwrites the review status for the given article. An
// unknown id is a silent success, matching the UPDATE-no-rows behavior the
// dashboard has always had.
func (r *ArticleRepository) UpdateStatus(id int64, status string) error {
	_, err := r.db.Exec(`
		UPDATE articles SET status = $1 WHERE id = $2
	`, status, id)
	return err
}

func (r *ArticleRepository) Delete(id int64) error {
	_, err := r.db.Exec(`
		DELETE FROM articles WHERE id = $1
	`, id)
	return err
}

func (r *ArticleRepository) Insert(draft model.ArticleDraft) (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		INSERT INTO articles(title, published_date, relevance_score, status, url)
		VALUES($1, $2, $3, $4, $5)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, draft.Title, draft.PublishedDate, draft.RelevanceScore, draft.Status, draft.URL).Scan(&id)

	if err == sql.ErrNoRows {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *ArticleRepository) GetByID(id int64) (*model.Article, error) {
	var a model.Article
	err := r.db.QueryRow(`
		SELECT id, title, published_date, relevance_score, status, url
		FROM articles
		WHERE id = $1
	`, id).Scan(&a.ID, &a.Title, &a.PublishedDate, &a.RelevanceScore, &a.Status, &a.URL)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *ArticleRepository) SetRelevanceScore(id int64, score int) error {
	_, err := r.db.Exec(`
		UPDATE articles SET relevance_score = $1 WHERE id = $2
	`, score, id)
	return err
}
