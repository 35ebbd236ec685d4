package neo4j

import (
	"context"
	"time"

	"newsgraph/pkg/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const articlesInRangeCypher = `
MATCH (a:Article)
WHERE a.date >= date($start) AND a.date < date($end)
RETURN a.id AS id, a.author AS author, a.title AS title,
       a.date AS date, a.sentiment AS sentiment
ORDER BY a.date ASC`

const articleByIDCypher = `
MATCH (a:Article {id: $id})
RETURN a.id AS id, a.author AS author, a.title AS title,
       a.date AS date, a.sentiment AS sentiment,
       a.site AS site, a.summary AS summary, a.content AS content`

// ArticlesInRange returns article overviews dated in [start, end), ascending
// by date. The bounds arrive as plain dates; the comparison happens on the
// Cypher date type.
func (s *Store) ArticlesInRange(ctx context.Context, start, end time.Time) ([]graph.ArticleOverview, error) {
	articles := []graph.ArticleOverview{}
	err := s.read(ctx, graph.OpArticlesInMonth, articlesInRangeCypher, map[string]any{
		"start": start.Format(graph.DateFormat),
		"end":   end.Format(graph.DateFormat),
	}, func(record *neo4j.Record) error {
		articles = append(articles, graph.ArticleOverview{
			ID:        recordString(record, "id"),
			Author:    recordString(record, "author"),
			Title:     recordString(record, "title"),
			Date:      recordDate(record, "date"),
			Sentiment: recordFloat(record, "sentiment"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticleByID returns the full article record, or NotFound when no article
// has the ID. Article IDs are unique, so a match is unambiguous.
func (s *Store) ArticleByID(ctx context.Context, id string) (*graph.Article, error) {
	var article *graph.Article
	err := s.read(ctx, graph.OpArticle, articleByIDCypher, map[string]any{
		"id": id,
	}, func(record *neo4j.Record) error {
		article = &graph.Article{
			ID:        recordString(record, "id"),
			Author:    recordString(record, "author"),
			Title:     recordString(record, "title"),
			Date:      recordDate(record, "date"),
			Sentiment: recordFloat(record, "sentiment"),
			Site:      recordString(record, "site"),
			Summary:   recordString(record, "summary"),
			Content:   recordString(record, "content"),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, graph.NewNotFound(graph.OpArticle, "article_id", id)
	}
	return article, nil
}
