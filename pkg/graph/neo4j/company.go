package neo4j

import (
	"context"

	"newsgraph/internal/util"
	"newsgraph/pkg/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// A company is top-level iff no PARENT_OF relationship points at it. The
// full-text call ranks by index score; subsidiaries are filtered after the
// index lookup so a matching subsidiary is dropped, not replaced by its
// parent.
const searchCompaniesCypher = `
CALL db.index.fulltext.queryNodes($index, $query) YIELD node, score
WITH node AS c, score
WHERE c:Company AND NOT ()-[:PARENT_OF]->(c)
RETURN c.id AS id, c.name AS name, c.summary AS summary
ORDER BY score DESC`

const companiesInIndustryCypher = `
MATCH (c:Company)-[:IN_INDUSTRY]->(:Industry {name: $industry})
RETURN c.id AS id, c.name AS name, c.summary AS summary`

const companiesInArticleCypher = `
MATCH (:Article {id: $articleID})-[:MENTIONS]->(c:Company)
WHERE NOT ()-[:PARENT_OF]->(c)
RETURN DISTINCT c.id AS id, c.name AS name, c.summary AS summary`

// SearchCompanies runs the company full-text index over name and summary,
// returning top-level companies in index-ranking order.
func (s *Store) SearchCompanies(ctx context.Context, query string) ([]graph.Company, error) {
	return s.readCompanies(ctx, graph.OpSearchCompanies, searchCompaniesCypher, map[string]any{
		"index": FulltextIndex,
		"query": util.SanitizeFulltextQuery(query),
	})
}

// CompaniesInIndustry returns companies linked to the named industry. The
// industry name is the lookup key; an unknown name simply matches nothing.
func (s *Store) CompaniesInIndustry(ctx context.Context, industry string) ([]graph.Company, error) {
	return s.readCompanies(ctx, graph.OpCompaniesInIndustry, companiesInIndustryCypher, map[string]any{
		"industry": industry,
	})
}

// CompaniesInArticle returns the top-level companies the article mentions.
// An unknown article ID matches nothing, which is an empty result rather
// than an error.
func (s *Store) CompaniesInArticle(ctx context.Context, articleID string) ([]graph.Company, error) {
	return s.readCompanies(ctx, graph.OpCompaniesInArticle, companiesInArticleCypher, map[string]any{
		"articleID": articleID,
	})
}

func (s *Store) readCompanies(ctx context.Context, op, cypher string, params map[string]any) ([]graph.Company, error) {
	companies := []graph.Company{}
	err := s.read(ctx, op, cypher, params, func(record *neo4j.Record) error {
		companies = append(companies, graph.Company{
			ID:      recordString(record, "id"),
			Name:    recordString(record, "name"),
			Summary: recordString(record, "summary"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return companies, nil
}
