package neo4j

import (
	"context"

	"newsgraph/pkg/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const listIndustriesCypher = `
MATCH (i:Industry)
RETURN i.name AS name
ORDER BY name ASC`

// ListIndustries returns every industry name, sorted. An empty graph yields
// an empty slice.
func (s *Store) ListIndustries(ctx context.Context) ([]string, error) {
	names := []string{}
	err := s.read(ctx, graph.OpListIndustries, listIndustriesCypher, nil, func(record *neo4j.Record) error {
		names = append(names, recordString(record, "name"))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
