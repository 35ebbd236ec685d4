package neo4j

import (
	"context"

	"newsgraph/pkg/graph"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// The role lives on the WORKS_AT relationship, not on the person node.
const peopleAtCompanyCypher = `
MATCH (p:Person)-[w:WORKS_AT]->(:Company {id: $companyID})
RETURN p.name AS name, w.role AS role`

// PeopleAtCompany returns every person holding a role at the company. An
// unknown company ID matches nothing.
func (s *Store) PeopleAtCompany(ctx context.Context, companyID string) ([]graph.Person, error) {
	people := []graph.Person{}
	err := s.read(ctx, graph.OpPeopleAtCompany, peopleAtCompanyCypher, map[string]any{
		"companyID": companyID,
	}, func(record *neo4j.Record) error {
		people = append(people, graph.Person{
			Name: recordString(record, "name"),
			Role: recordString(record, "role"),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return people, nil
}
