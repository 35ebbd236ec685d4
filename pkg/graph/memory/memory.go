// Package memory holds an in-memory graph.Store over a fixture graph. It
// mirrors the traversal semantics of the Neo4j store closely enough to back
// service and dispatch tests without a running database, with a naive
// substring match standing in for the full-text index.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"newsgraph/pkg/graph"
)

// Company is a fixture company. ParentID marks it as a subsidiary.
// Industries lists the industry names it operates in.
type Company struct {
	ID         string
	Name       string
	Summary    string
	ParentID   string
	Industries []string
}

// Article is a fixture article. Mentions lists mentioned company IDs.
type Article struct {
	graph.Article
	Mentions []string
}

// Employment links a person to a company with a role.
type Employment struct {
	PersonName string
	CompanyID  string
	Role       string
}

// Store is an immutable-after-setup graph.Store. Reads are safe for
// concurrent use once setup calls are done.
type Store struct {
	mu          sync.RWMutex
	companies   map[string]Company
	articles    map[string]Article
	industries  map[string]struct{}
	employments []Employment
}

var _ graph.Store = (*Store)(nil)

// NewStore returns an empty fixture store.
func NewStore() *Store {
	return &Store{
		companies:  make(map[string]Company),
		articles:   make(map[string]Article),
		industries: make(map[string]struct{}),
	}
}

// AddCompany registers a company and any industries it names.
func (s *Store) AddCompany(c Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies[c.ID] = c
	for _, name := range c.Industries {
		s.industries[name] = struct{}{}
	}
}

// AddIndustry registers an industry with no linked companies yet.
func (s *Store) AddIndustry(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.industries[name] = struct{}{}
}

// AddArticle registers an article and its company mentions.
func (s *Store) AddArticle(a Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles[a.ID] = a
}

// AddEmployment links a person to a company with a role.
func (s *Store) AddEmployment(e Employment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employments = append(s.employments, e)
}

func (s *Store) topLevel(c Company) bool {
	return c.ParentID == ""
}

// ListIndustries returns all industry names, sorted.
func (s *Store) ListIndustries(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.industries))
	for name := range s.industries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SearchCompanies matches query case-insensitively against company name and
// summary. Name matches rank before summary-only matches; subsidiaries are
// excluded even when they match.
func (s *Store) SearchCompanies(ctx context.Context, query string) ([]graph.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(query)

	var nameHits, summaryHits []graph.Company
	for _, c := range s.companies {
		if !s.topLevel(c) {
			continue
		}
		switch {
		case strings.Contains(strings.ToLower(c.Name), needle):
			nameHits = append(nameHits, graph.Company{ID: c.ID, Name: c.Name, Summary: c.Summary})
		case strings.Contains(strings.ToLower(c.Summary), needle):
			summaryHits = append(summaryHits, graph.Company{ID: c.ID, Name: c.Name, Summary: c.Summary})
		}
	}
	sortCompanies(nameHits)
	sortCompanies(summaryHits)
	return append(nameHits, summaryHits...), nil
}

// CompaniesInIndustry returns companies linked to the named industry.
func (s *Store) CompaniesInIndustry(ctx context.Context, industry string) ([]graph.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []graph.Company{}
	for _, c := range s.companies {
		for _, name := range c.Industries {
			if name == industry {
				matches = append(matches, graph.Company{ID: c.ID, Name: c.Name, Summary: c.Summary})
				break
			}
		}
	}
	sortCompanies(matches)
	return matches, nil
}

// ArticlesInRange returns articles dated in [start, end), ascending by date.
func (s *Store) ArticlesInRange(ctx context.Context, start, end time.Time) ([]graph.ArticleOverview, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []graph.ArticleOverview{}
	for _, a := range s.articles {
		if a.Date.Before(start) || !a.Date.Before(end) {
			continue
		}
		matches = append(matches, graph.ArticleOverview{
			ID:        a.ID,
			Author:    a.Author,
			Title:     a.Title,
			Date:      a.Date,
			Sentiment: a.Sentiment,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Date.Before(matches[j].Date)
	})
	return matches, nil
}

// ArticleByID returns the full article record or NotFound.
func (s *Store) ArticleByID(ctx context.Context, id string) (*graph.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.articles[id]
	if !ok {
		return nil, graph.NewNotFound(graph.OpArticle, "article_id", id)
	}
	record := a.Article
	return &record, nil
}

// CompaniesInArticle returns the top-level companies the article mentions.
// A mentioned subsidiary is dropped; its parent appears only when directly
// mentioned itself.
func (s *Store) CompaniesInArticle(ctx context.Context, articleID string) ([]graph.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := []graph.Company{}
	a, ok := s.articles[articleID]
	if !ok {
		return matches, nil
	}
	for _, companyID := range a.Mentions {
		c, ok := s.companies[companyID]
		if !ok || !s.topLevel(c) {
			continue
		}
		matches = append(matches, graph.Company{ID: c.ID, Name: c.Name, Summary: c.Summary})
	}
	sortCompanies(matches)
	return matches, nil
}

// PeopleAtCompany returns the people holding a role at the company.
func (s *Store) PeopleAtCompany(ctx context.Context, companyID string) ([]graph.Person, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	people := []graph.Person{}
	for _, e := range s.employments {
		if e.CompanyID == companyID {
			people = append(people, graph.Person{Name: e.PersonName, Role: e.Role})
		}
	}
	return people, nil
}

func sortCompanies(companies []graph.Company) {
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].Name < companies[j].Name
	})
}
