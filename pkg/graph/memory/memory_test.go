package memory

import (
	"context"
	"testing"
	"time"

	"newsgraph/pkg/graph"
)

// fixture builds the shared test graph: Acme (top-level, Robotics) with
// subsidiary Acme Labs, and one article mentioning both.
func fixture() *Store {
	s := NewStore()
	s.AddCompany(Company{
		ID:         "c-1",
		Name:       "Acme",
		Summary:    "Industrial robotics manufacturer.",
		Industries: []string{"Robotics"},
	})
	s.AddCompany(Company{
		ID:       "c-2",
		Name:     "Acme Labs",
		Summary:  "Research subsidiary of Acme.",
		ParentID: "c-1",
	})
	s.AddIndustry("Aerospace")
	s.AddArticle(Article{
		Article: graph.Article{
			ID:        "a-1",
			Author:    "R. Chen",
			Title:     "Acme bets on humanoid robots",
			Date:      time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			Sentiment: 0.8,
			Site:      "news.example.com",
			Summary:   "Acme expands its robotics lineup.",
			Content:   "Full text.",
		},
		Mentions: []string{"c-1", "c-2"},
	})
	s.AddEmployment(Employment{PersonName: "Dana Ortiz", CompanyID: "c-1", Role: "CEO"})
	s.AddEmployment(Employment{PersonName: "Jon Maier", CompanyID: "c-1", Role: "Board Member"})
	return s
}

func TestListIndustries(t *testing.T) {
	industries, err := fixture().ListIndustries(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Aerospace", "Robotics"}
	if len(industries) != len(want) {
		t.Fatalf("unexpected industries: got %v, want %v", industries, want)
	}
	for i := range want {
		if industries[i] != want[i] {
			t.Fatalf("unexpected industries: got %v, want %v", industries, want)
		}
	}
}

func TestSearchCompaniesExcludesSubsidiaries(t *testing.T) {
	// Both companies match "acme"; only the top-level one may surface.
	companies, err := fixture().SearchCompanies(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 1 || companies[0].ID != "c-1" {
		t.Fatalf("expected only top-level Acme, got %v", companies)
	}
}

func TestSearchCompaniesMatchesSummary(t *testing.T) {
	companies, err := fixture().SearchCompanies(context.Background(), "manufacturer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 1 || companies[0].ID != "c-1" {
		t.Fatalf("expected summary match on Acme, got %v", companies)
	}
}

func TestSearchCompaniesNoMatch(t *testing.T) {
	companies, err := fixture().SearchCompanies(context.Background(), "quantum dentistry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 0 {
		t.Fatalf("expected empty result, got %v", companies)
	}
}

func TestCompaniesInIndustry(t *testing.T) {
	s := fixture()

	companies, err := s.CompaniesInIndustry(context.Background(), "Robotics")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 1 || companies[0].ID != "c-1" {
		t.Fatalf("unexpected companies for Robotics: %v", companies)
	}

	// Unknown industry names are free text and match nothing.
	companies, err = s.CompaniesInIndustry(context.Background(), "Underwater Basketry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 0 {
		t.Fatalf("expected empty result, got %v", companies)
	}
}

func TestArticlesInRangeBoundaries(t *testing.T) {
	s := NewStore()
	for _, date := range []string{"2024-01-30", "2024-01-31", "2024-02-15", "2024-02-28", "2024-02-29"} {
		d, _ := time.Parse(graph.DateFormat, date)
		s.AddArticle(Article{Article: graph.Article{ID: date, Date: d}})
	}

	start, _ := time.Parse(graph.DateFormat, "2024-01-31")
	end, _ := time.Parse(graph.DateFormat, "2024-02-29")

	articles, err := s.ArticlesInRange(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Start inclusive, end exclusive, ascending by date.
	want := []string{"2024-01-31", "2024-02-15", "2024-02-28"}
	if len(articles) != len(want) {
		t.Fatalf("unexpected articles: got %v, want %v", articles, want)
	}
	for i := range want {
		if articles[i].ID != want[i] {
			t.Fatalf("unexpected article order: got %v at %d, want %v", articles[i].ID, i, want[i])
		}
	}
}

func TestArticleByID(t *testing.T) {
	s := fixture()

	article, err := s.ArticleByID(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if article.Title != "Acme bets on humanoid robots" || article.Site != "news.example.com" {
		t.Fatalf("unexpected article: %+v", article)
	}

	_, err = s.ArticleByID(context.Background(), "missing")
	if !graph.IsNotFound(err) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestCompaniesInArticleExcludesSubsidiaries(t *testing.T) {
	s := fixture()

	companies, err := s.CompaniesInArticle(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// c-2 is mentioned but is a subsidiary; it must be dropped without
	// promoting anything.
	if len(companies) != 1 || companies[0].ID != "c-1" {
		t.Fatalf("unexpected mentioned companies: %v", companies)
	}

	// Missing article: empty result here, not_found only on ArticleByID.
	companies, err = s.CompaniesInArticle(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(companies) != 0 {
		t.Fatalf("expected empty result, got %v", companies)
	}
}

func TestPeopleAtCompany(t *testing.T) {
	s := fixture()

	people, err := s.PeopleAtCompany(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 2 {
		t.Fatalf("unexpected people: %v", people)
	}
	roles := map[string]string{}
	for _, p := range people {
		roles[p.Name] = p.Role
	}
	if roles["Dana Ortiz"] != "CEO" || roles["Jon Maier"] != "Board Member" {
		t.Fatalf("unexpected roles: %v", roles)
	}

	people, err = s.PeopleAtCompany(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(people) != 0 {
		t.Fatalf("expected empty result, got %v", people)
	}
}
