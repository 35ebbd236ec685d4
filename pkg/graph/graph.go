// Package graph defines the read-only query surface over the company/news
// knowledge graph: the record types, the Store interface a graph backend
// implements, and the Service that validates and normalizes arguments before
// handing a query to the store.
package graph

import (
	"context"
	"strings"
	"time"
)

// DateFormat is the wire format for calendar dates, ISO yyyy-mm-dd.
const DateFormat = "2006-01-02"

// Company is a company node projection.
type Company struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// ArticleOverview is the short article projection returned by date-window
// queries. Site, summary and content are only available through Article.
type ArticleOverview struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Sentiment float64   `json:"sentiment"`
}

// Article is the full article record for a single-ID lookup.
type Article struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Sentiment float64   `json:"sentiment"`
	Site      string    `json:"site"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
}

// Person is a person with the role they hold at the queried company.
type Person struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Store is the graph backend. Implementations receive already validated,
// normalized arguments and run exactly one traversal per call.
//
// List methods return an empty slice when nothing matches. ArticleByID is the
// single exception: a missing ID is a NotFound error, because its contract is
// one-or-none rather than a possibly empty relationship.
type Store interface {
	// ListIndustries returns all industry names.
	ListIndustries(ctx context.Context) ([]string, error)

	// SearchCompanies runs a full-text search over company name and summary,
	// restricted to top-level companies. Subsidiaries are excluded even when
	// they match.
	SearchCompanies(ctx context.Context, query string) ([]Company, error)

	// CompaniesInIndustry returns companies linked to the named industry.
	CompaniesInIndustry(ctx context.Context, industry string) ([]Company, error)

	// ArticlesInRange returns articles with dates in the half-open interval
	// [start, end), sorted ascending by date.
	ArticlesInRange(ctx context.Context, start, end time.Time) ([]ArticleOverview, error)

	// ArticleByID returns the article with the given ID or a NotFound error.
	ArticleByID(ctx context.Context, id string) (*Article, error)

	// CompaniesInArticle returns the top-level companies mentioned by the
	// article. A mentioned subsidiary is excluded, not promoted to its
	// parent. An unknown article ID yields an empty slice.
	CompaniesInArticle(ctx context.Context, articleID string) ([]Company, error)

	// PeopleAtCompany returns the people holding a role at the company.
	PeopleAtCompany(ctx context.Context, companyID string) ([]Person, error)
}

// Service wraps a Store with the argument contract of the operation catalog.
// All methods are side-effect-free and safe to call concurrently.
type Service struct {
	store Store
}

// NewService returns a Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListIndustries returns all industry names. An empty graph is an empty
// slice, not an error.
func (s *Service) ListIndustries(ctx context.Context) ([]string, error) {
	return s.store.ListIndustries(ctx)
}

// SearchCompanies searches top-level companies by full text. Empty or
// whitespace-only queries are rejected rather than treated as match-all.
func (s *Service) SearchCompanies(ctx context.Context, query string) ([]Company, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidArgumentf(OpSearchCompanies, "query", "query must not be empty")
	}
	return s.store.SearchCompanies(ctx, query)
}

// CompaniesInIndustry returns companies linked to the named industry.
// Industry names are free text; an unknown name is an empty result, not an
// error.
func (s *Service) CompaniesInIndustry(ctx context.Context, industry string) ([]Company, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, invalidArgumentf(OpCompaniesInIndustry, "industry", "industry must not be empty")
	}
	return s.store.CompaniesInIndustry(ctx, industry)
}

// ArticlesInMonth returns articles dated within one calendar month starting
// at the given ISO date, sorted ascending by date. The window end clips the
// day of month when the following month is shorter.
func (s *Service) ArticlesInMonth(ctx context.Context, date string) ([]ArticleOverview, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return nil, invalidArgumentf(OpArticlesInMonth, "date", "date must not be empty")
	}
	start, err := time.Parse(DateFormat, date)
	if err != nil {
		return nil, invalidArgumentf(OpArticlesInMonth, "date", "date %q is not a valid yyyy-mm-dd date", date)
	}
	start, end := MonthWindow(start)
	return s.store.ArticlesInRange(ctx, start, end)
}

// Article returns the single article with the given ID, or a NotFound error
// when no article has that ID.
func (s *Service) Article(ctx context.Context, articleID string) (*Article, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return nil, invalidArgumentf(OpArticle, "article_id", "article_id must not be empty")
	}
	return s.store.ArticleByID(ctx, articleID)
}

// CompaniesInArticle returns the top-level companies mentioned by the
// article. Unlike Article, an unknown ID is an empty result: this looks up
// mentions, not the article itself.
func (s *Service) CompaniesInArticle(ctx context.Context, articleID string) ([]Company, error) {
	articleID = strings.TrimSpace(articleID)
	if articleID == "" {
		return nil, invalidArgumentf(OpCompaniesInArticle, "article_id", "article_id must not be empty")
	}
	return s.store.CompaniesInArticle(ctx, articleID)
}

// PeopleAtCompany returns the people associated with the company together
// with their roles. An unknown company ID is an empty result.
func (s *Service) PeopleAtCompany(ctx context.Context, companyID string) ([]Person, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, invalidArgumentf(OpPeopleAtCompany, "company_id", "company_id must not be empty")
	}
	return s.store.PeopleAtCompany(ctx, companyID)
}

// MonthWindow returns the half-open interval [start, start + 1 calendar
// month). When the start day does not exist in the following month the end
// day is clipped to that month's last day, so Jan 31 ends at the last day of
// February instead of rolling into March.
func MonthWindow(start time.Time) (time.Time, time.Time) {
	year, month, day := start.Date()
	month++
	if month > time.December {
		year++
		month = time.January
	}
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	end := time.Date(year, month, day, 0, 0, 0, 0, start.Location())
	return start, end
}

// daysInMonth uses day zero of the following month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
